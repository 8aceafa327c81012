package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arjunmahishi/docstyle/docstyle"
	"github.com/stretchr/testify/require"
)

var results = []docstyle.Result{
	{
		File: "pkg/mod.py",
		Diagnostics: []docstyle.Diagnostic{
			{Code: "D410", Message: "Operator -> should be implemented", Line: 3, Column: 0},
			{Code: "D300", Message: "Use triple single quotes.", Line: 7, Column: 4},
		},
	},
	{File: "pkg/clean.py", Diagnostics: []docstyle.Diagnostic{}},
}

func TestWriteResultsText(t *testing.T) {
	var buf bytes.Buffer
	w := New(Config{Output: &buf, NoColor: true})

	require.NoError(t, w.WriteResults(results))
	require.Equal(t,
		"pkg/mod.py:3:1: D410 Operator -> should be implemented\n"+
			"pkg/mod.py:7:5: D300 Use triple single quotes.\n",
		buf.String())
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	w := New(Config{Output: &buf, Format: FormatJSON, Compact: true})

	require.NoError(t, w.WriteResults(results))

	var decoded []docstyle.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, results, decoded)
	require.Contains(t, buf.String(), `"message":"Operator -> should be implemented"`)
}

func TestWriteRules(t *testing.T) {
	var buf bytes.Buffer
	w := New(Config{Output: &buf, NoColor: true})

	require.NoError(t, w.WriteRules(docstyle.Rules()))
	require.Contains(t, buf.String(), "D406            args-list                 Argument wasn`t implemented in args list.\n")
}

func TestWriteDeclarations(t *testing.T) {
	var buf bytes.Buffer
	w := New(Config{Output: &buf, Format: FormatJSON, Compact: true})

	decls := []docstyle.Declaration{{
		Kind:       docstyle.KindFunction,
		Name:       "run",
		Position:   docstyle.Position{Line: 2, Column: 4},
		Parameters: []docstyle.Parameter{{Name: "a", Annotated: true}},
		Returns:    docstyle.ReturnsValue,
	}}
	require.NoError(t, w.WriteDeclarations("mod.py", decls))
	require.JSONEq(t, `{
		"file": "mod.py",
		"declarations": [{
			"kind": "function",
			"position": {"line": 2, "column": 4},
			"name": "run",
			"has_docstring": false,
			"parameters": [{"name": "a", "annotated": true}],
			"returns": "value"
		}]
	}`, buf.String())
}
