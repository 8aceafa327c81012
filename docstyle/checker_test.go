package docstyle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const undocumented = `class Undocumented:
    def method(self) -> None:
        pass
`

const documented = `class Documented:
    '''Documented.'''
`

func TestCheckSource(t *testing.T) {
	checker := NewChecker(Options{})

	res, err := checker.CheckSource(context.Background(), "mod.py", []byte(undocumented))
	require.NoError(t, err)
	require.Equal(t, "mod.py", res.File)
	require.False(t, res.Skipped)
	require.Equal(t, []Diagnostic{
		{Code: "D101/D102/D103", Message: "Missing docstring in public class/method/function.", Line: 1, Column: 0},
		{Code: "D101/D102/D103", Message: "Missing docstring in public class/method/function.", Line: 2, Column: 4},
	}, res.Diagnostics)

	line, col, msg, rule := res.Diagnostics[1].Tuple()
	require.Equal(t, 2, line)
	require.Equal(t, 4, col)
	require.Equal(t, "D101/D102/D103 Missing docstring in public class/method/function.", msg)
	require.Equal(t, CheckerName, rule)
}

func TestCheckSourceSequentialIsolation(t *testing.T) {
	checker := NewChecker(Options{})
	ctx := context.Background()

	first, err := checker.CheckSource(ctx, "first.py", []byte(undocumented))
	require.NoError(t, err)
	require.Len(t, first.Diagnostics, 2)

	second, err := checker.CheckSource(ctx, "second.py", []byte(documented))
	require.NoError(t, err)
	require.Empty(t, second.Diagnostics)
}

// Run with -race to detect shared state between calls.
func TestCheckSourceConcurrent(t *testing.T) {
	checker := NewChecker(Options{})

	var wg sync.WaitGroup
	results := make([]Result, 32)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := documented
			if i%2 == 0 {
				src = undocumented
			}
			results[i], errs[i] = checker.CheckSource(context.Background(), fmt.Sprintf("f%d.py", i), []byte(src))
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		require.NoError(t, errs[i])
		if i%2 == 0 {
			require.Len(t, res.Diagnostics, 2, "file %d", i)
		} else {
			require.Empty(t, res.Diagnostics, "file %d", i)
		}
	}
}

func TestCheckSourceSyntaxError(t *testing.T) {
	res, err := NewChecker(Options{}).CheckSource(context.Background(), "bad.py", []byte("class (:\n"))
	require.ErrorIs(t, err, ErrSyntax)
	require.Empty(t, res.Diagnostics)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, 1, syntaxErr.Position.Line)
}

func TestCheckSourceLineEndings(t *testing.T) {
	const scale = "def scale(value: int) -> int:\n" +
		"    '''Scale a value.\n" +
		"\n" +
		"    Args:\n" +
		"        value: Input.\n" +
		"\n" +
		"    Returns:\n" +
		"        The scaled value.\n" +
		"    '''\n" +
		"    return value * 2\n"

	sources := map[string]string{
		"lf":   scale,
		"crlf": strings.ReplaceAll(scale, "\n", "\r\n"),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			res, err := NewChecker(Options{}).CheckSource(context.Background(), "scale.py", []byte(src))
			require.NoError(t, err)
			require.Empty(t, res.Diagnostics)
		})
	}
}

func TestCheckerWithoutLanguage(t *testing.T) {
	c := &Checker{opts: DefaultOptions()}

	_, err := c.CheckSource(context.Background(), "mod.py", []byte(documented))
	require.ErrorIs(t, err, ErrLanguageNotRegistered)
	require.ErrorContains(t, err, "registered: python")

	dir := t.TempDir()
	path := filepath.Join(dir, "mod.py")
	require.NoError(t, os.WriteFile(path, []byte(documented), 0644))

	decls, err := c.Outline(context.Background(), path)
	require.ErrorIs(t, err, ErrLanguageNotRegistered)
	require.Nil(t, decls)
}

func TestList(t *testing.T) {
	require.Contains(t, List(), "python")
}

func TestCheckSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewChecker(Options{}).CheckSource(ctx, "mod.py", []byte(documented))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckSkipPrefixes(t *testing.T) {
	ctx := context.Background()

	res, err := NewChecker(Options{}).CheckSource(ctx, "pkg/test_mod.py", []byte("not python at all ("))
	require.NoError(t, err)
	require.True(t, res.Skipped)
	require.Empty(t, res.Diagnostics)

	res, err = NewChecker(Options{SkipPrefixes: []string{"gen_"}}).CheckSource(ctx, "test_mod.py", []byte(undocumented))
	require.NoError(t, err)
	require.False(t, res.Skipped)
	require.Len(t, res.Diagnostics, 2)
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mod.py")
	require.NoError(t, os.WriteFile(path, []byte(undocumented), 0644))

	res, err := NewChecker(Options{}).CheckFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, filepath.ToSlash(path), res.File)
	require.Len(t, res.Diagnostics, 2)

	_, err = NewChecker(Options{}).CheckFile(context.Background(), filepath.Join(dir, "missing.py"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSupported(t *testing.T) {
	require.True(t, Supported("a/b.py"))
	require.True(t, Supported("stubs.pyi"))
	require.False(t, Supported("main.go"))
	require.False(t, Supported("Makefile"))
}

func TestOutline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_mod.py")
	require.NoError(t, os.WriteFile(path, []byte(undocumented), 0644))

	decls, err := NewChecker(Options{}).Outline(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []Declaration{
		{Kind: KindClass, Name: "Undocumented", Position: Position{Line: 1, Column: 0}},
		{
			Kind:     KindFunction,
			Name:     "method",
			Position: Position{Line: 2, Column: 4},
			Returns:  ReturnsNone,
		},
	}, decls)
}
