package docstyle

import "fmt"

// Position represents a location in a source file.
// Line is 1-based, Column is 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Kind is the kind of a declaration.
type Kind int

const (
	KindClass Kind = iota
	KindFunction
)

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ReturnState describes the return annotation of a function.
type ReturnState int

const (
	// NoReturnOperator means the function has no "->" annotation at all.
	NoReturnOperator ReturnState = iota
	// ReturnsNone means the function is annotated "-> None".
	ReturnsNone
	// ReturnsValue means any other return annotation.
	ReturnsValue
)

func (r ReturnState) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r ReturnState) String() string {
	switch r {
	case NoReturnOperator:
		return "no-operator"
	case ReturnsNone:
		return "none"
	case ReturnsValue:
		return "value"
	default:
		return fmt.Sprintf("return(%d)", int(r))
	}
}

// Parameter is a declared function parameter.
type Parameter struct {
	Name      string `json:"name"`
	Annotated bool   `json:"annotated"`
}

// Declaration is the metadata extracted for one class or function.
type Declaration struct {
	Kind     Kind     `json:"kind"`
	Position Position `json:"position"`
	Name     string   `json:"name"`
	// Docstring is the verbatim string literal, quotes included.
	// HasDocstring distinguishes a missing docstring from an empty one.
	Docstring    string `json:"docstring,omitempty"`
	HasDocstring bool   `json:"has_docstring"`

	// Function only.
	Parameters []Parameter `json:"parameters,omitempty"`
	Returns    ReturnState `json:"returns"`
}

// IsFunction reports whether the declaration is a function or method.
func (d Declaration) IsFunction() bool {
	return d.Kind == KindFunction
}

// ParameterNames returns the parameter names in declaration order.
func (d Declaration) ParameterNames() []string {
	names := make([]string, len(d.Parameters))
	for i, p := range d.Parameters {
		names[i] = p.Name
	}
	return names
}

// Diagnostic is a single reported violation.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// Text returns the code and message joined the way hosts print them.
func (d Diagnostic) Text() string {
	return d.Code + " " + d.Message
}

// Tuple returns the (line, column, message, rule) fields consumed by
// flake8-style hosts.
func (d Diagnostic) Tuple() (int, int, string, string) {
	return d.Line, d.Column, d.Text(), CheckerName
}

// Result is the outcome of checking one file.
type Result struct {
	File        string       `json:"file"`
	Skipped     bool         `json:"skipped,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// FileJob represents a file to be processed.
type FileJob struct {
	AbsPath     string
	DisplayPath string
}
