package docstyle

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

const (
	nodeClass    = "class_definition"
	nodeFunction = "function_definition"
)

// scopeContainers are the statement nodes a scope search descends through.
// Class and function bodies are not listed: nested declarations are only
// reached by walking their parent declaration.
var scopeContainers = map[string]struct{}{
	"block":                {},
	"decorated_definition": {},
	"if_statement":         {},
	"elif_clause":          {},
	"else_clause":          {},
	"for_statement":        {},
	"while_statement":      {},
	"try_statement":        {},
	"except_clause":        {},
	"except_group_clause":  {},
	"finally_clause":       {},
	"with_statement":       {},
	"match_statement":      {},
	"case_clause":          {},
}

// ignoredParameters are never reported as function parameters.
var ignoredParameters = map[string]struct{}{
	"self": {},
	"cls":  {},
}

// extractDeclarations walks the tree depth first and returns one record per
// class or function. At every level the nested classes are visited (with
// their interiors) before the nested functions.
func extractDeclarations(tree *sitter.Tree, source []byte) []Declaration {
	e := &extractor{source: source}
	e.walk(tree.RootNode())
	return e.decls
}

type extractor struct {
	source []byte
	decls  []Declaration
}

func (e *extractor) walk(n *sitter.Node) {
	scope := n
	if isDeclaration(n) {
		e.decls = append(e.decls, e.declaration(n))
		scope = n.ChildByFieldName("body")
		if scope == nil {
			return
		}
	}

	var classes, funcs []*sitter.Node
	e.scan(scope, &classes, &funcs)
	for _, c := range classes {
		e.walk(c)
	}
	for _, f := range funcs {
		e.walk(f)
	}
}

// scan collects the declarations directly owned by a scope.
func (e *extractor) scan(n *sitter.Node, classes, funcs *[]*sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case nodeClass:
			*classes = append(*classes, child)
		case nodeFunction:
			*funcs = append(*funcs, child)
		default:
			if _, ok := scopeContainers[child.Type()]; ok {
				e.scan(child, classes, funcs)
			}
		}
	}
}

func isDeclaration(n *sitter.Node) bool {
	return n.Type() == nodeClass || n.Type() == nodeFunction
}

func (e *extractor) declaration(n *sitter.Node) Declaration {
	d := Declaration{
		Kind:     KindClass,
		Position: keywordPosition(n),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		d.Name = name.Content(e.source)
	}
	d.Docstring, d.HasDocstring = e.docstring(n.ChildByFieldName("body"))

	if n.Type() == nodeFunction {
		d.Kind = KindFunction
		d.Parameters = e.parameters(n.ChildByFieldName("parameters"))
		d.Returns = e.returnState(n.ChildByFieldName("return_type"))
	}
	return d
}

// keywordPosition returns the location of the "def" or "class" keyword, so
// that "async def" is reported at "def".
func keywordPosition(n *sitter.Node) Position {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "def" || child.Type() == "class" {
			return nodePosition(child)
		}
	}
	return nodePosition(n)
}

// docstring returns the leading string literal of a body, quotes included.
func (e *extractor) docstring(body *sitter.Node) (string, bool) {
	if body == nil {
		return "", false
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() == "comment" {
			continue
		}
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
			return "", false
		}
		lit := stmt.NamedChild(0)
		if lit.Type() != "string" || isFormatString(lit, e.source) {
			return "", false
		}
		return lit.Content(e.source), true
	}
	return "", false
}

// isFormatString reports whether a string literal carries an f prefix. Such
// literals are evaluated at runtime and never become a docstring.
func isFormatString(lit *sitter.Node, source []byte) bool {
	for i := 0; i < int(lit.ChildCount()); i++ {
		child := lit.Child(i)
		switch child.Type() {
		case "interpolation":
			return true
		case "string_start":
			if strings.ContainsAny(child.Content(source), "fF") {
				return true
			}
		}
	}
	return false
}

func (e *extractor) parameters(params *sitter.Node) []Parameter {
	if params == nil {
		return nil
	}

	var out []Parameter
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)

		var name *sitter.Node
		annotated := false
		switch p.Type() {
		case "identifier":
			name = p
		case "default_parameter":
			name = p.ChildByFieldName("name")
		case "typed_parameter":
			name = p.NamedChild(0)
			annotated = true
		case "typed_default_parameter":
			name = p.ChildByFieldName("name")
			annotated = true
		default:
			// separators, splats and comments
			continue
		}

		if name == nil || name.Type() != "identifier" {
			continue
		}
		text := name.Content(e.source)
		if _, ok := ignoredParameters[text]; ok {
			continue
		}
		out = append(out, Parameter{Name: text, Annotated: annotated})
	}
	return out
}

func (e *extractor) returnState(annotation *sitter.Node) ReturnState {
	if annotation == nil {
		return NoReturnOperator
	}
	if annotation.Content(e.source) == "None" {
		return ReturnsNone
	}
	return ReturnsValue
}
