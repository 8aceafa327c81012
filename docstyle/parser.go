package docstyle

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrSyntax is returned when a source file cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// SyntaxError locates the first unparsable node of a file.
type SyntaxError struct {
	Position Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d", e.Position.Line, e.Position.Column)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// parser wraps a tree-sitter parser for a specific language.
type parser struct {
	parser *sitter.Parser
	lang   Language
}

// newParser creates a new parser for the given language.
func newParser(language Language) *parser {
	p := sitter.NewParser()
	p.SetLanguage(language.TreeSitterLang())
	return &parser{
		parser: p,
		lang:   language,
	}
}

// parse parses source code and returns the syntax tree. A tree that
// contains error or missing nodes is rejected as a whole.
func (p *parser) parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		pos := firstErrorPosition(root)
		tree.Close()
		return nil, &SyntaxError{Position: pos}
	}
	return tree, nil
}

func (p *parser) close() {
	p.parser.Close()
}

func firstErrorPosition(n *sitter.Node) Position {
	if n.IsError() || n.IsMissing() {
		return nodePosition(n)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		return firstErrorPosition(child)
	}
	return nodePosition(n)
}

func nodePosition(n *sitter.Node) Position {
	start := n.StartPoint()
	return Position{Line: int(start.Row) + 1, Column: int(start.Column)}
}
