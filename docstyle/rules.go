package docstyle

import (
	"slices"
	"strings"
	"unicode"
)

// tripleSingleQuotes is the only accepted docstring delimiter.
const tripleSingleQuotes = "'''"

// Rule is a single named check. A rule fires at most once per declaration.
type Rule struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`

	check func(in ruleInput) bool
}

// diagnostic builds the finding reported when the rule fires at pos.
func (r *Rule) diagnostic(pos Position) Diagnostic {
	return Diagnostic{
		Code:    r.Code,
		Message: r.Message,
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// ruleInput is what a rule sees: the declaration and, once the docstring
// exists, its structured form.
type ruleInput struct {
	decl   Declaration
	doc    StructuredDocstring
	docErr error
}

var (
	ruleReturnOperator = &Rule{
		Code:    "D410",
		Name:    "return-operator",
		Message: "Operator -> should be implemented",
		check: func(in ruleInput) bool {
			return in.decl.IsFunction() && in.decl.Returns == NoReturnOperator
		},
	}
	ruleDocstringExists = &Rule{
		Code:    "D101/D102/D103",
		Name:    "docstring-exists",
		Message: "Missing docstring in public class/method/function.",
		check: func(in ruleInput) bool {
			return !in.decl.HasDocstring
		},
	}
	ruleQuotes = &Rule{
		Code:    "D300",
		Name:    "triple-single-quotes",
		Message: "Use triple single quotes.",
		check: func(in ruleInput) bool {
			raw := in.decl.Docstring
			return !strings.HasPrefix(raw, tripleSingleQuotes) || !strings.HasSuffix(raw, tripleSingleQuotes)
		},
	}
	ruleClosingQuotes = &Rule{
		Code:    "D209",
		Name:    "multiline-closing-quotes",
		Message: "Multi-line docstring closing quotes should be on a separate line.",
		check: func(in ruleInput) bool {
			return in.doc.BlankAfterShortDescription && !strings.HasSuffix(in.decl.Docstring, tripleSingleQuotes)
		},
	}
	ruleCapitalLetter = &Rule{
		Code:    "D212",
		Name:    "summary-capital-letter",
		Message: "Docstring summary should start at the first line with a capital letter.",
		check: func(in ruleInput) bool {
			summary := []rune(in.doc.ShortDescription)
			// Too short to hold a character after the opening quotes.
			if len(summary) <= len(tripleSingleQuotes) {
				return false
			}
			return !unicode.IsUpper(summary[len(tripleSingleQuotes)])
		},
	}
	rulePeriod = &Rule{
		Code:    "D400",
		Name:    "summary-period",
		Message: "First line should end with a period.",
		check: func(in ruleInput) bool {
			return !strings.HasSuffix(strings.Trim(in.doc.ShortDescription, "'"), ".")
		},
	}
	ruleBlankLine = &Rule{
		Code:    "D205",
		Name:    "summary-blank-line",
		Message: "1 blank (maybe you should remove whitespaces) line required between summary line and description.",
		check: func(in ruleInput) bool {
			return !in.doc.BlankAfterShortDescription && !strings.HasSuffix(in.doc.ShortDescription, tripleSingleQuotes)
		},
	}
	ruleArgsSection = &Rule{
		Code:    "D405",
		Name:    "args-section",
		Message: "Args: should be implemented, during function have arguments.",
		check: func(in ruleInput) bool {
			return in.docErr == nil && len(in.decl.Parameters) > 0 && len(in.doc.Parameters) == 0
		},
	}
	ruleArgsList = &Rule{
		Code:    "D406",
		Name:    "args-list",
		Message: "Argument wasn`t implemented in args list.",
		check: func(in ruleInput) bool {
			if in.docErr != nil || len(in.doc.Parameters) == 0 {
				return false
			}
			return !slices.Equal(in.doc.Parameters, in.decl.ParameterNames())
		},
	}
	ruleAnnotations = &Rule{
		Code:    "D411",
		Name:    "argument-annotations",
		Message: "Arguments must be annotated",
		check: func(in ruleInput) bool {
			for _, p := range in.decl.Parameters {
				if !p.Annotated {
					return true
				}
			}
			return false
		},
	}
	ruleReturnsSection = &Rule{
		Code:    "D407",
		Name:    "returns-section",
		Message: `"Returns:" should be implemented, during function returns something.`,
		check: func(in ruleInput) bool {
			return in.docErr == nil && !in.doc.HasReturns && in.decl.Returns == ReturnsValue
		},
	}
)

// docstringRules run for every declaration that has a docstring.
var docstringRules = []*Rule{
	ruleQuotes,
	ruleClosingQuotes,
	ruleCapitalLetter,
	rulePeriod,
	ruleBlankLine,
}

// functionRules run after docstringRules, for functions only.
var functionRules = []*Rule{
	ruleArgsSection,
	ruleArgsList,
	ruleAnnotations,
	ruleReturnsSection,
}

// Rules returns every rule in evaluation order.
func Rules() []Rule {
	all := []*Rule{ruleReturnOperator, ruleDocstringExists}
	all = append(all, docstringRules...)
	all = append(all, functionRules...)

	out := make([]Rule, len(all))
	for i, r := range all {
		out[i] = *r
	}
	return out
}

// engine runs the rule pipeline over declarations and feeds a collector.
type engine struct {
	opts      Options
	collector *Collector
}

// evaluate runs the rules for one declaration in their fixed order.
func (e *engine) evaluate(d Declaration) {
	if strings.HasPrefix(d.Name, e.opts.PrivatePrefix) && !d.HasDocstring {
		return
	}

	in := ruleInput{decl: d}
	e.run(ruleReturnOperator, in)
	if e.run(ruleDocstringExists, in) {
		return
	}

	in.doc, in.docErr = parseDocstring(d.Docstring)
	for _, r := range docstringRules {
		e.run(r, in)
	}
	if !d.IsFunction() {
		return
	}
	for _, r := range functionRules {
		e.run(r, in)
	}
}

// run reports whether the rule fired. Disabled rules still report firing so
// the pipeline keeps its short-circuits.
func (e *engine) run(r *Rule, in ruleInput) bool {
	if !r.check(in) {
		return false
	}
	if e.opts.enabled(r.Code) {
		e.collector.Add(r.diagnostic(in.decl.Position))
	}
	return true
}
