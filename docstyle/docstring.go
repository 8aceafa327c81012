package docstyle

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformedDocstring is returned when a docstring section cannot be
// decomposed into its items.
var ErrMalformedDocstring = errors.New("malformed docstring")

// StructuredDocstring is the Google-style decomposition of a docstring.
type StructuredDocstring struct {
	// ShortDescription is the first line of the cleaned docstring. It keeps
	// the opening quotes of the literal.
	ShortDescription string
	// BlankAfterShortDescription is true when an empty line separates the
	// summary from the rest of the description.
	BlankAfterShortDescription bool
	// Parameters lists the names documented in the parameter section, in
	// the order they appear.
	Parameters []string
	// HasReturns is true when a "Returns:" header is present, even if it has
	// no content.
	HasReturns bool
}

const (
	sectionOther = iota
	sectionParams
	sectionReturns
)

var sectionKinds = map[string]int{
	"Args":       sectionParams,
	"Arguments":  sectionParams,
	"Parameters": sectionParams,
	"Params":     sectionParams,
	"Returns":    sectionReturns,
	"Raises":     sectionOther,
	"Exceptions": sectionOther,
	"Except":     sectionOther,
	"Attributes": sectionOther,
	"Example":    sectionOther,
	"Examples":   sectionOther,
	"Yields":     sectionOther,
}

var (
	titlesRe = regexp.MustCompile(
		`(?m)^(Args|Arguments|Parameters|Params|Raises|Exceptions|Except|Attributes|Example|Examples|Returns|Yields):[ \t\r\f\v]*$`)
	// A section ends at the first line starting in column zero.
	sectionEndRe = regexp.MustCompile(`\n\S`)
	typedArgRe   = regexp.MustCompile(`^\s*(.+?)\s*\(\s*(.*[^\s]+)\s*\)`)
)

// parseDocstring decomposes a raw docstring. On ErrMalformedDocstring the
// description fields are still filled in, the section fields may be partial.
func parseDocstring(raw string) (StructuredDocstring, error) {
	var ds StructuredDocstring
	text := cleandoc(raw)

	titles := titlesRe.FindAllStringSubmatchIndex(text, -1)

	desc := text
	if len(titles) > 0 {
		desc = text[:titles[0][0]]
	}
	parts := strings.SplitN(desc, "\n", 2)
	ds.ShortDescription = parts[0]
	if len(parts) > 1 {
		ds.BlankAfterShortDescription = strings.HasPrefix(parts[1], "\n")
	}

	for i, m := range titles {
		end := len(text)
		if i+1 < len(titles) {
			end = titles[i+1][0]
		}
		body := text[m[1]:end]
		if loc := sectionEndRe.FindStringIndex(body); loc != nil {
			body = body[:loc[0]]
		}
		body = strings.Trim(body, "\n")

		title := text[m[2]:m[3]]
		switch sectionKinds[title] {
		case sectionReturns:
			ds.HasReturns = true
		case sectionParams:
			names, err := parseParamSection(title, body)
			ds.Parameters = append(ds.Parameters, names...)
			if err != nil {
				return ds, err
			}
		}
	}
	return ds, nil
}

// parseParamSection splits a section body into items starting at lines with
// exactly the indentation of the first line, and returns the item names.
func parseParamSection(title, body string) ([]string, error) {
	indent := leadingSpace(body)

	var items [][]string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, indent) && startsNonSpace(line[len(indent):]) {
			items = append(items, nil)
		}
		if len(items) == 0 {
			continue
		}
		items[len(items)-1] = append(items[len(items)-1], line)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items in %q section", ErrMalformedDocstring, title)
	}

	names := make([]string, 0, len(items))
	for _, lines := range items {
		item := strings.Trim(strings.Join(lines, "\n")[len(indent):], "\n")
		before, _, ok := strings.Cut(item, ":")
		if !ok {
			return names, fmt.Errorf("%w: expected a colon in %q", ErrMalformedDocstring, item)
		}
		if m := typedArgRe.FindStringSubmatch(before); m != nil {
			before = m[1]
		}
		names = append(names, strings.TrimSpace(before))
	}
	return names, nil
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

func startsNonSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && !unicode.IsSpace(r)
}

// cleandoc normalises docstring indentation the way PEP 257 tools do.
func cleandoc(doc string) string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	doc = strings.ReplaceAll(doc, "\r", "\n")
	lines := strings.Split(expandTabs(doc, 8), "\n")

	margin := -1
	for _, line := range lines[1:] {
		content := len(strings.TrimLeftFunc(line, unicode.IsSpace))
		if content == 0 {
			continue
		}
		if indent := len(line) - content; margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)
	if margin >= 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) > margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

func expandTabs(s string, size int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := size - col%size
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}
