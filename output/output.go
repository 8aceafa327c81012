// Package output renders docstyle results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arjunmahishi/docstyle/docstyle"
	"github.com/fatih/color"
)

// Format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds output configuration.
type Config struct {
	Format  string
	Compact bool
	NoColor bool
	Output  io.Writer
}

// Writer renders results in the configured format.
type Writer struct {
	cfg      Config
	code     *color.Color
	location *color.Color
}

// New creates a new output Writer.
func New(cfg Config) *Writer {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}

	w := &Writer{
		cfg:      cfg,
		code:     color.New(color.FgRed, color.Bold),
		location: color.New(color.Bold),
	}
	if cfg.NoColor {
		w.code.DisableColor()
		w.location.DisableColor()
	}
	return w
}

// WriteResults outputs the results of a run.
func (w *Writer) WriteResults(results []docstyle.Result) error {
	if w.cfg.Format == FormatJSON {
		return w.writeJSON(results)
	}

	for _, res := range results {
		for _, d := range res.Diagnostics {
			// Hosts print 1-based columns.
			loc := fmt.Sprintf("%s:%d:%d:", res.File, d.Line, d.Column+1)
			_, err := fmt.Fprintf(w.cfg.Output, "%s %s %s\n",
				w.location.Sprint(loc), w.code.Sprint(d.Code), d.Message)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteRules outputs the rule table.
func (w *Writer) WriteRules(rules []docstyle.Rule) error {
	if w.cfg.Format == FormatJSON {
		return w.writeJSON(rules)
	}

	for _, r := range rules {
		_, err := fmt.Fprintf(w.cfg.Output, "%s %-25s %s\n", w.code.Sprintf("%-15s", r.Code), r.Name, r.Message)
		if err != nil {
			return err
		}
	}
	return nil
}

// FileOutline is the JSON shape of the outline command.
type FileOutline struct {
	File         string                 `json:"file"`
	Declarations []docstyle.Declaration `json:"declarations"`
}

// WriteDeclarations outputs the declaration records of a file as JSON.
func (w *Writer) WriteDeclarations(file string, decls []docstyle.Declaration) error {
	if decls == nil {
		decls = []docstyle.Declaration{}
	}
	return w.writeJSON(FileOutline{File: file, Declarations: decls})
}

func (w *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(w.cfg.Output)
	enc.SetEscapeHTML(false)
	if !w.cfg.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// WriteError writes an error as a JSON object to stderr.
func WriteError(err error) {
	enc := json.NewEncoder(os.Stderr)
	_ = enc.Encode(map[string]string{
		"error": err.Error(),
	})
}
