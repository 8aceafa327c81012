package docstyle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckerName identifies this checker in host output.
const CheckerName = "docstyle"

// ErrLanguageNotRegistered is returned when the Python grammar is missing
// from the language registry.
var ErrLanguageNotRegistered = errors.New("language not registered")

// Checker verifies the docstrings of Python source files. A Checker holds
// no per-file state and may be used from several goroutines.
type Checker struct {
	opts Options
	lang Language
}

// NewChecker creates a Checker. Unset options take their defaults.
func NewChecker(opts Options) *Checker {
	return &Checker{
		opts: opts.withDefaults(),
		lang: Get("python"),
	}
}

// Options returns the effective options.
func (c *Checker) Options() Options {
	return c.opts
}

// CheckFile reads and checks a single file.
func (c *Checker) CheckFile(ctx context.Context, path string) (Result, error) {
	job, err := resolveFile(path)
	if err != nil {
		return Result{}, err
	}
	if c.opts.skipFile(job.AbsPath) {
		return skipped(job.DisplayPath), nil
	}

	source, err := os.ReadFile(job.AbsPath)
	if err != nil {
		return Result{}, fmt.Errorf("read file: %w", err)
	}
	return c.check(ctx, job.DisplayPath, source)
}

// CheckSource checks already loaded source text. name is used for the
// result and for the skip-prefix decision; nothing is read from disk.
func (c *Checker) CheckSource(ctx context.Context, name string, source []byte) (Result, error) {
	if c.opts.skipFile(name) {
		return skipped(name), nil
	}
	return c.check(ctx, name, source)
}

func (c *Checker) check(ctx context.Context, name string, source []byte) (Result, error) {
	if err := c.ready(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	p := newParser(c.lang)
	defer p.close()

	tree, err := p.parse(ctx, source)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	defer tree.Close()

	collector := NewCollector()
	eng := &engine{opts: c.opts, collector: collector}
	for _, decl := range extractDeclarations(tree, source) {
		eng.evaluate(decl)
	}

	return Result{
		File:        name,
		Diagnostics: collector.Drain(),
	}, nil
}

// Outline returns the declaration records of a file in traversal order.
// Skip prefixes do not apply.
func (c *Checker) Outline(ctx context.Context, path string) ([]Declaration, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	job, err := resolveFile(path)
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(job.AbsPath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	p := newParser(c.lang)
	defer p.close()

	tree, err := p.parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.DisplayPath, err)
	}
	defer tree.Close()

	return extractDeclarations(tree, source), nil
}

// ready fails when the checker was built without a parser grammar.
func (c *Checker) ready() error {
	if c.lang == nil {
		return fmt.Errorf("%w: python (registered: %s)", ErrLanguageNotRegistered, strings.Join(List(), ", "))
	}
	return nil
}

func skipped(name string) Result {
	return Result{File: name, Skipped: true, Diagnostics: []Diagnostic{}}
}

// resolveFile returns a single file as a FileJob.
func resolveFile(path string) (FileJob, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return FileJob{}, fmt.Errorf("resolve path: %w", err)
	}

	return FileJob{
		AbsPath:     absPath,
		DisplayPath: filepath.ToSlash(filepath.Clean(path)),
	}, nil
}

// Supported reports whether path has the extension of a registered language.
func Supported(path string) bool {
	return ByExtension(filepath.Ext(path)) != nil
}
