package docstyle

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Language defines the interface for a supported programming language.
type Language interface {
	// Name returns the language identifier (e.g., "python").
	Name() string

	// Extensions returns file extensions for this language (e.g., [".py"]).
	Extensions() []string

	// TreeSitterLang returns the tree-sitter language grammar.
	TreeSitterLang() *sitter.Language
}

// registry holds all registered languages.
var registry = make(map[string]Language)

// Register adds a language to the registry.
func Register(lang Language) {
	registry[lang.Name()] = lang
}

// Get returns a language by name, or nil if not found.
func Get(name string) Language {
	return registry[name]
}

// List returns all registered language names in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByExtension finds a language by file extension.
func ByExtension(ext string) Language {
	for _, lang := range registry {
		for _, e := range lang.Extensions() {
			if e == ext {
				return lang
			}
		}
	}
	return nil
}

// Python implements the Language interface for Python source code.
type Python struct{}

func init() {
	Register(Python{})
}

func (Python) Name() string {
	return "python"
}

func (Python) Extensions() []string {
	return []string{".py", ".pyi"}
}

func (Python) TreeSitterLang() *sitter.Language {
	return python.GetLanguage()
}
