package docstyle

import (
	"path/filepath"
	"strings"
)

// Options configures a Checker.
type Options struct {
	// Select limits reporting to these codes or code prefixes.
	// If empty, every rule is reported.
	Select []string `yaml:"select" toml:"select" validate:"dive,rulecode"`

	// Ignore drops these codes or code prefixes from the report.
	Ignore []string `yaml:"ignore" toml:"ignore" validate:"dive,rulecode"`

	// SkipPrefixes lists file base-name prefixes that are never analyzed.
	// Defaults to "test_".
	SkipPrefixes []string `yaml:"skip_prefixes" toml:"skip_prefixes" validate:"dive,required"`

	// PrivatePrefix marks private declarations, which are skipped when they
	// have no docstring. Defaults to "_".
	PrivatePrefix string `yaml:"private_prefix" toml:"private_prefix"`

	// Format selects the CLI output format: "text" or "json".
	Format string `yaml:"format" toml:"format" validate:"omitempty,oneof=text json"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SkipPrefixes:  []string{"test_"},
		PrivatePrefix: "_",
		Format:        "text",
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SkipPrefixes == nil {
		o.SkipPrefixes = def.SkipPrefixes
	}
	if o.PrivatePrefix == "" {
		o.PrivatePrefix = def.PrivatePrefix
	}
	if o.Format == "" {
		o.Format = def.Format
	}
	return o
}

// merge overrides o with every field set in other.
func (o Options) merge(other Options) Options {
	if other.Select != nil {
		o.Select = other.Select
	}
	if other.Ignore != nil {
		o.Ignore = other.Ignore
	}
	if other.SkipPrefixes != nil {
		o.SkipPrefixes = other.SkipPrefixes
	}
	if other.PrivatePrefix != "" {
		o.PrivatePrefix = other.PrivatePrefix
	}
	if other.Format != "" {
		o.Format = other.Format
	}
	return o
}

// enabled reports whether diagnostics with the given code are reported.
func (o Options) enabled(code string) bool {
	if len(o.Select) > 0 && !matchesAny(code, o.Select) {
		return false
	}
	return !matchesAny(code, o.Ignore)
}

// skipFile reports whether a file is excluded by its base name.
func (o Options) skipFile(path string) bool {
	base := filepath.Base(path)
	for _, prefix := range o.SkipPrefixes {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}
	return false
}

func matchesAny(code string, patterns []string) bool {
	for _, p := range patterns {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}
