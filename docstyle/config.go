package docstyle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration file cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

const (
	// YAMLConfigName is the project configuration file looked up in a directory.
	YAMLConfigName = ".docstyle.yaml"
	// PyprojectName holds the [tool.docstyle] table.
	PyprojectName = "pyproject.toml"
)

type pyproject struct {
	Tool struct {
		Docstyle *Options `toml:"docstyle"`
	} `toml:"tool"`
}

// LoadConfig resolves options for a project directory. Sources are applied
// in order: defaults, pyproject.toml [tool.docstyle], .docstyle.yaml, then
// the explicit file when path is not empty. Missing project files are not
// an error; a missing explicit file is.
func LoadConfig(dir, path string) (Options, error) {
	opts := DefaultOptions()

	if fromPyproject, ok, err := readPyproject(filepath.Join(dir, PyprojectName)); err != nil {
		return Options{}, err
	} else if ok {
		opts = opts.merge(fromPyproject)
	}

	if fromYAML, ok, err := readYAML(filepath.Join(dir, YAMLConfigName)); err != nil {
		return Options{}, err
	} else if ok {
		opts = opts.merge(fromYAML)
	}

	if path != "" {
		explicit, err := readConfigFile(path)
		if err != nil {
			return Options{}, err
		}
		opts = opts.merge(explicit)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func readConfigFile(path string) (Options, error) {
	var (
		opts Options
		ok   bool
		err  error
	)
	switch {
	case filepath.Base(path) == PyprojectName:
		opts, ok, err = readPyproject(path)
	case strings.HasSuffix(path, ".toml"):
		opts, ok, err = readTOML(path)
	default:
		opts, ok, err = readYAML(path)
	}
	if err != nil {
		return Options{}, err
	}
	if !ok {
		return Options{}, fmt.Errorf("%w: %s not found", ErrInvalidConfig, path)
	}
	return opts, nil
}

func readYAML(path string) (Options, bool, error) {
	data, ok, err := readOptional(path)
	if !ok || err != nil {
		return Options{}, ok, err
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, false, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	return opts, true, nil
}

func readTOML(path string) (Options, bool, error) {
	data, ok, err := readOptional(path)
	if !ok || err != nil {
		return Options{}, ok, err
	}

	var opts Options
	if _, err := toml.Decode(string(data), &opts); err != nil {
		return Options{}, false, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	return opts, true, nil
}

func readPyproject(path string) (Options, bool, error) {
	data, ok, err := readOptional(path)
	if !ok || err != nil {
		return Options{}, ok, err
	}

	var doc pyproject
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Options{}, false, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if doc.Tool.Docstyle == nil {
		return Options{}, false, nil
	}
	return *doc.Tool.Docstyle, true, nil
}

func readOptional(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read config: %w", err)
	}
	return data, true, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rulecode", func(fl validator.FieldLevel) bool {
		return isRuleCodePrefix(fl.Field().String())
	})
	return v
}

// isRuleCodePrefix reports whether s is a prefix of at least one rule code.
func isRuleCodePrefix(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range Rules() {
		if strings.HasPrefix(r.Code, s) {
			return true
		}
	}
	return false
}

// Validate checks the option values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
