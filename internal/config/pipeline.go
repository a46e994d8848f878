package config

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	goyaml "gopkg.in/yaml.v3"

	"loom/internal/spec"
)

const SupportedSchema = "v1"

var (
	ErrMissingModule = errors.New("module must be a non-empty string")
	ErrMissingSteps  = errors.New("steps must be a list of strings")
)

// Error reports a malformed or invalid pipeline document.
type Error struct {
	Path string // source file, empty for in-memory documents
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return "config: " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Parse decodes an in-memory pipeline document, validates
// schema_version, and returns the typed spec.
func Parse(raw []byte) (spec.File, error) {
	var cfg spec.File
	if err := goyaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, &Error{Err: err}
	}
	if err := validate(&cfg); err != nil {
		return cfg, &Error{Err: err}
	}
	return cfg, nil
}

// Load reads a pipeline document from path and merges env-var
// overrides (prefix `LOOM_PIPELINE__`, delimiter `__`) before
// validating. Field shapes are checked on the raw merged document:
// koanf's unmarshal coerces scalars, which would otherwise let an
// integer step or a null steps field slip past validation.
func Load(path string) (spec.File, error) {
	var cfg spec.File
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return cfg, &Error{Path: path, Err: err}
	}
	_ = k.Load(env.Provider("LOOM_PIPELINE__", "__", nil), nil)

	module, err := moduleFromRaw(k.Get("module"))
	if err != nil {
		return cfg, &Error{Path: path, Err: err}
	}
	steps, err := stepsFromRaw(k.Get("steps"))
	if err != nil {
		return cfg, &Error{Path: path, Err: err}
	}

	cfg.SchemaVersion = k.String("schema_version")
	cfg.Module = module
	cfg.Steps = steps
	if err := validate(&cfg); err != nil {
		return cfg, &Error{Path: path, Err: err}
	}
	return cfg, nil
}

func moduleFromRaw(raw any) (string, error) {
	if raw == nil {
		return "", nil // validate reports the missing field
	}
	s, ok := raw.(string)
	if !ok {
		return "", ErrMissingModule
	}
	return s, nil
}

// stepsFromRaw type-checks the steps field before any coercion. A nil
// value covers both an absent field and `steps:` with a null value.
func stepsFromRaw(raw any) ([]string, error) {
	switch list := raw.(type) {
	case nil:
		return nil, ErrMissingSteps
	case []string:
		return list, nil
	case []any:
		steps := make([]string, 0, len(list))
		for _, el := range list {
			s, ok := el.(string)
			if !ok {
				return nil, ErrMissingSteps
			}
			steps = append(steps, s)
		}
		return steps, nil
	default:
		return nil, ErrMissingSteps
	}
}

func validate(cfg *spec.File) error {
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SupportedSchema
	}
	if cfg.SchemaVersion != SupportedSchema {
		return fmt.Errorf("schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	if cfg.Module == "" {
		return ErrMissingModule
	}
	if cfg.Steps == nil {
		return ErrMissingSteps
	}
	return nil
}
