// Package config holds the settings of the scaffolding tool itself: which
// container runtime to call, process timeouts, removal retries and the
// default package manager. Settings are merged from compiled defaults, the
// user file, an explicit file and the environment, then resolved once and
// passed down; no other package reads the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigNotFound indicates an explicitly requested settings file does not exist.
	ErrConfigNotFound = errors.New("config: settings file not found")

	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in a settings file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidRuntime indicates an unsupported container runtime.
	ErrInvalidRuntime = errors.New("config: invalid container runtime, must be one of: docker, podman")
)

// ValidationError is one invalid setting, addressed by its YAML path
// (e.g. "removal.max_attempts").
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("setting %s: %s (got %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("setting %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors collects every invalid setting found by Validate.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "settings: valid"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d invalid setting(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is matches ErrInvalidConfig and the sentinel of any contained error.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
