// Package matrix generates and validates the compatibility matrix: the
// canonical list of supported configurations, persisted as a JSON artifact.
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix operations.
var (
	// ErrEmptyMatrix indicates a matrix without any configuration.
	ErrEmptyMatrix = errors.New("matrix: no configurations")

	// ErrExcludedFeature indicates an unimplemented feature found by the spot checks.
	ErrExcludedFeature = errors.New("matrix: excluded feature present")

	// ErrSchema indicates the artifact does not match the JSON schema.
	ErrSchema = errors.New("matrix: artifact does not match schema")
)

// EntryError identifies the matrix entry and field that failed validation.
type EntryError struct {
	Index int
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("matrix entry %d: field %s (value %q): %v", e.Index, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}
