// Package compat encodes which combinations of scaffold options are legal.
// All functions are pure and safe for concurrent use.
package compat

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for compatibility checks. All of them match
// ErrInvalidConfiguration through errors.Is.
var (
	// ErrInvalidConfiguration is the umbrella error for every rejected configuration.
	ErrInvalidConfiguration = errors.New("compat: invalid configuration")

	// ErrUnknownValue indicates an axis value outside its domain.
	ErrUnknownValue = errors.New("compat: value outside option domain")

	// ErrUnimplemented indicates an axis value that exists but cannot be generated yet.
	ErrUnimplemented = errors.New("compat: feature not implemented")

	// ErrIncompatible indicates two axis values that cannot be combined.
	ErrIncompatible = errors.New("compat: incompatible options")
)

// Rule names reported by RuleViolation.
const (
	RuleDomain     = "domain"
	RuleORMEngine  = "orm-engine"
	RuleNoEngine   = "no-engine"
	RuleHostEngine = "host-engine"
	RuleProject    = "project"
)

// RuleViolation describes the first rule a configuration failed.
type RuleViolation struct {
	Rule    string
	Fields  []string
	Message string
	Wrapped error
}

// Error implements the error interface.
func (v *RuleViolation) Error() string {
	return fmt.Sprintf("%s rule violated [%s]: %s", v.Rule, strings.Join(v.Fields, ", "), v.Message)
}

// Unwrap returns the underlying sentinel error.
func (v *RuleViolation) Unwrap() error {
	return v.Wrapped
}

// Is makes every violation match ErrInvalidConfiguration.
func (v *RuleViolation) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
