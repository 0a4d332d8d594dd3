package compat

import (
	"fmt"
	"regexp"

	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// projectNamePattern accepts npm-compatible package names without a scope.
var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// CheckProject validates a complete scaffold request before any filesystem
// mutation happens. Explicitly selected unimplemented features are errors
// here, so no later stage has to ask whether a feature is supported.
func CheckProject(opts models.ProjectOptions) error {
	if err := CheckProjectName(opts.ProjectName); err != nil {
		return err
	}
	if len(opts.Frontends) == 0 {
		return &RuleViolation{
			Rule:    RuleProject,
			Fields:  []string{"frontends"},
			Message: "at least one frontend must be selected",
			Wrapped: ErrIncompatible,
		}
	}

	seen := make(map[models.Frontend]bool, len(opts.Frontends))
	for _, f := range opts.Frontends {
		if seen[f] {
			return &RuleViolation{
				Rule:    RuleProject,
				Fields:  []string{"frontends"},
				Message: fmt.Sprintf("frontend %q selected more than once", f),
				Wrapped: ErrIncompatible,
			}
		}
		seen[f] = true
	}

	for _, c := range opts.Configurations() {
		if err := Check(c); err != nil {
			return fmt.Errorf("frontend %s: %w", c.Frontend, err)
		}
	}
	return nil
}

// CheckProjectName validates name as the project directory and package name.
func CheckProjectName(name string) error {
	if projectNamePattern.MatchString(name) {
		return nil
	}
	return &RuleViolation{
		Rule:    RuleProject,
		Fields:  []string{"projectName"},
		Message: fmt.Sprintf("%q is not a valid package name (lowercase letters, digits, '.', '_' and '-')", name),
		Wrapped: ErrUnknownValue,
	}
}
