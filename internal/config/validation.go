package config

import (
	"fmt"

	"github.com/absolutejs/create-absolutejs/internal/pkgmgr"
)

var validRuntimes = map[string]bool{"docker": true, "podman": true}

// Validate checks the settings for correctness and returns every problem
// found as *ValidationErrors.
func Validate(s *Settings) error {
	var errs []ValidationError

	if !validRuntimes[s.Container.Runtime] {
		errs = append(errs, ValidationError{
			Field:   "container.runtime",
			Message: "must be one of: docker, podman",
			Value:   s.Container.Runtime,
			Wrapped: ErrInvalidRuntime,
		})
	}

	durations := []struct {
		field string
		value fmt.Stringer
		ok    bool
	}{
		{"container.compose_timeout", s.Container.ComposeTimeout, s.Container.ComposeTimeout > 0},
		{"container.preflight_timeout", s.Container.PreflightTimeout, s.Container.PreflightTimeout > 0},
		{"process.default_timeout", s.Process.DefaultTimeout, s.Process.DefaultTimeout > 0},
		{"process.install_timeout", s.Process.InstallTimeout, s.Process.InstallTimeout > 0},
		{"process.kill_grace", s.Process.KillGrace, s.Process.KillGrace > 0},
		{"removal.base_delay", s.Removal.BaseDelay, s.Removal.BaseDelay > 0},
	}
	for _, d := range durations {
		if !d.ok {
			errs = append(errs, ValidationError{
				Field:   d.field,
				Message: "must be a positive duration",
				Value:   d.value.String(),
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	if s.Removal.MaxAttempts < 1 || s.Removal.MaxAttempts > 20 {
		errs = append(errs, ValidationError{
			Field:   "removal.max_attempts",
			Message: "must be between 1 and 20",
			Value:   s.Removal.MaxAttempts,
			Wrapped: ErrInvalidConfig,
		})
	}

	if s.PackageManager != "" {
		if _, ok := pkgmgr.Parse(s.PackageManager); !ok {
			errs = append(errs, ValidationError{
				Field:   "package_manager",
				Message: "must be one of: bun, npm, pnpm, yarn",
				Value:   s.PackageManager,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
