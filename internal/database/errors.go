package database

import "errors"

var (
	// ErrUnsupportedEngine is returned when an engine has no provisioning recipe
	// for the requested combination.
	ErrUnsupportedEngine = errors.New("database: unsupported engine")

	// ErrPreflight is returned when the container runtime is required but unreachable.
	ErrPreflight = errors.New("database: container preflight failed")
)
