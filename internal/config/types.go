package config

import "time"

// Settings is the complete tool configuration.
type Settings struct {
	Container ContainerSettings `yaml:"container"`
	Process   ProcessSettings   `yaml:"process"`
	Removal   RemovalSettings   `yaml:"removal"`

	// PackageManager is the raw default package manager key. An empty
	// value lets Resolve detect it from the invoking package manager.
	PackageManager string `yaml:"package_manager,omitempty"`

	// TemplateDir replaces the embedded templates with a directory on disk.
	TemplateDir string `yaml:"template_dir,omitempty"`
}

// ContainerSettings configures the container runtime used for local databases.
type ContainerSettings struct {
	// Runtime is docker or podman.
	Runtime string `yaml:"runtime"`

	// Binary is the executable path. Empty means Resolve looks it up.
	Binary string `yaml:"binary,omitempty"`

	// ComposeTimeout bounds compose up/down calls.
	ComposeTimeout time.Duration `yaml:"compose_timeout"`

	// PreflightTimeout bounds the "<runtime> info" reachability check.
	PreflightTimeout time.Duration `yaml:"preflight_timeout"`

	// SkipPreflight disables the reachability check.
	SkipPreflight bool `yaml:"skip_preflight"`
}

// ProcessSettings configures external command execution.
type ProcessSettings struct {
	// DefaultTimeout bounds short commands such as git.
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// InstallTimeout bounds dependency installation.
	InstallTimeout time.Duration `yaml:"install_timeout"`

	// KillGrace is the delay between the termination signal and the forced kill.
	KillGrace time.Duration `yaml:"kill_grace"`
}

// RemovalSettings configures directory removal during re-scaffolding.
type RemovalSettings struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
}
