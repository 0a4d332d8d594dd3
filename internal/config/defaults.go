package config

import "time"

// Default value constants.
const (
	DefaultContainerRuntime = "docker"

	DefaultComposeTimeout   = 3 * time.Minute
	DefaultPreflightTimeout = 15 * time.Second

	DefaultProcessTimeout = 2 * time.Minute
	DefaultInstallTimeout = 10 * time.Minute
	DefaultKillGrace      = 5 * time.Second

	DefaultRemoveAttempts  = 5
	DefaultRemoveBaseDelay = 200 * time.Millisecond

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CREATE_ABSOLUTEJS_"
)

// NewDefaultSettings returns the compiled defaults.
func NewDefaultSettings() *Settings {
	return &Settings{
		Container: ContainerSettings{
			Runtime:          DefaultContainerRuntime,
			ComposeTimeout:   DefaultComposeTimeout,
			PreflightTimeout: DefaultPreflightTimeout,
		},
		Process: ProcessSettings{
			DefaultTimeout: DefaultProcessTimeout,
			InstallTimeout: DefaultInstallTimeout,
			KillGrace:      DefaultKillGrace,
		},
		Removal: RemovalSettings{
			MaxAttempts: DefaultRemoveAttempts,
			BaseDelay:   DefaultRemoveBaseDelay,
		},
	}
}
