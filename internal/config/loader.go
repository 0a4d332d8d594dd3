package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/absolutejs/create-absolutejs/internal/defs"
)

// UserSettingsPath returns $XDG_CONFIG_HOME/create-absolutejs/config.yaml.
func UserSettingsPath() string {
	return filepath.Join(xdg.ConfigHome, defs.AppName, defs.SettingsYAML)
}

// Loader reads settings files and merges them over the defaults.
type Loader struct {
	userPath string
	logger   *slog.Logger
}

// NewLoader creates a Loader. An empty userPath disables the user file.
func NewLoader(userPath string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default().With("module", "config")
	}
	return &Loader{userPath: userPath, logger: logger}
}

// Load returns the defaults overlaid with the user file, if present, and
// then with explicitPath, which must exist when set. Non-zero file values
// override lower layers; a file cannot reset a value to its zero value.
func (l *Loader) Load(explicitPath string) (*Settings, error) {
	cfg := NewDefaultSettings()

	if l.userPath != "" {
		user, loaded, err := loadYAMLFile(l.userPath)
		if err != nil {
			// A broken user file should not block scaffolding.
			l.logger.Warn("failed to load user settings, using defaults", "path", l.userPath, "error", err)
		} else if loaded {
			if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("merge user settings: %w", err)
			}
			l.logger.Debug("user settings loaded", "path", l.userPath)
		}
	}

	if explicitPath != "" {
		explicit, loaded, err := loadYAMLFile(explicitPath)
		if err != nil {
			return nil, err
		}
		if !loaded {
			return nil, fmt.Errorf("%s: %w", explicitPath, ErrConfigNotFound)
		}
		if err := mergo.Merge(cfg, explicit, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge settings %s: %w", explicitPath, err)
		}
	}

	return cfg, nil
}

// loadYAMLFile reads a settings file. Returns (settings, true, nil) if the
// file was found and parsed, (nil, false, nil) if it does not exist, or
// (nil, false, error) on failure.
func loadYAMLFile(path string) (*Settings, bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return &s, true, nil
}
