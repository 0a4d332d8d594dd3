package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/absolutejs/create-absolutejs/internal/pkgmgr"
)

// Environment is the process environment Resolve is allowed to consult.
type Environment struct {
	Getenv   func(string) string
	GOOS     string
	LookPath func(string) (string, error)
}

// Resolved is a validated, fully determined configuration.
type Resolved struct {
	Settings

	// PackageManager is the manager used when a request does not name one.
	PackageManager pkgmgr.PackageManager
}

// Resolve applies environment overrides, picks the default package manager,
// locates the container runtime binary and validates the result. It is the
// only function that reads environment state.
func Resolve(base *Settings, env Environment) (*Resolved, error) {
	s := *base
	applyEnvOverrides(&s, env.Getenv)

	if err := Validate(&s); err != nil {
		return nil, err
	}

	r := &Resolved{Settings: s}

	userAgent := ""
	if env.Getenv != nil {
		userAgent = env.Getenv("npm_config_user_agent")
	}
	if pm, ok := pkgmgr.Parse(s.PackageManager); ok {
		r.PackageManager = pm
	} else if pm, ok := pkgmgr.FromUserAgent(userAgent); ok {
		r.PackageManager = pm
	} else {
		r.PackageManager = pkgmgr.Default
	}
	r.Settings.PackageManager = r.PackageManager.String()

	if r.Container.Binary == "" {
		r.Container.Binary = locateRuntime(s.Container.Runtime, env)
	}
	return r, nil
}

// applyEnvOverrides overlays CREATE_ABSOLUTEJS_* variables.
func applyEnvOverrides(s *Settings, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvPrefix + "CONTAINER_RUNTIME"); v != "" {
		s.Container.Runtime = strings.ToLower(v)
	}
	if v := getenv(EnvPrefix + "CONTAINER_BINARY"); v != "" {
		s.Container.Binary = v
	}
	if v := getenv(EnvPrefix + "SKIP_PREFLIGHT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Container.SkipPreflight = b
		}
	}
	if v := getenv(EnvPrefix + "PACKAGE_MANAGER"); v != "" {
		s.PackageManager = v
	}
	if v := getenv(EnvPrefix + "TEMPLATE_DIR"); v != "" {
		s.TemplateDir = v
	}
}

// locateRuntime finds the runtime on PATH and falls back to the default
// Docker Desktop install location on Windows and macOS.
func locateRuntime(runtime string, env Environment) string {
	if env.LookPath == nil {
		return runtime
	}
	if p, err := env.LookPath(runtime); err == nil {
		return p
	}

	var candidate string
	switch {
	case runtime != "docker":
	case env.GOOS == "windows" && env.Getenv != nil && env.Getenv("ProgramFiles") != "":
		candidate = filepath.Join(env.Getenv("ProgramFiles"), "Docker", "Docker", "resources", "bin", "docker.exe")
	case env.GOOS == "darwin":
		candidate = "/Applications/Docker.app/Contents/Resources/bin/docker"
	}
	if candidate != "" {
		if p, err := env.LookPath(candidate); err == nil {
			return p
		}
	}
	return runtime
}

// String renders the resolved settings for debug logs.
func (r *Resolved) String() string {
	return fmt.Sprintf("runtime=%s binary=%s pm=%s", r.Container.Runtime, r.Container.Binary, r.PackageManager)
}
