// Package pkgmgr maps the supported JavaScript package managers to the
// commands the scaffolder runs through them.
package pkgmgr

import (
	"fmt"
	"strings"
)

// PackageManager is a closed set of supported package managers.
type PackageManager int

const (
	Bun PackageManager = iota
	NPM
	PNPM
	Yarn
)

// Default is used when the raw input does not name a known manager.
const Default = Bun

// All returns every package manager in declaration order.
func All() []PackageManager {
	return []PackageManager{Bun, NPM, PNPM, Yarn}
}

// String returns the executable name.
func (p PackageManager) String() string {
	switch p {
	case Bun:
		return "bun"
	case NPM:
		return "npm"
	case PNPM:
		return "pnpm"
	case Yarn:
		return "yarn"
	}
	return fmt.Sprintf("PackageManager(%d)", int(p))
}

// Parse reads a raw key from the UI boundary. Unknown or empty input yields
// Default and false; this is the only place a fallback happens.
func Parse(raw string) (PackageManager, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bun":
		return Bun, true
	case "npm":
		return NPM, true
	case "pnpm":
		return PNPM, true
	case "yarn":
		return Yarn, true
	}
	return Default, false
}

// FromUserAgent extracts the manager from an npm_config_user_agent value
// such as "pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64".
func FromUserAgent(ua string) (PackageManager, bool) {
	name, _, _ := strings.Cut(strings.TrimSpace(ua), "/")
	if name == "" {
		return Default, false
	}
	return Parse(name)
}

// InstallArgv returns the command that installs dependencies.
func (p PackageManager) InstallArgv() []string {
	return []string{p.String(), "install"}
}

// RunArgv returns the command that runs a package.json script.
func (p PackageManager) RunArgv(script string, args ...string) []string {
	argv := []string{p.String(), "run", script}
	if len(args) == 0 {
		return argv
	}
	if p == NPM {
		argv = append(argv, "--")
	}
	return append(argv, args...)
}

// FormatArgv returns the command that runs the project's format script.
func (p PackageManager) FormatArgv() []string {
	return p.RunArgv("format")
}
