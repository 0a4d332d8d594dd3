// Package cli provides the Cobra command tree and the composition root of
// create-absolutejs. This file defines the Dependencies struct: the only
// place where concrete collaborators are built and wired together.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/absolutejs/create-absolutejs/internal/config"
	"github.com/absolutejs/create-absolutejs/internal/container"
	"github.com/absolutejs/create-absolutejs/internal/core/git"
	"github.com/absolutejs/create-absolutejs/internal/core/scaffold"
	"github.com/absolutejs/create-absolutejs/internal/database"
	"github.com/absolutejs/create-absolutejs/internal/defs"
	"github.com/absolutejs/create-absolutejs/internal/process"
	"github.com/absolutejs/create-absolutejs/internal/resilience"
	"github.com/absolutejs/create-absolutejs/internal/template"
	"github.com/absolutejs/create-absolutejs/internal/ui"
	"github.com/absolutejs/create-absolutejs/pkg/version"
)

// Dependencies holds the services used by CLI commands.
type Dependencies struct {
	Settings  *config.Resolved
	Logger    *slog.Logger
	Runner    process.Runner
	Runtime   *container.Runtime
	Templates fs.FS
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager
}

// DepsOptions carries the global flags InitDependencies needs.
type DepsOptions struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
	Headless   bool

	// Stderr receives log output. Nil means os.Stderr.
	Stderr io.Writer
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the composition root
// @MX:REASON: [AUTO] settings are loaded and resolved here exactly once; nothing below reads the environment
// InitDependencies loads settings, resolves them against the environment
// and creates every collaborator.
func InitDependencies(o DepsOptions) error {
	w := o.Stderr
	if w == nil {
		w = os.Stderr
	}
	logger := newLogger(w, o.Verbose)
	slog.SetDefault(logger)

	settings, err := config.NewLoader(config.UserSettingsPath(), logger.With("module", "config")).Load(o.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	resolved, err := config.Resolve(settings, config.Environment{
		Getenv:   os.Getenv,
		GOOS:     runtime.GOOS,
		LookPath: exec.LookPath,
	})
	if err != nil {
		return fmt.Errorf("resolve settings: %w", err)
	}
	logger.Debug("settings resolved", "settings", resolved.String())

	templates, err := template.Open(resolved.TemplateDir)
	if err != nil {
		return fmt.Errorf("open templates: %w", err)
	}

	runner := process.NewExecRunner(
		process.WithKillGrace(resolved.Process.KillGrace),
		process.WithLogger(logger.With("module", "process")),
	)

	hm := ui.NewHeadlessManager()
	if o.Headless {
		hm.ForceHeadless(true)
	}

	deps = &Dependencies{
		Settings:  resolved,
		Logger:    logger,
		Runner:    runner,
		Runtime:   container.NewRuntime(runner, resolved.Container, container.WithLogger(logger.With("module", "container"))),
		Templates: templates,
		Theme:     ui.NewTheme(ui.ThemeConfig{NoColor: o.NoColor}),
		Headless:  hm,
	}
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogger builds a slog logger on a charmbracelet/log handler. Only
// warnings and errors are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          defs.AppName,
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}

// NewOrchestrator wires a scaffold orchestrator reporting to reporter.
func (d *Dependencies) NewOrchestrator(reporter scaffold.Reporter) *scaffold.Orchestrator {
	provisioner := database.NewProvisioner(
		template.NewRenderer(d.Templates),
		database.WithRuntime(d.Runtime),
		database.WithLogger(d.Logger.With("module", "database")),
	)
	initializer := git.NewInitializer(d.Runner,
		git.WithTimeout(d.Settings.Process.DefaultTimeout),
		git.WithLogger(d.Logger.With("module", "git")),
	)
	return scaffold.New(d.Templates,
		scaffold.WithRunner(d.Runner),
		scaffold.WithProvisioner(provisioner),
		scaffold.WithGit(initializer),
		scaffold.WithReporter(reporter),
		scaffold.WithLogger(d.Logger.With("module", "scaffold")),
		scaffold.WithVersion(version.GetVersion()),
		scaffold.WithContainerBinary(d.Runtime.Binary()),
		scaffold.WithPackageManager(d.Settings.PackageManager),
		scaffold.WithTimeouts(d.Settings.Process.InstallTimeout, d.Settings.Process.DefaultTimeout),
	)
}

// removeOptions returns the directory removal settings.
func (d *Dependencies) removeOptions() resilience.RemoveOptions {
	return resilience.RemoveOptions{
		MaxAttempts: d.Settings.Removal.MaxAttempts,
		BaseDelay:   d.Settings.Removal.BaseDelay,
		Logger:      d.Logger.With("module", "resilience"),
	}
}
