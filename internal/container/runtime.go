// Package container drives the container runtime (docker or podman) used to
// run local databases: reachability preflight, compose up and targeted
// teardown with ordered fallbacks.
package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/absolutejs/create-absolutejs/internal/config"
	"github.com/absolutejs/create-absolutejs/internal/process"
	"github.com/absolutejs/create-absolutejs/internal/resilience"
)

// ErrRuntimeUnavailable indicates the container daemon is not installed or not reachable.
var ErrRuntimeUnavailable = errors.New("container: runtime not reachable")

// DatabaseService is the compose service name of the local database.
const DatabaseService = "db"

// Runtime issues container commands through a process.Runner.
type Runtime struct {
	runner           process.Runner
	binary           string
	composeTimeout   time.Duration
	preflightTimeout time.Duration
	skipPreflight    bool
	logger           *slog.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = l
	}
}

// NewRuntime creates a Runtime from resolved container settings.
func NewRuntime(runner process.Runner, s config.ContainerSettings, opts ...Option) *Runtime {
	binary := s.Binary
	if binary == "" {
		binary = s.Runtime
	}
	r := &Runtime{
		runner:           runner,
		binary:           binary,
		composeTimeout:   s.ComposeTimeout,
		preflightTimeout: s.PreflightTimeout,
		skipPreflight:    s.SkipPreflight,
		logger:           slog.Default().With("module", "container"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Binary returns the runtime executable.
func (r *Runtime) Binary() string {
	return r.binary
}

// Preflight confirms the daemon answers "<runtime> info". It is a no-op
// when preflight is disabled in the settings.
func (r *Runtime) Preflight(ctx context.Context) error {
	if r.skipPreflight {
		r.logger.Debug("container preflight skipped")
		return nil
	}
	argv := []string{r.binary, "info"}
	res, err := r.runner.Run(ctx, argv, process.Options{Timeout: r.preflightTimeout})
	if err != nil {
		return fmt.Errorf("%w: %s is not installed: %v", ErrRuntimeUnavailable, r.binary, err)
	}
	if err := process.Check(argv, res); err != nil {
		return fmt.Errorf("%w: is the daemon running? %w", ErrRuntimeUnavailable, err)
	}
	return nil
}

// ComposeArgv builds a compose invocation scoped to project and file.
func (r *Runtime) ComposeArgv(project, file string, args ...string) []string {
	argv := []string{r.binary, "compose", "-p", project, "-f", file}
	return append(argv, args...)
}

// Up starts the compose file and waits for its health checks.
func (r *Runtime) Up(ctx context.Context, dir, project, file string) error {
	return r.compose(ctx, dir, r.ComposeArgv(project, file, "up", "-d", "--wait"))
}

// Down removes the project's containers, volumes and orphans.
func (r *Runtime) Down(ctx context.Context, dir, project, file string) error {
	return r.compose(ctx, dir, r.ComposeArgv(project, file, "down", "-v", "--remove-orphans"))
}

func (r *Runtime) compose(ctx context.Context, dir string, argv []string) error {
	res, err := r.runner.Run(ctx, argv, process.Options{Dir: dir, Timeout: r.composeTimeout})
	if err != nil {
		return fmt.Errorf("start %s: %w", r.binary, err)
	}
	return process.Check(argv, res)
}

// CleanupStrategies returns the ordered teardown chain for project: a
// compose down scoped to the project, then a forced removal of the
// database container by name.
func (r *Runtime) CleanupStrategies(dir, project, file string) []resilience.Strategy {
	return []resilience.Strategy{
		{
			Name: "compose-down",
			Run: func(ctx context.Context) error {
				return r.Down(ctx, dir, project, file)
			},
		},
		{
			Name: "remove-container",
			Run: func(ctx context.Context) error {
				argv := []string{r.binary, "rm", "--force", "--volumes", ContainerName(project, DatabaseService)}
				res, err := r.runner.Run(ctx, argv, process.Options{Timeout: r.composeTimeout})
				if err != nil {
					return err
				}
				return process.Check(argv, res)
			},
		},
	}
}

// Cleanup tears down whatever a previous scaffold of project started. It
// never fails; the report says which strategy, if any, worked.
func (r *Runtime) Cleanup(ctx context.Context, dir, project, file string) resilience.FallbackReport {
	return resilience.TryStrategies(ctx, r.logger, r.CleanupStrategies(dir, project, file)...)
}

var invalidProjectChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// ProjectName turns a project directory name into a compose project name:
// lowercase letters, digits, dashes and underscores, starting with a
// letter or digit.
func ProjectName(name string) string {
	p := invalidProjectChars.ReplaceAllString(strings.ToLower(name), "-")
	p = strings.TrimLeft(p, "-_")
	if p == "" {
		return "app"
	}
	return p
}

// ContainerName is the name compose gives the first replica of service.
func ContainerName(project, service string) string {
	return project + "-" + service + "-1"
}
