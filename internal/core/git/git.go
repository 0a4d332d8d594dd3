// Package git initializes version control in a freshly scaffolded project
// using the system git binary.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absolutejs/create-absolutejs/internal/process"
)

// DefaultBranch is the branch created by Init.
const DefaultBranch = "main"

// InitialCommitMessage is the message of the first commit.
const InitialCommitMessage = "Initial commit"

// Initializer creates a repository and the initial commit.
type Initializer struct {
	runner  process.Runner
	binary  string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures an Initializer.
type Option func(*Initializer)

// WithBinary overrides the git executable.
func WithBinary(bin string) Option {
	return func(i *Initializer) {
		if bin != "" {
			i.binary = bin
		}
	}
}

// WithTimeout bounds every git invocation.
func WithTimeout(d time.Duration) Option {
	return func(i *Initializer) {
		i.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(i *Initializer) {
		i.logger = l
	}
}

// NewInitializer creates an Initializer that runs git through runner.
func NewInitializer(runner process.Runner, opts ...Option) *Initializer {
	i := &Initializer{
		runner:  runner,
		binary:  "git",
		timeout: time.Minute,
		logger:  slog.Default().With("module", "git"),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Commands returns the git argument lists Init runs, in order.
func (i *Initializer) Commands() [][]string {
	return [][]string{
		{i.binary, "init", "-b", DefaultBranch},
		{i.binary, "add", "-A"},
		{i.binary, "commit", "-m", InitialCommitMessage},
	}
}

// Init runs git init, add and commit in dir. The first failing step aborts
// the sequence and its *process.ExternalToolError is returned.
func (i *Initializer) Init(ctx context.Context, dir string) error {
	for _, argv := range i.Commands() {
		res, err := i.runner.Run(ctx, argv, process.Options{Dir: dir, Timeout: i.timeout})
		if err != nil {
			return fmt.Errorf("git %s: %w", argv[1], err)
		}
		if err := process.Check(argv, res); err != nil {
			return fmt.Errorf("git %s: %w", argv[1], err)
		}
	}
	i.logger.Debug("repository initialized", "dir", dir, "branch", DefaultBranch)
	return nil
}
