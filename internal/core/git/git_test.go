package git

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/absolutejs/create-absolutejs/internal/process"
)

// recordingRunner records every argv and fails the call whose subcommand
// matches failOn.
type recordingRunner struct {
	calls  [][]string
	dirs   []string
	failOn string
}

func (r *recordingRunner) Run(_ context.Context, argv []string, opts process.Options) (process.Result, error) {
	r.calls = append(r.calls, argv)
	r.dirs = append(r.dirs, opts.Dir)
	if len(argv) > 1 && argv[1] == r.failOn {
		return process.Result{ExitCode: 1, Stderr: "boom"}, nil
	}
	return process.Result{}, nil
}

func TestInit_RunsSequence(t *testing.T) {
	t.Parallel()

	r := &recordingRunner{}
	if err := NewInitializer(r).Init(context.Background(), "/tmp/app"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	want := [][]string{
		{"git", "init", "-b", "main"},
		{"git", "add", "-A"},
		{"git", "commit", "-m", "Initial commit"},
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("git calls mismatch (-want +got):\n%s", diff)
	}
	for _, d := range r.dirs {
		if d != "/tmp/app" {
			t.Errorf("ran in %q, want /tmp/app", d)
		}
	}
}

func TestInit_AbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	r := &recordingRunner{failOn: "add"}
	err := NewInitializer(r).Init(context.Background(), "/tmp/app")

	var toolErr *process.ExternalToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("Init() error = %v, want *process.ExternalToolError", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q lacks captured stderr", err)
	}
	if len(r.calls) != 2 {
		t.Errorf("ran %d commands, want 2 (commit must not run)", len(r.calls))
	}
}

func TestInit_StartFailure(t *testing.T) {
	t.Parallel()

	startErr := errors.New("executable file not found")
	runner := process.RunnerFunc(func(context.Context, []string, process.Options) (process.Result, error) {
		return process.Result{}, startErr
	})

	if err := NewInitializer(runner, WithBinary("/opt/git")).Init(context.Background(), "."); !errors.Is(err, startErr) {
		t.Errorf("Init() error = %v, want %v", err, startErr)
	}
}
