package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/absolutejs/create-absolutejs/internal/config"
	"github.com/absolutejs/create-absolutejs/internal/container"
	"github.com/absolutejs/create-absolutejs/internal/process"
	"github.com/absolutejs/create-absolutejs/internal/template"
	"github.com/absolutejs/create-absolutejs/internal/ui"
)

// fakeRunner records commands and always succeeds.
type fakeRunner struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeRunner) Run(_ context.Context, argv []string, _ process.Options) (process.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, strings.Join(argv, " "))
	return process.Result{}, nil
}

func (f *fakeRunner) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// installTestDeps replaces the global dependencies with headless,
// colorless ones backed by runner, and restores them after the test.
func installTestDeps(t *testing.T, runner *fakeRunner) *Dependencies {
	t.Helper()

	resolved, err := config.Resolve(config.NewDefaultSettings(), config.Environment{
		Getenv: func(string) string { return "" },
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	templates, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatal(err)
	}
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	logger := newLogger(&bytes.Buffer{}, false)

	d := &Dependencies{
		Settings:  resolved,
		Logger:    logger,
		Runner:    runner,
		Runtime:   container.NewRuntime(runner, resolved.Container, container.WithLogger(logger)),
		Templates: templates,
		Theme:     ui.NewTheme(ui.ThemeConfig{NoColor: true}),
		Headless:  hm,
	}

	prev := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(prev) })
	return d
}

// resetFlags restores every changed flag below cmd to its default so that
// executions of the shared command tree do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{"create": false, "dev": false, "matrix": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}

	var sub []string
	for _, cmd := range matrixCmd.Commands() {
		sub = append(sub, cmd.Name())
	}
	if strings.Join(sub, ",") != "generate,validate" {
		t.Errorf("matrix subcommands = %v", sub)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config", "no-color", "headless"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "create-absolutejs") {
		t.Errorf("output = %q", out)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	quiet := newLogger(&bytes.Buffer{}, false)
	if quiet.Handler().Enabled(ctx, -4) {
		t.Error("debug enabled without verbose")
	}
	if !quiet.Handler().Enabled(ctx, 4) {
		t.Error("warnings disabled without verbose")
	}

	var buf bytes.Buffer
	verbose := newLogger(&buf, true)
	verbose.Debug("hello", "stage", "init")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "stage=init") {
		t.Errorf("verbose output = %q", buf.String())
	}
}
