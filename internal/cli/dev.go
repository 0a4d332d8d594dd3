package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/absolutejs/create-absolutejs/internal/container"
	"github.com/absolutejs/create-absolutejs/internal/core/scaffold"
	"github.com/absolutejs/create-absolutejs/internal/database"
	"github.com/absolutejs/create-absolutejs/internal/defs"
	"github.com/absolutejs/create-absolutejs/internal/resilience"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

var devCmd = &cobra.Command{
	Use:   "dev [project-name]",
	Short: "Regenerate a project from scratch while working on templates",
	Long: `dev deletes a previously generated project and scaffolds it again
without prompting. A database container started by the previous run is
torn down first.

With --watch the project is regenerated every time the preset changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDev,
}

func init() {
	rootCmd.AddCommand(devCmd)

	addOptionFlags(devCmd)
	devCmd.Flags().String("dir", ".", "Parent directory of the project")
	devCmd.Flags().Bool("watch", false, "Regenerate whenever the preset file changes")
	devCmd.Flags().Duration("debounce", 300*time.Millisecond, "Quiet period before a watched change triggers a run")
}

func runDev(cmd *cobra.Command, args []string) error {
	d := deps
	parent, err := filepath.Abs(getStringFlag(cmd, "dir"))
	if err != nil {
		return fmt.Errorf("resolve parent directory: %w", err)
	}

	once := func(ctx context.Context) error {
		opts, err := collectOptions(cmd, args)
		if err != nil {
			return err
		}
		if opts.ProjectName == "" {
			return errNameRequired
		}
		res, err := rescaffold(ctx, d, parent, opts, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s regenerated, %d files\n",
			d.Theme.Success().Render("ok"), res.ProjectPath, len(res.Files))
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if !getBoolFlag(cmd, "watch") {
		return once(ctx)
	}

	preset := getStringFlag(cmd, "preset")
	if preset == "" {
		return errors.New("--watch needs --preset")
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")
	return watchFile(ctx, preset, debounce, d.Logger, func(ctx context.Context) {
		if err := once(ctx); err != nil {
			printError(cmd, err)
		}
	})
}

// errOutsideParent is returned when a project name does not resolve to a
// directory strictly inside the parent directory.
var errOutsideParent = errors.New("project directory must be a subdirectory of --dir")

// rescaffold tears down what a previous run of opts left in parent and
// scaffolds again. opts are validated before anything is torn down, so a
// rejected request leaves the previous project untouched. Container
// cleanup is best effort; a directory that stays locked after every retry
// aborts the run.
func rescaffold(ctx context.Context, d *Dependencies, parent string, opts models.ProjectOptions, w io.Writer) (*scaffold.Result, error) {
	if err := scaffold.Validate(opts); err != nil {
		return nil, &scaffold.StageError{Stage: scaffold.StageInit, Err: err}
	}
	projectDir, err := childDir(parent, opts.ProjectName)
	if err != nil {
		return nil, &scaffold.StageError{Stage: scaffold.StageInit, Err: err}
	}

	if _, err := os.Stat(projectDir); err == nil {
		if database.NewPlan(opts).Container {
			compose := filepath.Join(defs.DBDir, defs.ComposeFile)
			report := d.Runtime.Cleanup(ctx, projectDir, container.ProjectName(opts.ProjectName), compose)
			d.Logger.Debug("previous database cleaned up", "ok", report.OK(), "strategy", report.Succeeded)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("inspect %s: %w", projectDir, err)
	}

	if err := resilience.RemoveDirectory(ctx, projectDir, d.removeOptions()); err != nil {
		return nil, err
	}
	return scaffoldProject(ctx, d, parent, opts, w)
}

// childDir joins name to parent and checks that the result is a direct
// child of parent.
func childDir(parent, name string) (string, error) {
	parent = filepath.Clean(parent)
	dir := filepath.Join(parent, name)
	if dir == parent || filepath.Dir(dir) != parent {
		return "", fmt.Errorf("%w: %q", errOutsideParent, name)
	}
	return dir, nil
}
