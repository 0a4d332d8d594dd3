package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/absolutejs/create-absolutejs/internal/cli/wizard"
	"github.com/absolutejs/create-absolutejs/internal/core/scaffold"
	"github.com/absolutejs/create-absolutejs/internal/ui"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Create a new AbsoluteJS project",
	Long: `Create a new AbsoluteJS project in a new directory.

Options come from the defaults, then --preset, then flags. In a terminal
the remaining choices are asked interactively unless --yes is given.

Examples:
  create-absolutejs create my-app
  create-absolutejs create my-app --frontend react --database postgresql --orm drizzle
  create-absolutejs create --preset team.yaml --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	addOptionFlags(createCmd)
	createCmd.Flags().String("dir", ".", "Parent directory of the new project")
	createCmd.Flags().BoolP("yes", "y", false, "Skip the interactive prompts")
}

func runCreate(cmd *cobra.Command, args []string) error {
	d := deps
	opts, err := collectOptions(cmd, args)
	if err != nil {
		return err
	}

	if !getBoolFlag(cmd, "yes") && !d.Headless.IsHeadless() {
		questions := wizard.DefaultQuestions(opts.ProjectName == "")
		if err := wizard.Run(cmd.Context(), questions, &opts, d.Theme); err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), d.Theme.Muted().Render("Cancelled, nothing was written."))
			}
			return err
		}
	}
	if opts.ProjectName == "" {
		return errNameRequired
	}

	parent, err := filepath.Abs(getStringFlag(cmd, "dir"))
	if err != nil {
		return fmt.Errorf("resolve parent directory: %w", err)
	}

	res, err := scaffoldProject(cmd.Context(), d, parent, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), d, res, opts)
	return nil
}

// scaffoldProject runs the orchestrator with a progress reporter on w.
func scaffoldProject(ctx context.Context, d *Dependencies, parent string, opts models.ProjectOptions, w io.Writer) (*scaffold.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	progress := ui.NewProgress(d.Theme, d.Headless, w)
	reporter := ui.NewStageReporter(progress, d.Theme, w)
	res, err := d.NewOrchestrator(reporter).Run(ctx, parent, opts)
	reporter.Close()
	return res, err
}

// printSummary writes the success card and the next steps.
func printSummary(w io.Writer, d *Dependencies, res *scaffold.Result, opts models.ProjectOptions) {
	fields := []ui.Field{
		{Label: "Path", Value: res.ProjectPath},
		{Label: "Frontends", Value: describeFrontends(res)},
		{Label: "Database", Value: describeDatabase(opts)},
		{Label: "Package manager", Value: res.PackageManager.String()},
	}
	if res.Database != nil && res.Database.Started {
		fields = append(fields, ui.Field{Label: "Container", Value: res.Database.ComposeProject})
	}
	_, _ = fmt.Fprintln(w, ui.RenderCard(d.Theme, "Created "+opts.ProjectName, fields))

	styled := !d.Headless.IsHeadless() && !d.Theme.NoColor
	_, _ = fmt.Fprintln(w, renderMarkdown(nextStepsMarkdown(res, opts), styled))
}
