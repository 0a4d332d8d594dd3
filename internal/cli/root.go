package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/absolutejs/create-absolutejs/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "create-absolutejs",
	Short: "Scaffold AbsoluteJS projects",
	Long: `create-absolutejs generates AbsoluteJS projects: one or more frontends,
a Bun backend, an optional database with its local container, and the
package manager, git and formatter setup around them.

Every combination of options is checked against the compatibility rules
before anything is written to disk.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initFromFlags,
}

// @MX:ANCHOR: [AUTO] Execute is the entry point of the create-absolutejs CLI
// @MX:REASON: [AUTO] called from cmd/create-absolutejs/main.go; its error decides the exit code
// Execute runs the root command with ctx and prints a failure to stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("config", "", "Settings file merged over the user settings")
	pf.Bool("no-color", false, "Disable colored output")
	pf.Bool("headless", false, "Never prompt or animate, print plain progress lines")
}

// initFromFlags builds the dependencies once per process. Tests install
// their own with SetDeps before executing a command.
func initFromFlags(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	return InitDependencies(DepsOptions{
		ConfigPath: getStringFlag(cmd, "config"),
		Verbose:    getBoolFlag(cmd, "verbose"),
		NoColor:    getBoolFlag(cmd, "no-color"),
		Headless:   getBoolFlag(cmd, "headless"),
		Stderr:     cmd.ErrOrStderr(),
	})
}

func printError(cmd *cobra.Command, err error) {
	label := "error:"
	if deps != nil {
		label = deps.Theme.Error().Render(label)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", label, err)
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
