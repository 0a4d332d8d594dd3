package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/absolutejs/create-absolutejs/internal/defs"
	"github.com/absolutejs/create-absolutejs/internal/matrix"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Generate or validate the compatibility matrix",
	Long: `The compatibility matrix lists every supported option combination.
It is generated from the same rules create uses and can be validated
independently, for example in CI.`,
}

var matrixGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write every valid configuration as a JSON array",
	Args:  cobra.NoArgs,
	RunE:  runMatrixGenerate,
}

var matrixValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a generated matrix against the schema and the rules",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMatrixValidate,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.AddCommand(matrixGenerateCmd, matrixValidateCmd)

	matrixGenerateCmd.Flags().StringP("out", "o", defs.MatrixJSON, "Output file")
}

func runMatrixGenerate(cmd *cobra.Command, _ []string) error {
	out := getStringFlag(cmd, "out")
	configs := matrix.Generate()
	if err := matrix.WriteArtifact(out, configs); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d configurations written to %s\n",
		deps.Theme.Success().Render("ok"), len(configs), out)
	return nil
}

func runMatrixValidate(cmd *cobra.Command, args []string) error {
	path := defs.MatrixJSON
	if len(args) > 0 {
		path = args[0]
	}
	n, err := matrix.ValidateArtifact(path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d configurations in %s are valid\n",
		deps.Theme.Success().Render("ok"), n, path)
	return nil
}
