package cmd

import (
	"fmt"
	"os"

	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/runner"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a rouge program",
	Long: `Execute a rouge program from a file or inline source.

Examples:
  rougec run script.rg
  rougec run -e 'print("hello")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from a file")
}

func runScript(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	result := runner.Run(source, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if len(result.ParseErrors) > 0 {
		for _, e := range result.ParseErrors {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		os.Exit(int(result.Code))
	}
	if result.Findings.IsErroneous() {
		fmt.Fprint(cmd.ErrOrStderr(), diagnostics.RenderAll(result.Findings, source))
		os.Exit(int(result.Code))
	}
	os.Exit(int(result.Code))
	return nil
}

func readSource(args []string) (source string, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", args[0], fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}
