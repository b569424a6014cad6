package cmd

import (
	"fmt"
	"os"

	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/runner"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and analyze a rouge program without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  checkScript,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "check inline source instead of reading from a file")
}

func checkScript(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	result := runner.Check(source)
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
	if len(result.Findings.Warnings) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), diagnostics.RenderAll(result.Findings, source))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	os.Exit(int(result.Code))
	return nil
}
