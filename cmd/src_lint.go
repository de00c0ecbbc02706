package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var srcLintCmd = &cobra.Command{
	Use:   "lint <pkg>...",
	Short: "Check templates with ./xbps-src lint",
	RunE:  runSrcLint,
}

func init() {
	srcCmd.AddCommand(srcLintCmd)
}

func runSrcLint(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Source,
		Action:      guard.ActionSrcLint,
		Targets:     args,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	return vxApp.Source().Lint(cmd.Context(), args)
}
