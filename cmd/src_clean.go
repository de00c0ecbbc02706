package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var srcCleanYes bool

var srcCleanCmd = &cobra.Command{
	Use:   "clean <pkg>...",
	Short: "Remove build state with ./xbps-src clean",
	RunE:  runSrcClean,
}

func init() {
	srcCleanCmd.Flags().BoolVarP(&srcCleanYes, "yes", "y", false, "Skip the confirmation requirement")
	srcCmd.AddCommand(srcCleanCmd)
}

func runSrcClean(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Source,
		Action:      guard.ActionSrcClean,
		Targets:     args,
		Yes:         srcCleanYes,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	return vxApp.Source().Clean(cmd.Context(), args)
}
