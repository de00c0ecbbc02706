package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var providesCmd = &cobra.Command{
	Use:   "provides <path>...",
	Short: "Find which installed package owns a file",
	RunE:  runProvides,
}

func init() {
	rootCmd.AddCommand(providesCmd)
}

func runProvides(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Repo,
		Action:      guard.ActionProvides,
		Targets:     args,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	for _, path := range args {
		if err := vxApp.XBPS().Provides(cmd.Context(), path); err != nil {
			return err
		}
	}
	return nil
}
