package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var infoCmd = &cobra.Command{
	Use:   "info <pkg>...",
	Short: "Show repository details for packages",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Repo,
		Action:      guard.ActionInfo,
		Targets:     args,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	for _, pkg := range args {
		if err := vxApp.XBPS().Info(cmd.Context(), pkg); err != nil {
			return err
		}
	}
	return nil
}
