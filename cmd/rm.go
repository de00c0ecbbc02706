package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <pkg>...",
	Short: "Remove installed binary packages",
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Assume yes to xbps-remove prompts")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Repo,
		Action:      guard.ActionRemove,
		Targets:     args,
		Yes:         rmYes,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	return vxApp.XBPS().Remove(cmd.Context(), rmYes, args)
}
