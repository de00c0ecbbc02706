package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var addYes bool

var addCmd = &cobra.Command{
	Use:   "add <pkg>...",
	Short: "Install binary packages from the repositories",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Assume yes to xbps-install prompts")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Repo,
		Action:      guard.ActionAdd,
		Targets:     args,
		Yes:         addYes,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	return vxApp.XBPS().Install(cmd.Context(), addYes, args)
}
