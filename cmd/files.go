package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var filesCmd = &cobra.Command{
	Use:   "files <pkg>...",
	Short: "List the files installed by packages",
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Repo,
		Action:      guard.ActionFiles,
		Targets:     args,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	for _, pkg := range args {
		if err := vxApp.XBPS().Files(cmd.Context(), pkg); err != nil {
			return err
		}
	}
	return nil
}
