package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var searchInstalled bool

var searchCmd = &cobra.Command{
	Use:   "search <term>...",
	Short: "Search binary repositories for packages",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchInstalled, "installed", "i", false, "Search installed packages only")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Repo,
		Action:      guard.ActionSearch,
		Targets:     args,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	return vxApp.XBPS().Search(cmd.Context(), searchInstalled, args)
}
