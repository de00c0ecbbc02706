package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var srcSearchInstalled bool

var srcSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search srcpkgs templates by name",
	RunE:  runSrcSearch,
}

func init() {
	srcSearchCmd.Flags().BoolVarP(&srcSearchInstalled, "installed", "i", false, "Show installed packages only")
	srcCmd.AddCommand(srcSearchCmd)
}

func runSrcSearch(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Source,
		Action:      guard.ActionSrcSearch,
		Targets:     args,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	results, err := vxApp.Source().Search(cmd.Context(), srcSearchInstalled, args[0])
	if err != nil {
		return err
	}

	if len(results) == 0 {
		logInfo("no templates match '%s'.", args[0])
		return nil
	}
	for _, r := range results {
		mark := "[-]"
		if r.Installed {
			mark = "[*]"
		}
		fmt.Printf("%s %s-%s_%s\n", mark, r.Name, r.Version, r.Revision)
	}
	return nil
}
