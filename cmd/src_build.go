package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/guard"
)

var srcBuildCmd = &cobra.Command{
	Use:   "build <pkg>...",
	Short: "Build packages with ./xbps-src pkg",
	RunE:  runSrcBuild,
}

func init() {
	srcCmd.AddCommand(srcBuildCmd)
}

func runSrcBuild(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Source,
		Action:      guard.ActionSrcBuild,
		Targets:     args,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	return vxApp.Source().Build(cmd.Context(), args)
}
