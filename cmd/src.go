package cmd

import (
	"github.com/spf13/cobra"
)

var srcCmd = &cobra.Command{
	Use:   "src",
	Short: "Source-package workflow against a void-packages checkout",
	Long: `Builds, installs, and updates packages from a local void-packages
checkout via ./xbps-src and the checkout's local binary repo.

The checkout location comes from --voidpkgs, VX_VOIDPKGS, or
void_packages.path in ~/.config/vx/vx.toml, in that order.`,
}

func init() {
	rootCmd.AddCommand(srcCmd)
}
