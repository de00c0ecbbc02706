package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/app"
	"github.com/saltnpepper97/vx/internal/config"
	"github.com/saltnpepper97/vx/internal/logging"
)

var (
	verbose      bool
	quiet        bool
	jsonOutput   bool
	voidpkgsFlag string
	nonfreeFlag  bool
)

// vxApp holds the per-invocation dependencies, built once in the root
// PersistentPreRun. Tests replace it directly.
var vxApp *app.App

var rootCmd = &cobra.Command{
	Use:   "vx",
	Short: "Unified front door for Void Linux packages",
	Long: `vx unifies the two Void Linux package workflows behind one CLI:

  Repo workflow    - binary packages via xbps-query/xbps-install/xbps-remove
  Source workflow  - a local void-packages checkout via ./xbps-src

vx never inspects packages itself. It validates your intent, builds the
right argument vector, runs the real tool, and forwards its output and
exit status verbatim.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, quiet, jsonOutput, os.Stderr)

		overrides := config.Overrides{Voidpkgs: voidpkgsFlag}
		if cmd.Flags().Changed("nonfree") {
			overrides.Nonfree = &nonfreeFlag
		}
		vxApp = app.Init(overrides)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&voidpkgsFlag, "voidpkgs", "", "Path to the void-packages checkout")
	rootCmd.PersistentFlags().BoolVar(&nonfreeFlag, "nonfree", true, "Use the nonfree local repo when present")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
