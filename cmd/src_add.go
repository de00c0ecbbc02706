package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/guard"
)

var (
	srcAddYes     bool
	srcAddForce   bool
	srcAddRebuild bool
)

var srcAddCmd = &cobra.Command{
	Use:   "add <pkg>...",
	Short: "Install packages from the local repo and manage them",
	Long: `Installs packages from the void-packages local binary repo and adds
them to the managed list, so ` + "`vx up --all`" + ` rebuilds them on updates.

With --rebuild each package goes through the full clean/build/install
pipeline first. With --force an installed package is reinstalled as-is.
The two flags contradict each other and cannot be combined.`,
	RunE: runSrcAdd,
}

func init() {
	srcAddCmd.Flags().BoolVarP(&srcAddYes, "yes", "y", false, "Assume yes to xbps-install prompts")
	srcAddCmd.Flags().BoolVarP(&srcAddForce, "force", "f", false, "Reinstall even when already installed")
	srcAddCmd.Flags().BoolVar(&srcAddRebuild, "rebuild", false, "Clean and build before installing")
	srcCmd.AddCommand(srcAddCmd)
}

func runSrcAdd(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:    guard.Source,
		Action:      guard.ActionSrcAdd,
		Targets:     args,
		Yes:         srcAddYes,
		Force:       srcAddForce,
		Rebuild:     srcAddRebuild,
		Interactive: interactive(),
	}); err != nil {
		return err
	}

	ctx := cmd.Context()
	src := vxApp.Source()

	if !srcAddRebuild {
		if err := src.AddFromLocalRepo(ctx, srcAddYes, srcAddForce, args); err != nil {
			return err
		}
		rememberManaged(args...)
		return nil
	}

	var failed []string
	for _, pkg := range args {
		if err := src.Rebuild(ctx, srcAddYes, pkg); err != nil {
			if errors.GetExitCode(err) == errors.ExitConfig {
				return err
			}
			logWarning("rebuild of %s failed: %v", pkg, err)
			failed = append(failed, pkg)
			continue
		}
		rememberManaged(pkg)
	}

	if len(failed) > 0 {
		return errors.New(errors.ExitGeneralError,
			fmt.Sprintf("rebuild failed for: %s", strings.Join(failed, ", ")))
	}
	return nil
}
