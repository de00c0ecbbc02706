package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/guard"
)

var (
	upAll   bool
	upYes   bool
	upForce bool
	upDry   bool
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Update the system, optionally rebuilding managed source packages first",
	Long: `Updates the system via xbps-install -Su.

With --all, every package on the managed source list is rebuilt from its
template first, then the system upgrade runs. Rebuilding first means the
local repo offers the fresh builds before the binary upgrade resolves
package versions.`,
	RunE: runUp,
}

func init() {
	upCmd.Flags().BoolVar(&upAll, "all", false, "Rebuild managed source packages before upgrading")
	upCmd.Flags().BoolVarP(&upYes, "yes", "y", false, "Assume yes to prompts")
	upCmd.Flags().BoolVarP(&upForce, "force", "f", false, "Include unchanged packages in the rebuild plan")
	upCmd.Flags().BoolVarP(&upDry, "dry-run", "n", false, "Print the update plan without changing anything")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	managed, err := managedCount()
	if err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:     guard.Repo,
		Action:       guard.ActionUpgrade,
		Yes:          upYes,
		Force:        upForce,
		All:          upAll,
		DryRun:       upDry,
		Interactive:  interactive(),
		ManagedCount: managed,
	}); err != nil {
		return err
	}

	ctx := cmd.Context()

	if !upAll {
		if upDry {
			plan, err := vxApp.XBPS().PlanSystemUpdates(ctx)
			if err != nil {
				return err
			}
			printPlan("system updates", plan)
			return nil
		}
		return vxApp.XBPS().Upgrade(ctx, upYes)
	}

	return runUpAll(ctx)
}

// runUpAll rebuilds the managed source packages and then upgrades the
// system, per-item failures recorded rather than aborting.
func runUpAll(ctx context.Context) error {
	names, err := vxApp.Store.All()
	if err != nil {
		return err
	}

	src := vxApp.Source()
	if !upDry {
		if err := src.Sync(ctx, vxApp.Stamps()); err != nil {
			return err
		}
	}

	srcPlan, err := src.PlanUpdates(ctx, upForce, names)
	if err != nil {
		return err
	}
	sysPlan, err := vxApp.XBPS().PlanSystemUpdates(ctx)
	if err != nil {
		return err
	}

	printPlan("source rebuilds", srcPlan)
	printPlan("system updates", sysPlan)

	if upDry {
		return nil
	}
	if len(srcPlan) == 0 && len(sysPlan) == 0 {
		logInfo("everything up to date.")
		return nil
	}
	if !upYes && interactive() && !confirm("proceed with update?") {
		logInfo("aborted.")
		return nil
	}

	var failed []string
	for _, u := range srcPlan {
		if err := src.Rebuild(ctx, true, u.Name); err != nil {
			if errors.GetExitCode(err) == errors.ExitConfig {
				return err
			}
			logWarning("rebuild of %s failed: %v", u.Name, err)
			failed = append(failed, u.Name)
		}
	}

	if len(failed) > 0 {
		if !vxApp.Settings.ContinueOnError {
			return errors.New(errors.ExitGeneralError,
				fmt.Sprintf("rebuilds failed, skipping system upgrade: %s", strings.Join(failed, ", ")))
		}
		logWarning("continuing to the system upgrade despite failed rebuilds: %s", strings.Join(failed, ", "))
	}

	if err := vxApp.XBPS().Upgrade(ctx, true); err != nil {
		return err
	}

	if len(failed) == 0 {
		logSuccess("system updated.")
	}
	return nil
}
