package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/guard"
)

var (
	srcUpAll   bool
	srcUpYes   bool
	srcUpForce bool
	srcUpDry   bool
)

var srcUpCmd = &cobra.Command{
	Use:   "up [<pkg>...]",
	Short: "Rebuild source packages whose template moved ahead",
	Long: `Compares each package's template pkgver against the installed pkgver
and rebuilds the ones that differ. With --all the managed list supplies
the package set and the checkout is synced from upstream first.`,
	RunE: runSrcUp,
}

func init() {
	srcUpCmd.Flags().BoolVar(&srcUpAll, "all", false, "Update every managed package")
	srcUpCmd.Flags().BoolVarP(&srcUpYes, "yes", "y", false, "Assume yes to prompts")
	srcUpCmd.Flags().BoolVarP(&srcUpForce, "force", "f", false, "Rebuild even when the template is unchanged")
	srcUpCmd.Flags().BoolVarP(&srcUpDry, "dry-run", "n", false, "Print the rebuild plan without building")
	srcCmd.AddCommand(srcUpCmd)
}

func runSrcUp(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	managed, err := managedCount()
	if err != nil {
		return err
	}

	if err := guardCheck(guard.Request{
		Workflow:     guard.Source,
		Action:       guard.ActionSrcUpdate,
		Targets:      args,
		Yes:          srcUpYes,
		Force:        srcUpForce,
		All:          srcUpAll,
		DryRun:       srcUpDry,
		Interactive:  interactive(),
		ManagedCount: managed,
	}); err != nil {
		return err
	}

	ctx := cmd.Context()
	src := vxApp.Source()

	names := args
	if srcUpAll {
		var err error
		names, err = vxApp.Store.All()
		if err != nil {
			return err
		}
	}

	if srcUpAll && !srcUpDry {
		if err := src.Sync(ctx, vxApp.Stamps()); err != nil {
			return err
		}
	}

	plan, err := src.PlanUpdates(ctx, srcUpForce, names)
	if err != nil {
		return err
	}
	printPlan("source rebuilds", plan)

	if srcUpDry || len(plan) == 0 {
		return nil
	}
	if !srcUpYes && interactive() && !confirm(fmt.Sprintf("rebuild %d package(s)?", len(plan))) {
		logInfo("aborted.")
		return nil
	}

	var failed []string
	for _, u := range plan {
		if err := src.Rebuild(ctx, true, u.Name); err != nil {
			if errors.GetExitCode(err) == errors.ExitConfig {
				return err
			}
			logWarning("rebuild of %s failed: %v", u.Name, err)
			failed = append(failed, u.Name)
		}
	}

	if len(failed) > 0 {
		return errors.New(errors.ExitGeneralError,
			fmt.Sprintf("rebuild failed for: %s", strings.Join(failed, ", ")))
	}
	logSuccess("rebuilt %d package(s).", len(plan))
	return nil
}
