package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/saltnpepper97/vx/internal/cache"
	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/logging"
)

// Sync pulls upstream/master into the void-packages checkout. It refuses
// to touch a dirty tree and requires an `upstream` remote so the user's
// own fork remote is never pulled from by accident.
//
// Syncs are throttled through stamps when non-nil: a checkout synced
// within the TTL is left alone.
func (r *Runner) Sync(ctx context.Context, stamps *cache.Stamps) error {
	dir, err := r.Voidpkgs()
	if err != nil {
		return err
	}

	key := "sync:" + dir
	if stamps != nil && stamps.IsFresh(key, cache.SyncTTL()) {
		logging.Debug("sync stamp fresh, skipping pull", "checkout", dir)
		return nil
	}

	status, err := r.Exec.Execute(ctx, "git", "-C", dir, "status", "--porcelain")
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError,
			fmt.Sprintf("git status failed in %s (is it a git checkout?)", dir), err)
	}
	if strings.TrimSpace(string(status)) != "" {
		return errors.New(errors.ExitGeneralError,
			fmt.Sprintf("void-packages checkout has uncommitted changes, refusing to sync: %s", dir))
	}

	remotes, err := r.Exec.Execute(ctx, "git", "-C", dir, "remote")
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "git remote failed", err)
	}
	if !hasRemote(string(remotes), "upstream") {
		return errors.New(errors.ExitGeneralError,
			"no `upstream` remote in the void-packages checkout.\n"+
				fmt.Sprintf("Add one with: git -C %s remote add upstream https://github.com/void-linux/void-packages.git", dir))
	}

	logging.UserInfo("syncing void-packages from upstream...")
	logging.Exec(dir, "git", "pull", "upstream", "master")

	code, err := r.Exec.ExecuteInteractive(ctx, dir, "git", "pull", "upstream", "master")
	if err != nil {
		return errors.ToolLaunchFailed("git", err)
	}
	if code != 0 {
		return errors.ToolExit("git", code)
	}

	if stamps != nil {
		stamps.Mark(key)
	}
	return nil
}

func hasRemote(output, name string) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == name {
			return true
		}
	}
	return false
}
