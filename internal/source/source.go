// Package source drives the source-package workflow against a local
// void-packages checkout: building via ./xbps-src, installing from the
// checkout's local binary repo, and planning template-vs-installed
// updates.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/saltnpepper97/vx/internal/config"
	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/logging"
	"github.com/saltnpepper97/vx/internal/system"
	"github.com/saltnpepper97/vx/internal/xbps"
)

// InstallState answers installed-package queries. *xbps.Client is the
// production implementation.
type InstallState interface {
	IsInstalled(ctx context.Context, pkg string) (bool, error)
	InstalledVersion(ctx context.Context, pkg string) (string, bool, error)
}

// Runner executes source-workflow operations inside a resolved
// void-packages checkout.
type Runner struct {
	Settings *config.Settings
	Exec     system.CommandExecutor
	FS       system.FileSystem
	State    InstallState
}

// NewRunner creates a source-workflow runner.
func NewRunner(settings *config.Settings, exec system.CommandExecutor, fs system.FileSystem, state InstallState) *Runner {
	return &Runner{Settings: settings, Exec: exec, FS: fs, State: state}
}

// Voidpkgs resolves and validates the void-packages checkout. The path
// must exist, be a directory, and contain the ./xbps-src entry script.
func (r *Runner) Voidpkgs() (string, error) {
	path, err := r.Settings.RequireVoidpkgs(r.FS)
	if err != nil {
		return "", err
	}
	if !r.FS.Exists(filepath.Join(path, "xbps-src")) {
		return "", errors.ConfigError(
			fmt.Sprintf("not a void-packages checkout (missing ./xbps-src): %s", path), nil)
	}
	return path, nil
}

// Build builds packages with ./xbps-src pkg.
func (r *Runner) Build(ctx context.Context, pkgs []string) error {
	return r.xbpsSrc(ctx, "pkg", pkgs)
}

// Clean removes build state with ./xbps-src clean.
func (r *Runner) Clean(ctx context.Context, pkgs []string) error {
	return r.xbpsSrc(ctx, "clean", pkgs)
}

// Lint checks templates with ./xbps-src lint.
func (r *Runner) Lint(ctx context.Context, pkgs []string) error {
	return r.xbpsSrc(ctx, "lint", pkgs)
}

// xbpsSrc forwards one ./xbps-src invocation with the checkout as the
// working directory.
func (r *Runner) xbpsSrc(ctx context.Context, subcmd string, pkgs []string) error {
	dir, err := r.Voidpkgs()
	if err != nil {
		return err
	}

	args := append([]string{subcmd}, pkgs...)
	logging.Exec(dir, "./xbps-src", args...)

	code, err := r.Exec.ExecuteInteractive(ctx, dir, "./xbps-src", args...)
	if err != nil {
		return errors.ToolLaunchFailed("xbps-src", err)
	}
	if code != 0 {
		return errors.ToolExit("xbps-src", code)
	}
	return nil
}

// SearchResult is one srcpkgs entry matching a search term.
type SearchResult struct {
	Name      string
	Version   string
	Revision  string
	Installed bool
}

// Search scans srcpkgs for directories whose name contains term, parses
// each template for version/revision, and marks installed state.
// Subpackage symlinks are skipped so each package appears once.
func (r *Runner) Search(ctx context.Context, installedOnly bool, term string) ([]SearchResult, error) {
	dir, err := r.Voidpkgs()
	if err != nil {
		return nil, err
	}

	entries, err := r.FS.ReadDir(filepath.Join(dir, "srcpkgs"))
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "failed to read srcpkgs", err)
	}

	var out []SearchResult
	for _, entry := range entries {
		if !entry.IsDir() || !strings.Contains(entry.Name(), term) {
			continue
		}

		tpl, err := ParseTemplate(r.FS, dir, entry.Name())
		if err != nil {
			logging.Debug("skipping srcpkgs entry", "name", entry.Name(), "error", err)
			continue
		}

		installed, err := r.State.IsInstalled(ctx, tpl.Name)
		if err != nil {
			return nil, err
		}
		if installedOnly && !installed {
			continue
		}

		out = append(out, SearchResult{
			Name:      tpl.Name,
			Version:   tpl.Version,
			Revision:  tpl.Revision,
			Installed: installed,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AddFromLocalRepo installs packages from the checkout's local binary
// repo, skipping already-installed packages unless force. The nonfree
// sibling repo is added when enabled and present.
func (r *Runner) AddFromLocalRepo(ctx context.Context, yes, force bool, pkgs []string) error {
	dir, err := r.Voidpkgs()
	if err != nil {
		return err
	}

	localRepo := filepath.Join(dir, r.Settings.LocalRepoRel)
	if !r.FS.IsDir(localRepo) {
		return errors.New(errors.ExitGeneralError,
			fmt.Sprintf("local repo not found: %s\nbuild something first with `vx src build`", localRepo))
	}

	var toInstall []string
	for _, pkg := range pkgs {
		if !force {
			installed, err := r.State.IsInstalled(ctx, pkg)
			if err != nil {
				return err
			}
			if installed {
				logging.UserWarning("package '%s' already installed (use -f to reinstall).", pkg)
				continue
			}
		}
		toInstall = append(toInstall, pkg)
	}

	if len(toInstall) == 0 {
		logging.UserInfo("nothing to do.")
		return nil
	}

	args := []string{"-R", localRepo}
	if r.Settings.UseNonfree {
		if nonfree := filepath.Join(localRepo, "nonfree"); r.FS.IsDir(nonfree) {
			args = append(args, "-R", nonfree)
		}
	}
	if force {
		args = append(args, "-f")
	}
	if yes {
		args = append(args, "-y")
	}
	args = append(args, toInstall...)

	name, argv := r.Settings.InstallCommand(args...)
	logging.Exec("", name, argv...)

	code, err := r.Exec.ExecuteInteractive(ctx, "", name, argv...)
	if err != nil {
		return errors.ToolLaunchFailed(r.Settings.XBPSInstall, err)
	}
	if code != 0 {
		return errors.ToolExit(r.Settings.XBPSInstall, code)
	}
	return nil
}

// Rebuild runs the clean, build, install pipeline for one package. A
// failing step skips the later steps and is the reported result. The
// install is forced so the fresh build replaces the same pkgver.
func (r *Runner) Rebuild(ctx context.Context, yes bool, pkg string) error {
	logging.UserInfo("rebuilding %s", pkg)

	if err := r.Clean(ctx, []string{pkg}); err != nil {
		return err
	}
	if err := r.Build(ctx, []string{pkg}); err != nil {
		return err
	}
	return r.AddFromLocalRepo(ctx, yes, true, []string{pkg})
}

// PlanUpdates compares template pkgvers against installed pkgvers.
// Unchanged packages are skipped unless force; a package whose template
// cannot be read is warned about and skipped rather than failing the
// whole plan.
func (r *Runner) PlanUpdates(ctx context.Context, force bool, pkgs []string) ([]xbps.Update, error) {
	dir, err := r.Voidpkgs()
	if err != nil {
		return nil, err
	}

	var out []xbps.Update
	for _, pkg := range pkgs {
		tpl, err := ParseTemplate(r.FS, dir, pkg)
		if err != nil {
			logging.UserWarning("%v", err)
			continue
		}

		from := xbps.NotInstalled
		if v, ok, err := r.State.InstalledVersion(ctx, pkg); err != nil {
			return nil, err
		} else if ok {
			from = v
		}

		candidate := tpl.Pkgver()
		if from == candidate && !force {
			continue
		}
		out = append(out, xbps.Update{Name: pkg, From: from, To: candidate})
	}
	return out, nil
}
