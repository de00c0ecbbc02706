// Package xbps drives the binary-repository workflow through the xbps
// tools. vx never inspects package contents; it builds argument vectors,
// runs the real tools with their output forwarded verbatim, and surfaces
// their exit status unchanged.
package xbps

import (
	"context"
	"strings"

	"github.com/saltnpepper97/vx/internal/config"
	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/logging"
	"github.com/saltnpepper97/vx/internal/system"
)

// Client runs repo-workflow operations with resolved settings.
type Client struct {
	Settings *config.Settings
	Exec     system.CommandExecutor
}

// NewClient creates a repo-workflow client.
func NewClient(settings *config.Settings, exec system.CommandExecutor) *Client {
	return &Client{Settings: settings, Exec: exec}
}

// Search searches repositories (xbps-query -Rs), or installed packages
// with installed=true (xbps-query -s).
func (c *Client) Search(ctx context.Context, installed bool, terms []string) error {
	needle := strings.Join(terms, " ")
	opt := "-Rs"
	if installed {
		opt = "-s"
	}
	return c.forward(ctx, c.Settings.XBPSQuery, opt, needle)
}

// Info shows repo package details (xbps-query -R).
func (c *Client) Info(ctx context.Context, pkg string) error {
	return c.forward(ctx, c.Settings.XBPSQuery, "-R", pkg)
}

// Files lists the installed files of a package (xbps-query -f).
func (c *Client) Files(ctx context.Context, pkg string) error {
	return c.forward(ctx, c.Settings.XBPSQuery, "-f", pkg)
}

// Provides finds which installed package owns a path (xbps-query -o).
func (c *Client) Provides(ctx context.Context, path string) error {
	return c.forward(ctx, c.Settings.XBPSQuery, "-o", path)
}

// Install installs packages (xbps-install -S), skipping ones that are
// already installed.
func (c *Client) Install(ctx context.Context, yes bool, pkgs []string) error {
	var toInstall []string
	for _, pkg := range pkgs {
		installed, err := c.IsInstalled(ctx, pkg)
		if err != nil {
			return err
		}
		if installed {
			logging.UserWarning("package '%s' already installed.", pkg)
			continue
		}
		toInstall = append(toInstall, pkg)
	}

	if len(toInstall) == 0 {
		logging.UserInfo("nothing to do.")
		return nil
	}

	args := []string{"-S"}
	if yes {
		args = append(args, "-y")
	}
	args = append(args, toInstall...)

	name, argv := c.Settings.InstallCommand(args...)
	return c.forward(ctx, name, argv...)
}

// Remove removes packages (xbps-remove), skipping ones that are not
// installed.
func (c *Client) Remove(ctx context.Context, yes bool, pkgs []string) error {
	var toRemove []string
	for _, pkg := range pkgs {
		installed, err := c.IsInstalled(ctx, pkg)
		if err != nil {
			return err
		}
		if !installed {
			logging.UserWarning("package '%s' not installed.", pkg)
			continue
		}
		toRemove = append(toRemove, pkg)
	}

	if len(toRemove) == 0 {
		logging.UserInfo("nothing to do.")
		return nil
	}

	var args []string
	if yes {
		args = append(args, "-y")
	}
	args = append(args, toRemove...)

	name, argv := c.Settings.RemoveCommand(args...)
	return c.forward(ctx, name, argv...)
}

// Upgrade updates the whole system (xbps-install -Su).
func (c *Client) Upgrade(ctx context.Context, yes bool) error {
	args := []string{"-Su"}
	if yes {
		args = append(args, "-y")
	}
	name, argv := c.Settings.InstallCommand(args...)
	return c.forward(ctx, name, argv...)
}

// IsInstalled reports whether a package is installed on the system.
func (c *Client) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	_, ok, err := c.InstalledVersion(ctx, pkg)
	return ok, err
}

// InstalledVersion returns the installed pkgver of a package, if any.
func (c *Client) InstalledVersion(ctx context.Context, pkg string) (string, bool, error) {
	out, err := c.Exec.Execute(ctx, c.Settings.XBPSQuery, "-p", "pkgver", pkg)
	if err != nil {
		if system.IsExitError(err) {
			return "", false, nil
		}
		return "", false, errors.ToolLaunchFailed(c.Settings.XBPSQuery, err)
	}

	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// PlanSystemUpdates dry-runs a system update (xbps-install -Sun) and
// parses the plan. Stdin stays connected so sudo can prompt; a failing
// plan command is surfaced, never treated as an empty plan.
func (c *Client) PlanSystemUpdates(ctx context.Context) ([]Update, error) {
	name, argv := c.Settings.InstallCommand("-Sun")
	logging.Exec("", name, argv...)

	stdout, stderr, code, err := c.Exec.ExecuteCapture(ctx, "", name, argv...)
	if err != nil {
		return nil, errors.ToolLaunchFailed(c.Settings.XBPSInstall, err)
	}
	if code != 0 {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			return nil, errors.New(errors.ExitGeneralError,
				"xbps-install -Sun failed")
		}
		return nil, errors.New(errors.ExitGeneralError,
			"xbps-install -Sun failed: "+msg)
	}

	text := string(stdout) + "\n" + string(stderr)
	return ParsePlan(text, func(pkg string) (string, bool, error) {
		return c.InstalledVersion(ctx, pkg)
	})
}

// forward runs a tool with its stdio connected to the terminal and maps
// a non-zero exit status onto vx's own exit status.
func (c *Client) forward(ctx context.Context, name string, args ...string) error {
	logging.Exec("", name, args...)

	code, err := c.Exec.ExecuteInteractive(ctx, "", name, args...)
	if err != nil {
		return errors.ToolLaunchFailed(name, err)
	}
	if code != 0 {
		return errors.ToolExit(name, code)
	}
	return nil
}
