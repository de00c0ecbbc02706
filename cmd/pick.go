package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/logging"
	"github.com/saltnpepper97/vx/internal/source"
	"github.com/saltnpepper97/vx/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive managed-package picker",
	Long: `Opens an interactive TUI over the managed source packages.

Use arrow keys or j/k to navigate, / to filter.

Actions:
  Enter  - Rebuild the selected package
  d      - Forget the selected package (removes it from the managed list)
  q/Esc  - Quit`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	names, err := vxApp.Store.All()
	if err != nil {
		return err
	}

	pkgs := pickerEntries(cmd, names)

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		fmt.Print(tui.SimplePicker(pkgs))
		return nil
	}

	if len(pkgs) == 0 {
		logInfo("No managed packages. Add one with: vx src add <pkg>")
		return nil
	}

	result, err := tui.RunPicker(pkgs)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionRebuild:
		if result.Package != nil {
			return vxApp.Source().Rebuild(cmd.Context(), false, result.Package.Name)
		}

	case tui.ActionForget:
		if result.Package != nil {
			removed, err := vxApp.Store.Remove(result.Package.Name)
			if err != nil {
				return err
			}
			if removed {
				if err := vxApp.Store.Persist(); err != nil {
					return err
				}
				logSuccess("forgot %s.", result.Package.Name)
			}
		}

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}

// pickerEntries decorates managed names with installed and template
// pkgvers. Lookup failures degrade to blank fields rather than blocking
// the picker.
func pickerEntries(cmd *cobra.Command, names []string) []tui.Package {
	ctx := cmd.Context()
	xbpsClient := vxApp.XBPS()

	var voidpkgs string
	if dir, err := vxApp.Source().Voidpkgs(); err == nil {
		voidpkgs = dir
	}

	pkgs := make([]tui.Package, 0, len(names))
	for _, name := range names {
		entry := tui.Package{Name: name}
		if v, ok, err := xbpsClient.InstalledVersion(ctx, name); err == nil && ok {
			entry.Installed = v
		}
		if voidpkgs != "" {
			if tpl, err := source.ParseTemplate(vxApp.FS, voidpkgs, name); err == nil {
				entry.Candidate = tpl.Pkgver()
			}
		}
		pkgs = append(pkgs, entry)
	}
	return pkgs
}
