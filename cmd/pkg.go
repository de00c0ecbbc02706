package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saltnpepper97/vx/internal/source"
)

var pkgCmd = &cobra.Command{
	Use:   "pkg",
	Short: "Template authoring helpers (xtools)",
}

var pkgNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new srcpkgs template with xnew",
	Args:  cobra.ExactArgs(1),
	RunE:  runPkgNew,
}

var (
	gensumForce   bool
	gensumClean   bool
	gensumArch    string
	gensumHostdir string
)

var pkgGensumCmd = &cobra.Command{
	Use:   "gensum <name>",
	Short: "Regenerate a template's checksums with xgensum",
	Args:  cobra.ExactArgs(1),
	RunE:  runPkgGensum,
}

func init() {
	pkgGensumCmd.Flags().BoolVarP(&gensumForce, "force", "f", false, "Force re-download of distfiles")
	pkgGensumCmd.Flags().BoolVarP(&gensumClean, "clean", "c", false, "Remove distfiles afterwards")
	pkgGensumCmd.Flags().StringVarP(&gensumArch, "arch", "a", "", "Target architecture")
	pkgGensumCmd.Flags().StringVarP(&gensumHostdir, "hostdir", "H", "", "Hostdir to use")

	pkgCmd.AddCommand(pkgNewCmd)
	pkgCmd.AddCommand(pkgGensumCmd)
	rootCmd.AddCommand(pkgCmd)
}

func runPkgNew(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}
	return vxApp.Source().NewTemplate(cmd.Context(), args[0])
}

func runPkgGensum(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	opts := source.GenSumOptions{
		Force:   gensumForce,
		Clean:   gensumClean,
		Arch:    gensumArch,
		Hostdir: gensumHostdir,
	}

	changed, err := vxApp.Source().GenSum(cmd.Context(), opts, args[0])
	if err != nil {
		return err
	}
	if changed {
		logSuccess("checksums updated for %s.", args[0])
	} else {
		logInfo("checksums already current for %s.", args[0])
	}
	return nil
}
