package cmd

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved configuration and managed list",
	Long: `Shows where every setting came from and what vx would run with it.

status is a display command: it always exits zero, even when the config
file is malformed, so it stays usable for debugging a broken setup.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s := vxApp.Settings

	if vxApp.ConfigErr != nil {
		logWarning("%v", vxApp.ConfigErr)
	}

	state := "not found, using defaults"
	if s.ConfigLoaded {
		state = "loaded"
	}
	fmt.Printf("Config: %s (%s)\n", s.ConfigPath, state)

	name, argv := s.InstallCommand("-S")
	fmt.Printf("Install: %s\n", shellquote.Join(append([]string{name}, argv...)...))
	name, argv = s.RemoveCommand()
	fmt.Printf("Remove: %s\n", shellquote.Join(append([]string{name}, argv...)...))
	fmt.Printf("Query: %s\n", s.XBPSQuery)
	fmt.Printf("Sudo: %s\n", boolStatus(s.UseSudo))
	fmt.Println()

	if s.VoidpkgsPath == "" {
		fmt.Println("Void-packages: (unset)")
	} else {
		fmt.Printf("Void-packages: %s (from %s)\n", s.VoidpkgsPath, s.VoidpkgsSource)
		fmt.Printf("Local repo: %s\n", s.LocalRepoRel)
		fmt.Printf("Nonfree repo: %s\n", boolStatus(s.UseNonfree))
	}
	fmt.Println()

	names, err := vxApp.Store.All()
	if err != nil {
		logWarning("%v", err)
		return nil
	}

	fmt.Printf("Managed source packages: %d\n", len(names))
	const head = 10
	for i, name := range names {
		if i == head {
			fmt.Printf("  ... and %d more\n", len(names)-head)
			break
		}
		fmt.Printf("  %s\n", name)
	}

	return nil
}

func boolStatus(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
