package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/guard"
	"github.com/saltnpepper97/vx/internal/xbps"
)

// requireConfig surfaces a deferred settings-resolution failure.
// Every command except `status` calls this first.
func requireConfig() error {
	return vxApp.ConfigErr
}

// interactive reports whether stdin can prompt the user.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// managedCount sizes the managed list for guardrail requests. A read
// failure is fatal for the commands that need the list; mapping it to
// zero would misreport a corrupt list as empty.
func managedCount() (int, error) {
	return vxApp.Store.Len()
}

// guardCheck validates a request and maps a violation onto the
// guardrail exit code.
func guardCheck(req guard.Request) error {
	if err := guard.Validate(req); err != nil {
		return errors.Guardrail(err)
	}
	return nil
}

// confirm asks a yes/no question on the terminal. Callers only reach
// this in interactive contexts; anything but an explicit yes declines.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// rememberManaged records successfully installed source packages. The
// install already happened, so persistence failures only warn.
func rememberManaged(names ...string) {
	added := false
	for _, name := range names {
		ok, err := vxApp.Store.Add(name)
		if err != nil {
			logWarning("could not update managed list: %v", err)
			return
		}
		added = added || ok
	}
	if !added {
		return
	}
	if err := vxApp.Store.Persist(); err != nil {
		logWarning("could not update managed list: %v", err)
	}
}

// printPlan renders an update plan as a name/from/to table.
func printPlan(header string, plan []xbps.Update) {
	if len(plan) == 0 {
		logInfo("%s: nothing to update.", header)
		return
	}
	logInfo("%s:", header)
	for _, u := range plan {
		logInfo("  %-24s %s -> %s", u.Name, u.From, u.To)
	}
}
