package main

import (
	"os"

	"github.com/saltnpepper97/vx/cmd"
	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Forwarded tool exits already printed their own diagnostics.
		if !errors.IsForwarded(err) {
			logging.UserError("%v", err)
		}
		os.Exit(errors.GetExitCode(err))
	}
}
