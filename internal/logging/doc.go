// Package logging provides logging utilities for vx.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Plain messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("resolved void-packages", "path", path, "source", src)
//	logging.Exec(dir, "xbps-install", "-Su")
//
// Exec traces every external invocation with a shell-quoted command line,
// and only fires in verbose mode.
//
// # User Output
//
// User-facing messages go straight to stdout/stderr:
//
//	logging.UserInfo("nothing to do.")
//	logging.UserWarning("package '%s' already installed.", pkg)
//	logging.UserError("failed to run %s: %v", tool, err)
//
// Quiet mode silences everything except UserError. External tool output is
// never routed through this package; it is forwarded verbatim.
package logging
