package logging

import (
	"fmt"
	"io"
	"log/slog"

	shellquote "github.com/kballard/go-shellquote"
)

var (
	// Verbose controls whether debug logs and exec traces are emitted.
	Verbose bool

	// Quiet suppresses informational user output (errors still print).
	Quiet bool
)

// Setup configures the default slog logger.
// Debug level is enabled when verbose is true; json selects the
// JSON handler instead of text. All structured logs go to w.
func Setup(verbose, quiet, json bool, w io.Writer) {
	Verbose = verbose
	Quiet = quiet

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Debug logs a debug message with structured key-value pairs.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs an info message with structured key-value pairs.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a warning with structured key-value pairs.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Exec traces an external command invocation in verbose mode.
// The vector is rendered shell-quoted so it can be copy-pasted.
func Exec(dir, name string, args ...string) {
	if !Verbose || Quiet {
		return
	}
	line := shellquote.Join(append([]string{name}, args...)...)
	if dir != "" {
		line = fmt.Sprintf("(cd %s) && %s", dir, line)
	}
	slog.Debug("exec", "cmd", line)
}
