package system

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

func (e *osExecutor) ExecuteInteractive(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	return exitStatus(err)
}

func (e *osExecutor) ExecuteCapture(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, int, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code, err := exitStatus(err)
	return stdout.Bytes(), stderr.Bytes(), code, err
}

// exitStatus splits a Run error into an exit code and a launch error.
// A process that ran and exited non-zero is not a launch error.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by signal; mirror the shell's convention.
			code = 1
		}
		return code, nil
	}
	return 1, err
}

// IsExitError reports whether err is a non-zero exit from a process that ran,
// as opposed to a failure to start it.
func IsExitError(err error) bool {
	var coder interface{ ExitCode() int }
	return errors.As(err, &coder)
}
