package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for vx
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitGuardrail    = 2
	ExitConfig       = 3
	ExitManagedList  = 4
)

// VxError is the base error type for vx
type VxError struct {
	Code    int
	Message string
	Cause   error

	// Forwarded marks errors that carry a child process's exit status.
	// The tool already wrote its own diagnostics, so vx prints nothing
	// extra for these and just exits with the same code.
	Forwarded bool
}

func (e *VxError) Error() string {
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *VxError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *VxError) ExitCode() int {
	return e.Code
}

// New creates a new VxError
func New(code int, message string) *VxError {
	return &VxError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a VxError
func Wrap(code int, message string, cause error) *VxError {
	return &VxError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// Guardrail returns an error for a rejected command request.
// Guardrail rejections happen before any external process runs. The
// rule violation speaks for itself, so no message is prefixed.
func Guardrail(cause error) *VxError {
	return &VxError{Code: ExitGuardrail, Cause: cause}
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *VxError {
	return Wrap(ExitConfig, message, cause)
}

// ManagedListError returns an error for managed-list I/O failures
func ManagedListError(op string, cause error) *VxError {
	return Wrap(ExitManagedList, fmt.Sprintf("managed list %s failed", op), cause)
}

// ToolLaunchFailed returns an error when an external tool could not be started
func ToolLaunchFailed(tool string, cause error) *VxError {
	return Wrap(ExitGeneralError, fmt.Sprintf("failed to run %s", tool), cause)
}

// ToolExit returns an error carrying an external tool's non-zero exit status.
// The status is forwarded verbatim as vx's own exit code.
func ToolExit(tool string, code int) *VxError {
	return &VxError{
		Code:      code,
		Message:   fmt.Sprintf("%s exited with status %d", tool, code),
		Forwarded: true,
	}
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *VxError {
	return New(ExitGuardrail, message)
}

// Usage returns a usage error for a command invoked with bad arguments
func Usage(parts ...string) *VxError {
	return New(ExitGuardrail, "usage: "+strings.Join(parts, " "))
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var vxErr *VxError
	if errors.As(err, &vxErr) {
		return vxErr.ExitCode()
	}
	return ExitGeneralError
}

// IsForwarded reports whether err carries a forwarded tool exit status.
func IsForwarded(err error) bool {
	var vxErr *VxError
	return errors.As(err, &vxErr) && vxErr.Forwarded
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
