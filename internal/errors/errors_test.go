package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestVxError_Error(t *testing.T) {
	err := New(ExitConfig, "bad config")
	if err.Error() != "bad config" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad config")
	}

	wrapped := Wrap(ExitConfig, "bad config", stderrors.New("line 3"))
	if wrapped.Error() != "bad config: line 3" {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), "bad config: line 3")
	}
}

func TestVxError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ExitGeneralError, "outer", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestGuardrail(t *testing.T) {
	cause := stderrors.New("no managed source packages; install one with `vx src add <pkg>`")
	err := Guardrail(cause)

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, must render the violation exactly once", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the rule violation")
	}
	if err.ExitCode() != ExitGuardrail {
		t.Errorf("exit code = %d, want %d", err.ExitCode(), ExitGuardrail)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"guardrail", ValidationError("nope"), ExitGuardrail},
		{"config", ConfigError("bad", nil), ExitConfig},
		{"managed list", ManagedListError("read", stderrors.New("io")), ExitManagedList},
		{"launch failure", ToolLaunchFailed("xbps-install", stderrors.New("not found")), ExitGeneralError},
		{"forwarded tool exit", ToolExit("xbps-install", 19), 19},
		{"plain error", stderrors.New("anything"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsForwarded(t *testing.T) {
	if !IsForwarded(ToolExit("xbps-remove", 1)) {
		t.Error("ToolExit errors should be forwarded")
	}
	if IsForwarded(ValidationError("nope")) {
		t.Error("validation errors should not be forwarded")
	}
	if IsForwarded(stderrors.New("plain")) {
		t.Error("plain errors should not be forwarded")
	}
}

func TestUsage(t *testing.T) {
	err := Usage("vx add <pkg> [pkg...]")
	if !strings.HasPrefix(err.Error(), "usage: ") {
		t.Errorf("Usage() = %q, want usage prefix", err.Error())
	}
	if err.ExitCode() != ExitGuardrail {
		t.Errorf("Usage exit code = %d, want %d", err.ExitCode(), ExitGuardrail)
	}
}
