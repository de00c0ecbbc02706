package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, false, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, true, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, false, &buf)

	if !Verbose {
		t.Error("Verbose flag should be true after Setup(true, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, false, &buf)

	if Verbose {
		t.Error("Verbose flag should be false after Setup(false, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestExec_TracesInVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, false, &buf)

	Exec("/srv/void-packages", "./xbps-src", "pkg", "discord")

	output := buf.String()
	if !strings.Contains(output, "./xbps-src pkg discord") {
		t.Errorf("Expected traced command in output, got: %s", output)
	}
	if !strings.Contains(output, "cd /srv/void-packages") {
		t.Errorf("Expected working directory in trace, got: %s", output)
	}
}

func TestExec_QuotesArguments(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, false, &buf)

	Exec("", "xbps-query", "-Rs", "two words")

	output := buf.String()
	if !strings.Contains(output, "'two words'") {
		t.Errorf("Expected quoted argument in trace, got: %s", output)
	}
}

func TestExec_SilentWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, false, &buf)

	Exec("", "xbps-query", "-Rs", "term")

	if buf.Len() != 0 {
		t.Errorf("Exec should not log without verbose, got: %s", buf.String())
	}
}

func TestExec_SilentWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, true, false, &buf)

	Exec("", "xbps-query", "-Rs", "term")

	if buf.Len() != 0 {
		t.Errorf("Exec should not log in quiet mode, got: %s", buf.String())
	}
}
