package xbps

import (
	"context"
	"testing"

	"github.com/saltnpepper97/vx/internal/config"
	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/system"
)

func testSettings() *config.Settings {
	return &config.Settings{
		XBPSInstall: "xbps-install",
		XBPSRemove:  "xbps-remove",
		XBPSQuery:   "xbps-query",
		UseSudo:     true,
	}
}

func newClient(t *testing.T) (*Client, *system.MockExecutor) {
	t.Helper()
	exec := system.NewMockExecutor()
	return NewClient(testSettings(), exec), exec
}

func TestSearch_ArgumentVectors(t *testing.T) {
	tests := []struct {
		name      string
		installed bool
		terms     []string
		want      string
	}{
		{"repo search", false, []string{"fire", "fox"}, "xbps-query -Rs fire fox"},
		{"installed search", true, []string{"firefox"}, "xbps-query -s firefox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, exec := newClient(t)
			if err := c.Search(context.Background(), tt.installed, tt.terms); err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			cmd, _ := exec.LastCommand()
			if cmd.Line() != tt.want {
				t.Errorf("vector = %q, want %q", cmd.Line(), tt.want)
			}
		})
	}
}

func TestQueryCommands(t *testing.T) {
	c, exec := newClient(t)
	ctx := context.Background()

	c.Info(ctx, "firefox")
	cmd, _ := exec.LastCommand()
	if cmd.Line() != "xbps-query -R firefox" {
		t.Errorf("Info vector = %q", cmd.Line())
	}

	c.Files(ctx, "firefox")
	cmd, _ = exec.LastCommand()
	if cmd.Line() != "xbps-query -f firefox" {
		t.Errorf("Files vector = %q", cmd.Line())
	}

	c.Provides(ctx, "/usr/bin/firefox")
	cmd, _ = exec.LastCommand()
	if cmd.Line() != "xbps-query -o /usr/bin/firefox" {
		t.Errorf("Provides vector = %q", cmd.Line())
	}
}

func TestInstall_NotInstalledGetsInstalled(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("xbps-query -p", system.MockResponse{Code: 1})

	if err := c.Install(context.Background(), true, []string{"fresh"}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	cmd, _ := exec.LastCommand()
	if cmd.Line() != "sudo xbps-install -S -y fresh" {
		t.Errorf("vector = %q", cmd.Line())
	}
}

func TestInstall_AlreadyInstalledIsNoOp(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("xbps-query -p", system.MockResponse{Stdout: []byte("already-1.0_1\n")})

	if err := c.Install(context.Background(), false, []string{"already"}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	for _, cmd := range exec.Commands {
		if cmd.Name == "sudo" || cmd.Name == "xbps-install" {
			t.Errorf("install tool should not run, got %q", cmd.Line())
		}
	}
}

func TestInstall_NoSudo(t *testing.T) {
	exec := system.NewMockExecutor()
	s := testSettings()
	s.UseSudo = false
	c := NewClient(s, exec)
	exec.AddResponse("xbps-query -p", system.MockResponse{Code: 1})

	if err := c.Install(context.Background(), false, []string{"fresh"}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	cmd, _ := exec.LastCommand()
	if cmd.Line() != "xbps-install -S fresh" {
		t.Errorf("vector = %q", cmd.Line())
	}
}

func TestRemove_SkipsNotInstalled(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("xbps-query -p", system.MockResponse{Code: 1})

	if err := c.Remove(context.Background(), true, []string{"ghost"}); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	for _, cmd := range exec.Commands {
		if cmd.Name == "sudo" {
			t.Errorf("remove tool should not run for uninstalled package, got %q", cmd.Line())
		}
	}
}

func TestRemove_Vector(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("xbps-query -p", system.MockResponse{Stdout: []byte("firefox-128.0_1\n")})

	if err := c.Remove(context.Background(), true, []string{"firefox"}); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	cmd, _ := exec.LastCommand()
	if cmd.Line() != "sudo xbps-remove -y firefox" {
		t.Errorf("vector = %q", cmd.Line())
	}
}

func TestUpgrade_Vector(t *testing.T) {
	c, exec := newClient(t)

	if err := c.Upgrade(context.Background(), false); err != nil {
		t.Fatalf("Upgrade() error = %v", err)
	}
	cmd, _ := exec.LastCommand()
	if cmd.Line() != "sudo xbps-install -Su" {
		t.Errorf("vector = %q", cmd.Line())
	}
}

func TestForward_ToolExitIsForwarded(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("xbps-query", system.MockResponse{Code: 6})

	err := c.Info(context.Background(), "nope")
	if err == nil {
		t.Fatal("non-zero tool exit must surface")
	}
	if !errors.IsForwarded(err) {
		t.Errorf("error should be a forwarded tool exit, got %v", err)
	}
	if errors.GetExitCode(err) != 6 {
		t.Errorf("exit code = %d, want 6", errors.GetExitCode(err))
	}
}

func TestInstalledVersion(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("xbps-query -p", system.MockResponse{Stdout: []byte("bash-5.2_1\n")})

	v, ok, err := c.InstalledVersion(context.Background(), "bash")
	if err != nil {
		t.Fatalf("InstalledVersion() error = %v", err)
	}
	if !ok || v != "bash-5.2_1" {
		t.Errorf("InstalledVersion() = %q, %v", v, ok)
	}
}

func TestPlanSystemUpdates(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("sudo xbps-install", system.MockResponse{
		Stdout: []byte("bash-5.2_2 update x86_64 repo 9MB 2MB\n"),
	})
	exec.AddResponse("xbps-query -p", system.MockResponse{Code: 1})

	plan, err := c.PlanSystemUpdates(context.Background())
	if err != nil {
		t.Fatalf("PlanSystemUpdates() error = %v", err)
	}
	if len(plan) != 1 || plan[0].Name != "bash" || plan[0].From != NotInstalled {
		t.Errorf("plan = %v", plan)
	}

	first := exec.Commands[0]
	if first.Line() != "sudo xbps-install -Sun" {
		t.Errorf("plan vector = %q", first.Line())
	}
}

func TestPlanSystemUpdates_FailureSurfaces(t *testing.T) {
	c, exec := newClient(t)
	exec.AddResponse("sudo xbps-install", system.MockResponse{
		Stderr: []byte("sudo: a password is required\n"),
		Code:   1,
	})

	if _, err := c.PlanSystemUpdates(context.Background()); err == nil {
		t.Fatal("failed plan command must not look like an empty plan")
	}
}
