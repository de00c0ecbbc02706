package config

import (
	iofs "io/fs"
	"strings"
	"testing"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/system"
)

const configPath = "/home/u/.config/vx/vx.toml"

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve_Defaults(t *testing.T) {
	fs := system.NewMockFS()

	s, err := ResolveFrom(fs, Overrides{}, envFrom(nil), configPath)
	if err != nil {
		t.Fatalf("ResolveFrom() error = %v", err)
	}

	if s.XBPSInstall != "xbps-install" || s.XBPSRemove != "xbps-remove" || s.XBPSQuery != "xbps-query" {
		t.Errorf("unexpected tool defaults: %+v", s)
	}
	if !s.UseSudo {
		t.Error("UseSudo should default to true")
	}
	if !s.UseNonfree {
		t.Error("UseNonfree should default to true")
	}
	if s.LocalRepoRel != "hostdir/binpkgs" {
		t.Errorf("LocalRepoRel = %q", s.LocalRepoRel)
	}
	if s.VoidpkgsPath != "" || s.VoidpkgsSource != SourceDefault {
		t.Errorf("voidpkgs should be unset by default, got %q (%s)", s.VoidpkgsPath, s.VoidpkgsSource)
	}
	if s.ConfigLoaded {
		t.Error("ConfigLoaded should be false without a config file")
	}
}

func TestResolve_ConfigFile(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(configPath, []byte(`
[xbps]
sudo = false
install = "doas-xbps-install"

[void_packages]
path = "/c"
local_repo = "host/pkgs"
use_nonfree = false

[update]
continue_on_error = true
`), 0644)

	s, err := ResolveFrom(fs, Overrides{}, envFrom(nil), configPath)
	if err != nil {
		t.Fatalf("ResolveFrom() error = %v", err)
	}

	if s.UseSudo {
		t.Error("UseSudo should honor the config file")
	}
	if s.XBPSInstall != "doas-xbps-install" {
		t.Errorf("XBPSInstall = %q", s.XBPSInstall)
	}
	if s.XBPSRemove != "xbps-remove" {
		t.Errorf("unset fields keep defaults, XBPSRemove = %q", s.XBPSRemove)
	}
	if s.VoidpkgsPath != "/c" || s.VoidpkgsSource != SourceConfig {
		t.Errorf("voidpkgs = %q (%s), want /c (config)", s.VoidpkgsPath, s.VoidpkgsSource)
	}
	if s.LocalRepoRel != "host/pkgs" || s.UseNonfree {
		t.Errorf("void_packages section not honored: %+v", s)
	}
	if !s.ContinueOnError {
		t.Error("ContinueOnError should honor the config file")
	}
}

func TestResolve_Malformed(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(configPath, []byte("[xbps\nsudo ="), 0644)

	_, err := ResolveFrom(fs, Overrides{}, envFrom(nil), configPath)
	if err == nil {
		t.Fatal("malformed config must fail resolution")
	}
	if errors.GetExitCode(err) != errors.ExitConfig {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfig)
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error should name the config location, got: %v", err)
	}
}

func TestResolve_UnreadableConfigFails(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(configPath, []byte("[xbps]\nsudo = false\n"), 0644)
	fs.ReadFileErr = iofs.ErrPermission

	_, err := ResolveFrom(fs, Overrides{}, envFrom(nil), configPath)
	if err == nil {
		t.Fatal("unreadable config must fail resolution, not fall back to defaults")
	}
	if errors.GetExitCode(err) != errors.ExitConfig {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfig)
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error should name the config location, got: %v", err)
	}
}

func TestResolve_VoidpkgsPrecedence(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(configPath, []byte("[void_packages]\npath = \"/c\"\n"), 0644)

	env := envFrom(map[string]string{EnvVoidpkgs: "/b"})

	tests := []struct {
		name       string
		overrides  Overrides
		getenv     func(string) string
		wantPath   string
		wantSource Provenance
	}{
		{"cli wins", Overrides{Voidpkgs: "/a"}, env, "/a", SourceCli},
		{"env beats config", Overrides{}, env, "/b", SourceEnv},
		{"config beats default", Overrides{}, envFrom(nil), "/c", SourceConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ResolveFrom(fs, tt.overrides, tt.getenv, configPath)
			if err != nil {
				t.Fatalf("ResolveFrom() error = %v", err)
			}
			if s.VoidpkgsPath != tt.wantPath {
				t.Errorf("VoidpkgsPath = %q, want %q", s.VoidpkgsPath, tt.wantPath)
			}
			if s.VoidpkgsSource != tt.wantSource {
				t.Errorf("VoidpkgsSource = %s, want %s", s.VoidpkgsSource, tt.wantSource)
			}
		})
	}
}

func TestResolve_EnvOverridesTools(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(configPath, []byte("[xbps]\nquery = \"cfg-query\"\n"), 0644)

	env := envFrom(map[string]string{
		EnvXBPSQuery: "env-query",
		EnvSudo:      "no",
		EnvNonfree:   "0",
		EnvLocalRepo: "elsewhere/binpkgs",
	})

	s, err := ResolveFrom(fs, Overrides{}, env, configPath)
	if err != nil {
		t.Fatalf("ResolveFrom() error = %v", err)
	}
	if s.XBPSQuery != "env-query" {
		t.Errorf("XBPSQuery = %q, env must beat config", s.XBPSQuery)
	}
	if s.UseSudo || s.UseNonfree {
		t.Error("boolean env overrides not honored")
	}
	if s.LocalRepoRel != "elsewhere/binpkgs" {
		t.Errorf("LocalRepoRel = %q", s.LocalRepoRel)
	}
}

func TestResolve_NonfreeCliOverride(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(configPath, []byte("[void_packages]\nuse_nonfree = true\n"), 0644)

	nonfree := false
	s, err := ResolveFrom(fs, Overrides{Nonfree: &nonfree}, envFrom(nil), configPath)
	if err != nil {
		t.Fatalf("ResolveFrom() error = %v", err)
	}
	if s.UseNonfree {
		t.Error("CLI --nonfree=false must beat the config file")
	}

	s, err = ResolveFrom(fs, Overrides{}, envFrom(nil), configPath)
	if err != nil {
		t.Fatalf("ResolveFrom() error = %v", err)
	}
	if !s.UseNonfree {
		t.Error("absent CLI flag must leave the config value alone")
	}
}

func TestRequireVoidpkgs(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddDir("/srv/void-packages")

	t.Run("unset", func(t *testing.T) {
		s := &Settings{}
		_, err := s.RequireVoidpkgs(fs)
		if err == nil {
			t.Fatal("unset voidpkgs must fail for source commands")
		}
		if errors.GetExitCode(err) != errors.ExitConfig {
			t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfig)
		}
		if !strings.Contains(err.Error(), "--voidpkgs") {
			t.Errorf("error should explain how to provide the path, got: %v", err)
		}
	})

	t.Run("not a directory", func(t *testing.T) {
		s := &Settings{VoidpkgsPath: "/nowhere"}
		if _, err := s.RequireVoidpkgs(fs); err == nil {
			t.Fatal("nonexistent path must fail")
		}
	})

	t.Run("valid", func(t *testing.T) {
		s := &Settings{VoidpkgsPath: "/srv/void-packages"}
		p, err := s.RequireVoidpkgs(fs)
		if err != nil {
			t.Fatalf("RequireVoidpkgs() error = %v", err)
		}
		if p != "/srv/void-packages" {
			t.Errorf("path = %q", p)
		}
	})
}

func TestInstallCommand_SudoWrapping(t *testing.T) {
	s := &Settings{XBPSInstall: "xbps-install", UseSudo: true}
	name, args := s.InstallCommand("-Su", "-y")
	if name != "sudo" || args[0] != "xbps-install" || args[1] != "-Su" {
		t.Errorf("sudo wrapping wrong: %s %v", name, args)
	}

	s = &Settings{XBPSInstall: "xbps-install", UseSudo: false}
	name, args = s.InstallCommand("-Su")
	if name != "xbps-install" || args[0] != "-Su" {
		t.Errorf("unwrapped vector wrong: %s %v", name, args)
	}
}

func TestProvenanceString(t *testing.T) {
	cases := map[Provenance]string{
		SourceDefault: "default",
		SourceConfig:  "config",
		SourceEnv:     "env",
		SourceCli:     "cli",
	}
	for p, want := range cases {
		if p.String() != want {
			t.Errorf("%d.String() = %q, want %q", p, p.String(), want)
		}
	}
}
