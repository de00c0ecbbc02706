package config

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/system"
)

// Built-in defaults. Every resolvable field falls back to these when no
// CLI flag, environment variable, or config-file value overrides it.
const (
	DefaultXBPSInstall = "xbps-install"
	DefaultXBPSRemove  = "xbps-remove"
	DefaultXBPSQuery   = "xbps-query"
	DefaultLocalRepo   = "hostdir/binpkgs"

	ConfigFileName  = "vx.toml"
	ManagedFileName = "managed-src.toml"
)

// Environment variables. Precedence per field is uniform:
// CLI flag > environment > config file > default.
const (
	EnvVoidpkgs    = "VX_VOIDPKGS"
	EnvXBPSInstall = "VX_XBPS_INSTALL"
	EnvXBPSRemove  = "VX_XBPS_REMOVE"
	EnvXBPSQuery   = "VX_XBPS_QUERY"
	EnvSudo        = "VX_SUDO"
	EnvNonfree     = "VX_NONFREE"
	EnvLocalRepo   = "VX_LOCAL_REPO"
)

// Provenance records where the void-packages path came from.
type Provenance int

const (
	SourceDefault Provenance = iota
	SourceConfig
	SourceEnv
	SourceCli
)

func (p Provenance) String() string {
	switch p {
	case SourceCli:
		return "cli"
	case SourceEnv:
		return "env"
	case SourceConfig:
		return "config"
	default:
		return "default"
	}
}

// Settings holds the resolved configuration for one invocation.
// It is constructed exactly once per process and never mutated afterward.
type Settings struct {
	XBPSInstall string
	XBPSRemove  string
	XBPSQuery   string
	UseSudo     bool

	// VoidpkgsPath may be empty; source-workflow commands resolve it
	// lazily via RequireVoidpkgs.
	VoidpkgsPath   string
	VoidpkgsSource Provenance

	LocalRepoRel string
	UseNonfree   bool

	// ContinueOnError lets `up --all` proceed to the system upgrade even
	// when some managed rebuilds failed.
	ContinueOnError bool

	// ConfigPath is where the config file was looked for; ConfigLoaded
	// reports whether it existed. Diagnostic only.
	ConfigPath   string
	ConfigLoaded bool
}

// Overrides carries CLI-level settings overrides into Resolve.
// Pointer fields distinguish "flag not given" from an explicit value.
type Overrides struct {
	Voidpkgs string
	Nonfree  *bool
}

// fileConfig mirrors the on-disk vx.toml layout.
type fileConfig struct {
	XBPS struct {
		Sudo    *bool  `toml:"sudo"`
		Install string `toml:"install"`
		Remove  string `toml:"remove"`
		Query   string `toml:"query"`
	} `toml:"xbps"`
	VoidPackages struct {
		Path       string `toml:"path"`
		LocalRepo  string `toml:"local_repo"`
		UseNonfree *bool  `toml:"use_nonfree"`
	} `toml:"void_packages"`
	Update struct {
		ContinueOnError bool `toml:"continue_on_error"`
	} `toml:"update"`
}

// UserConfigPath returns the conventional config file location
// (~/.config/vx/vx.toml on Linux).
func UserConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not locate config dir: %w", err)
	}
	return filepath.Join(base, "vx", ConfigFileName), nil
}

// ManagedListPath returns the conventional managed-list location
// (~/.config/vx/managed-src.toml on Linux).
func ManagedListPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not locate config dir: %w", err)
	}
	return filepath.Join(base, "vx", ManagedFileName), nil
}

// Resolve merges defaults, the config file, environment variables, and CLI
// overrides into one Settings value. A missing config file is not an error;
// a malformed one is, and is never silently downgraded to defaults.
func Resolve(fs system.FileSystem, overrides Overrides, getenv func(string) string) (*Settings, error) {
	path, err := UserConfigPath()
	if err != nil {
		return nil, errors.ConfigError("config path", err)
	}
	return ResolveFrom(fs, overrides, getenv, path)
}

// ResolveFrom is Resolve with an explicit config file location.
func ResolveFrom(fs system.FileSystem, overrides Overrides, getenv func(string) string, path string) (*Settings, error) {
	s := &Settings{
		XBPSInstall:  DefaultXBPSInstall,
		XBPSRemove:   DefaultXBPSRemove,
		XBPSQuery:    DefaultXBPSQuery,
		UseSudo:      true,
		LocalRepoRel: DefaultLocalRepo,
		UseNonfree:   true,
		ConfigPath:   path,
	}

	// Config file layer. Only a genuinely absent file falls through to
	// defaults; an unreadable one fails resolution.
	var fc fileConfig
	data, err := fs.ReadFile(path)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config %s", path), err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("failed to parse config %s", path), err)
		}
		s.ConfigLoaded = true

		if fc.XBPS.Install != "" {
			s.XBPSInstall = fc.XBPS.Install
		}
		if fc.XBPS.Remove != "" {
			s.XBPSRemove = fc.XBPS.Remove
		}
		if fc.XBPS.Query != "" {
			s.XBPSQuery = fc.XBPS.Query
		}
		if fc.XBPS.Sudo != nil {
			s.UseSudo = *fc.XBPS.Sudo
		}
		if fc.VoidPackages.Path != "" {
			s.VoidpkgsPath = fc.VoidPackages.Path
			s.VoidpkgsSource = SourceConfig
		}
		if fc.VoidPackages.LocalRepo != "" {
			s.LocalRepoRel = fc.VoidPackages.LocalRepo
		}
		if fc.VoidPackages.UseNonfree != nil {
			s.UseNonfree = *fc.VoidPackages.UseNonfree
		}
		s.ContinueOnError = fc.Update.ContinueOnError
	}

	// Environment layer.
	if v := strings.TrimSpace(getenv(EnvXBPSInstall)); v != "" {
		s.XBPSInstall = v
	}
	if v := strings.TrimSpace(getenv(EnvXBPSRemove)); v != "" {
		s.XBPSRemove = v
	}
	if v := strings.TrimSpace(getenv(EnvXBPSQuery)); v != "" {
		s.XBPSQuery = v
	}
	if v, ok := envBool(getenv(EnvSudo)); ok {
		s.UseSudo = v
	}
	if v, ok := envBool(getenv(EnvNonfree)); ok {
		s.UseNonfree = v
	}
	if v := strings.TrimSpace(getenv(EnvLocalRepo)); v != "" {
		s.LocalRepoRel = v
	}
	if v := strings.TrimSpace(getenv(EnvVoidpkgs)); v != "" {
		s.VoidpkgsPath = v
		s.VoidpkgsSource = SourceEnv
	}

	// CLI layer wins.
	if overrides.Voidpkgs != "" {
		s.VoidpkgsPath = overrides.Voidpkgs
		s.VoidpkgsSource = SourceCli
	}
	if overrides.Nonfree != nil {
		s.UseNonfree = *overrides.Nonfree
	}

	return s, nil
}

// RequireVoidpkgs validates the void-packages tree for source-workflow
// commands. Repo-only commands never call this, so a missing path only
// fails the commands that actually need it.
func (s *Settings) RequireVoidpkgs(fs system.FileSystem) (string, error) {
	if s.VoidpkgsPath == "" {
		return "", errors.ConfigError(
			"vx src requires a void-packages path.\n"+
				"Provide one of:\n"+
				"- --voidpkgs /path/to/void-packages\n"+
				"- VX_VOIDPKGS=/path/to/void-packages\n"+
				"- ~/.config/vx/vx.toml with void_packages.path", nil)
	}
	if !fs.IsDir(s.VoidpkgsPath) {
		return "", errors.ConfigError(
			fmt.Sprintf("void-packages path is not a directory: %s", s.VoidpkgsPath), nil)
	}
	return s.VoidpkgsPath, nil
}

// InstallCommand returns the argument vector for the install tool,
// wrapped with sudo when privileged operations are configured to escalate.
func (s *Settings) InstallCommand(args ...string) (string, []string) {
	return s.privileged(s.XBPSInstall, args)
}

// RemoveCommand returns the argument vector for the remove tool.
func (s *Settings) RemoveCommand(args ...string) (string, []string) {
	return s.privileged(s.XBPSRemove, args)
}

func (s *Settings) privileged(tool string, args []string) (string, []string) {
	if s.UseSudo {
		return "sudo", append([]string{tool}, args...)
	}
	return tool, args
}

func envBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	default:
		return false, false
	}
}
