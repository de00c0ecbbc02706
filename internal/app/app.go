// Package app wires the resolved configuration, the managed-package
// store, and the OS abstractions into one container the commands share.
package app

import (
	"os"

	"github.com/saltnpepper97/vx/internal/cache"
	"github.com/saltnpepper97/vx/internal/config"
	"github.com/saltnpepper97/vx/internal/managed"
	"github.com/saltnpepper97/vx/internal/source"
	"github.com/saltnpepper97/vx/internal/system"
	"github.com/saltnpepper97/vx/internal/xbps"
)

// App carries the per-invocation dependencies of every command.
type App struct {
	Settings *config.Settings
	Store    *managed.Store
	Exec     system.CommandExecutor
	FS       system.FileSystem

	// ConfigErr defers a settings-resolution failure. Display commands
	// like `status` report it and still exit zero; everything else
	// fails with it up front.
	ConfigErr error
}

// Option customizes an App, mainly for tests.
type Option func(*App)

// WithSettings sets the resolved settings.
func WithSettings(s *config.Settings) Option {
	return func(a *App) { a.Settings = s }
}

// WithStore sets the managed-package store.
func WithStore(s *managed.Store) Option {
	return func(a *App) { a.Store = s }
}

// WithExecutor sets the command executor.
func WithExecutor(e system.CommandExecutor) Option {
	return func(a *App) { a.Exec = e }
}

// WithFS sets the filesystem.
func WithFS(fs system.FileSystem) Option {
	return func(a *App) { a.FS = fs }
}

// New creates an App from options. Missing pieces get OS-backed
// defaults and default settings, so tests only override what they need.
func New(opts ...Option) *App {
	a := &App{
		Exec: system.DefaultExecutor(),
		FS:   system.DefaultFS(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Settings == nil {
		a.Settings = fallbackSettings()
	}
	if a.Store == nil {
		a.Store = managed.NewStore(a.FS, "")
	}
	return a
}

// Init resolves settings and the managed list for a real invocation.
// A resolution failure is captured in ConfigErr rather than returned,
// so the caller decides whether it is fatal for the command at hand.
func Init(overrides config.Overrides) *App {
	a := &App{
		Exec: system.DefaultExecutor(),
		FS:   system.DefaultFS(),
	}

	settings, err := config.Resolve(a.FS, overrides, os.Getenv)
	if err != nil {
		a.ConfigErr = err
		a.Settings = fallbackSettings()
	} else {
		a.Settings = settings
	}

	listPath, err := config.ManagedListPath()
	if err != nil && a.ConfigErr == nil {
		a.ConfigErr = err
	}
	a.Store = managed.NewStore(a.FS, listPath)

	return a
}

// XBPS returns a repo-workflow client over this App's dependencies.
func (a *App) XBPS() *xbps.Client {
	return xbps.NewClient(a.Settings, a.Exec)
}

// Source returns a source-workflow runner over this App's dependencies.
func (a *App) Source() *source.Runner {
	return source.NewRunner(a.Settings, a.Exec, a.FS, a.XBPS())
}

// Stamps returns the sync stamp cache, or nil when no cache directory
// can be located. A nil cache just means syncs are never throttled.
func (a *App) Stamps() *cache.Stamps {
	dir, err := cache.DefaultDir()
	if err != nil {
		return nil
	}
	return cache.New(a.FS, dir)
}

func fallbackSettings() *config.Settings {
	return &config.Settings{
		XBPSInstall:  config.DefaultXBPSInstall,
		XBPSRemove:   config.DefaultXBPSRemove,
		XBPSQuery:    config.DefaultXBPSQuery,
		UseSudo:      true,
		LocalRepoRel: config.DefaultLocalRepo,
		UseNonfree:   true,
	}
}
