// Package managed persists the set of source packages the user has opted
// into rebuilding repeatedly.
//
// The list is a TOML manifest (~/.config/vx/managed-src.toml) with a single
// `packages` array. It is loaded lazily on first access, mutated in memory,
// and written back with a write-temp-then-rename so a crash mid-write never
// corrupts the previous contents. Concurrent vx invocations are
// last-writer-wins at the file level; the tool is interactive and
// single-user, so no locking is attempted.
package managed

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/system"
)

// nameRegex matches xbps package names: alphanumeric start, then
// alphanumerics plus the separators xbps allows.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)

// ValidateName checks that a package name is usable as a managed entry.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid package name %q", name)
	}
	return nil
}

// manifest mirrors the on-disk managed-src.toml layout.
type manifest struct {
	Packages []string `toml:"packages"`
}

// Store is the persistent managed-package list.
type Store struct {
	fs   system.FileSystem
	path string

	loaded bool
	names  []string
	index  map[string]bool
}

// NewStore creates a store backed by the given file. Nothing is read
// until the first access.
func NewStore(fs system.FileSystem, path string) *Store {
	return &Store{
		fs:    fs,
		path:  path,
		index: make(map[string]bool),
	}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		// A list that was never written is an empty list.
		if !s.fs.Exists(s.path) {
			s.loaded = true
			return nil
		}
		return errors.ManagedListError("read", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return errors.ManagedListError("parse", fmt.Errorf("%s: %w", s.path, err))
	}

	for _, name := range m.Packages {
		name = strings.TrimSpace(name)
		if name == "" || s.index[name] {
			continue
		}
		s.names = append(s.names, name)
		s.index[name] = true
	}
	s.loaded = true
	return nil
}

// Add inserts a package name, reporting whether it was newly added.
// An already-present name is a no-op and triggers no file write.
func (s *Store) Add(name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	if s.index[name] {
		return false, nil
	}
	s.names = append(s.names, name)
	s.index[name] = true
	return true, nil
}

// Remove deletes a package name, reporting whether it was present.
func (s *Store) Remove(name string) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	if !s.index[name] {
		return false, nil
	}
	delete(s.index, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true, nil
}

// Contains reports whether a package name is managed.
func (s *Store) Contains(name string) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	return s.index[name], nil
}

// All returns the managed names in insertion order.
func (s *Store) All() ([]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, nil
}

// Len returns the number of managed entries.
func (s *Store) Len() (int, error) {
	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}
	return len(s.names), nil
}

// Persist writes the manifest atomically: a temp file in the target
// directory, then a rename into place.
func (s *Store) Persist() error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.ManagedListError("write", err)
	}

	var sb strings.Builder
	sb.WriteString("# Source packages managed by vx.\n")
	sb.WriteString("# Edit with `vx src add` / `vx pick`.\n\n")

	enc, err := toml.Marshal(manifest{Packages: s.names})
	if err != nil {
		return errors.ManagedListError("encode", err)
	}
	sb.Write(enc)

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, []byte(sb.String()), 0644); err != nil {
		return errors.ManagedListError("write", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return errors.ManagedListError("rename", err)
	}
	return nil
}
