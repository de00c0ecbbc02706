// Package cache provides a TTL stamp cache for throttling expensive
// operations, such as syncing the void-packages checkout.
//
// Stamps live under ~/.cache/vx as hash-keyed files holding a unix
// timestamp. VX_FRESH=1 bypasses all stamps; VX_SYNC_TTL_SECS overrides
// the default TTL.
package cache

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/saltnpepper97/vx/internal/system"
)

// DefaultSyncTTL is the default freshness window for sync stamps.
const DefaultSyncTTL = 600 * time.Second

const (
	envFresh = "VX_FRESH"
	envTTL   = "VX_SYNC_TTL_SECS"
)

// ForceFresh reports whether all stamps should be ignored.
func ForceFresh() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envFresh))) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// SyncTTL returns the configured freshness window.
func SyncTTL() time.Duration {
	v := strings.TrimSpace(os.Getenv(envTTL))
	if v == "" {
		return DefaultSyncTTL
	}
	secs, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return DefaultSyncTTL
	}
	return time.Duration(secs) * time.Second
}

// Stamps is a stamp cache rooted at a directory.
type Stamps struct {
	fs  system.FileSystem
	dir string

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a stamp cache rooted at dir.
func New(fs system.FileSystem, dir string) *Stamps {
	return &Stamps{fs: fs, dir: dir, now: time.Now}
}

// DefaultDir returns the conventional stamp directory (~/.cache/vx).
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("could not locate cache dir: %w", err)
	}
	return filepath.Join(base, "vx"), nil
}

func (s *Stamps) keyPath(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return filepath.Join(s.dir, fmt.Sprintf("%016x.stamp", h.Sum64()))
}

// IsFresh reports whether key was marked within ttl.
func (s *Stamps) IsFresh(key string, ttl time.Duration) bool {
	if ForceFresh() {
		return false
	}

	data, err := s.fs.ReadFile(s.keyPath(key))
	if err != nil {
		return false
	}

	last, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return false
	}

	age := s.now().Unix() - last
	return age >= 0 && time.Duration(age)*time.Second <= ttl
}

// Mark records key as updated now. Failures are deliberately swallowed:
// a missing stamp only costs an extra sync.
func (s *Stamps) Mark(key string) {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return
	}
	ts := strconv.FormatInt(s.now().Unix(), 10)
	_ = s.fs.WriteFile(s.keyPath(key), []byte(ts), 0644)
}
