package cache

import (
	"testing"
	"time"

	"github.com/saltnpepper97/vx/internal/system"
)

func newStamps(t *testing.T) *Stamps {
	t.Helper()
	return New(system.NewMockFS(), "/home/u/.cache/vx")
}

func TestIsFresh_UnmarkedKey(t *testing.T) {
	s := newStamps(t)
	if s.IsFresh("sync:/srv/void-packages", time.Minute) {
		t.Error("unmarked key should not be fresh")
	}
}

func TestMarkThenFresh(t *testing.T) {
	s := newStamps(t)
	s.Mark("sync:/srv/void-packages")

	if !s.IsFresh("sync:/srv/void-packages", time.Minute) {
		t.Error("just-marked key should be fresh")
	}
	if s.IsFresh("sync:/other", time.Minute) {
		t.Error("different key should not be fresh")
	}
}

func TestIsFresh_Expiry(t *testing.T) {
	s := newStamps(t)
	base := time.Now()
	s.now = func() time.Time { return base }

	s.Mark("key")

	s.now = func() time.Time { return base.Add(11 * time.Minute) }
	if s.IsFresh("key", 10*time.Minute) {
		t.Error("stamp past TTL should be stale")
	}

	s.now = func() time.Time { return base.Add(9 * time.Minute) }
	if !s.IsFresh("key", 10*time.Minute) {
		t.Error("stamp within TTL should be fresh")
	}
}

func TestForceFresh(t *testing.T) {
	s := newStamps(t)
	s.Mark("key")

	t.Setenv("VX_FRESH", "1")
	if s.IsFresh("key", time.Hour) {
		t.Error("VX_FRESH=1 must bypass stamps")
	}
}

func TestSyncTTL(t *testing.T) {
	t.Setenv("VX_SYNC_TTL_SECS", "")
	if got := SyncTTL(); got != DefaultSyncTTL {
		t.Errorf("SyncTTL() = %v, want default %v", got, DefaultSyncTTL)
	}

	t.Setenv("VX_SYNC_TTL_SECS", "30")
	if got := SyncTTL(); got != 30*time.Second {
		t.Errorf("SyncTTL() = %v, want 30s", got)
	}

	t.Setenv("VX_SYNC_TTL_SECS", "junk")
	if got := SyncTTL(); got != DefaultSyncTTL {
		t.Errorf("SyncTTL() with junk = %v, want default", got)
	}
}
