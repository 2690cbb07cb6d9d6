package updater

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCache_Missing(t *testing.T) {
	tmp := t.TempDir()
	cache, err := LoadCache(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Error("expected nil cache for missing file")
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	tmp := t.TempDir()

	now := time.Now().Truncate(time.Second)
	original := &VersionCache{
		LatestVersion:   "1.2.0",
		CurrentVersion:  "1.1.0",
		ReleaseURL:      "https://github.com/obrakit-labs/obrakit/releases/tag/v1.2.0",
		CheckedAt:       now,
		UpdateAvailable: true,
	}

	if err := SaveCache(tmp, original); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(tmp)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}

	if loaded.LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q, want %q", loaded.LatestVersion, "1.2.0")
	}
	if loaded.CurrentVersion != "1.1.0" {
		t.Errorf("CurrentVersion = %q, want %q", loaded.CurrentVersion, "1.1.0")
	}
	if loaded.ReleaseURL != original.ReleaseURL {
		t.Errorf("ReleaseURL = %q, want %q", loaded.ReleaseURL, original.ReleaseURL)
	}
	if !loaded.UpdateAvailable {
		t.Error("UpdateAvailable should be true")
	}
}

func TestLoadCache_Corrupted(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, cacheFileName)
	os.WriteFile(path, []byte("not valid json{{{"), 0644)

	if _, err := LoadCache(tmp); err == nil {
		t.Error("expected error for corrupted cache")
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, DefaultCacheMaxAge) {
		t.Error("nil cache should be stale")
	}

	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, DefaultCacheMaxAge) {
		t.Error("fresh cache should not be stale")
	}

	old := &VersionCache{CheckedAt: time.Now().Add(-48 * time.Hour)}
	if !IsCacheStale(old, DefaultCacheMaxAge) {
		t.Error("two-day-old cache should be stale")
	}
}
