// Package testutil provides shared test helpers for setting up document
// stores and asset directories.
package testutil

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/ospreyr/shotmark/internal/assets"
	"github.com/ospreyr/shotmark/internal/store"
)

// TestStore creates a document store backed by a temp file and a temp asset
// directory, both cleaned up automatically.
func TestStore(t *testing.T) store.Store {
	t.Helper()
	st, _ := TestStoreWithAssets(t)
	return st
}

// TestStoreWithAssets is TestStore plus the asset directory path, for tests
// that need to inspect asset files on disk.
func TestStoreWithAssets(t *testing.T) (store.Store, string) {
	t.Helper()

	dir := t.TempDir()
	backend, err := store.NewLocal(filepath.Join(dir, "document.json"))
	if err != nil {
		t.Fatal(err)
	}

	assetDir := filepath.Join(dir, "assets")
	fsAssets, err := assets.NewFS(assetDir, "/api/assets", 15*time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	return store.New(backend, fsAssets, slog.Default()), assetDir
}
