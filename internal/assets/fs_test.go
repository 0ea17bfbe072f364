package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ospreyr/shotmark/internal/apperr"
)

func testFS(t *testing.T) *FS {
	t.Helper()
	f, err := NewFS(t.TempDir(), "/api/assets", 10*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestPutAndDelete(t *testing.T) {
	f := testFS(t)
	ctx := context.Background()

	locator, err := f.Put(ctx, "shot.png", strings.NewReader("png-bytes"), 9, "image/png")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if locator != "/assets/shot.png" {
		t.Errorf("locator = %q", locator)
	}

	data, err := os.ReadFile(filepath.Join(f.Root(), "shot.png"))
	if err != nil {
		t.Fatalf("file not on disk: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Error("content mismatch")
	}

	if err := f.Delete(ctx, locator); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.Root(), "shot.png")); !os.IsNotExist(err) {
		t.Error("file still on disk after delete")
	}
}

func TestDeleteMissing(t *testing.T) {
	f := testFS(t)

	err := f.Delete(context.Background(), "/assets/ghost.png")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Delete missing = %v, want ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	f := testFS(t)
	ctx := context.Background()

	if _, err := f.Put(ctx, "a.png", strings.NewReader("v1"), 2, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Put(ctx, "a.png", strings.NewReader("v2"), 2, ""); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(filepath.Join(f.Root(), "a.png"))
	if string(data) != "v2" {
		t.Errorf("content = %q, want v2", data)
	}
}

func TestTraversalBlocked(t *testing.T) {
	f := testFS(t)
	ctx := context.Background()

	for _, key := range []string{"../escape.png", "sub/dir.png", "..", ""} {
		if _, err := f.Put(ctx, key, strings.NewReader("x"), 1, ""); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("Put(%q) = %v, want ErrInvalidInput", key, err)
		}
		if _, err := f.UploadGrant(ctx, key, ""); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("UploadGrant(%q) = %v, want ErrInvalidInput", key, err)
		}
	}
}

func TestUploadGrant(t *testing.T) {
	f := testFS(t)

	grant, err := f.UploadGrant(context.Background(), "new.png", "image/png")
	if err != nil {
		t.Fatalf("UploadGrant: %v", err)
	}
	if grant.URL != "/api/assets/new.png" {
		t.Errorf("grant URL = %q", grant.URL)
	}
	if grant.ExpiresInSeconds() != 600 {
		t.Errorf("expires = %d, want 600", grant.ExpiresInSeconds())
	}
}
