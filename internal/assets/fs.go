package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ospreyr/shotmark/internal/apperr"
)

// servePrefix is where the HTTP layer serves stored files from.
const servePrefix = "/assets/"

// FS implements Store on a local directory. Grants point at the API's own
// direct-upload endpoint since the filesystem cannot presign anything.
type FS struct {
	root      string
	uploadURL string // e.g. /api/assets
	grantTTL  time.Duration
}

// NewFS creates a filesystem asset store rooted at dir. The directory is
// created if missing.
func NewFS(dir, uploadURL string, grantTTL time.Duration) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("assets: create root: %w", err)
	}
	return &FS{root: abs, uploadURL: strings.TrimSuffix(uploadURL, "/"), grantTTL: grantTTL}, nil
}

// Root returns the absolute directory files are stored in.
func (f *FS) Root() string {
	return f.root
}

// safeName validates that key is a plain file name (no separators, no
// traversal) and returns the absolute path under the root.
func (f *FS) safeName(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("assets: key is required: %w", apperr.ErrInvalidInput)
	}
	cleaned := filepath.Clean(key)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("assets: invalid key %q: %w", key, apperr.ErrInvalidInput)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("assets: key escapes root: %w", apperr.ErrInvalidInput)
	}
	return abs, nil
}

// Put writes the asset bytes and returns the serving path as locator.
func (f *FS) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	abs, err := f.safeName(key)
	if err != nil {
		return "", err
	}
	dst, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("assets: create %s: %w", key, err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("assets: write %s: %w", key, err)
	}
	return servePrefix + key, nil
}

// Delete removes the file behind a locator. A locator whose file is already
// gone reports apperr.ErrNotFound so orphans stay detectable.
func (f *FS) Delete(_ context.Context, locator string) error {
	key := strings.TrimPrefix(locator, servePrefix)
	abs, err := f.safeName(key)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("assets: %s: %w", key, apperr.ErrNotFound)
		}
		return fmt.Errorf("assets: delete %s: %w", key, err)
	}
	return nil
}

// UploadGrant returns a grant against the API's direct-upload endpoint. The
// TTL is advisory for this backend: uploads are same-origin and authenticated
// by the normal API middleware.
func (f *FS) UploadGrant(_ context.Context, key string, _ string) (*Grant, error) {
	if _, err := f.safeName(key); err != nil {
		return nil, err
	}
	return &Grant{URL: f.uploadURL + "/" + key, ExpiresIn: f.grantTTL}, nil
}
