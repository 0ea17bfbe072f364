// Package assets stores screenshot image binaries. Metadata and binaries are
// written independently; there is no two-phase commit between them, and the
// entity graph remains the source of truth when they disagree.
package assets

import (
	"context"
	"io"
	"time"
)

// Grant is a time-limited write capability for one asset key, handed to
// clients so they can upload bytes without the backend proxying them.
type Grant struct {
	URL       string        `json:"url"`
	ExpiresIn time.Duration `json:"-"`
}

// ExpiresInSeconds is the wire representation of the grant TTL.
func (g Grant) ExpiresInSeconds() int {
	return int(g.ExpiresIn / time.Second)
}

// Store persists binary assets under caller-chosen keys.
type Store interface {
	// Put writes the asset and returns its locator (the value stored in the
	// screenshot's url field).
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes the asset behind a locator previously returned by Put
	// or uploaded through a grant.
	Delete(ctx context.Context, locator string) error
	// UploadGrant issues a time-limited direct-upload capability for key.
	UploadGrant(ctx context.Context, key string, contentType string) (*Grant, error)
}
