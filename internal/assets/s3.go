package assets

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ospreyr/shotmark/internal/objstore"
)

// keyPrefix separates binaries from the document objects in the same bucket.
const keyPrefix = "assets/"

// S3 implements Store on an S3-compatible bucket with presigned PUT grants.
type S3 struct {
	bucket   *objstore.Bucket
	grantTTL time.Duration
}

// NewS3 creates an object-store-backed asset store.
func NewS3(bucket *objstore.Bucket, grantTTL time.Duration) *S3 {
	return &S3{bucket: bucket, grantTTL: grantTTL}
}

// Put streams the asset into the bucket and returns the object key as locator.
func (s *S3) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	objKey := keyPrefix + key
	if err := s.bucket.PutStream(ctx, objKey, r, size, contentType); err != nil {
		return "", err
	}
	return objKey, nil
}

// Delete removes the object behind the locator.
func (s *S3) Delete(ctx context.Context, locator string) error {
	if !strings.HasPrefix(locator, keyPrefix) {
		return fmt.Errorf("assets: foreign locator %q", locator)
	}
	return s.bucket.Delete(ctx, locator)
}

// UploadGrant issues a presigned PUT URL for the asset key.
func (s *S3) UploadGrant(ctx context.Context, key string, _ string) (*Grant, error) {
	u, err := s.bucket.PresignedPut(ctx, keyPrefix+key, s.grantTTL)
	if err != nil {
		return nil, err
	}
	return &Grant{URL: u.String(), ExpiresIn: s.grantTTL}, nil
}
