// Package objstore wraps an S3-compatible bucket behind the small surface
// the document backend and asset store need.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ospreyr/shotmark/internal/apperr"
)

// Bucket is a named bucket on an S3-compatible endpoint.
type Bucket struct {
	client *minio.Client
	bucket string
}

// Config holds the connection settings for an S3-compatible endpoint.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// New connects to the endpoint. The bucket must already exist.
func New(cfg Config) (*Bucket, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("objstore: connect %s: %w", cfg.Endpoint, err)
	}
	return &Bucket{client: client, bucket: cfg.Bucket}, nil
}

// Get reads an object in full. A missing key returns apperr.ErrNotFound.
func (b *Bucket) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("objstore: get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("objstore: %s: %w", key, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("objstore: read %s: %w", key, err)
	}
	return data, nil
}

// Put writes an object in full.
func (b *Bucket) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("objstore: put %s: %w", key, err)
	}
	return nil
}

// PutStream writes an object from a reader of known size.
func (b *Bucket) PutStream(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := b.client.PutObject(ctx, b.bucket, key, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("objstore: put %s: %w", key, err)
	}
	return nil
}

// Delete removes an object. Deleting a missing key is not an error on S3.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("objstore: delete %s: %w", key, err)
	}
	return nil
}

// PresignedPut issues a time-limited URL a client can PUT object bytes to
// directly, without the backend proxying them.
func (b *Bucket) PresignedPut(ctx context.Context, key string, expiry time.Duration) (*url.URL, error) {
	u, err := b.client.PresignedPutObject(ctx, b.bucket, key, expiry)
	if err != nil {
		return nil, fmt.Errorf("objstore: presign %s: %w", key, err)
	}
	return u, nil
}
