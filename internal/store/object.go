package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ospreyr/shotmark/internal/apperr"
)

// ObjectClient is the subset of an object-store bucket the remote backend
// needs. Get must return apperr.ErrNotFound (possibly wrapped) for a key
// that has never been written.
type ObjectClient interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Object implements Backend with one JSON object per collection key, so the
// remote document set can be read and written piecewise.
type Object struct {
	client ObjectClient
}

// NewObject creates a remote backend over the given bucket client.
func NewObject(client ObjectClient) *Object {
	return &Object{client: client}
}

func objectKey(collection string) (string, error) {
	if _, ok := collectionFields[collection]; !ok {
		return "", fmt.Errorf("store: unknown collection %q", collection)
	}
	return collection + ".json", nil
}

// Load fetches the collection's object and decodes it into v. A key that
// does not exist yet leaves v untouched.
func (o *Object) Load(ctx context.Context, collection string, v any) error {
	key, err := objectKey(collection)
	if err != nil {
		return err
	}
	data, err := o.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("store: get %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

// Save writes the collection as a single JSON object.
func (o *Object) Save(ctx context.Context, collection string, v any) error {
	key, err := objectKey(collection)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := o.client.Put(ctx, key, data, "application/json"); err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	return nil
}
