package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Local implements Backend on top of a single aggregate JSON document
// ({modules, dimensions, eventCategories, ...}) stored as one local file.
// Writes are atomic: temp file, fsync, rename.
type Local struct {
	path string
}

// NewLocal creates a local backend writing to the given file path. The file
// does not have to exist yet; the parent directory is created on first save.
func NewLocal(path string) (*Local, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve document path: %w", err)
	}
	return &Local{path: abs}, nil
}

// Path returns the absolute path of the backing document file.
func (l *Local) Path() string {
	return l.path
}

// Load reads the aggregate document and decodes one collection into v.
// A missing file or missing field leaves v untouched.
func (l *Local) Load(_ context.Context, collection string, v any) error {
	field, ok := collectionFields[collection]
	if !ok {
		return fmt.Errorf("store: unknown collection %q", collection)
	}
	doc, err := l.readDocument()
	if err != nil {
		return err
	}
	raw, ok := doc[field]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", collection, err)
	}
	return nil
}

// Save re-reads the aggregate document, replaces one collection, and writes
// the whole document back atomically.
func (l *Local) Save(_ context.Context, collection string, v any) error {
	field, ok := collectionFields[collection]
	if !ok {
		return fmt.Errorf("store: unknown collection %q", collection)
	}
	doc, err := l.readDocument()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", collection, err)
	}
	doc[field] = raw

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}
	return l.writeAtomic(data)
}

func (l *Local) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("store: read document: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: parse document: %w", err)
	}
	return doc, nil
}

// writeAtomic writes data via tmp file -> fsync -> rename, so readers never
// observe a half-written document.
func (l *Local) writeAtomic(data []byte) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".shotmark-tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	success = true
	return nil
}
