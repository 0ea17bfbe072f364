package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

// GetModules returns the full module sequence including nested screenshots
// and events, in stored order.
func (s *DocumentStore) GetModules(ctx context.Context) ([]models.Module, error) {
	mods, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	if mods == nil {
		mods = []models.Module{}
	}
	return mods, nil
}

// PutModules replaces the module list wholesale. Used for module reordering
// and bulk edits; a single backend save keeps it atomic for readers.
func (s *DocumentStore) PutModules(ctx context.Context, mods []models.Module) error {
	seen := make(map[string]struct{}, len(mods))
	for _, m := range mods {
		if m.Key == "" {
			return fmt.Errorf("module %q has no key: %w", m.Name, apperr.ErrInvalidInput)
		}
		if _, ok := seen[m.Key]; ok {
			return fmt.Errorf("duplicate module key %q: %w", m.Key, apperr.ErrInvalidInput)
		}
		seen[m.Key] = struct{}{}
	}
	return s.saveModules(ctx, mods)
}

// CreateModule appends a new empty module. The key is derived from the name
// once and must be unique; "Home Page" and "home page" collide.
func (s *DocumentStore) CreateModule(ctx context.Context, name string) (*models.Module, error) {
	name = strings.TrimSpace(name)
	key := models.KeyFromName(name)
	if key == "" {
		return nil, fmt.Errorf("module name is empty: %w", apperr.ErrInvalidInput)
	}

	mods, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range mods {
		if m.Key == key {
			return nil, fmt.Errorf("module key %q: %w", key, apperr.ErrAlreadyExists)
		}
	}

	mod := models.Module{
		ID:          uuid.NewString(),
		Name:        name,
		Key:         key,
		Screenshots: []models.Screenshot{},
	}
	mods = append(mods, mod)
	if err := s.saveModules(ctx, mods); err != nil {
		return nil, err
	}
	return &mod, nil
}

// DeleteModule removes a module and all its screenshots. Binary assets of
// the removed screenshots are deleted best-effort after the metadata write;
// failures are logged and reported as a partial failure, not rolled back.
func (s *DocumentStore) DeleteModule(ctx context.Context, key string) error {
	mods, err := s.loadModules(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, m := range mods {
		if m.Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("module %q: %w", key, apperr.ErrNotFound)
	}
	removed := mods[idx]
	mods = append(mods[:idx], mods[idx+1:]...)
	if err := s.saveModules(ctx, mods); err != nil {
		return err
	}

	var failed int
	for _, shot := range removed.Screenshots {
		if !s.deleteAsset(ctx, shot) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("module %q removed but %d asset deletes failed: %w", key, failed, apperr.ErrPartialFailure)
	}
	return nil
}

// deleteAsset removes a screenshot's binary best-effort and reports success.
func (s *DocumentStore) deleteAsset(ctx context.Context, shot models.Screenshot) bool {
	if s.assets == nil || shot.URL == "" {
		return true
	}
	err := s.assets.Delete(ctx, shot.URL)
	if errors.Is(err, apperr.ErrNotFound) {
		// Already gone; nothing to clean up.
		return true
	}
	if err != nil {
		s.logger.Warn("asset delete failed",
			slog.String("screenshot_id", shot.ID),
			slog.String("locator", shot.URL),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
