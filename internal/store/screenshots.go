package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

// CreateScreenshot appends a screenshot to the addressed module's sequence.
// ID, timestamps and a default TODO status are assigned here.
func (s *DocumentStore) CreateScreenshot(ctx context.Context, moduleKey string, shot models.Screenshot) (*models.Screenshot, error) {
	shot.Name = strings.TrimSpace(shot.Name)
	if shot.Name == "" {
		return nil, fmt.Errorf("screenshot name is empty: %w", apperr.ErrInvalidInput)
	}
	if shot.Status == "" {
		shot.Status = models.StatusTodo
	}
	if !shot.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", shot.Status, apperr.ErrInvalidInput)
	}

	mods, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, m := range mods {
		if m.Key == moduleKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("module %q: %w", moduleKey, apperr.ErrNotFound)
	}

	now := time.Now().UTC()
	shot.ID = uuid.NewString()
	shot.CreatedAt = now
	shot.UpdatedAt = now
	shot.Events = []models.Event{}

	mods[idx].Screenshots = append(mods[idx].Screenshots, shot)
	if err := s.saveModules(ctx, mods); err != nil {
		return nil, err
	}
	return &shot, nil
}

// UpdateScreenshot replaces a screenshot's own fields by id. Embedded events
// and the creation time are preserved so a metadata edit can never drop
// annotations.
func (s *DocumentStore) UpdateScreenshot(ctx context.Context, shot models.Screenshot) (*models.Screenshot, error) {
	shot.Name = strings.TrimSpace(shot.Name)
	if shot.Name == "" {
		return nil, fmt.Errorf("screenshot name is empty: %w", apperr.ErrInvalidInput)
	}
	if shot.Status != "" && !shot.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", shot.Status, apperr.ErrInvalidInput)
	}

	mods, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	for mi := range mods {
		for si := range mods[mi].Screenshots {
			cur := &mods[mi].Screenshots[si]
			if cur.ID != shot.ID {
				continue
			}
			cur.Name = shot.Name
			cur.URL = shot.URL
			cur.PageName = shot.PageName
			cur.LabelID = shot.LabelID
			if shot.Status != "" {
				cur.Status = shot.Status
			}
			cur.UpdatedAt = time.Now().UTC()
			updated := *cur
			if err := s.saveModules(ctx, mods); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("screenshot %q: %w", shot.ID, apperr.ErrNotFound)
}

// DeleteScreenshot locates the owning module by scanning all modules,
// removes the screenshot (its embedded events go with it), persists, and
// then deletes the binary asset. Asset failure is logged and surfaced as a
// partial failure; the metadata removal is not rolled back.
func (s *DocumentStore) DeleteScreenshot(ctx context.Context, id string) error {
	mods, err := s.loadModules(ctx)
	if err != nil {
		return err
	}
	var removed *models.Screenshot
	for mi := range mods {
		shots := mods[mi].Screenshots
		for si := range shots {
			if shots[si].ID == id {
				shot := shots[si]
				removed = &shot
				mods[mi].Screenshots = append(shots[:si], shots[si+1:]...)
				break
			}
		}
		if removed != nil {
			break
		}
	}
	if removed == nil {
		return fmt.Errorf("screenshot %q: %w", id, apperr.ErrNotFound)
	}
	if err := s.saveModules(ctx, mods); err != nil {
		return err
	}
	if !s.deleteAsset(ctx, *removed) {
		return fmt.Errorf("screenshot %q removed but asset delete failed: %w", id, apperr.ErrPartialFailure)
	}
	return nil
}

// ReorderScreenshots persists a new screenshot sequence for a module. The
// ids must be exactly a permutation of the module's current sequence.
func (s *DocumentStore) ReorderScreenshots(ctx context.Context, moduleKey string, orderedIDs []string) error {
	mods, err := s.loadModules(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, m := range mods {
		if m.Key == moduleKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("module %q: %w", moduleKey, apperr.ErrNotFound)
	}

	current := mods[idx].Screenshots
	if len(orderedIDs) != len(current) {
		return fmt.Errorf("order lists %d ids, module has %d screenshots: %w",
			len(orderedIDs), len(current), apperr.ErrInvalidInput)
	}
	byID := make(map[string]models.Screenshot, len(current))
	for _, shot := range current {
		byID[shot.ID] = shot
	}
	reordered := make([]models.Screenshot, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		shot, ok := byID[id]
		if !ok {
			return fmt.Errorf("id %q not in module or repeated: %w", id, apperr.ErrInvalidInput)
		}
		delete(byID, id)
		reordered = append(reordered, shot)
	}

	mods[idx].Screenshots = reordered
	return s.saveModules(ctx, mods)
}
