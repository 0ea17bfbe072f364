package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

func validateEvent(ev *models.Event) error {
	ev.Name = strings.TrimSpace(ev.Name)
	ev.Category = strings.TrimSpace(ev.Category)
	ev.Action = strings.TrimSpace(ev.Action)
	if !ev.EventType.Valid() {
		return fmt.Errorf("event type %q: %w", ev.EventType, apperr.ErrInvalidInput)
	}
	if ev.Name == "" || ev.Category == "" || ev.Action == "" {
		return fmt.Errorf("event name, category and action are required: %w", apperr.ErrInvalidInput)
	}
	return nil
}

// CreateEvent adds an event to the screenshot named by its screenshotId.
func (s *DocumentStore) CreateEvent(ctx context.Context, ev models.Event) (*models.Event, error) {
	if err := validateEvent(&ev); err != nil {
		return nil, err
	}
	mods, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	for mi := range mods {
		for si := range mods[mi].Screenshots {
			shot := &mods[mi].Screenshots[si]
			if shot.ID != ev.ScreenshotID {
				continue
			}
			ev.ID = uuid.NewString()
			shot.Events = append(shot.Events, ev)
			if err := s.saveModules(ctx, mods); err != nil {
				return nil, err
			}
			return &ev, nil
		}
	}
	return nil, fmt.Errorf("screenshot %q: %w", ev.ScreenshotID, apperr.ErrNotFound)
}

// UpdateEvent replaces an event record by id wherever it lives in the graph.
// The event stays on its owning screenshot.
func (s *DocumentStore) UpdateEvent(ctx context.Context, ev models.Event) (*models.Event, error) {
	if err := validateEvent(&ev); err != nil {
		return nil, err
	}
	mods, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	for mi := range mods {
		for si := range mods[mi].Screenshots {
			shot := &mods[mi].Screenshots[si]
			for ei := range shot.Events {
				if shot.Events[ei].ID != ev.ID {
					continue
				}
				ev.ScreenshotID = shot.ID
				shot.Events[ei] = ev
				if err := s.saveModules(ctx, mods); err != nil {
					return nil, err
				}
				return &ev, nil
			}
		}
	}
	return nil, fmt.Errorf("event %q: %w", ev.ID, apperr.ErrNotFound)
}

// DeleteEvent removes an event by id.
func (s *DocumentStore) DeleteEvent(ctx context.Context, id string) error {
	mods, err := s.loadModules(ctx)
	if err != nil {
		return err
	}
	for mi := range mods {
		for si := range mods[mi].Screenshots {
			shot := &mods[mi].Screenshots[si]
			for ei := range shot.Events {
				if shot.Events[ei].ID != id {
					continue
				}
				shot.Events = append(shot.Events[:ei], shot.Events[ei+1:]...)
				return s.saveModules(ctx, mods)
			}
		}
	}
	return fmt.Errorf("event %q: %w", id, apperr.ErrNotFound)
}

// ListEvents returns all events of one screenshot. An unknown (or already
// deleted) screenshot id yields an empty set, not an error, so callers
// observe cascade deletion as "no events remain".
func (s *DocumentStore) ListEvents(ctx context.Context, screenshotID string) ([]models.Event, error) {
	mods, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range mods {
		for _, shot := range m.Screenshots {
			if shot.ID == screenshotID {
				if shot.Events == nil {
					return []models.Event{}, nil
				}
				return shot.Events, nil
			}
		}
	}
	return []models.Event{}, nil
}
