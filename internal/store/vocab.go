package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

// The string vocabularies (event categories, action names, event names) all
// share one contract: insertion order, trimmed entries, case-sensitive
// uniqueness, explicit remove.

func (s *DocumentStore) listStrings(ctx context.Context, collection string) ([]string, error) {
	var values []string
	if err := s.backend.Load(ctx, collection, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func (s *DocumentStore) addString(ctx context.Context, collection, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s entry is empty: %w", collection, apperr.ErrInvalidInput)
	}
	values, err := s.listStrings(ctx, collection)
	if err != nil {
		return err
	}
	for _, existing := range values {
		if existing == value {
			return fmt.Errorf("%s entry %q: %w", collection, value, apperr.ErrAlreadyExists)
		}
	}
	return s.backend.Save(ctx, collection, append(values, value))
}

func (s *DocumentStore) removeString(ctx context.Context, collection, value string) error {
	values, err := s.listStrings(ctx, collection)
	if err != nil {
		return err
	}
	for i, existing := range values {
		if existing == value {
			return s.backend.Save(ctx, collection, append(values[:i], values[i+1:]...))
		}
	}
	return fmt.Errorf("%s entry %q: %w", collection, value, apperr.ErrNotFound)
}

// ListEventCategories returns the event category vocabulary.
func (s *DocumentStore) ListEventCategories(ctx context.Context) ([]string, error) {
	return s.listStrings(ctx, ColEventCategories)
}

// AddEventCategory appends a unique category.
func (s *DocumentStore) AddEventCategory(ctx context.Context, value string) error {
	return s.addString(ctx, ColEventCategories, value)
}

// RemoveEventCategory removes a category.
func (s *DocumentStore) RemoveEventCategory(ctx context.Context, value string) error {
	return s.removeString(ctx, ColEventCategories, value)
}

// ListEventActions returns the action name vocabulary.
func (s *DocumentStore) ListEventActions(ctx context.Context) ([]string, error) {
	return s.listStrings(ctx, ColEventActions)
}

// AddEventAction appends a unique action name.
func (s *DocumentStore) AddEventAction(ctx context.Context, value string) error {
	return s.addString(ctx, ColEventActions, value)
}

// RemoveEventAction removes an action name.
func (s *DocumentStore) RemoveEventAction(ctx context.Context, value string) error {
	return s.removeString(ctx, ColEventActions, value)
}

// ListEventNames returns the event name vocabulary.
func (s *DocumentStore) ListEventNames(ctx context.Context) ([]string, error) {
	return s.listStrings(ctx, ColEventNames)
}

// AddEventName appends a unique event name.
func (s *DocumentStore) AddEventName(ctx context.Context, value string) error {
	return s.addString(ctx, ColEventNames, value)
}

// RemoveEventName removes an event name.
func (s *DocumentStore) RemoveEventName(ctx context.Context, value string) error {
	return s.removeString(ctx, ColEventNames, value)
}

// ListPageLabels returns the page label set in insertion order.
func (s *DocumentStore) ListPageLabels(ctx context.Context) ([]models.Label, error) {
	var labels []models.Label
	if err := s.backend.Load(ctx, ColPageLabels, &labels); err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []models.Label{}
	}
	return labels, nil
}

// AddPageLabel appends a label with a generated id; names are unique.
func (s *DocumentStore) AddPageLabel(ctx context.Context, name string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("label name is empty: %w", apperr.ErrInvalidInput)
	}
	labels, err := s.ListPageLabels(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range labels {
		if l.Name == name {
			return nil, fmt.Errorf("label %q: %w", name, apperr.ErrAlreadyExists)
		}
	}
	label := models.Label{ID: uuid.NewString(), Name: name}
	if err := s.backend.Save(ctx, ColPageLabels, append(labels, label)); err != nil {
		return nil, err
	}
	return &label, nil
}

// RemovePageLabel removes a label by id. Screenshots referencing it keep a
// dangling labelId which filters simply never match.
func (s *DocumentStore) RemovePageLabel(ctx context.Context, id string) error {
	labels, err := s.ListPageLabels(ctx)
	if err != nil {
		return err
	}
	for i, l := range labels {
		if l.ID == id {
			return s.backend.Save(ctx, ColPageLabels, append(labels[:i], labels[i+1:]...))
		}
	}
	return fmt.Errorf("label %q: %w", id, apperr.ErrNotFound)
}
