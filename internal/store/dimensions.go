package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

// ListDimensions returns the dimension set in insertion order.
func (s *DocumentStore) ListDimensions(ctx context.Context) ([]models.Dimension, error) {
	var dims []models.Dimension
	if err := s.backend.Load(ctx, ColDimensions, &dims); err != nil {
		return nil, err
	}
	if dims == nil {
		dims = []models.Dimension{}
	}
	return dims, nil
}

// CreateDimension appends a dimension. Both the user-assigned id and the
// name must be unique across the set.
func (s *DocumentStore) CreateDimension(ctx context.Context, d models.Dimension) (*models.Dimension, error) {
	d.ID = strings.TrimSpace(d.ID)
	d.Name = strings.TrimSpace(d.Name)
	if d.ID == "" || d.Name == "" {
		return nil, fmt.Errorf("dimension id and name are required: %w", apperr.ErrInvalidInput)
	}

	dims, err := s.ListDimensions(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range dims {
		if existing.ID == d.ID {
			return nil, fmt.Errorf("dimension id %q: %w", d.ID, apperr.ErrAlreadyExists)
		}
		if existing.Name == d.Name {
			return nil, fmt.Errorf("dimension name %q: %w", d.Name, apperr.ErrAlreadyExists)
		}
	}

	dims = append(dims, d)
	if err := s.backend.Save(ctx, ColDimensions, dims); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDimension removes a dimension by id. Events keep dangling references
// by design; the UI treats an unknown dimension id as unset.
func (s *DocumentStore) DeleteDimension(ctx context.Context, id string) error {
	dims, err := s.ListDimensions(ctx)
	if err != nil {
		return err
	}
	for i, d := range dims {
		if d.ID == id {
			dims = append(dims[:i], dims[i+1:]...)
			return s.backend.Save(ctx, ColDimensions, dims)
		}
	}
	return fmt.Errorf("dimension %q: %w", id, apperr.ErrNotFound)
}
