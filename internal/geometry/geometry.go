// Package geometry converts annotation boxes between pixel space (tied to a
// rendered image size) and percentage space (the persisted, resolution
// independent form).
package geometry

import (
	"fmt"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

// Size is the pixel dimensions of a rendered screenshot image.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToPercentage converts a pixel-space box into percentage space for the
// given image size. Callers must reject zero-area images first; a size with
// a non-positive dimension returns apperr.ErrDegenerateImageSize.
func ToPercentage(box models.Rect, size Size) (models.Rect, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return models.Rect{}, fmt.Errorf("geometry: %.0fx%.0f: %w", size.Width, size.Height, apperr.ErrDegenerateImageSize)
	}
	return models.Rect{
		StartX: box.StartX / size.Width * 100,
		StartY: box.StartY / size.Height * 100,
		Width:  box.Width / size.Width * 100,
		Height: box.Height / size.Height * 100,
	}, nil
}

// ToPixels is the exact algebraic inverse of ToPercentage.
func ToPixels(box models.Rect, size Size) (models.Rect, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return models.Rect{}, fmt.Errorf("geometry: %.0fx%.0f: %w", size.Width, size.Height, apperr.ErrDegenerateImageSize)
	}
	return models.Rect{
		StartX: box.StartX / 100 * size.Width,
		StartY: box.StartY / 100 * size.Height,
		Width:  box.Width / 100 * size.Width,
		Height: box.Height / 100 * size.Height,
	}, nil
}
