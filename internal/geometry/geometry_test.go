package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

func approxEqual(a, b models.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.StartX-b.StartX) < eps &&
		math.Abs(a.StartY-b.StartY) < eps &&
		math.Abs(a.Width-b.Width) < eps &&
		math.Abs(a.Height-b.Height) < eps
}

func TestToPercentage(t *testing.T) {
	box := models.Rect{StartX: 192, StartY: 108, Width: 960, Height: 540}
	size := Size{Width: 1920, Height: 1080}

	got, err := ToPercentage(box, size)
	if err != nil {
		t.Fatalf("ToPercentage: %v", err)
	}
	want := models.Rect{StartX: 10, StartY: 10, Width: 50, Height: 50}
	if !approxEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	boxes := []models.Rect{
		{StartX: 0, StartY: 0, Width: 0, Height: 0},
		{StartX: 13.7, StartY: 211.01, Width: 640.5, Height: 42},
		{StartX: -5, StartY: 2000, Width: 1, Height: 0.25},
	}
	sizes := []Size{
		{Width: 1920, Height: 1080},
		{Width: 375, Height: 812},
		{Width: 1, Height: 1},
	}
	for _, b := range boxes {
		for _, s := range sizes {
			pct, err := ToPercentage(b, s)
			if err != nil {
				t.Fatalf("ToPercentage(%+v, %+v): %v", b, s, err)
			}
			back, err := ToPixels(pct, s)
			if err != nil {
				t.Fatalf("ToPixels: %v", err)
			}
			if !approxEqual(back, b) {
				t.Errorf("round trip of %+v via %+v = %+v", b, s, back)
			}
		}
	}
}

func TestDegenerateSize(t *testing.T) {
	box := models.Rect{StartX: 1, StartY: 1, Width: 1, Height: 1}
	for _, s := range []Size{{Width: 0, Height: 100}, {Width: 100, Height: 0}, {Width: -10, Height: 10}} {
		if _, err := ToPercentage(box, s); !errors.Is(err, apperr.ErrDegenerateImageSize) {
			t.Errorf("ToPercentage with size %+v: err = %v", s, err)
		}
		if _, err := ToPixels(box, s); !errors.Is(err, apperr.ErrDegenerateImageSize) {
			t.Errorf("ToPixels with size %+v: err = %v", s, err)
		}
	}
}

func TestOutOfRangeNotClamped(t *testing.T) {
	// Boxes extending past the image edge keep their out-of-range values.
	box := models.Rect{StartX: 1900, StartY: 0, Width: 200, Height: 100}
	got, err := ToPercentage(box, Size{Width: 1920, Height: 1080})
	if err != nil {
		t.Fatalf("ToPercentage: %v", err)
	}
	if got.StartX+got.Width <= 100 {
		t.Errorf("expected box past 100%%, got %+v", got)
	}
}
