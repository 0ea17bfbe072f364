// Package view holds the pure read-side projections over a screenshot
// collection: text/label filtering and manual reordering. Nothing here
// touches persistence; callers persist results through the store.
package view

import (
	"fmt"
	"strings"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

// tokenize splits a search term on whitespace and hyphen runs into
// lowercase tokens.
func tokenize(term string) []string {
	return strings.FieldsFunc(strings.ToLower(term), func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// Filter keeps screenshots whose lowercased name contains every search
// token (AND semantics) and, if labelID is set, whose label matches. Input
// order is preserved; filtering twice with the same arguments is a no-op.
func Filter(shots []models.Screenshot, searchTerm, labelID string) []models.Screenshot {
	tokens := tokenize(searchTerm)
	out := make([]models.Screenshot, 0, len(shots))
	for _, shot := range shots {
		name := strings.ToLower(shot.Name)
		match := true
		for _, tok := range tokens {
			if !strings.Contains(name, tok) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if labelID != "" && shot.LabelID != labelID {
			continue
		}
		out = append(out, shot)
	}
	return out
}

// Reorder returns a new sequence with the screenshot movedID removed from
// its old position and reinserted at newIndex (clamped to the valid range).
// The input is not modified.
func Reorder(shots []models.Screenshot, movedID string, newIndex int) ([]models.Screenshot, error) {
	from := -1
	for i, shot := range shots {
		if shot.ID == movedID {
			from = i
			break
		}
	}
	if from < 0 {
		return nil, fmt.Errorf("screenshot %q: %w", movedID, apperr.ErrNotFound)
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(shots)-1 {
		newIndex = len(shots) - 1
	}

	out := make([]models.Screenshot, 0, len(shots))
	out = append(out, shots[:from]...)
	out = append(out, shots[from+1:]...)
	moved := shots[from]
	out = append(out[:newIndex], append([]models.Screenshot{moved}, out[newIndex:]...)...)
	return out, nil
}
