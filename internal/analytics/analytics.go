// Package analytics computes summary counts over the entity graph.
package analytics

import "github.com/ospreyr/shotmark/internal/models"

// Summary maps module key -> event type -> count.
type Summary map[string]map[models.EventType]int

// CountEventsByType tallies events per module by type. Pure and
// deterministic; the per-module totals equal the module's event count.
func CountEventsByType(modules []models.Module) Summary {
	out := make(Summary, len(modules))
	for _, mod := range modules {
		counts := map[models.EventType]int{}
		for _, shot := range mod.Screenshots {
			for _, ev := range shot.Events {
				counts[ev.EventType]++
			}
		}
		out[mod.Key] = counts
	}
	return out
}

// Total returns the summed event count for one module's counts.
func Total(counts map[models.EventType]int) int {
	var n int
	for _, c := range counts {
		n += c
	}
	return n
}
