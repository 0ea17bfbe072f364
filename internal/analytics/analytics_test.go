package analytics

import (
	"testing"

	"github.com/ospreyr/shotmark/internal/models"
)

func TestCountEventsByType(t *testing.T) {
	mods := []models.Module{
		{
			Key: "home",
			Screenshots: []models.Screenshot{
				{Events: []models.Event{
					{EventType: models.EventTypePageView},
					{EventType: models.EventTypeTrackEvent},
				}},
				{Events: []models.Event{
					{EventType: models.EventTypePageView},
				}},
			},
		},
		{Key: "checkout"},
	}

	got := CountEventsByType(mods)
	if got["home"][models.EventTypePageView] != 2 {
		t.Errorf("home PageView = %d, want 2", got["home"][models.EventTypePageView])
	}
	if got["home"][models.EventTypeTrackEvent] != 1 {
		t.Errorf("home TrackEvent = %d, want 1", got["home"][models.EventTypeTrackEvent])
	}
	if Total(got["home"]) != 3 {
		t.Errorf("home total = %d, want 3", Total(got["home"]))
	}
	if len(got["checkout"]) != 0 {
		t.Errorf("checkout counts = %v, want empty", got["checkout"])
	}
}

func TestCountEventsByTypeDeterministic(t *testing.T) {
	mods := []models.Module{{Key: "m", Screenshots: []models.Screenshot{
		{Events: []models.Event{{EventType: models.EventTypeOutlink}}},
	}}}
	a := CountEventsByType(mods)
	b := CountEventsByType(mods)
	if a["m"][models.EventTypeOutlink] != b["m"][models.EventTypeOutlink] {
		t.Error("runs disagree")
	}
}
