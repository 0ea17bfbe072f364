package sse

import (
	"strings"
	"testing"
	"time"
)

func recv(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestPublishChangeReachesSubscribers(t *testing.T) {
	b := NewBroker(time.Hour) // throttle summary out of the way after the first
	defer b.Close()

	ch := b.Subscribe()
	b.PublishChange("screenshot", "created", "shot-1")

	msg := recv(t, ch)
	if !strings.Contains(msg, "event: screenshot.created") {
		t.Errorf("msg = %q", msg)
	}
	if !strings.Contains(msg, `"id":"shot-1"`) {
		t.Errorf("msg = %q", msg)
	}

	// First change also triggers the summary signal.
	msg = recv(t, ch)
	if !strings.Contains(msg, "event: summary.updated") {
		t.Errorf("msg = %q", msg)
	}
}

func TestSummaryThrottled(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()

	ch := b.Subscribe()
	b.PublishChange("event", "created", "e1")
	b.PublishChange("event", "created", "e2")

	var summaries int
	for i := 0; i < 3; i++ {
		if strings.Contains(recv(t, ch), "summary.updated") {
			summaries++
		}
	}
	if summaries != 1 {
		t.Errorf("summaries = %d, want 1", summaries)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker(0)
	defer b.Close()

	ch := b.Subscribe()
	if n := b.ClientCount(); n != 1 {
		t.Fatalf("ClientCount = %d", n)
	}
	b.Unsubscribe(ch)
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestPublishAfterCloseIsSafe(t *testing.T) {
	b := NewBroker(0)
	b.Close()
	b.PublishChange("module", "deleted", "m1")
	if n := b.ClientCount(); n != 0 {
		t.Errorf("ClientCount = %d", n)
	}
}
