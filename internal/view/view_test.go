package view

import (
	"errors"
	"testing"

	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
)

func shots(names ...string) []models.Screenshot {
	out := make([]models.Screenshot, len(names))
	for i, n := range names {
		out[i] = models.Screenshot{ID: n, Name: n}
	}
	return out
}

func ids(shots []models.Screenshot) []string {
	out := make([]string, len(shots))
	for i, s := range shots {
		out[i] = s.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterTokensAnd(t *testing.T) {
	in := shots("Home Page Hero", "Home Page Footer", "Checkout Summary")

	got := Filter(in, "home footer", "")
	if len(got) != 1 || got[0].Name != "Home Page Footer" {
		t.Errorf("got %v", ids(got))
	}
}

func TestFilterSplitsOnHyphens(t *testing.T) {
	in := shots("checkout-summary-mobile", "checkout desktop")

	got := Filter(in, "checkout-mobile", "")
	if len(got) != 1 || got[0].Name != "checkout-summary-mobile" {
		t.Errorf("got %v", ids(got))
	}
}

func TestFilterByLabel(t *testing.T) {
	in := shots("a", "b", "c")
	in[1].LabelID = "lbl-1"

	got := Filter(in, "", "lbl-1")
	if !equal(ids(got), []string{"b"}) {
		t.Errorf("got %v", ids(got))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	in := shots("zebra page", "alpha page", "mid page")

	got := Filter(in, "page", "")
	if !equal(ids(got), []string{"zebra page", "alpha page", "mid page"}) {
		t.Errorf("order changed: %v", ids(got))
	}
}

func TestFilterIdempotent(t *testing.T) {
	in := shots("home one", "home two", "about")

	once := Filter(in, "home", "")
	twice := Filter(once, "home", "")
	if !equal(ids(once), ids(twice)) {
		t.Errorf("once %v twice %v", ids(once), ids(twice))
	}
}

func TestReorder(t *testing.T) {
	in := shots("A", "B", "C")

	got, err := Reorder(in, "B", 0)
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if !equal(ids(got), []string{"B", "A", "C"}) {
		t.Errorf("got %v", ids(got))
	}
	// Input untouched.
	if !equal(ids(in), []string{"A", "B", "C"}) {
		t.Errorf("input mutated: %v", ids(in))
	}
}

func TestReorderToEnd(t *testing.T) {
	in := shots("A", "B", "C")
	got, err := Reorder(in, "A", 99)
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if !equal(ids(got), []string{"B", "C", "A"}) {
		t.Errorf("got %v", ids(got))
	}
}

func TestReorderUnknownID(t *testing.T) {
	if _, err := Reorder(shots("A"), "nope", 0); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v", err)
	}
}
