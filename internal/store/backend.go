package store

import "context"

// Collection keys. The remote backend stores one JSON object per key; the
// local backend maps each key onto a field of the single aggregate document.
const (
	ColModules         = "modules"
	ColDimensions      = "dimensions"
	ColEventCategories = "event-categories"
	ColEventActions    = "event-actions"
	ColEventNames      = "event-names"
	ColPageLabels      = "page-labels"
)

// collectionFields maps a collection key to its field name in the aggregate
// document written by the local backend.
var collectionFields = map[string]string{
	ColModules:         "modules",
	ColDimensions:      "dimensions",
	ColEventCategories: "eventCategories",
	ColEventActions:    "eventActionNames",
	ColEventNames:      "eventNames",
	ColPageLabels:      "pageLabels",
}

// Backend persists one named collection at a time. Every store mutation is a
// single Load/Save cycle against it; there is no optimistic concurrency, so
// two concurrent writers to the same collection race and the last write wins.
// Loading a collection that has never been saved leaves v at its zero value.
type Backend interface {
	Load(ctx context.Context, collection string, v any) error
	Save(ctx context.Context, collection string, v any) error
}
