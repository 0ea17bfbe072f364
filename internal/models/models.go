// Package models defines the domain types for Shotmark.
package models

import (
	"strings"
	"time"
)

// EventType classifies what a spatial annotation tracks.
type EventType string

const (
	EventTypePageView   EventType = "PageView"
	EventTypeTrackEvent EventType = "TrackEvent"
	EventTypeOutlink    EventType = "Outlink"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypePageView, EventTypeTrackEvent, EventTypeOutlink:
		return true
	}
	return false
}

// Status is the annotation progress of a screenshot.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Rect is a bounding box in percentage space: every component is a fraction
// of the image dimension times 100, so the box stays anchored regardless of
// the pixel size the image is later rendered at. Values are not clamped.
type Rect struct {
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Module is a named grouping of related screenshots. Key is the stable
// external identifier used in URLs; ID is internal.
type Module struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Key         string       `json:"key"`
	Screenshots []Screenshot `json:"screenshots"`
}

// Screenshot is a captured page image annotated with events. It belongs to
// exactly one module; its position in the module's sequence is significant.
type Screenshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	PageName  string    `json:"pageName"`
	LabelID   string    `json:"labelId,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Events    []Event   `json:"events"`
}

// Event is a spatial annotation on a screenshot describing a trackable
// interaction, tagged with analytics metadata.
type Event struct {
	ID           string    `json:"id"`
	EventType    EventType `json:"eventType"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Action       string    `json:"action"`
	Value        string    `json:"value,omitempty"`
	Description  string    `json:"description,omitempty"`
	Dimensions   []string  `json:"dimensions,omitempty"`
	Coordinates  Rect      `json:"coordinates"`
	ScreenshotID string    `json:"screenshotId"`
}

// Dimension is a named, typed tracking variable an event may reference.
// Both ID (user-assigned) and Name are unique across the dimension set.
type Dimension struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Label is a tag attached to screenshots for filtering.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// KeyFromName derives a module key: the name lower-cased with whitespace
// runs replaced by single hyphens. Generated once at creation and treated
// as immutable afterwards.
func KeyFromName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
