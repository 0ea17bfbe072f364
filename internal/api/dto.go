package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ospreyr/shotmark/internal/models"
)

// CreateModuleRequest is the body for creating a module.
type CreateModuleRequest struct {
	Name string `json:"name"`
}

// Validate validates the request.
func (r CreateModuleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// CreateScreenshotRequest is the body for creating a screenshot in a module.
type CreateScreenshotRequest struct {
	Name     string        `json:"name"`
	URL      string        `json:"url"`
	PageName string        `json:"pageName"`
	LabelID  string        `json:"labelId"`
	Status   models.Status `json:"status"`
}

// Validate validates the request.
func (r CreateScreenshotRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// ReorderRequest carries the full id permutation of a module's screenshots.
type ReorderRequest struct {
	Order []string `json:"order"`
}

// Validate validates the request.
func (r ReorderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Order, validation.Required),
	)
}

// MoveRequest carries the target index for a single-screenshot move.
type MoveRequest struct {
	Index int `json:"index"`
}

// Validate validates the request.
func (r MoveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Index, validation.Min(0)),
	)
}

// VocabEntryRequest is the body for adding a vocabulary entry or page label.
type VocabEntryRequest struct {
	Value string `json:"value"`
}

// Validate validates the request.
func (r VocabEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Value, validation.Required),
	)
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the request.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// ModuleEventSummary is one module's entry in the analytics response.
type ModuleEventSummary struct {
	Counts map[models.EventType]int `json:"counts"`
	Total  int                      `json:"total"`
}

// AssetUploadResponse is returned after a successful asset upload.
type AssetUploadResponse struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// GrantResponse is the wire form of an upload grant.
type GrantResponse struct {
	URL              string `json:"url"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}
