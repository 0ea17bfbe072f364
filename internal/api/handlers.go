package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ospreyr/shotmark/internal/analytics"
	"github.com/ospreyr/shotmark/internal/apperr"
	"github.com/ospreyr/shotmark/internal/models"
	"github.com/ospreyr/shotmark/internal/sse"
	"github.com/ospreyr/shotmark/internal/store"
	"github.com/ospreyr/shotmark/internal/view"
)

const maxBodyBytes = 10 << 20

// Handler holds API route handlers.
type Handler struct {
	store  store.Store
	broker *sse.Broker // may be nil
}

// NewHandler creates a new Handler.
func NewHandler(st store.Store, broker *sse.Broker) *Handler {
	return &Handler{store: st, broker: broker}
}

func (h *Handler) publish(entity, kind, id string) {
	if h.broker != nil {
		h.broker.PublishChange(entity, kind, id)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	if validator, ok := v.(interface{ Validate() error }); ok {
		if err := validator.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return false
		}
	}
	return true
}

// ListModules handles GET /api/modules. Optional q and labelId query
// parameters filter each module's screenshots without touching the stored
// order.
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	mods, err := h.store.GetModules(r.Context())
	if err != nil {
		writeStoreError(w, "list modules", err)
		return
	}
	q := r.URL.Query().Get("q")
	labelID := r.URL.Query().Get("labelId")
	if q != "" || labelID != "" {
		for i := range mods {
			mods[i].Screenshots = view.Filter(mods[i].Screenshots, q, labelID)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"modules": mods})
}

// CreateModule handles POST /api/modules.
func (h *Handler) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req CreateModuleRequest
	if !decode(w, r, &req) {
		return
	}
	mod, err := h.store.CreateModule(r.Context(), req.Name)
	if err != nil {
		writeStoreError(w, "create module", err)
		return
	}
	h.publish("module", "created", mod.Key)
	writeJSON(w, http.StatusCreated, mod)
}

// PutModules handles PUT /api/modules: wholesale replace of the module list,
// used for module reordering and bulk edits.
func (h *Handler) PutModules(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Modules []models.Module `json:"modules"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Modules == nil {
		writeJSON(w, http.StatusBadRequest, errorBody("modules is required"))
		return
	}
	if err := h.store.PutModules(r.Context(), req.Modules); err != nil {
		writeStoreError(w, "put modules", err)
		return
	}
	h.publish("module", "updated", "")
	writeJSON(w, http.StatusOK, map[string]any{"modules": req.Modules})
}

// DeleteModule handles DELETE /api/modules/{key}.
func (h *Handler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	err := h.store.DeleteModule(r.Context(), key)
	if errors.Is(err, apperr.ErrPartialFailure) {
		h.publish("module", "deleted", key)
		writeJSON(w, http.StatusOK, map[string]any{"warning": err.Error()})
		return
	}
	if err != nil {
		writeStoreError(w, "delete module", err)
		return
	}
	h.publish("module", "deleted", key)
	w.WriteHeader(http.StatusNoContent)
}

// CreateScreenshot handles POST /api/modules/{key}/screenshots.
func (h *Handler) CreateScreenshot(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req CreateScreenshotRequest
	if !decode(w, r, &req) {
		return
	}
	shot, err := h.store.CreateScreenshot(r.Context(), key, models.Screenshot{
		Name:     req.Name,
		URL:      req.URL,
		PageName: req.PageName,
		LabelID:  req.LabelID,
		Status:   req.Status,
	})
	if err != nil {
		writeStoreError(w, "create screenshot", err)
		return
	}
	h.publish("screenshot", "created", shot.ID)
	writeJSON(w, http.StatusCreated, shot)
}

// UpdateScreenshot handles PUT /api/screenshots/{id}.
func (h *Handler) UpdateScreenshot(w http.ResponseWriter, r *http.Request) {
	var shot models.Screenshot
	if !decode(w, r, &shot) {
		return
	}
	shot.ID = chi.URLParam(r, "id")
	updated, err := h.store.UpdateScreenshot(r.Context(), shot)
	if err != nil {
		writeStoreError(w, "update screenshot", err)
		return
	}
	h.publish("screenshot", "updated", updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteScreenshot handles DELETE /api/screenshots/{id}. A failed asset
// delete after the metadata removal is reported as a warning, not an error.
func (h *Handler) DeleteScreenshot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.store.DeleteScreenshot(r.Context(), id)
	if errors.Is(err, apperr.ErrPartialFailure) {
		h.publish("screenshot", "deleted", id)
		writeJSON(w, http.StatusOK, map[string]any{"warning": err.Error()})
		return
	}
	if err != nil {
		writeStoreError(w, "delete screenshot", err)
		return
	}
	h.publish("screenshot", "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// ReorderScreenshots handles PUT /api/modules/{key}/screenshots/order.
func (h *Handler) ReorderScreenshots(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req ReorderRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.store.ReorderScreenshots(r.Context(), key, req.Order); err != nil {
		writeStoreError(w, "reorder screenshots", err)
		return
	}
	h.publish("screenshot", "updated", key)
	w.WriteHeader(http.StatusNoContent)
}

// MoveScreenshot handles PUT /api/modules/{key}/screenshots/{id}/position:
// moves one screenshot to a new index and persists the resulting order.
func (h *Handler) MoveScreenshot(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	id := chi.URLParam(r, "id")
	var req MoveRequest
	if !decode(w, r, &req) {
		return
	}

	mods, err := h.store.GetModules(r.Context())
	if err != nil {
		writeStoreError(w, "move screenshot", err)
		return
	}
	var shots []models.Screenshot
	found := false
	for _, m := range mods {
		if m.Key == key {
			shots = m.Screenshots
			found = true
			break
		}
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorBody("module not found: "+key))
		return
	}

	reordered, err := view.Reorder(shots, id, req.Index)
	if err != nil {
		writeStoreError(w, "move screenshot", err)
		return
	}
	order := make([]string, len(reordered))
	for i, shot := range reordered {
		order[i] = shot.ID
	}
	if err := h.store.ReorderScreenshots(r.Context(), key, order); err != nil {
		writeStoreError(w, "move screenshot", err)
		return
	}
	h.publish("screenshot", "updated", id)
	w.WriteHeader(http.StatusNoContent)
}

// ListEvents handles GET /api/screenshots/{id}/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	evs, err := h.store.ListEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, "list events", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": evs})
}

// CreateEvent handles POST /api/events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.Event
	if !decode(w, r, &ev) {
		return
	}
	created, err := h.store.CreateEvent(r.Context(), ev)
	if err != nil {
		writeStoreError(w, "create event", err)
		return
	}
	h.publish("event", "created", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateEvent handles PUT /api/events/{id} (full-record replace).
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.Event
	if !decode(w, r, &ev) {
		return
	}
	ev.ID = chi.URLParam(r, "id")
	updated, err := h.store.UpdateEvent(r.Context(), ev)
	if err != nil {
		writeStoreError(w, "update event", err)
		return
	}
	h.publish("event", "updated", updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteEvent handles DELETE /api/events/{id}.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteEvent(r.Context(), id); err != nil {
		writeStoreError(w, "delete event", err)
		return
	}
	h.publish("event", "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// EventSummary handles GET /api/analytics/events.
func (h *Handler) EventSummary(w http.ResponseWriter, r *http.Request) {
	mods, err := h.store.GetModules(r.Context())
	if err != nil {
		writeStoreError(w, "event summary", err)
		return
	}
	summary := analytics.CountEventsByType(mods)
	out := make(map[string]ModuleEventSummary, len(summary))
	for key, counts := range summary {
		out[key] = ModuleEventSummary{Counts: counts, Total: analytics.Total(counts)}
	}
	writeJSON(w, http.StatusOK, map[string]any{"modules": out})
}

// vocabValue extracts a vocabulary entry from the URL, supporting encoded
// values from clients (e.g. Add%20to%20cart).
func vocabValue(r *http.Request) string {
	raw := chi.URLParam(r, "value")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
