package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ospreyr/shotmark/internal/models"
)

// The three string vocabularies share identical handler logic; each route
// group binds the matching store methods.

type stringRegistry struct {
	list   func(context.Context) ([]string, error)
	add    func(context.Context, string) error
	remove func(context.Context, string) error
}

func (h *Handler) stringVocabRoutes(r chi.Router, name string, reg stringRegistry) {
	r.Get("/"+name, func(w http.ResponseWriter, r *http.Request) {
		values, err := reg.list(r.Context())
		if err != nil {
			writeStoreError(w, "list "+name, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"values": values})
	})
	r.Post("/"+name, func(w http.ResponseWriter, r *http.Request) {
		var req VocabEntryRequest
		if !decode(w, r, &req) {
			return
		}
		if err := reg.add(r.Context(), req.Value); err != nil {
			writeStoreError(w, "add "+name, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"value": req.Value})
	})
	r.Delete("/"+name+"/{value}", func(w http.ResponseWriter, r *http.Request) {
		if err := reg.remove(r.Context(), vocabValue(r)); err != nil {
			writeStoreError(w, "remove "+name, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// ListDimensions handles GET /api/dimensions.
func (h *Handler) ListDimensions(w http.ResponseWriter, r *http.Request) {
	dims, err := h.store.ListDimensions(r.Context())
	if err != nil {
		writeStoreError(w, "list dimensions", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dimensions": dims})
}

// CreateDimension handles POST /api/dimensions.
func (h *Handler) CreateDimension(w http.ResponseWriter, r *http.Request) {
	var dim models.Dimension
	if !decode(w, r, &dim) {
		return
	}
	created, err := h.store.CreateDimension(r.Context(), dim)
	if err != nil {
		writeStoreError(w, "create dimension", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteDimension handles DELETE /api/dimensions/{id}.
func (h *Handler) DeleteDimension(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteDimension(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, "delete dimension", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPageLabels handles GET /api/page-labels.
func (h *Handler) ListPageLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.store.ListPageLabels(r.Context())
	if err != nil {
		writeStoreError(w, "list page labels", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"labels": labels})
}

// CreatePageLabel handles POST /api/page-labels.
func (h *Handler) CreatePageLabel(w http.ResponseWriter, r *http.Request) {
	var req VocabEntryRequest
	if !decode(w, r, &req) {
		return
	}
	label, err := h.store.AddPageLabel(r.Context(), req.Value)
	if err != nil {
		writeStoreError(w, "create page label", err)
		return
	}
	writeJSON(w, http.StatusCreated, label)
}

// DeletePageLabel handles DELETE /api/page-labels/{id}.
func (h *Handler) DeletePageLabel(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemovePageLabel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, "delete page label", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
