package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/ospreyr/shotmark/internal/assets"
)

const maxUploadBytes = 50 << 20 // 50 MB

// AssetHandler accepts uploads, issues upload grants, and (for the
// filesystem store) serves asset files.
type AssetHandler struct {
	store assets.Store
	fs    *assets.FS // nil unless the fs asset mode is active
}

// NewAssetHandler creates an asset handler. fsStore may be nil when assets
// live in an object bucket and are served from there.
func NewAssetHandler(store assets.Store, fsStore *assets.FS) *AssetHandler {
	return &AssetHandler{store: store, fs: fsStore}
}

// Upload handles POST /api/assets (multipart/form-data, field "file").
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	locator, err := h.store.Put(r.Context(), header.Filename, file, header.Size, contentType)
	if err != nil {
		writeStoreError(w, "asset upload", err)
		return
	}

	writeJSON(w, http.StatusCreated, AssetUploadResponse{
		Key:  header.Filename,
		Size: header.Size,
		URL:  locator,
	})
}

// DirectUpload handles PUT /api/assets/{key}: the raw-body endpoint that
// filesystem-mode upload grants point at.
func (h *AssetHandler) DirectUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	key := chi.URLParam(r, "key")

	locator, err := h.store.Put(r.Context(), key, r.Body, r.ContentLength, r.Header.Get("Content-Type"))
	if err != nil {
		writeStoreError(w, "asset direct upload", err)
		return
	}
	writeJSON(w, http.StatusCreated, AssetUploadResponse{Key: key, Size: r.ContentLength, URL: locator})
}

// Grant handles GET /api/assets/grant?key=...&contentType=...: issues a
// time-limited write capability so clients upload bytes directly.
func (h *AssetHandler) Grant(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'key' is required"))
		return
	}
	contentType := r.URL.Query().Get("contentType")

	grant, err := h.store.UploadGrant(r.Context(), key, contentType)
	if err != nil {
		writeStoreError(w, "asset grant", err)
		return
	}
	writeJSON(w, http.StatusOK, GrantResponse{
		URL:              grant.URL,
		ExpiresInSeconds: grant.ExpiresInSeconds(),
	})
}

// ServeFile handles GET /assets/{filename} in filesystem mode.
func (h *AssetHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	if h.fs == nil {
		http.NotFound(w, r)
		return
	}
	filename := filepath.Base(chi.URLParam(r, "filename"))
	abs := filepath.Join(h.fs.Root(), filename)
	if _, statErr := os.Stat(abs); os.IsNotExist(statErr) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, abs)
}
