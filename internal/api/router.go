package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ospreyr/shotmark/internal/auth"
	"github.com/ospreyr/shotmark/internal/sse"
	"github.com/ospreyr/shotmark/internal/store"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// broker, if non-nil, is mounted at GET /stream inside the auth group.
func NewRouter(st store.Store, ah *AssetHandler, idp auth.Provider, authEnabled bool, token string, broker *sse.Broker) chi.Router {
	h := NewHandler(st, broker)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Identity.
	r.Post("/auth/login", h.Login(idp))

	// Modules.
	r.Get("/modules", h.ListModules)
	r.Post("/modules", h.CreateModule)
	r.Put("/modules", h.PutModules)
	r.Delete("/modules/{key}", h.DeleteModule)

	// Screenshots.
	r.Post("/modules/{key}/screenshots", h.CreateScreenshot)
	r.Put("/modules/{key}/screenshots/order", h.ReorderScreenshots)
	r.Put("/modules/{key}/screenshots/{id}/position", h.MoveScreenshot)
	r.Put("/screenshots/{id}", h.UpdateScreenshot)
	r.Delete("/screenshots/{id}", h.DeleteScreenshot)
	r.Get("/screenshots/{id}/events", h.ListEvents)

	// Events.
	r.Post("/events", h.CreateEvent)
	r.Put("/events/{id}", h.UpdateEvent)
	r.Delete("/events/{id}", h.DeleteEvent)

	// Dimensions and vocabularies.
	r.Get("/dimensions", h.ListDimensions)
	r.Post("/dimensions", h.CreateDimension)
	r.Delete("/dimensions/{id}", h.DeleteDimension)
	h.stringVocabRoutes(r, "event-categories", stringRegistry{
		list: st.ListEventCategories, add: st.AddEventCategory, remove: st.RemoveEventCategory,
	})
	h.stringVocabRoutes(r, "event-actions", stringRegistry{
		list: st.ListEventActions, add: st.AddEventAction, remove: st.RemoveEventAction,
	})
	h.stringVocabRoutes(r, "event-names", stringRegistry{
		list: st.ListEventNames, add: st.AddEventName, remove: st.RemoveEventName,
	})
	r.Get("/page-labels", h.ListPageLabels)
	r.Post("/page-labels", h.CreatePageLabel)
	r.Delete("/page-labels/{id}", h.DeletePageLabel)

	// Analytics summary.
	r.Get("/analytics/events", h.EventSummary)

	// Assets.
	if ah != nil {
		r.Post("/assets", ah.Upload)
		r.Put("/assets/{key}", ah.DirectUpload)
		r.Get("/assets/grant", ah.Grant)
	}

	// SSE endpoint (protected by the same auth middleware).
	if broker != nil {
		r.Get("/stream", http.HandlerFunc(broker.ServeHTTP))
	}

	return r
}
