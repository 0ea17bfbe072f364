// Package store implements durable CRUD over the module/screenshot/event
// graph, the dimension set, and the vocabulary registries, behind one
// interface regardless of persistence backend.
package store

import (
	"context"
	"log/slog"

	"github.com/ospreyr/shotmark/internal/assets"
	"github.com/ospreyr/shotmark/internal/models"
)

// Store is the persistence contract callers depend on. Both backends expose
// identical semantics: every mutation is one read-modify-write cycle against
// the backing medium, detected validation/not-found failures leave state
// unchanged, and concurrent writers are last-write-wins.
type Store interface {
	GetModules(ctx context.Context) ([]models.Module, error)
	PutModules(ctx context.Context, mods []models.Module) error
	CreateModule(ctx context.Context, name string) (*models.Module, error)
	DeleteModule(ctx context.Context, key string) error

	CreateScreenshot(ctx context.Context, moduleKey string, shot models.Screenshot) (*models.Screenshot, error)
	UpdateScreenshot(ctx context.Context, shot models.Screenshot) (*models.Screenshot, error)
	DeleteScreenshot(ctx context.Context, id string) error
	ReorderScreenshots(ctx context.Context, moduleKey string, orderedIDs []string) error

	CreateEvent(ctx context.Context, ev models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, ev models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, screenshotID string) ([]models.Event, error)

	ListDimensions(ctx context.Context) ([]models.Dimension, error)
	CreateDimension(ctx context.Context, d models.Dimension) (*models.Dimension, error)
	DeleteDimension(ctx context.Context, id string) error

	ListEventCategories(ctx context.Context) ([]string, error)
	AddEventCategory(ctx context.Context, value string) error
	RemoveEventCategory(ctx context.Context, value string) error

	ListEventActions(ctx context.Context) ([]string, error)
	AddEventAction(ctx context.Context, value string) error
	RemoveEventAction(ctx context.Context, value string) error

	ListEventNames(ctx context.Context) ([]string, error)
	AddEventName(ctx context.Context, value string) error
	RemoveEventName(ctx context.Context, value string) error

	ListPageLabels(ctx context.Context) ([]models.Label, error)
	AddPageLabel(ctx context.Context, name string) (*models.Label, error)
	RemovePageLabel(ctx context.Context, id string) error
}

// DocumentStore implements Store over a Backend, with best-effort binary
// asset cleanup on screenshot deletion.
type DocumentStore struct {
	backend Backend
	assets  assets.Store
	logger  *slog.Logger
}

var _ Store = (*DocumentStore)(nil)

// New creates a DocumentStore. assetStore may be nil, in which case no asset
// cleanup is attempted on deletes.
func New(backend Backend, assetStore assets.Store, logger *slog.Logger) *DocumentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentStore{backend: backend, assets: assetStore, logger: logger}
}

func (s *DocumentStore) loadModules(ctx context.Context) ([]models.Module, error) {
	var mods []models.Module
	if err := s.backend.Load(ctx, ColModules, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}

func (s *DocumentStore) saveModules(ctx context.Context, mods []models.Module) error {
	if mods == nil {
		mods = []models.Module{}
	}
	return s.backend.Save(ctx, ColModules, mods)
}
