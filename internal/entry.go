// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/ospreyr/shotmark/internal/api"
	"github.com/ospreyr/shotmark/internal/assets"
	"github.com/ospreyr/shotmark/internal/auth"
	"github.com/ospreyr/shotmark/internal/objstore"
	"github.com/ospreyr/shotmark/internal/sse"
	"github.com/ospreyr/shotmark/internal/store"
	"github.com/ospreyr/shotmark/internal/watch"
)

// buildBackend selects the document persistence backend from config.
func buildBackend(cfg *Config) (store.Backend, *store.Local, error) {
	switch cfg.Store.Backend {
	case StoreBackendS3:
		bucket, err := objstore.New(objstore.Config{
			Endpoint:  cfg.Store.S3.Endpoint,
			AccessKey: cfg.Store.S3.AccessKey,
			SecretKey: cfg.Store.S3.SecretKey,
			Bucket:    cfg.Store.S3.Bucket,
			UseSSL:    cfg.Store.S3.UseSSL,
		})
		if err != nil {
			return nil, nil, err
		}
		return store.NewObject(bucket), nil, nil
	default:
		local, err := store.NewLocal(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	}
}

// buildAssets selects the binary asset store from config. The *assets.FS
// return is non-nil only in fs mode, where the API also serves the files.
func buildAssets(cfg *Config) (assets.Store, *assets.FS, error) {
	switch cfg.Assets.Mode {
	case AssetModeS3:
		bucket, err := objstore.New(objstore.Config{
			Endpoint:  cfg.Assets.S3.Endpoint,
			AccessKey: cfg.Assets.S3.AccessKey,
			SecretKey: cfg.Assets.S3.SecretKey,
			Bucket:    cfg.Assets.S3.Bucket,
			UseSSL:    cfg.Assets.S3.UseSSL,
		})
		if err != nil {
			return nil, nil, err
		}
		return assets.NewS3(bucket, cfg.Assets.GrantTTL), nil, nil
	default:
		fsStore, err := assets.NewFS(cfg.Assets.Dir, "/api/assets", cfg.Assets.GrantTTL)
		if err != nil {
			return nil, nil, err
		}
		return fsStore, fsStore, nil
	}
}

func identityProvider(cfg *Config) auth.Provider {
	users := make([]auth.User, len(cfg.Auth.Users))
	for i, u := range cfg.Auth.Users {
		users[i] = auth.User{Username: u.Username, PasswordHash: u.PasswordHash, Role: u.Role}
	}
	return auth.NewStatic(users)
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("store_backend", cfg.Store.Backend),
		slog.String("asset_mode", cfg.Assets.Mode),
		slog.String("log_level", cfg.App.LogLevel.String()))

	backend, localBackend, err := buildBackend(cfg)
	if err != nil {
		return fmt.Errorf("init store backend: %w", err)
	}

	assetStore, fsAssets, err := buildAssets(cfg)
	if err != nil {
		return fmt.Errorf("init asset store: %w", err)
	}

	st := store.New(backend, assetStore, logger)
	idp := identityProvider(cfg)

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	ah := api.NewAssetHandler(assetStore, fsAssets)
	apiRouter := api.NewRouter(st, ah, idp, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	// Serve asset binaries directly in fs mode.
	if fsAssets != nil {
		r.Get("/assets/{filename}", ah.ServeFile)
	}

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the local document for out-of-band edits.
	if localBackend != nil {
		g.Go(func() error {
			if err := watch.Run(gCtx, localBackend.Path(), logger, func() {
				broker.PublishChange("document", "changed", "")
			}); err != nil {
				logger.Warn("watcher failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP serves the MCP stdio transport instead of HTTP. Intended for
// launching from an MCP client configuration.
func RunMCP(cfg *Config, serve func(st store.Store) error) error {
	backend, _, err := buildBackend(cfg)
	if err != nil {
		return fmt.Errorf("init store backend: %w", err)
	}
	assetStore, _, err := buildAssets(cfg)
	if err != nil {
		return fmt.Errorf("init asset store: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	return serve(store.New(backend, assetStore, logger))
}
