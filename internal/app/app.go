package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/josumamgar-gif/App-Aqualan/internal/health"
	repository "github.com/josumamgar-gif/App-Aqualan/internal/repositories"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	"github.com/josumamgar-gif/App-Aqualan/internal/telemetry"
)

// App is the assembled storefront server.
type App struct {
	Config   *config.Config
	Services *Services
	Handler  http.Handler

	store           storage.Store
	shutdownTracing telemetry.ShutdownFunc
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel, health.Version)
	if err != nil {
		return nil, err
	}

	store, backends, err := storage.Open(ctx, &cfg.Storage)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, err
	}

	svc, err := NewServices(cfg, store, backends)
	if err != nil {
		_ = store.Close()
		_ = shutdownTracing(ctx)
		return nil, err
	}

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Backend: svc.Backend, StorageDir: backends.Dir})
	if err != nil {
		_ = store.Close()
		_ = shutdownTracing(ctx)
		return nil, err
	}

	opts := RouterOptions{
		AllowOrigins: cfg.HTTPServer.CORSAllowOrigins,
		Health:       healthHandler.Handler(),
	}

	if backends.Redis != nil && cfg.RateLimit.MaxAttempts > 0 {
		opts.RateLimiter = repository.NewRateLimitRepo(backends.Redis, cfg.RateLimit, cfg.Storage.Redis.Namespace)
		slog.Info("Submit rate limit enabled", slog.Int64("max_attempts", cfg.RateLimit.MaxAttempts), slog.Duration("window", cfg.RateLimit.WindowSize))
	}

	return &App{
		Config:          cfg,
		Services:        svc,
		Handler:         NewRouter(svc, opts),
		store:           store,
		shutdownTracing: shutdownTracing,
	}, nil
}

// Close releases storage and flushes pending spans.
func (a *App) Close(ctx context.Context) error {

	var errs []error

	if err := a.store.Close(); err != nil {
		errs = append(errs, err)
	} else {
		slog.Info("✅ Storage closed")
	}

	if err := a.shutdownTracing(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
