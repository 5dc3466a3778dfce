package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/josumamgar-gif/App-Aqualan/internal/app"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/josumamgar-gif/App-Aqualan/internal/health"
)

//	@title			Aqualan Storefront API
//	@version		1.0
//	@description	Backend-for-frontend of the Aqualan water delivery storefront.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	logger := app.NewLogger(cfg.Env, cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()

	storefront, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error initializing the storefront", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", health.Version))

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: storefront.Handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := storefront.Close(shutdownCtx); err != nil {
		slog.Error("⚠️ Error releasing resources", slog.String("error", err.Error()))
	}
}
