package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api"
	"github.com/ndewijer/Business-Ledger-Backend/internal/app"
	"github.com/ndewijer/Business-Ledger-Backend/internal/config"
	"github.com/ndewijer/Business-Ledger-Backend/internal/logging"
	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
	"github.com/ndewijer/Business-Ledger-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck // nothing left to report on exit
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open databases and build services
	ledger, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to start ledger backend", zap.Error(err))
	}
	defer ledger.Close()

	var scheduler *service.SnapshotScheduler
	if cfg.Snapshot.Enabled {
		scheduler, err = service.NewSnapshotScheduler(ledger.Services.Snapshot, cfg.Snapshot.Schedule, logger)
		if err != nil {
			logger.Fatal("failed to create snapshot scheduler", zap.Error(err))
		}
		scheduler.Start()
	}

	// Create router
	router := api.NewRouter(ledger.Services, cfg, logger)

	// Create HTTP server
	server := newHTTPServer(cfg.Server.Addr, router)

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.Server.Addr),
			zap.String("version", version.Version),
			zap.String("commit", version.Commit),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
	}

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Warn("snapshot run still in progress at shutdown")
		}
	}

	logger.Info("server exited")
}

// newHTTPServer wraps handler in an http.Server with the server timeouts.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
