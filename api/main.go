package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/config"
	api "github.com/rogerio-castellano/electronics-catalog-proxy/internal/http"
	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/http/handlers"
	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/logging"
	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/repo"
	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/telemetry"
)

// @title Electronics Catalog Proxy API
// @version 1.0
// @description Filters, reshapes and paginates the upstream electronics catalog.
// @host localhost:5000
// @BasePath /
func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	logger := logging.New(cfg.Log, os.Stdout)

	shutdownTracer, err := telemetry.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Enabled, logger)
	if err != nil {
		logger.Error("tracer_init_failed", slog.Any("error", err))
		os.Exit(1)
	}

	productRepo := repo.NewHTTPProductRepository(cfg.Upstream.URL, cfg.Upstream.Timeout).
		WithMaxBodyBytes(cfg.Upstream.MaxBodyBytes)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(handlers.NewServer(productRepo, logger), logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Upstream.Timeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server_listening",
			slog.String("addr", srv.Addr),
			slog.String("upstream", cfg.Upstream.URL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown_signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_shutdown_error", slog.Any("error", err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer_shutdown_error", slog.Any("error", err))
	}
	logger.Info("server_stopped")
}
