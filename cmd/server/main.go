package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"galaxy-server/internal/galaxy"
	"galaxy-server/internal/galaxy/metrics"
	"galaxy-server/internal/middleware"
	"galaxy-server/internal/server"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/logger"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	cfg := config.GlobalConfig

	logger.Init()
	slog.Info("Starting galaxy server",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"galaxy_type", cfg.Galaxy.Type,
	)

	engine := galaxy.NewEngine(cfg.Galaxy, slog.Default())
	galaxyService := galaxy.NewService(engine, metrics.New(), slog.Default())

	routes := server.NewRoutes(engine, galaxyService, slog.Default())
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	corsMiddleware := middleware.NewCORS(cfg.Frontend)

	handler := corsMiddleware.Middleware(
		middleware.RequestID(
			rateLimiter.Middleware(mux),
		),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
