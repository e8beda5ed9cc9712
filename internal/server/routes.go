package server

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"galaxy-server/internal/galaxy"
	galaxyHandlers "galaxy-server/internal/galaxy/handlers"
	serverHandlers "galaxy-server/internal/server/handlers"
)

type Routes struct {
	engine        *galaxy.Engine
	galaxyService *galaxy.Service
	logger        *slog.Logger
}

func NewRoutes(engine *galaxy.Engine, galaxyService *galaxy.Service, logger *slog.Logger) *Routes {
	return &Routes{
		engine:        engine,
		galaxyService: galaxyService,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.engine)
	galaxyHandler := galaxyHandlers.NewGalaxyHandler(r.galaxyService)

	// Galaxy endpoints
	mux.HandleFunc("/api/galaxy/generate", galaxyHandler.GenerateGalaxy)
	mux.HandleFunc("/api/galaxy/export", galaxyHandler.ExportGalaxy)
	mux.HandleFunc("/api/galaxy", galaxyHandler.GetGalaxy)
	mux.HandleFunc("/api/sectors/{seed}/systems", galaxyHandler.GetSectorSystems)
	mux.HandleFunc("/api/systems/{seed}", galaxyHandler.GetSystem)

	// Operational endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Routes configured successfully",
		"galaxy_endpoints", []string{"/api/galaxy/generate", "/api/galaxy", "/api/galaxy/export", "/api/sectors/{seed}/systems", "/api/systems/{seed}"},
		"operational_endpoints", []string{"/api/server/health", "/metrics"},
	)

	return mux
}
