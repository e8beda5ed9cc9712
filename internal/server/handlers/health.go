package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"galaxy-server/internal/galaxy"
	"galaxy-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Galaxy    string `json:"galaxy"`
	Seed      uint64 `json:"seed,omitempty"`
}

type HealthHandler struct {
	engine *galaxy.Engine
}

func NewHealthHandler(engine *galaxy.Engine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	galaxyStatus := "empty"
	var seed uint64
	if h.engine.SectorCount() > 0 {
		galaxyStatus = "generated"
		seed = h.engine.Seed()
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Galaxy:    galaxyStatus,
		Seed:      seed,
	}

	logger.Debug("Health check", "galaxy", galaxyStatus)
	response.Success(w, http.StatusOK, resp)
}
