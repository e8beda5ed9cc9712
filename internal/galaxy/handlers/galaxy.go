package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"galaxy-server/internal/galaxy"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

type GalaxyHandler struct {
	service *galaxy.Service
}

func NewGalaxyHandler(service *galaxy.Service) *GalaxyHandler {
	return &GalaxyHandler{service: service}
}

// GenerateRequest is the body of a generation request. A zero or absent
// seed asks for a fresh random galaxy.
type GenerateRequest struct {
	Seed uint64 `json:"seed"`
}

func (h *GalaxyHandler) GenerateGalaxy(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_galaxy")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req GenerateRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	summary, err := h.service.Generate(req.Seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, summary)
}

func (h *GalaxyHandler) GetGalaxy(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_galaxy")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	summary, err := h.service.Summary()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, summary)
}

func (h *GalaxyHandler) GetSectorSystems(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_sector_systems")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	sectorSeed, err := parseSeed(r.PathValue("seed"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	systems, err := h.service.SectorSystems(sectorSeed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, systems)
}

func (h *GalaxyHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_system")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	systemSeed, err := parseSeed(r.PathValue("seed"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	system, err := h.service.System(systemSeed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, system)
}

func (h *GalaxyHandler) ExportGalaxy(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "export_galaxy")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	doc, err := h.service.Export()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="galaxy.json"`)
	response.Success(w, http.StatusOK, doc)
}

func parseSeed(raw string) (uint64, error) {
	if raw == "" {
		return 0, errors.Validation("seed is required")
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.WrapValidation("invalid seed format", err)
	}
	return seed, nil
}
