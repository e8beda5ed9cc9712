package galaxy

import (
	"fmt"
	"log/slog"
	"time"

	"galaxy-server/internal/galaxy/metrics"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/system"
)

// Service fronts the engine for the HTTP layer: it owns generation metrics
// and the not-yet-generated checks, leaving the engine purely about
// generation.
type Service struct {
	engine  *Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(engine *Engine, m *metrics.Metrics, logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service")

	return &Service{
		engine:  engine,
		metrics: m,
		logger:  logger,
	}
}

// Generate builds a whole galaxy. A zero seed requests a fresh random one;
// any other value regenerates that exact galaxy.
func (s *Service) Generate(galaxySeed uint64) (*Summary, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "generate")

	if galaxySeed == 0 {
		galaxySeed = s.engine.CreateSeed()
	} else {
		s.engine.SetSeed(galaxySeed)
	}
	logger = logger.With("galaxy_seed", galaxySeed)
	logger.Debug("Generating galaxy")

	start := time.Now()
	if err := s.engine.GenerateAll(); err != nil {
		logger.Error("Galaxy generation failed", "error", err)
		return nil, fmt.Errorf("failed to generate galaxy: %w", err)
	}
	s.metrics.ObserveGenerateLatency(time.Since(start))

	summary := s.summarize()
	s.metrics.AddGenerated("sector", summary.SectorCount)
	s.metrics.AddGenerated("system", summary.SystemCount)
	s.metrics.AddGenerated("star", summary.StarCount)
	s.metrics.AddGenerated("planet", summary.PlanetCount)

	logger.Info("Galaxy generated",
		"sectors", summary.SectorCount,
		"systems", summary.SystemCount,
		"stars", summary.StarCount,
		"planets", summary.PlanetCount,
		"duration", time.Since(start),
	)

	return summary, nil
}

// Summary returns the current galaxy summary.
func (s *Service) Summary() (*Summary, error) {
	if s.engine.SectorCount() == 0 {
		return nil, errors.NotFoundf("no galaxy generated yet")
	}
	return s.summarize(), nil
}

func (s *Service) summarize() *Summary {
	summary := &Summary{
		Seed:        s.engine.Seed(),
		Type:        s.engine.Config().Type,
		SectorCount: s.engine.SectorCount(),
		SystemCount: s.engine.SystemCount(),
	}
	for _, sys := range s.engine.Systems() {
		summary.StarCount += len(sys.Stars)
		summary.PlanetCount += sys.PlanetCount()
	}
	return summary
}

// SectorSystems returns the systems of one generated sector.
func (s *Service) SectorSystems(sectorSeed uint64) ([]*system.System, error) {
	sec, ok := s.engine.Sector(sectorSeed)
	if !ok {
		return nil, errors.NotFoundf("sector %d not found", sectorSeed)
	}

	out := make([]*system.System, 0, len(sec.SystemSeeds))
	for _, seed := range sec.SystemSeeds {
		sys, ok := s.engine.System(seed)
		if !ok {
			return nil, errors.WrapInternal("inconsistent galaxy state",
				fmt.Errorf("sector %d references missing system %d", sectorSeed, seed))
		}
		out = append(out, sys)
	}
	return out, nil
}

// System returns one generated system with its full star and planet tree.
func (s *Service) System(systemSeed uint64) (*system.System, error) {
	sys, ok := s.engine.System(systemSeed)
	if !ok {
		return nil, errors.NotFoundf("system %d not found", systemSeed)
	}
	return sys, nil
}

// Export snapshots the generated galaxy into a document.
func (s *Service) Export() (*Document, error) {
	if s.engine.SectorCount() == 0 {
		return nil, errors.NotFoundf("no galaxy generated yet")
	}
	return NewDocument(s.engine), nil
}
