package galaxy

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"galaxy-server/internal/planet"
	"galaxy-server/internal/sector"
	"galaxy-server/internal/seed"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/rng"
	"galaxy-server/internal/star"
	"galaxy-server/internal/system"
)

// Engine generates and holds one galaxy: a grid of sectors, their star
// systems, and the stars and planets below them. Every entity derives from
// the galaxy seed through arithmetic seed derivation, so any subtree can be
// regenerated from its own seed alone.
//
// All exported methods are safe for concurrent use.
type Engine struct {
	mu sync.RWMutex

	cfg  config.GalaxyConfig
	seed uint64

	sectors map[uint64]*sector.Sector
	systems map[uint64]*system.System

	systemGen *system.Generator
	starGen   *star.Generator
	planetGen *planet.Generator

	logger *slog.Logger
}

func NewEngine(cfg config.GalaxyConfig, logger *slog.Logger) *Engine {
	logger.Debug("Initializing galaxy engine",
		"component", "galaxy_engine",
		"type", cfg.Type,
		"strict_seeds", cfg.StrictSeeds,
	)

	return &Engine{
		cfg:       cfg,
		sectors:   make(map[uint64]*sector.Sector),
		systems:   make(map[uint64]*system.System),
		systemGen: system.NewGenerator(logger),
		starGen:   star.NewGenerator(logger),
		planetGen: planet.NewGenerator(logger),
		logger:    logger,
	}
}

// CreateSeed picks a fresh random galaxy seed, installs it and returns it.
// Any previously generated content is discarded.
func (e *Engine) CreateSeed() uint64 {
	s := rand.Uint64()
	e.SetSeed(s)
	return s
}

// SetSeed installs a galaxy seed and discards any generated content.
func (e *Engine) SetSeed(galaxySeed uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.seed = galaxySeed
	e.sectors = make(map[uint64]*sector.Sector)
	e.systems = make(map[uint64]*system.System)
}

// Seed returns the current galaxy seed.
func (e *Engine) Seed() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.seed
}

// Config returns the generation parameters the engine was built with.
func (e *Engine) Config() config.GalaxyConfig {
	return e.cfg
}

// SectorCount returns the number of generated sectors.
func (e *Engine) SectorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sectors)
}

// SystemCount returns the number of generated systems.
func (e *Engine) SystemCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.systems)
}

// GenerateSectors lays out the full sector grid for the current seed. The
// grid is centered on the galaxy core and sized from the configured galaxy
// dimensions. Generating twice is a no-op.
func (e *Engine) GenerateSectors() ([]*sector.Sector, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	nx := int(e.cfg.SizeXLy / e.cfg.SectorSizeLy)
	ny := int(e.cfg.SizeYLy / e.cfg.SectorSizeLy)
	nz := int(e.cfg.SizeZLy / e.cfg.SectorSizeLy)

	out := make([]*sector.Sector, 0, nx*ny*nz)
	for x := -nx / 2; x < nx-nx/2; x++ {
		for z := -nz / 2; z < nz-nz/2; z++ {
			for y := -ny / 2; y < ny-ny/2; y++ {
				sec, err := e.generateSectorLocked(x, y, z)
				if err != nil {
					return nil, err
				}
				out = append(out, sec)
			}
		}
	}

	e.logger.Info("Sectors generated",
		"component", "galaxy_engine",
		"galaxy_seed", e.seed,
		"count", len(out),
	)

	return out, nil
}

func (e *Engine) generateSectorLocked(x, y, z int) (*sector.Sector, error) {
	sectorSeed := seed.Sector(e.seed, x, y, z)
	if existing, ok := e.sectors[sectorSeed]; ok {
		if e.cfg.StrictSeeds && (existing.X != x || existing.Y != y || existing.Z != z) {
			return nil, errors.Conflictf("sector seed %d collides: (%d,%d,%d) vs (%d,%d,%d)",
				sectorSeed, x, y, z, existing.X, existing.Y, existing.Z)
		}
		return existing, nil
	}

	sec := &sector.Sector{
		Seed: sectorSeed,
		X:    x,
		Y:    y,
		Z:    z,
	}
	sec.Name = sec.Designation()
	e.sectors[sectorSeed] = sec
	return sec, nil
}

// Sector returns the generated sector with the given seed.
func (e *Engine) Sector(sectorSeed uint64) (*sector.Sector, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	sec, ok := e.sectors[sectorSeed]
	return sec, ok
}

// Sectors returns all generated sectors.
func (e *Engine) Sectors() []*sector.Sector {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*sector.Sector, 0, len(e.sectors))
	for _, sec := range e.sectors {
		out = append(out, sec)
	}
	return out
}

// GenerateSystems populates the sector with its configured number of star
// systems, fully generated down to planets. Generating twice is a no-op.
func (e *Engine) GenerateSystems(sectorSeed uint64) ([]*system.System, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sec, ok := e.sectors[sectorSeed]
	if !ok {
		return nil, errors.NotFoundf("sector %d not generated", sectorSeed)
	}

	if len(sec.SystemSeeds) > 0 {
		return e.systemsOfLocked(sec), nil
	}

	count := e.cfg.MaxSystems
	out := make([]*system.System, 0, count)
	for n := 0; n < count; n++ {
		systemSeed := seed.System(sectorSeed, n)
		sys, err := e.generateSystemLocked(systemSeed, sectorSeed)
		if err != nil {
			return nil, err
		}
		sec.SystemSeeds = append(sec.SystemSeeds, systemSeed)
		out = append(out, sys)
	}

	e.logger.Debug("Sector populated",
		"component", "galaxy_engine",
		"sector_seed", sectorSeed,
		"system_count", count,
	)

	return out, nil
}

func (e *Engine) systemsOfLocked(sec *sector.Sector) []*system.System {
	out := make([]*system.System, 0, len(sec.SystemSeeds))
	for _, s := range sec.SystemSeeds {
		if sys, ok := e.systems[s]; ok {
			out = append(out, sys)
		}
	}
	return out
}

// GenerateSystem generates one system, its stars and their planets.
// Regenerating an existing system returns the stored value.
func (e *Engine) GenerateSystem(systemSeed, sectorSeed uint64) (*system.System, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generateSystemLocked(systemSeed, sectorSeed)
}

func (e *Engine) generateSystemLocked(systemSeed, sectorSeed uint64) (*system.System, error) {
	if existing, ok := e.systems[systemSeed]; ok {
		if e.cfg.StrictSeeds && existing.SectorSeed != sectorSeed {
			return nil, errors.Conflictf("system seed %d collides: sectors %d vs %d",
				systemSeed, sectorSeed, existing.SectorSeed)
		}
		return existing, nil
	}

	sys := e.systemGen.Generate(systemSeed, sectorSeed, e.cfg.SectorSizeLy)

	starCount := sys.Multiplicity
	if starCount > e.cfg.MaxStars {
		starCount = e.cfg.MaxStars
	}

	for n := 0; n < starCount; n++ {
		starSeed := seed.Star(systemSeed, n)
		if e.cfg.StrictSeeds {
			if _, ok := sys.Stars[starSeed]; ok {
				return nil, errors.Conflictf("star seed %d collides within system %d", starSeed, systemSeed)
			}
		}

		st, err := e.starGen.Generate(starSeed)
		if err != nil {
			return nil, err
		}
		st.Name = fmt.Sprintf("%s %c", sys.Name, 'A'+n)
		if err := e.generatePlanets(sys, st); err != nil {
			return nil, err
		}
		sys.Stars[starSeed] = st
	}

	e.systems[systemSeed] = sys
	return sys, nil
}

// generatePlanets accretes the planets of one star, working outward. Orbit
// spacing draws from a distance stream on the star seed; each planet sweeps
// the band from the previous planet's outer boundary to the mirrored
// distance beyond its orbit.
func (e *Engine) generatePlanets(sys *system.System, st *star.Star) error {
	count := st.PlanetCount
	if count > e.cfg.MaxPlanets {
		count = e.cfg.MaxPlanets
	}
	if count == 0 {
		return nil
	}

	ds := rng.New(st.Seed)
	host := st.Host()

	lower := 0.0
	dist := 0.0
	for n := 0; n < count; n++ {
		if lower < host.FrostLimitAU {
			// Rocky region: place the orbit between the swept boundary and
			// the frost limit.
			dist = lower + 0.1 + ds.Float64()*(host.FrostLimitAU-lower)
		} else {
			// Gaseous region: push outward by a Titius-Bode style factor.
			dist *= 1.5 + ds.Float64()
			if dist <= lower {
				dist += lower
			}
		}

		planetSeed := seed.Planet(st.Seed, n)
		if e.cfg.StrictSeeds {
			if _, ok := st.Planets[planetSeed]; ok {
				return errors.Conflictf("planet seed %d collides within star %d", planetSeed, st.Seed)
			}
		}

		p, upper, err := e.planetGen.Generate(planetSeed, host, dist, lower)
		if err != nil {
			return err
		}
		p.StarSeed = st.Seed
		p.Name = fmt.Sprintf("%s %d", st.Name, n+1)
		st.Planets[planetSeed] = p

		lower = upper
	}

	return nil
}

// System returns the generated system with the given seed.
func (e *Engine) System(systemSeed uint64) (*system.System, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	sys, ok := e.systems[systemSeed]
	return sys, ok
}

// Systems returns all generated systems.
func (e *Engine) Systems() []*system.System {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*system.System, 0, len(e.systems))
	for _, sys := range e.systems {
		out = append(out, sys)
	}
	return out
}

// GenerateAll generates the whole galaxy for the current seed: the sector
// grid and every system below it.
func (e *Engine) GenerateAll() error {
	sectors, err := e.GenerateSectors()
	if err != nil {
		return err
	}
	for _, sec := range sectors {
		if _, err := e.GenerateSystems(sec.Seed); err != nil {
			return err
		}
	}
	return nil
}
