package system

import (
	"log/slog"

	"galaxy-server/internal/shared/mathutil"
	"galaxy-server/internal/shared/rng"
	"galaxy-server/internal/star"
)

// multiplicityCDF is the cumulative distribution of stellar multiplicity:
// 80% of systems are solitary, binaries and higher orders follow the
// remaining tail up to septuple systems.
var multiplicityCDF = []float64{0.800, 0.900, 0.950, 0.975, 0.988, 0.996, 1.000}

// Generator produces star systems from system seeds. Star and planet
// generation are driven by the engine afterwards; the system level decides
// only position and multiplicity.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate derives the system identified by systemSeed from a local random
// stream seeded with it. The position is uniform inside the sector cube of
// the given edge length in [ly].
func (g *Generator) Generate(systemSeed, sectorSeed uint64, sectorSizeLy float64) *System {
	rs := rng.New(systemSeed)

	s := &System{
		Seed:       systemSeed,
		SectorSeed: sectorSeed,
		Name:       systemNames[systemSeed%uint64(len(systemNames))],
		Stars:      make(map[uint64]*star.Star),
	}

	s.Position[0] = rs.Float64() * sectorSizeLy
	s.Position[1] = rs.Float64() * sectorSizeLy
	s.Position[2] = rs.Float64() * sectorSizeLy

	s.Multiplicity = mathutil.CDFIndex(rs.Float64(), multiplicityCDF) + 1

	g.logger.Debug("System generated",
		"component", "system_generator",
		"seed", systemSeed,
		"multiplicity", s.Multiplicity,
	)

	return s
}

// systemNames are traditional star names reused as system designations.
var systemNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Alsephina", "Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda",
	"Mizar", "Nunki", "Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab",
	"Saiph", "Zubenelgenubi", "Enif", "Schedar", "Markab", "Unukalhai", "Tau",
}
