package system

import (
	"galaxy-server/internal/star"
)

// System is one star system of a sector: a position inside the sector cube
// and one or more gravitationally bound stars. Stars are keyed by their own
// seeds so they serialize independently.
type System struct {
	Seed       uint64 `json:"seed"`
	SectorSeed uint64 `json:"sector_seed"`
	Name       string `json:"name,omitempty"`

	// Position in [ly] relative to the sector origin corner.
	Position [3]float64 `json:"position"`

	// Number of bound stars, 1 for a solitary system.
	Multiplicity int `json:"multiplicity"`

	Stars map[uint64]*star.Star `json:"stars,omitempty"`
}

// PlanetCount returns the number of planets generated across all stars.
func (s *System) PlanetCount() int {
	n := 0
	for _, st := range s.Stars {
		n += len(st.Planets)
	}
	return n
}

// HasPlanetsInHZ reports whether any star of the system hosts a planet
// inside its habitable zone.
func (s *System) HasPlanetsInHZ() bool {
	for _, st := range s.Stars {
		if st.HasPlanetsInHZ() {
			return true
		}
	}
	return false
}
