package star

import (
	"galaxy-server/internal/planet"
)

// Star is one star of a system, fully described by its seed. Planets are
// keyed by their own seeds; each planet carries the star seed as a
// back-reference instead of a pointer so entities stay independently
// serializable.
type Star struct {
	Seed uint64 `json:"seed"`
	Name string `json:"name,omitempty"`

	// TypeIndex is the row of the stellar classification table.
	TypeIndex int `json:"type"`

	// Stellar classification, e.g. "G2V": spectral class + temperature
	// subclass digit + luminosity class.
	SpectralClass       string `json:"spectral_class"`
	TemperatureSequence string `json:"temperature_sequence"`
	LuminosityClass     string `json:"luminosity_class"`
	StellarType         string `json:"stellar_type"`
	Designation         string `json:"designation"`

	Mass        float64 `json:"mass"`        // [Msol]
	Radius      float64 `json:"radius"`      // [Rsol]
	Luminosity  float64 `json:"luminosity"`  // [Lsol]
	Temperature float64 `json:"temperature"` // [K]

	// Blackbody color, RGB in [0..255].
	Color [3]uint8 `json:"color"`

	// Habitable zone limit distances in [au]. Index 1 is the inner limit
	// (recent Venus), index 5 the outer limit (early Mars); see
	// HZBoundaryDescriptions for the full set. A zero entry means the limit
	// is undefined for this star's temperature.
	HZDistAU [8]float64 `json:"hz_dist_au"`

	// Distance in [au] where equilibrium temperature reaches 150K.
	FrostLimitAU float64 `json:"frost_limit_au"`

	// Axial rotation period in [s].
	AxialRotation float64 `json:"axial_rotation"`

	// Fluctuation of luminosity output, fraction of nominal.
	OutputVariation float64 `json:"output_variation"`

	PlanetCount int                       `json:"planet_count"`
	Planets     map[uint64]*planet.Planet `json:"planets,omitempty"`
}

// HZBoundaryDescriptions names the entries of HZDistAU.
var HZBoundaryDescriptions = [8]string{
	"unused",
	"Inner HZ 'Recent Venus' limit",
	"'Runaway Greenhouse' limit",
	"Inner HZ 'Moist Greenhouse' (waterloss) limit",
	"Outer HZ 'Maximum Greenhouse' limit",
	"Outer HZ 'Early Mars' limit",
	"2 AU Cloud limit",
	"First CO2 Condensation limit",
}

// InnerHZAU returns the inner habitable zone limit in [au].
func (s *Star) InnerHZAU() float64 {
	return s.HZDistAU[1]
}

// OuterHZAU returns the outer habitable zone limit in [au].
func (s *Star) OuterHZAU() float64 {
	return s.HZDistAU[5]
}

// Host packages the attributes planet generation needs from this star.
func (s *Star) Host() planet.Host {
	return planet.Host{
		Mass:         s.Mass,
		Luminosity:   s.Luminosity,
		FrostLimitAU: s.FrostLimitAU,
		InnerHZAU:    s.InnerHZAU(),
		OuterHZAU:    s.OuterHZAU(),
	}
}

// HasPlanetsInHZ reports whether any generated planet orbits inside the
// habitable zone.
func (s *Star) HasPlanetsInHZ() bool {
	for _, p := range s.Planets {
		if p.InHabitableZone {
			return true
		}
	}
	return false
}

// HabitablePlanetsProbability estimates how likely this star is to host
// habitable planets, from the age probability of its class and its
// luminosity output variation.
func (s *Star) HabitablePlanetsProbability() float64 {
	if s.TypeIndex < 0 || s.TypeIndex >= len(classTable) {
		return 0
	}
	probAge := classTable[s.TypeIndex].AgeProbability
	probVar := 1.0 - s.OutputVariation
	return probAge * probVar
}
