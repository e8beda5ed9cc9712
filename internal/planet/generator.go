package planet

import (
	"log/slog"
	"math"

	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/mathutil"
	"galaxy-server/internal/shared/rng"
	"galaxy-server/internal/units"
)

// Accretion disk density scale factors, inside and outside the frost limit.
// Inside, rocky material follows a normal distribution peaking halfway to
// the frost limit; outside, volatile material decays with distance.
const (
	rockyDensityScale = 4.2e24
	icyDensityScale   = 8.0e26
	icyDecaySkew      = 0.5
)

// Generator produces fully populated planets from planet seeds. Orbital
// distances are decided by the engine before generation because neighboring
// orbits share accretion boundaries.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate derives every attribute of the planet identified by planetSeed
// from a local random stream seeded with it. The accretion band the planet
// swept runs from lowerBoundAU to the mirrored distance past the orbit; the
// far edge is returned so the caller can feed it to the next planet out.
func (g *Generator) Generate(planetSeed uint64, host Host, distanceAU, lowerBoundAU float64) (*Planet, float64, error) {
	rs := rng.New(planetSeed)

	equatorJitter := rs.Float64() * 50.0
	poleJitter := rs.Float64() * 50.0
	radiusFrac := rs.Float64()
	atmosphereDraw := rs.Float64()

	upperBoundAU := 2.0*distanceAU - lowerBoundAU

	p := &Planet{
		Seed:            planetSeed,
		DistanceAU:      distanceAU,
		InHabitableZone: distanceAU > host.InnerHZAU && distanceAU < host.OuterHZAU,
	}

	p.Mass = diskDensity(distanceAU, host) * (upperBoundAU - lowerBoundAU)
	p.Mu = units.G * p.Mass

	p.Temperature = equilibriumTemperature(distanceAU, host.Luminosity)
	p.EquatorTemperature = p.Temperature + equatorJitter
	p.PoleTemperature = p.Temperature - poleJitter

	zone := zoneCold
	switch {
	case distanceAU < host.InnerHZAU:
		zone = zoneHot
	case distanceAU <= host.OuterHZAU:
		zone = zoneWarm
	}

	family, err := massFamily(p.Mass)
	if err != nil {
		return nil, 0, err
	}
	p.TypeIndex = zone*familyCount + family
	cell := periodicTable[p.TypeIndex]

	p.Radius = (cell.MinRadius + radiusFrac*(cell.MaxRadius-cell.MinRadius)) * units.RearthKm
	p.Day = 2 * math.Pi * p.Radius
	p.Year = math.Sqrt(math.Pow(distanceAU, 3)) * units.YearEarthSeconds

	if atmosphereDraw < cell.AtmosphereProbMax {
		p.Atmosphere = generateAtmosphere(rs, p, cell)
	}

	scoreHabitability(p)

	g.logger.Debug("Planet generated",
		"component", "planet_generator",
		"seed", planetSeed,
		"distance_au", distanceAU,
		"type", cell.Type,
		"habitability", p.Habitability,
	)

	return p, upperBoundAU, nil
}

// diskDensity models the accretion disk line density in [kg/au] at a given
// distance, per the nebular hypothesis: rocky inside the frost limit,
// volatile-rich outside.
func diskDensity(distanceAU float64, host Host) float64 {
	if distanceAU < host.FrostLimitAU {
		mu := host.FrostLimitAU / 2.0
		sigma := host.FrostLimitAU / 16.0
		return rockyDensityScale * host.Mass * mathutil.NormalDensity(distanceAU, mu, sigma)
	}
	return icyDensityScale * host.Mass * mathutil.InverseExpDecay(distanceAU, icyDecaySkew)
}

// equilibriumTemperature returns the blackbody temperature in [K] of a body
// at the given distance from a star of the given luminosity in [Lsol].
func equilibriumTemperature(distanceAU, lumStar float64) float64 {
	distM := distanceAU * units.AUToKm * 1e3
	flux := 0.25 * lumStar * units.LsolW / (4 * math.Pi * units.StefanBoltzmann * distM * distM)
	return math.Pow(flux, 0.25)
}

// massFamily returns the mass bracket of the periodic table for a mass in
// [kg]. First matching bracket wins; masses past the Jovian ceiling clamp to
// Jovian, vanishing masses clamp to Mercurian, and a mass exactly on an
// inner bracket boundary resolves to the lower bracket.
func massFamily(massKg float64) (int, error) {
	massMe := massKg / units.MearthKg
	if math.IsNaN(massMe) || massMe < 0 {
		return 0, errors.Classificationf("planet mass %v kg outside every mass bracket", massKg)
	}

	for f := 0; f < familyCount; f++ {
		if massMe > familyMinMass[f] && massMe < familyMaxMass[f] {
			return f, nil
		}
	}

	switch {
	case massMe >= familyMinMass[familyJovian]:
		return familyJovian, nil
	case massMe <= familyMaxMass[familyMercurian]:
		return familyMercurian, nil
	}
	for f := familySubterran; f < familyJovian; f++ {
		if massMe == familyMaxMass[f] {
			return f, nil
		}
	}
	return 0, errors.Classificationf("planet mass %.4g kg outside every mass bracket", massKg)
}
