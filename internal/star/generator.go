package star

import (
	"fmt"
	"log/slog"
	"math"

	"galaxy-server/internal/planet"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/mathutil"
	"galaxy-server/internal/shared/rng"
	"galaxy-server/internal/units"
)

// Generator produces fully populated stars from star seeds. Planets are not
// generated here; the engine drives planet generation afterwards because the
// habitable zone and frost limit must exist before any planet is classified.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate derives every attribute of the star identified by starSeed from a
// local random stream seeded with it. Identical seeds yield identical stars.
func (g *Generator) Generate(starSeed uint64) (*Star, error) {
	rs := rng.New(starSeed)

	idx := mathutil.CDFIndex(rs.Float64(), classCDF)
	if idx < 0 || idx >= len(classTable) {
		return nil, errors.Classificationf("stellar class index %d outside table of %d rows", idx, len(classTable))
	}
	row := classTable[idx]

	s := &Star{
		Seed:      starSeed,
		TypeIndex: idx,
	}

	// Mass, radius and temperature interpolate independently within the
	// class ranges; luminosity is modeled from mass instead of drawn.
	s.Mass = row.MinMass + rs.Float64()*(row.MaxMass-row.MinMass)
	s.Radius = row.MinRadius + rs.Float64()*(row.MaxRadius-row.MinRadius)
	s.Luminosity = luminosityFromMass(s.Mass)
	s.Temperature = row.MinTemp + rs.Float64()*(row.MaxTemp-row.MinTemp)

	s.SpectralClass = row.Spectral
	s.LuminosityClass = row.Luminosity
	s.TemperatureSequence = temperatureSequence(row, s.Temperature)
	s.StellarType = s.SpectralClass + s.TemperatureSequence + s.LuminosityClass
	s.Designation = row.Designation

	s.Color = blackbodyColor(s.Temperature)

	s.HZDistAU = habitableZone(s.Temperature, s.Luminosity)
	s.FrostLimitAU = frostLimit(s.Luminosity)

	// Rotation heuristic from radius and mass; no physical basis, but stable
	// and plausible for game content.
	s.AxialRotation = math.Pi * s.Radius * units.RsolKm / s.Mass

	s.PlanetCount = int(rs.Uint64N(8))
	s.Planets = make(map[uint64]*planet.Planet)

	g.logger.Debug("Star generated",
		"component", "star_generator",
		"seed", starSeed,
		"stellar_type", s.StellarType,
		"mass", s.Mass,
		"planet_count", s.PlanetCount,
	)

	return s, nil
}

// luminosityFromMass models luminosity in [Lsol] from mass in [Msol] with
// the empirical four-regime mass-luminosity relation.
func luminosityFromMass(mass float64) float64 {
	switch {
	case mass < 0.43:
		return 0.23 * math.Pow(mass, 2.3)
	case mass < 2.0:
		return math.Pow(mass, 4.0)
	case mass < 20.0:
		return 1.5 * math.Pow(mass, 3.5)
	default:
		return 3200.0 * mass
	}
}

// temperatureSequence maps the interpolated temperature onto the ten
// subclasses of its row, 0 for the hottest through 9 for the coolest.
func temperatureSequence(row classRow, temperature float64) string {
	step := (row.MaxTemp - row.MinTemp) / 10
	digit := int((row.MaxTemp - temperature) / step)
	if digit < 0 {
		digit = 0
	}
	if digit > 9 {
		digit = 9
	}
	return fmt.Sprintf("%d", digit)
}

// Coefficients of the Kopparapu et al. "Habitable Zones Around Main-Sequence
// Stars" analytical flux expression, one set per habitable zone boundary
// (index 1..7; index 0 is unused). Boundaries 6 and 7 (cloud limit, first
// CO2 condensation) are extensions beyond the paper.
var (
	hzSeffSun = [8]float64{0, 1.7763, 1.0385, 1.0146, 0.3507, 0.3207, 0.2484, 0.5408}
	hzA       = [8]float64{0, 1.4335e-4, 1.2456e-4, 8.1884e-5, 5.9578e-5, 5.4471e-5, 4.2588e-5, 4.4499e-5}
	hzB       = [8]float64{0, 3.3954e-9, 1.4612e-8, 1.9394e-9, 1.6707e-9, 1.5275e-9, 1.1963e-9, 1.4065e-10}
	hzC       = [8]float64{0, -7.6364e-12, -7.6345e-12, -4.3618e-12, -3.0058e-12, -2.7481e-12, -2.1709e-12, -2.2750e-12}
	hzD       = [8]float64{0, -1.1950e-15, -1.7511e-15, -6.8260e-16, -5.1925e-16, -4.7474e-16, -3.8282e-16, -3.3509e-16}
)

// habitableZone computes the eight habitable zone limit distances in [au]
// from the photosphere temperature in [K] and luminosity in [Lsol]. The flux
// polynomial is calibrated for 2600K..7200K; a boundary whose flux comes out
// non-positive is reported as 0 (undefined for this temperature).
func habitableZone(tEff, lumStar float64) [8]float64 {
	var dist [8]float64

	tStar := tEff - 5780.0
	for i := 1; i < 8; i++ {
		sEff := hzSeffSun[i] + hzA[i]*tStar + hzB[i]*math.Pow(tStar, 2) + hzC[i]*math.Pow(tStar, 3) + hzD[i]*math.Pow(tStar, 4)
		if sEff <= 0 {
			dist[i] = 0
			continue
		}
		dist[i] = math.Sqrt(lumStar / sEff)
	}

	return dist
}

// frostLimit returns the distance in [au] where equilibrium temperature
// reaches 150K, the transition between rocky and gaseous accretion regimes.
// Closed-form blackbody solution: d = sqrt(0.25*L / (150^4 * 4*pi*sigma)).
func frostLimit(lumStar float64) float64 {
	const frostTempPow4 = 5.0625e8 // 150K^4
	return math.Sqrt(0.25*lumStar*units.LsolW/(frostTempPow4*4*math.Pi*units.StefanBoltzmann)) * units.MToAU
}

// blackbodyColor approximates the RGB color of a blackbody at the given
// temperature in [K], each channel clamped to [0..255]. Piecewise empirical
// curve by Tanner Helland.
func blackbodyColor(temperatureK float64) [3]uint8 {
	t := temperatureK / 100.0
	var red, green, blue float64

	if t <= 66.0 {
		red = 255
	} else {
		red = 329.698727446 * math.Pow(t-60.0, -0.1332047592)
	}

	if t <= 66.0 {
		green = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		green = 288.1221695283 * math.Pow(t-60.0, -0.0755148492)
	}

	if t >= 66.0 {
		blue = 255
	} else if t <= 19.0 {
		blue = 0
	} else {
		blue = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return [3]uint8{clampChannel(red), clampChannel(green), clampChannel(blue)}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
