package star

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator() *Generator {
	return NewGenerator(slog.Default())
}

func TestGenerateDeterminism(t *testing.T) {
	g := testGenerator()

	a, err := g.Generate(187_601_123)
	require.NoError(t, err)
	b, err := g.Generate(187_601_123)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateAttributesWithinClassRanges(t *testing.T) {
	g := testGenerator()

	for seed := uint64(1); seed <= 200; seed++ {
		s, err := g.Generate(seed * 10_007)
		require.NoError(t, err)

		require.GreaterOrEqual(t, s.TypeIndex, 0)
		require.Less(t, s.TypeIndex, ClassCount())
		row := classTable[s.TypeIndex]

		assert.GreaterOrEqual(t, s.Mass, row.MinMass)
		assert.Less(t, s.Mass, row.MaxMass)
		// The M I row carries a reversed radius range; interpolation still
		// lands between the two bounds.
		assert.GreaterOrEqual(t, s.Radius, math.Min(row.MinRadius, row.MaxRadius))
		assert.LessOrEqual(t, s.Radius, math.Max(row.MinRadius, row.MaxRadius))
		assert.GreaterOrEqual(t, s.Temperature, row.MinTemp)
		assert.Less(t, s.Temperature, row.MaxTemp)

		assert.Positive(t, s.Luminosity)
		assert.Positive(t, s.FrostLimitAU)
		assert.Positive(t, s.AxialRotation)

		assert.GreaterOrEqual(t, s.PlanetCount, 0)
		assert.Less(t, s.PlanetCount, 8)

		assert.Len(t, s.TemperatureSequence, 1)
		assert.Equal(t, row.Spectral+s.TemperatureSequence+row.Luminosity, s.StellarType)
	}
}

func TestHabitableZoneOrdering(t *testing.T) {
	g := testGenerator()

	for seed := uint64(1); seed <= 500; seed++ {
		s, err := g.Generate(seed * 31)
		require.NoError(t, err)

		// The flux polynomial is calibrated for 2600K..7200K; outside that
		// range boundaries can collapse to 0.
		if s.Temperature < 2600 || s.Temperature > 7200 {
			continue
		}
		if s.InnerHZAU() == 0 || s.OuterHZAU() == 0 {
			continue
		}
		assert.Less(t, s.InnerHZAU(), s.OuterHZAU(), "seed %d", seed*31)
	}
}

func TestHabitableZoneSunLike(t *testing.T) {
	dist := habitableZone(5780, 1.0)

	// At solar effective temperature the polynomial reduces to its constant
	// term, so distances are sqrt(1/seffSun).
	assert.InDelta(t, math.Sqrt(1/1.7763), dist[1], 1e-6)
	assert.InDelta(t, math.Sqrt(1/0.3207), dist[5], 1e-6)
}

func TestLuminosityFromMassRegimes(t *testing.T) {
	assert.InDelta(t, 0.23*math.Pow(0.2, 2.3), luminosityFromMass(0.2), 1e-12)
	assert.InDelta(t, 1.0, luminosityFromMass(1.0), 1e-12)
	assert.InDelta(t, 1.5*math.Pow(10, 3.5), luminosityFromMass(10), 1e-9)
	assert.InDelta(t, 3200.0*50, luminosityFromMass(50), 1e-9)

	// The relation is monotonic across regime boundaries.
	assert.Less(t, luminosityFromMass(0.42), luminosityFromMass(0.44))
	assert.Less(t, luminosityFromMass(1.99), luminosityFromMass(2.01))
}

func TestTemperatureSequenceClamped(t *testing.T) {
	row := classRow{MinTemp: 5440, MaxTemp: 6050}

	assert.Equal(t, "0", temperatureSequence(row, row.MaxTemp))
	// The hottest subclass digit stays 9 even at the exact row minimum.
	assert.Equal(t, "9", temperatureSequence(row, row.MinTemp))
	assert.Equal(t, "5", temperatureSequence(row, row.MaxTemp-(row.MaxTemp-row.MinTemp)*0.55))
}

func TestFrostLimitScalesWithLuminosity(t *testing.T) {
	assert.Less(t, frostLimit(0.01), frostLimit(1.0))
	assert.Less(t, frostLimit(1.0), frostLimit(100.0))

	// Quadrupling luminosity doubles the frost distance.
	assert.InDelta(t, 2*frostLimit(1.0), frostLimit(4.0), 1e-9)
}

func TestBlackbodyColor(t *testing.T) {
	sun := blackbodyColor(5800)
	assert.Equal(t, uint8(255), sun[0])

	cool := blackbodyColor(3000)
	assert.Equal(t, uint8(255), cool[0])
	assert.Less(t, cool[2], uint8(255))

	hot := blackbodyColor(20000)
	assert.Less(t, hot[0], uint8(255))
	assert.Equal(t, uint8(255), hot[2])
}

func TestClassTableCDFMonotonic(t *testing.T) {
	prev := 0.0
	for i, row := range classTable {
		assert.Greater(t, row.CDF, prev, "row %d", i)
		prev = row.CDF
	}
	assert.InDelta(t, 1.0, classTable[len(classTable)-1].CDF, 1e-9)
}

func TestHabitablePlanetsProbability(t *testing.T) {
	s := &Star{TypeIndex: 13} // G V
	assert.InDelta(t, 1.0, s.HabitablePlanetsProbability(), 1e-12)

	s.OutputVariation = 0.25
	assert.InDelta(t, 0.75, s.HabitablePlanetsProbability(), 1e-12)

	s.TypeIndex = 99
	assert.Zero(t, s.HabitablePlanetsProbability())
}
