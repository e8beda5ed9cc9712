package planet

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaxy-server/internal/units"
)

// sunHost mirrors a G V star close to the Sun.
func sunHost() Host {
	return Host{
		Mass:         1.0,
		Luminosity:   1.0,
		FrostLimitAU: 4.8,
		InnerHZAU:    0.75,
		OuterHZAU:    1.77,
	}
}

func testGenerator() *Generator {
	return NewGenerator(slog.Default())
}

// nextOrbit advances an accretion walk the way the engine spaces orbits:
// inside the frost limit the next orbit lands between the swept boundary and
// the frost limit, outside it pushes outward multiplicatively.
func nextOrbit(lower, dist, frost, frac float64) float64 {
	if lower < frost {
		return lower + 0.1 + frac*(frost-lower)
	}
	d := dist * (1.5 + frac)
	if d <= lower {
		d += lower
	}
	return d
}

func TestGenerateDeterminism(t *testing.T) {
	g := testGenerator()
	host := sunHost()

	a, upperA, err := g.Generate(6432, host, 1.0, 0.5)
	require.NoError(t, err)
	b, upperB, err := g.Generate(6432, host, 1.0, 0.5)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, upperA, upperB)
}

func TestGenerateReturnsMirroredBoundary(t *testing.T) {
	g := testGenerator()

	_, upper, err := g.Generate(6432, sunHost(), 1.0, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, upper, 1e-12)
}

func TestGenerateBasicAttributes(t *testing.T) {
	g := testGenerator()
	host := sunHost()

	for trial := uint64(0); trial < 40; trial++ {
		frac := 0.05 + 0.9*float64(trial)/40
		lower, dist := 0.0, 0.0
		for n := uint64(0); n < 8; n++ {
			dist = nextOrbit(lower, dist, host.FrostLimitAU, frac)
			p, upper, err := g.Generate(6432+trial*10_001+n, host, dist, lower)
			require.NoError(t, err)

			assert.Positive(t, p.Mass)
			assert.Positive(t, p.Radius)
			assert.Positive(t, p.Day)
			assert.Positive(t, p.Year)
			assert.Positive(t, p.Temperature)
			assert.GreaterOrEqual(t, p.EquatorTemperature, p.Temperature)
			assert.LessOrEqual(t, p.PoleTemperature, p.Temperature)

			require.GreaterOrEqual(t, p.TypeIndex, 0)
			require.Less(t, p.TypeIndex, CellCount())

			assert.InDelta(t, units.G*p.Mass, p.Mu, p.Mu*1e-12)
			assert.Equal(t, dist > host.InnerHZAU && dist < host.OuterHZAU, p.InHabitableZone)

			lower = upper
		}
	}
}

func TestEquilibriumTemperatureFallsWithDistance(t *testing.T) {
	earth := equilibriumTemperature(1.0, 1.0)
	assert.InDelta(t, 278.6, earth, 1.0)

	assert.Greater(t, equilibriumTemperature(0.4, 1.0), earth)
	assert.Less(t, equilibriumTemperature(5.0, 1.0), earth)
}

func TestHabitabilityBounds(t *testing.T) {
	g := testGenerator()
	host := sunHost()

	for trial := uint64(0); trial < 40; trial++ {
		frac := 0.05 + 0.9*float64(trial)/40
		lower, dist := 0.0, 0.0
		for n := uint64(0); n < 8; n++ {
			dist = nextOrbit(lower, dist, host.FrostLimitAU, frac)
			p, upper, err := g.Generate(1000+trial*770+n, host, dist, lower)
			require.NoError(t, err)
			lower = upper

			assert.GreaterOrEqual(t, p.ProbTemp, 0.0)
			assert.LessOrEqual(t, p.ProbTemp, 1.0)
			assert.GreaterOrEqual(t, p.ProbGrav, 0.0)
			assert.LessOrEqual(t, p.ProbGrav, 1.0)
			assert.GreaterOrEqual(t, p.Habitability, 0.0)
			assert.LessOrEqual(t, p.Habitability, 1.0)

			if !p.InHabitableZone {
				assert.Zero(t, p.Habitability)
			}
		}
	}
}

func TestHabitabilityAirlessInZone(t *testing.T) {
	g := testGenerator()
	host := Host{
		Mass:         1.0,
		Luminosity:   1.0,
		FrostLimitAU: 2.0,
		InnerHZAU:    0.75,
		OuterHZAU:    1.77,
	}

	// A thin accretion band at 1.0 au keeps the mass in the Mercurian
	// bracket, and the warm Mercurian cell never retains an atmosphere. The
	// score of such a planet is exactly the temperature and gravity factors.
	positive := 0
	for planetSeed := uint64(1); planetSeed <= 20; planetSeed++ {
		p, _, err := g.Generate(planetSeed, host, 1.0, 0.98)
		require.NoError(t, err)
		require.True(t, p.InHabitableZone)
		require.False(t, p.Atmosphere.Exists())
		require.Equal(t, zoneWarm*familyCount+familyMercurian, p.TypeIndex)

		assert.InDelta(t, p.ProbTemp*p.ProbGrav, p.Habitability, 1e-12)
		assert.Positive(t, p.ProbTemp)
		if p.Habitability > 0 {
			positive++
		}
	}
	assert.Positive(t, positive)
}

func TestAtmosphereConsistency(t *testing.T) {
	g := testGenerator()
	host := sunHost()

	checked := 0
	for trial := uint64(0); trial < 40; trial++ {
		frac := 0.05 + 0.9*float64(trial)/40
		lower, dist := 0.0, 0.0
		for n := uint64(0); n < 8; n++ {
			dist = nextOrbit(lower, dist, host.FrostLimitAU, frac)
			p, upper, err := g.Generate(5000+trial*130+n, host, dist, lower)
			require.NoError(t, err)
			lower = upper

			if !p.Atmosphere.Exists() {
				continue
			}
			checked++

			sum := 0.0
			for gas, fraction := range p.Atmosphere.Composition {
				assert.Contains(t, gasAbundance, gas)
				assert.Positive(t, fraction)
				sum += fraction
			}
			assert.InDelta(t, 1.0, sum, 1e-9)

			cell := periodicTable[p.TypeIndex]
			assert.GreaterOrEqual(t, p.Atmosphere.Pressure, cell.MinPressure)
			assert.LessOrEqual(t, p.Atmosphere.Pressure, cell.MaxPressure)

			if p.IsGasGiant() {
				assert.Equal(t, p.Radius, p.Atmosphere.Radius)
			} else {
				assert.Greater(t, p.Atmosphere.Radius, p.Radius)
			}
		}
	}

	// Gas giants beyond the frost limit guarantee coverage.
	assert.Greater(t, checked, 0)
}

func TestAirlessCellsNeverGetAtmospheres(t *testing.T) {
	g := testGenerator()
	host := sunHost()

	for trial := uint64(0); trial < 40; trial++ {
		frac := 0.05 + 0.9*float64(trial)/40
		lower, dist := 0.0, 0.0
		for n := uint64(0); n < 8; n++ {
			dist = nextOrbit(lower, dist, host.FrostLimitAU, frac)
			p, upper, err := g.Generate(9000+trial*290+n, host, dist, lower)
			require.NoError(t, err)
			lower = upper

			cell := periodicTable[p.TypeIndex]
			if cell.AtmosphereProbMax == 0 {
				assert.False(t, p.Atmosphere.Exists())
			}
			if cell.AtmosphereProbMax == 1 {
				assert.True(t, p.Atmosphere.Exists())
			}
		}
	}
}

func TestMassFamilyBrackets(t *testing.T) {
	cases := []struct {
		massMe float64
		want   int
	}{
		{0.05, familyMercurian},
		{0.3, familySubterran},
		{1.0, familyTerran},
		{5.0, familySuperterran},
		{30.0, familyNeptunian},
		{500.0, familyJovian},
		// Past the Jovian ceiling the bracket clamps instead of failing.
		{5000.0, familyJovian},
	}

	for _, tc := range cases {
		got, err := massFamily(tc.massMe * units.MearthKg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "mass %g Me", tc.massMe)
	}
}

func TestTemperatureFactor(t *testing.T) {
	assert.Zero(t, temperatureFactor(100))
	assert.Zero(t, temperatureFactor(400))
	assert.InDelta(t, 1.0, temperatureFactor(293), 1e-12)
	assert.InDelta(t, 1.0-20.0/70.0, temperatureFactor(273), 1e-12)
}

func TestGravityFactorEarthlike(t *testing.T) {
	// Earth mass and radius should score at the ideal.
	assert.InDelta(t, 1.0, gravityFactor(units.MearthKg, units.RearthKm), 0.01)

	assert.Zero(t, gravityFactor(units.MearthKg*100, units.RearthKm))
	assert.Zero(t, gravityFactor(units.MearthKg*0.001, units.RearthKm))
}

func TestAtmosphereFactor(t *testing.T) {
	breathable := &Atmosphere{
		Radius:   6500,
		Pressure: 1.0,
		Composition: map[string]float64{
			"N2": 0.78,
			"O2": 0.21,
			"Ar": 0.01,
		},
	}
	assert.Equal(t, 1.0, atmosphereFactor(breathable))

	noOxygen := &Atmosphere{
		Radius:      6500,
		Pressure:    1.0,
		Composition: map[string]float64{"N2": 1.0},
	}
	assert.Zero(t, atmosphereFactor(noOxygen))

	thinAir := &Atmosphere{
		Radius:      6500,
		Pressure:    0.1,
		Composition: map[string]float64{"N2": 0.5, "O2": 0.5},
	}
	assert.Zero(t, atmosphereFactor(thinAir))

	toxic := &Atmosphere{
		Radius:      6500,
		Pressure:    2.0,
		Composition: map[string]float64{"CO2": 0.9, "O2": 0.1},
	}
	assert.Zero(t, atmosphereFactor(toxic))
}

func TestPeriodicTableNames(t *testing.T) {
	p := &Planet{TypeIndex: zoneWarm*familyCount + familyTerran}
	assert.Equal(t, "Warm Terran", p.Type())
	assert.Equal(t, "Terran", p.Family())
	assert.Equal(t, "Terrestial", p.Class())
	assert.Equal(t, "Warm Zone", p.Zone())
	assert.False(t, p.IsGasGiant())

	gg := &Planet{TypeIndex: zoneCold*familyCount + familyJovian}
	assert.Equal(t, "Cold Jovian", gg.Type())
	assert.Equal(t, "Gas Giant", gg.Class())
	assert.True(t, gg.IsGasGiant())

	assert.Equal(t, "unknown", (&Planet{TypeIndex: -1}).Type())
}
