package planet

// The periodic table of planets: 18 cells, 3 temperature zones times 6 mass
// brackets. A planet's TypeIndex is zone*6 + bracket.

const familyCount = 6

const (
	familyMercurian = iota
	familySubterran
	familyTerran
	familySuperterran
	familyNeptunian
	familyJovian
)

const (
	zoneHot = iota
	zoneWarm
	zoneCold
)

// periodicCell is one cell of the table: the mass and radius ranges of the
// bracket plus the zone-dependent atmosphere odds and pressure range.
type periodicCell struct {
	Zone   string
	Family string
	Type   string
	Class  string

	MinMass, MaxMass     float64 // [Mearth]
	MinRadius, MaxRadius float64 // [Rearth]

	// Largest atmosphere-retention draw for which the planet keeps an
	// atmosphere. 1.0 means guaranteed, 0 means airless.
	AtmosphereProbMax float64

	MinPressure, MaxPressure float64 // [bar]

	// Reference zone weight; not part of the habitability score, which is
	// tempFactor x gravFactor x atmoFactor.
	HabitabilityFactor float64
}

var (
	familyNames = [familyCount]string{"Mercurian", "Subterran", "Terran", "Superterran", "Neptunian", "Jovian"}
	zoneNames   = [3]string{"Hot", "Warm", "Cold"}

	familyMinMass = [familyCount]float64{0, 0.1, 0.5, 2, 10, 50}
	familyMaxMass = [familyCount]float64{0.1, 0.5, 2, 10, 50, 1e3}

	familyMinRadius = [familyCount]float64{0.03, 0.4, 0.8, 1.25, 2.6, 6.0}
	familyMaxRadius = [familyCount]float64{0.4, 0.8, 1.25, 2.6, 6.0, 1e3}

	familyMinPressure = [familyCount]float64{0, 0.1, 0.5, 0.5, 10, 1e2}
	familyMaxPressure = [familyCount]float64{0.001, 0.5, 2.0, 3.0, 1e3, 2e3}

	// Atmosphere retention odds per zone. Gas giants always retain theirs;
	// small hot or cold bodies almost never do.
	atmosphereProbMax = [3][familyCount]float64{
		zoneHot:  {0, 0.001, 0.001, 0.001, 1, 1},
		zoneWarm: {0, 0.02, 0.05, 0.01, 1, 1},
		zoneCold: {0, 0, 0, 0, 1, 1},
	}

	habitabilityFactor = [3][familyCount]float64{
		zoneHot:  {0, 0, 0, 0, 0, 0},
		zoneWarm: {0, 1, 1, 1, 0, 0},
		zoneCold: {0, 0, 0, 0, 0, 0},
	}
)

// periodicTable is built once from the per-family and per-zone columns.
var periodicTable = func() [3 * familyCount]periodicCell {
	var table [3 * familyCount]periodicCell
	for z := 0; z < 3; z++ {
		for f := 0; f < familyCount; f++ {
			class := "Terrestial"
			if f >= familyNeptunian {
				class = "Gas Giant"
			}
			table[z*familyCount+f] = periodicCell{
				Zone:               zoneNames[z] + " Zone",
				Family:             familyNames[f],
				Type:               zoneNames[z] + " " + familyNames[f],
				Class:              class,
				MinMass:            familyMinMass[f],
				MaxMass:            familyMaxMass[f],
				MinRadius:          familyMinRadius[f],
				MaxRadius:          familyMaxRadius[f],
				AtmosphereProbMax:  atmosphereProbMax[z][f],
				MinPressure:        familyMinPressure[f],
				MaxPressure:        familyMaxPressure[f],
				HabitabilityFactor: habitabilityFactor[z][f],
			}
		}
	}
	return table
}()

func cellAt(idx int) (periodicCell, bool) {
	if idx < 0 || idx >= len(periodicTable) {
		return periodicCell{}, false
	}
	return periodicTable[idx], true
}

// CellCount returns the number of cells in the periodic table.
func CellCount() int {
	return len(periodicTable)
}

// Atmospheric gases, ordered by the sampling schedule: the first gas of a
// composition comes from the two most abundant candidates, the second from
// the next two, later gases from the trace tail.
var gasOrder = [10]string{"CO2", "H2", "N2", "O2", "He", "Ar", "CH4", "Ne", "Kr", "Xe"}

// gasAbundance caps the volume fraction a gas can reach, from the largest
// share each gas holds in observed planetary atmospheres.
var gasAbundance = map[string]float64{
	"CO2": 0.965,
	"H2":  0.963,
	"N2":  0.780,
	"O2":  0.210,
	"He":  0.102,
	"Ar":  0.016,
	"CH4": 0.015,
	"Ne":  0.0001,
	"Kr":  0.0001,
	"Xe":  0.0001,
}

// gasMaxPartialPressure is the largest breathable partial pressure of each
// gas in [bar]; above it the gas is narcotic or toxic to humans.
var gasMaxPartialPressure = map[string]float64{
	"He":  2934,
	"Ne":  66,
	"H2":  16.5,
	"N2":  5.94,
	"O2":  1.6,
	"Ar":  1.12,
	"Kr":  0.12,
	"CO2": 0.015,
	"Xe":  0.009,
	"CH4": 0.001,
}

// gasRelativeToxicity ranks the gases by narcotic potency relative to
// nitrogen. Kept as reference data for content presentation.
var gasRelativeToxicity = map[string]float64{
	"He":  0.045,
	"Ne":  0.3,
	"H2":  0.6,
	"N2":  1.0,
	"O2":  1.7,
	"Ar":  2.3,
	"Kr":  7.1,
	"CO2": 20,
	"Xe":  25.6,
	"CH4": 20,
}

// MinBreathableO2Bar is the lowest oxygen partial pressure in [bar] a human
// can sustain.
const MinBreathableO2Bar = 0.16

// GasToxicity returns the narcotic potency of a gas relative to nitrogen.
func GasToxicity(gas string) (float64, bool) {
	t, ok := gasRelativeToxicity[gas]
	return t, ok
}
