package star

// classRow is one row of the stellar classification table: empirical
// attribute ranges for a spectral/luminosity class pair plus the cumulative
// occurrence probability used for sampling.
type classRow struct {
	Spectral    string
	Luminosity  string
	Designation string

	MinMass, MaxMass     float64 // [Msol]
	MinRadius, MaxRadius float64 // [Rsol]
	MinTemp, MaxTemp     float64 // [K]

	// Apparent color, linear RGB in [0..1].
	Color [3]float64

	// Cumulative occurrence probability, ascending; the last row reaches 1.0.
	CDF float64

	// Probability that a system of this class is old enough for planet
	// formation and a settled atmosphere.
	AgeProbability float64
}

// classTable holds the 24 supported classes: supergiants (I), regular
// giants (III), the main sequence (V) and the exotic tail end. Attribute
// ranges are empirical astrophysical class data; occurrence probabilities
// are normalized from rough galactic abundance estimates.
var classTable = []classRow{
	{"B", "I", "blue supergiant", 10, 100, 30, 2000, 9700, 21000, [3]float64{0.906, 0.878, 1.000}, 0.015152, 0.10},
	{"A", "I", "supergiant", 5, 30, 30, 1900, 8300, 9400, [3]float64{0.792, 0.749, 0.929}, 0.030303, 0.10},
	{"F", "I", "supergiant", 4, 20, 30, 1800, 6150, 7500, [3]float64{0.992, 0.992, 0.925}, 0.045455, 0.10},
	{"G", "I", "supergiant", 3, 11, 30, 1700, 5050, 5800, [3]float64{1.000, 1.000, 1.000}, 0.060606, 0.10},
	{"K", "I", "red supergiant", 2, 40, 25, 1600, 3750, 4900, [3]float64{1.000, 0.992, 0.439}, 0.075758, 0.10},
	{"M", "I", "red supergiant", 7, 40, 11, 1, 2950, 3690, [3]float64{0.965, 0.800, 0.298}, 0.090909, 0.10},
	{"G", "III", "regular giant", 30, 100, 20, 200, 4870, 5010, [3]float64{1.000, 1.000, 1.000}, 0.106061, 0.10},
	{"K", "III", "regular giant", 20, 70, 15, 50, 3780, 4720, [3]float64{1.000, 0.992, 0.439}, 0.121212, 0.10},
	{"M", "III", "regular giant", 3, 15, 10, 30, 2800, 3660, [3]float64{0.965, 0.800, 0.298}, 0.136364, 0.10},
	{"O", "V", "main-sequence", 16, 200, 6.6, 30, 3780, 54000, [3]float64{0.973, 0.561, 0.380}, 0.166667, 0.20},
	{"B", "V", "main-sequence", 2.1, 24000, 1.8, 6.6, 11400, 29200, [3]float64{0.906, 0.878, 1.000}, 0.242424, 0.50},
	{"A", "V", "main-sequence", 1.4, 2.1, 1.4, 1.8, 7920, 9600, [3]float64{0.792, 0.749, 0.929}, 0.378788, 0.90},
	{"F", "V", "main-sequence", 1.04, 1.4, 1.15, 1.40, 6300, 7350, [3]float64{0.992, 0.992, 0.925}, 0.530303, 1.00},
	{"G", "V", "main-sequence", 0.8, 1.04, 0.96, 1.15, 5440, 6050, [3]float64{1.000, 1.000, 1.000}, 0.681818, 1.00},
	{"K", "V", "orange dwarf", 0.08, 0.45, 0.70, 0.96, 4000, 5240, [3]float64{1.000, 0.992, 0.439}, 0.833333, 1.00},
	{"M", "V", "red dwarf", 0.075, 0.6, 0.08, 0.62, 2600, 3750, [3]float64{0.965, 0.800, 0.298}, 0.924242, 0.60},
	{"L", "V", "red dwarf", 0.005, 0.08, 0.08, 0.15, 1500, 2600, [3]float64{0.957, 0.298, 0.227}, 0.969697, 0.30},
	{"T", "V", "methane dwarf", 0.005, 0.008, 0.008, 0.1, 800, 1400, [3]float64{0.741, 0.024, 0.361}, 0.984848, 0.10},
	{"Y", "", "brown dwarf", 0.0005, 0.02, 0.08, 0.14, 500, 1000, [3]float64{0.361, 0.020, 0.020}, 0.992424, 0.05},
	{"D", "", "white dwarf", 0.005, 0.008, 0.08, 0.1, 500, 800, [3]float64{1.0, 1.0, 1.0}, 0.993939, 0.01},
	{"R", "", "carbon-based", 0.005, 0.08, 0.01, 0.1, 500, 800, [3]float64{1.0, 1.0, 1.0}, 0.995454, 0.01},
	{"N", "", "carbon-based", 0.005, 0.08, 0.01, 0.1, 500, 800, [3]float64{1.0, 1.0, 1.0}, 0.996970, 0.01},
	{"S", "", "zirconium-monoxide-based star", 0.005, 0.08, 0.01, 0.1, 500, 800, [3]float64{1.0, 1.0, 1.0}, 0.998485, 0.01},
	{"W", "", "dying supergiant", 0.005, 0.08, 0.01, 0.1, 500, 800, [3]float64{1.0, 1.0, 1.0}, 1.000000, 0.01},
}

// classCDF is the cumulative occurrence distribution, extracted once for
// sampling.
var classCDF = func() []float64 {
	cdf := make([]float64, len(classTable))
	for i, row := range classTable {
		cdf[i] = row.CDF
	}
	return cdf
}()

// ClassCount returns the number of rows in the classification table.
func ClassCount() int {
	return len(classTable)
}

// ClassRow returns the designation and class strings of a table row, for
// callers presenting stars without a generated Star value.
func ClassRow(idx int) (spectral, luminosity, designation string, ok bool) {
	if idx < 0 || idx >= len(classTable) {
		return "", "", "", false
	}
	row := classTable[idx]
	return row.Spectral, row.Luminosity, row.Designation, true
}
