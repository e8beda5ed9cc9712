package planet

import (
	"galaxy-server/internal/shared/rng"
)

// generateAtmosphere builds the gas envelope of a planet that retained one,
// continuing on the planet's random stream.
//
// The composition fills from abundant to trace: the first gas is drawn from
// the two dominant candidates, the second from the next two, later gases
// from the trace tail, each taking a slice of its observed maximum share
// until the fractions sum to 1.
func generateAtmosphere(rs *rng.Stream, p *Planet, cell periodicCell) *Atmosphere {
	atm := &Atmosphere{
		Composition: make(map[string]float64),
	}

	if p.IsGasGiant() {
		// Gas giants are atmosphere all the way down.
		atm.Radius = p.Radius
	} else {
		atm.Radius = p.Radius * (1.01 + rs.Float64()*0.09)
	}

	atm.Pressure = cell.MinPressure + rs.Float64()*(cell.MaxPressure-cell.MinPressure)

	total := 0.0
	for run := 0; total < 1.0; run++ {
		var idx int
		switch run {
		case 0:
			idx = int(rs.Uint64N(2))
		case 1:
			idx = 2 + int(rs.Uint64N(2))
		default:
			idx = 4 + int(rs.Uint64N(5))
		}
		gas := gasOrder[idx]

		maxShare := gasAbundance[gas]
		fraction := maxShare*0.6 + rs.Float64()*maxShare*0.4
		if remainder := 1.0 - total; fraction > remainder {
			fraction = remainder
		}

		atm.Composition[gas] += fraction
		total += fraction
	}

	return atm
}
