package planet

import (
	"math"

	"galaxy-server/internal/units"
)

// Human physiological tolerance bounds.
const (
	minSurvivableTempK = 223.0
	maxSurvivableTempK = 323.0
	idealTempK         = 293.0

	minSurvivableGravity = 0.2 // [g]
	maxSurvivableGravity = 3.0 // [g]
)

// scoreHabitability fills the habitability factors of a generated planet.
// Temperature and gravity fall off linearly from the physiological ideal;
// the atmosphere factor is binary and only applies when the planet retained
// an atmosphere. A planet outside the habitable zone always scores 0.
func scoreHabitability(p *Planet) {
	p.ProbTemp = temperatureFactor(p.Temperature)
	p.ProbGrav = gravityFactor(p.Mass, p.Radius)

	if !p.InHabitableZone {
		p.Habitability = 0
		return
	}

	h := p.ProbTemp * p.ProbGrav
	if p.Atmosphere.Exists() {
		h *= atmosphereFactor(p.Atmosphere)
	}
	p.Habitability = h
}

func temperatureFactor(tempK float64) float64 {
	if tempK < minSurvivableTempK || tempK > maxSurvivableTempK {
		return 0
	}
	return 1.0 - math.Abs(idealTempK-tempK)/(idealTempK-minSurvivableTempK)
}

func gravityFactor(massKg, radiusKm float64) float64 {
	radiusM := radiusKm * 1e3
	gRel := units.G * massKg / (radiusM * radiusM) / units.GEarth
	if gRel < minSurvivableGravity || gRel > maxSurvivableGravity {
		return 0
	}
	return 1.0 - math.Abs(1.0-gRel)/2.0
}

// atmosphereFactor reports whether a human could breathe the atmosphere:
// every gas must stay under its maximum breathable partial pressure and
// oxygen must reach the minimum breathable partial pressure.
func atmosphereFactor(atm *Atmosphere) float64 {
	for gas, fraction := range atm.Composition {
		limit, ok := gasMaxPartialPressure[gas]
		if !ok {
			continue
		}
		if fraction*atm.Pressure > limit {
			return 0
		}
	}

	o2, ok := atm.Composition["O2"]
	if !ok || o2*atm.Pressure < MinBreathableO2Bar {
		return 0
	}

	return 1
}
