package planet

// Planet is one planet of a star, fully described by its seed, its orbital
// distance and the attributes of its host. The star seed is kept as a
// back-reference instead of a pointer so entities stay independently
// serializable.
type Planet struct {
	Seed     uint64 `json:"seed"`
	StarSeed uint64 `json:"star_seed"`
	Name     string `json:"name,omitempty"`

	// Distance from the orbited star in [au].
	DistanceAU float64 `json:"distance_au"`

	// Whether the orbit lies between the star's inner and outer habitable
	// zone limits.
	InHabitableZone bool `json:"in_habitable_zone"`

	Mass float64 `json:"mass"` // [kg]

	// Standard gravitational parameter G*M, in [m^3 s^-2].
	Mu float64 `json:"mu"`

	// Equilibrium temperature in [K] plus the equator and pole spread.
	Temperature        float64 `json:"temperature"`
	EquatorTemperature float64 `json:"equator_temperature"`
	PoleTemperature    float64 `json:"pole_temperature"`

	// TypeIndex is the cell of the periodic table of planets, in [0..17].
	TypeIndex int `json:"type"`

	Radius float64 `json:"radius"` // [km]
	Day    float64 `json:"day"`    // axial rotation period [s]
	Year   float64 `json:"year"`   // orbital period [s]

	// Habitability factors in [0..1]. ProbTemp and ProbGrav fall off
	// linearly from the physiological ideal; Habitability is their product,
	// times the atmosphere factor when an atmosphere exists, and is 0 for
	// any planet outside the habitable zone.
	ProbTemp     float64 `json:"prob_temp"`
	ProbGrav     float64 `json:"prob_grav"`
	Habitability float64 `json:"habitability"`

	// Atmosphere is nil for airless planets.
	Atmosphere *Atmosphere `json:"atmosphere,omitempty"`
}

// Atmosphere is the optional gas envelope of a planet.
type Atmosphere struct {
	Radius   float64 `json:"radius"`   // outer radius [km]
	Pressure float64 `json:"pressure"` // surface pressure [bar]

	// Composition maps gas name to volume fraction; fractions sum to 1.
	Composition map[string]float64 `json:"composition"`
}

// Exists reports whether the planet has an atmosphere. A generated
// atmosphere always carries a positive radius.
func (a *Atmosphere) Exists() bool {
	return a != nil && a.Radius > 0
}

// Host packages the star attributes planet generation depends on.
type Host struct {
	Mass         float64 // [Msol]
	Luminosity   float64 // [Lsol]
	FrostLimitAU float64
	InnerHZAU    float64
	OuterHZAU    float64
}

// Type returns the periodic-table cell name, e.g. "Warm Terran".
func (p *Planet) Type() string {
	if cell, ok := cellAt(p.TypeIndex); ok {
		return cell.Type
	}
	return "unknown"
}

// Family returns the mass-bracket name of the planet, e.g. "Jovian".
func (p *Planet) Family() string {
	if cell, ok := cellAt(p.TypeIndex); ok {
		return cell.Family
	}
	return "unknown"
}

// Class returns "Terrestial" or "Gas Giant".
func (p *Planet) Class() string {
	if cell, ok := cellAt(p.TypeIndex); ok {
		return cell.Class
	}
	return "unknown"
}

// Zone returns the temperature zone name, e.g. "Cold Zone".
func (p *Planet) Zone() string {
	if cell, ok := cellAt(p.TypeIndex); ok {
		return cell.Zone
	}
	return "unknown"
}

// IsGasGiant reports whether the planet falls in a gas giant mass bracket
// (Neptunian or Jovian).
func (p *Planet) IsGasGiant() bool {
	return p.TypeIndex%familyCount >= familyNeptunian
}
