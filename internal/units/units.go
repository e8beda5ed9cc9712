// Package units holds the physical constants and conversion factors the
// generators share. Values match the reference astrophysical data the
// distribution tables were built against.
package units

const (
	// Gravitational constant in [m^3 kg^-1 s^-2].
	G = 6.67384e-11
	// Earth surface gravity in [m s^-2].
	GEarth = 9.81

	// Distance conversions.
	AUToKm = 1.49597871e8
	KmToAU = 6.68458712e-9
	MToAU  = 6.68458712e-12

	// Solar system reference values.
	RsolKm   = 696342.0  // Sun radius [km]
	MsolKg   = 1.989e30  // Sun mass [kg]
	RearthKm = 6371.0    // Earth radius [km]
	MearthKg = 5.972e24  // Earth mass [kg]
	LsolW    = 3.84e26   // Sun luminosity [W]

	// Blackbody (Stefan-Boltzmann) constant in [W m^-2 K^-4].
	StefanBoltzmann = 5.67e-8

	// Earth year in [s] (365.25636 d).
	YearEarthSeconds = 31558149.5

	// Pressure conversion: 1 bar in [Pa].
	BarToPa = 1e5
)
