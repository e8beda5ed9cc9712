// Package seed derives child seeds from parent seeds.
//
// A child seed is a pure function of its parent seed plus decade-scaled
// offsets unique to the child's grid coordinates or index, so the whole
// universe regenerates bit-identically from the galaxy seed alone.
//
// The scheme is purely additive with no mixing step. It is reproducible but
// not collision resistant: sufficiently large coordinate magnitudes can make
// two derivations meet. The engine's strict mode detects duplicates within a
// collection rather than this package attempting to prevent them.
package seed

const (
	sectorBase   = 600_000_000_000_000
	sectorXScale = 1_000_000_000
	sectorZScale = 100_000

	systemBase  = 123
	systemScale = 100_000_000_000

	starBase  = 187_600_000
	starScale = 10_000

	planetBase  = 5_432
	planetScale = 10_000
)

// Sector derives the seed of the sector at grid position (x, y, z).
func Sector(galaxySeed uint64, x, y, z int) uint64 {
	return uint64(int64(galaxySeed) + sectorBase + int64(x)*sectorXScale + int64(z)*sectorZScale + int64(y))
}

// System derives the seed of the n-th system of a sector.
func System(sectorSeed uint64, n int) uint64 {
	return uint64(int64(sectorSeed) + systemBase + int64(n)*systemScale)
}

// Star derives the seed of the n-th star of a system.
func Star(systemSeed uint64, n int) uint64 {
	return uint64(int64(systemSeed) + starBase + int64(n)*starScale)
}

// Planet derives the seed of the n-th planet of a star.
func Planet(starSeed uint64, n int) uint64 {
	return uint64(int64(starSeed) + planetBase + int64(n)*planetScale + int64(n))
}
