package sector

import "fmt"

// Sector is one cubic cell of the galaxy grid. Its seed is derived from the
// galaxy seed and the grid coordinates, so a sector can be regenerated in
// isolation. Systems are referenced by seed; the engine owns the system
// records themselves.
type Sector struct {
	Seed uint64 `json:"seed"`
	Name string `json:"name,omitempty"`

	// Grid coordinates in sector units, signed, centered on the galaxy core.
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`

	SystemSeeds []uint64 `json:"system_seeds"`
}

// SystemCount returns the number of systems generated inside the sector.
func (s *Sector) SystemCount() int {
	return len(s.SystemSeeds)
}

// Designation returns the catalog-style name of the sector, derived from
// its grid coordinates.
func (s *Sector) Designation() string {
	return fmt.Sprintf("SCT %+d.%+d.%+d", s.X, s.Y, s.Z)
}
