package galaxy

// Summary describes the generated galaxy at a glance.
type Summary struct {
	Seed uint64 `json:"seed"`
	Type string `json:"type"`

	SectorCount int `json:"sector_count"`
	SystemCount int `json:"system_count"`
	StarCount   int `json:"star_count"`
	PlanetCount int `json:"planet_count"`
}
