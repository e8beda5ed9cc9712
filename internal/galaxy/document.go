package galaxy

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"galaxy-server/internal/sector"
	"galaxy-server/internal/system"
)

// Document is a self-contained snapshot of a generated galaxy, suitable for
// JSON export and reimport. Sectors and systems are keyed by seed; systems
// embed their full star and planet trees.
type Document struct {
	Galaxy      Summary   `json:"galaxy"`
	GeneratedAt time.Time `json:"generated_at"`

	Sectors map[uint64]*sector.Sector `json:"sectors"`
	Systems map[uint64]*system.System `json:"systems"`
}

// NewDocument snapshots the engine's generated state.
func NewDocument(e *Engine) *Document {
	doc := &Document{
		Galaxy: Summary{
			Seed: e.Seed(),
			Type: e.Config().Type,
		},
		GeneratedAt: time.Now().UTC(),
		Sectors:     make(map[uint64]*sector.Sector),
		Systems:     make(map[uint64]*system.System),
	}

	for _, sec := range e.Sectors() {
		doc.Sectors[sec.Seed] = sec
	}
	for _, sys := range e.Systems() {
		doc.Systems[sys.Seed] = sys
		doc.Galaxy.StarCount += len(sys.Stars)
		doc.Galaxy.PlanetCount += sys.PlanetCount()
	}
	doc.Galaxy.SectorCount = len(doc.Sectors)
	doc.Galaxy.SystemCount = len(doc.Systems)

	return doc
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode galaxy document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write galaxy document: %w", err)
	}
	return nil
}

// LoadDocument reads a previously saved document.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read galaxy document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode galaxy document: %w", err)
	}
	return &doc, nil
}
