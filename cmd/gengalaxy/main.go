package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"galaxy-server/internal/galaxy"
	"galaxy-server/internal/seed"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/logger"
)

// gengalaxy generates one galaxy from the command line, prints a walkthrough
// of the seed hierarchy for a single sector and optionally saves the whole
// galaxy as a JSON document.
func main() {
	galaxySeed := flag.Uint64("seed", 0, "galaxy seed; 0 picks a random one")
	out := flag.String("out", "", "write the generated galaxy as JSON to this file")
	sectorX := flag.Int("x", 0, "grid x of the sector to walk through")
	sectorY := flag.Int("y", 0, "grid y of the sector to walk through")
	sectorZ := flag.Int("z", 4, "grid z of the sector to walk through")
	flag.Parse()

	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	engine := galaxy.NewEngine(config.GlobalConfig.Galaxy, slog.Default())

	if *galaxySeed == 0 {
		*galaxySeed = engine.CreateSeed()
	} else {
		engine.SetSeed(*galaxySeed)
	}

	if err := engine.GenerateAll(); err != nil {
		slog.Error("Galaxy generation failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("galaxy seed: %d\n", engine.Seed())
	fmt.Printf("sectors: %d, systems: %d\n", engine.SectorCount(), engine.SystemCount())

	walkSector(engine, *sectorX, *sectorY, *sectorZ)

	if *out != "" {
		doc := galaxy.NewDocument(engine)
		if err := doc.Save(*out); err != nil {
			slog.Error("Failed to save galaxy document", "error", err, "path", *out)
			os.Exit(1)
		}
		fmt.Printf("galaxy written to %s\n", *out)
	}
}

// walkSector prints the full entity tree of one sector, seed by seed.
func walkSector(engine *galaxy.Engine, x, y, z int) {
	sectorSeed := seed.Sector(engine.Seed(), x, y, z)
	sec, ok := engine.Sector(sectorSeed)
	if !ok {
		fmt.Printf("sector (%d,%d,%d) is outside the generated grid\n", x, y, z)
		return
	}

	fmt.Printf("\nsector %s, seed %d, %d systems\n", sec.Name, sec.Seed, sec.SystemCount())

	for _, systemSeed := range sec.SystemSeeds {
		sys, ok := engine.System(systemSeed)
		if !ok {
			continue
		}
		fmt.Printf("  system %q, seed %d, pos (%.1f, %.1f, %.1f) ly, %d star(s)\n",
			sys.Name, sys.Seed, sys.Position[0], sys.Position[1], sys.Position[2], len(sys.Stars))

		for _, st := range sys.Stars {
			fmt.Printf("    star %s (%s), seed %d, %.2f Msol, %.4f Lsol, %d planet(s)\n",
				st.StellarType, st.Designation, st.Seed, st.Mass, st.Luminosity, len(st.Planets))

			for _, p := range st.Planets {
				hz := ""
				if p.InHabitableZone {
					hz = fmt.Sprintf(", habitability %.2f", p.Habitability)
				}
				fmt.Printf("      planet %s, seed %d, %.2f au, %.0f K%s\n",
					p.Type(), p.Seed, p.DistanceAU, p.Temperature, hz)
			}
		}
	}
}
