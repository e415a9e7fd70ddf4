package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"sort"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/config"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/content"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/environment"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

func main() {
	var (
		cfgPath string
		radius  int
		seed    int64
	)
	flag.StringVar(&cfgPath, "config", "", "path to engine configuration file")
	flag.IntVar(&radius, "radius", -1, "generation radius override")
	flag.Int64Var(&seed, "seed", 0, "seed override (0 keeps configured seed)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if radius >= 0 {
		cfg.Radius = radius
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	reg, err := registry.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("load data tables: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rng := rand.New(rand.NewSource(cfg.Seed))
	season := registry.Season(cfg.Season)

	manager := world.NewManager(world.ManagerConfig{
		Registry:   reg,
		Profile:    cfg.Profile,
		Season:     season,
		Assembler:  content.NewAssembler(reg, cfg.Profile, logger),
		WallChance: cfg.WallChance,
		RNG:        rng,
		Logger:     logger,
	})

	state := manager.GenerateRadius(world.NewState(), world.Coord{}, cfg.Radius)

	weather := environment.NewGenerator(reg, rng, logger)
	zones := make(map[int]*environment.Zone)
	weather.Advance(zones, state, season)

	printSummary(state, zones, reg)
}

func printSummary(s *world.State, zones map[int]*environment.Zone, reg *registry.Registry) {
	counts := make(map[string]int)
	for _, ch := range s.Chunks {
		counts[ch.Terrain]++
	}
	terrains := make([]string, 0, len(counts))
	for t := range counts {
		terrains = append(terrains, t)
	}
	sort.Strings(terrains)

	fmt.Printf("generated %d chunks across %d regions\n", len(s.Chunks), len(s.Regions))
	for _, t := range terrains {
		fmt.Printf("  %-10s %4d\n", t, counts[t])
	}

	origin, ok := s.Chunks[world.Coord{}]
	if !ok {
		return
	}
	fmt.Printf("\norigin (%s, region %d): %s\n", origin.Terrain, origin.RegionID, origin.Description)
	for _, item := range origin.Items {
		fmt.Printf("  item: %s x%d\n", item.Name, item.Quantity)
	}
	for _, npc := range origin.NPCs {
		fmt.Printf("  npc: %s\n", npc.Name)
	}
	if origin.Enemy != nil {
		fmt.Printf("  enemy: %s (hp %.0f)\n", origin.Enemy.Name, origin.Enemy.HP)
	}
	if zone, ok := zones[origin.RegionID]; ok {
		effective := environment.EffectiveAttributes(origin, zone.Current)
		fmt.Printf("  weather: %s (feels like %.0f°)\n", zone.Current.Name, effective.Temperature)
	}
}
