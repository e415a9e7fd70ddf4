package world

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/config"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
)

// ContentAssembler populates a freshly derived chunk with generated content.
type ContentAssembler interface {
	Populate(rng *rand.Rand, chunk *Chunk)
}

// dangerousTerrains get their region border walled off with the configured
// probability after growth.
var dangerousTerrains = map[string]struct{}{
	"cave":     {},
	"mountain": {},
	"volcanic": {},
}

// ManagerConfig wires a frontier manager. RNG and Logger default when nil.
type ManagerConfig struct {
	Registry   *registry.Registry
	Profile    config.WorldProfile
	Season     registry.Season
	Assembler  ContentAssembler
	WallChance float64
	RNG        *rand.Rand
	Logger     *slog.Logger
}

// Manager lazily grows the world outward: resolving legal terrain for a new
// position, flood-filling a region of it, deriving per-chunk attributes and
// delegating content population. World state is handled copy-on-write at the
// radius driver, so generation behaves as a pure function of (input state,
// RNG stream).
type Manager struct {
	registry   *registry.Registry
	profile    config.WorldProfile
	season     registry.Season
	assembler  ContentAssembler
	wallChance float64
	rng        *rand.Rand
	log        *slog.Logger
}

func NewManager(cfg ManagerConfig) *Manager {
	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		registry:   cfg.Registry,
		profile:    cfg.Profile,
		season:     cfg.Season,
		assembler:  cfg.Assembler,
		wallChance: cfg.WallChance,
		rng:        rng,
		log:        logger,
	}
}

// EnsureChunk materializes the region covering a coordinate. Existing
// coordinates are a no-op; otherwise one call typically produces many chunks,
// since the whole region is grown and populated at once. It mutates s, which
// the caller must own exclusively.
func (m *Manager) EnsureChunk(s *State, at Coord) {
	if s.Occupied(at) {
		return
	}

	candidates := candidateTerrains(m.registry, s, at)
	terrain, ok := pickWeighted(m.rng, candidates)
	if !ok {
		m.log.Error("no terrain candidates for position", "x", at.X, "y", at.Y)
		return
	}

	biome, ok := m.registry.Biome(terrain)
	if !ok {
		m.log.Error("selected terrain has no biome entry", "terrain", terrain)
		return
	}

	targetSize := biome.MinSize
	if biome.MaxSize > biome.MinSize {
		targetSize = biome.MinSize + m.rng.Intn(biome.MaxSize-biome.MinSize+1)
	}

	region := growRegion(m.rng, s, at, terrain, targetSize)
	region.ID = s.allocRegionID()
	s.Regions[region.ID] = region

	mods := m.registry.SeasonMods(m.season)
	for _, cell := range region.Cells {
		chunk := &Chunk{
			Coord:      cell,
			RegionID:   region.ID,
			Terrain:    terrain,
			Attributes: deriveAttributes(m.rng, biome, mods, m.profile),
		}
		if m.assembler != nil {
			m.assembler.Populate(m.rng, chunk)
		}
		s.Chunks[cell] = chunk
	}

	if _, dangerous := dangerousTerrains[terrain]; dangerous && m.rng.Float64() < m.wallChance {
		m.encloseRegion(s, region)
	}
}

// encloseRegion turns every still-unoccupied cell bordering the region into
// an impassable wall chunk. Only the region's own border at creation time is
// considered; borders opened later by neighboring regions stay open.
func (m *Manager) encloseRegion(s *State, region *Region) {
	for _, cell := range region.Cells {
		for _, n := range cell.Neighbors4() {
			if s.Occupied(n) {
				continue
			}
			s.Chunks[n] = wallChunk(n)
		}
	}
}

func wallChunk(at Coord) *Chunk {
	return &Chunk{
		Coord:    at,
		RegionID: WallRegionID,
		Terrain:  WallTerrain,
		Attributes: Attributes{
			SoilType:   "rock",
			TravelCost: 99,
		},
	}
}

// GenerateRadius materializes every chunk in the square neighborhood around
// center. The input state is never mutated; callers receive a clone with the
// new regions added.
func (m *Manager) GenerateRadius(s *State, center Coord, radius int) *State {
	out := s.Clone()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			m.EnsureChunk(out, Coord{X: center.X + dx, Y: center.Y + dy})
		}
	}
	return out
}
