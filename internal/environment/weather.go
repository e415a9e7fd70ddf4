package environment

import (
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

// extremeTags mark weather states that must not follow one another. After a
// storm, heatwave or cold snap the next state is always non-extreme while a
// non-extreme alternative exists.
var extremeTags = map[string]struct{}{
	"storm": {},
	"heat":  {},
	"cold":  {},
}

// fallbackClear is used when filtering empties the candidate pool and the
// preset table itself has no "clear" entry.
var fallbackClear = registry.WeatherPreset{Name: "clear", Weight: 1}

// Zone is the current weather of one region.
type Zone struct {
	RegionID int
	Current  registry.WeatherPreset
}

// Generator draws per-region weather states from the preset table, filtered
// by biome and season affinity, with an anti-repetition cooldown for extreme
// weather.
type Generator struct {
	registry *registry.Registry
	rng      *rand.Rand
	log      *slog.Logger
}

func NewGenerator(reg *registry.Registry, rng *rand.Rand, logger *slog.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{registry: reg, rng: rng, log: logger}
}

// Next selects the weather following previous for a region of the given
// biome. A nil previous means the zone is being initialized.
func (g *Generator) Next(previous *registry.WeatherPreset, biome string, season registry.Season) registry.WeatherPreset {
	candidates := make([]registry.WeatherPreset, 0, len(g.registry.WeatherPresets()))
	cooldown := previous != nil && hasExtremeTag(*previous)

	for _, preset := range g.registry.WeatherPresets() {
		if len(preset.Biomes) > 0 && !containsString(preset.Biomes, biome) {
			continue
		}
		if len(preset.Seasons) > 0 && !containsSeason(preset.Seasons, season) {
			continue
		}
		if cooldown && hasExtremeTag(preset) {
			continue
		}
		candidates = append(candidates, preset)
	}

	if len(candidates) == 0 {
		g.log.Warn("weather candidate pool empty, falling back to clear",
			"biome", biome, "season", string(season))
		return g.clearPreset()
	}
	return pickPreset(g.rng, candidates)
}

// Advance steps the weather of every region in the state, creating zones for
// regions that do not have one yet. Wall chunks carry no region and no
// weather.
func (g *Generator) Advance(zones map[int]*Zone, s *world.State, season registry.Season) {
	ids := make([]int, 0, len(s.Regions))
	for id := range s.Regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		region := s.Regions[id]
		zone, ok := zones[id]
		if !ok {
			zones[id] = &Zone{
				RegionID: id,
				Current:  g.Next(nil, region.Terrain, season),
			}
			continue
		}
		previous := zone.Current
		zone.Current = g.Next(&previous, region.Terrain, season)
	}
}

func (g *Generator) clearPreset() registry.WeatherPreset {
	for _, preset := range g.registry.WeatherPresets() {
		if preset.Name == "clear" {
			return preset
		}
	}
	return fallbackClear
}

// pickPreset draws one preset by cumulative weight, with the last candidate
// absorbing floating-point overrun.
func pickPreset(rng *rand.Rand, candidates []registry.WeatherPreset) registry.WeatherPreset {
	total := 0.0
	for _, c := range candidates {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return candidates[rng.Intn(len(candidates))]
	}

	r := rng.Float64() * total
	for _, c := range candidates {
		if c.Weight <= 0 {
			continue
		}
		r -= c.Weight
		if r <= 0 {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

func hasExtremeTag(preset registry.WeatherPreset) bool {
	for _, tag := range preset.Tags {
		if _, extreme := extremeTags[tag]; extreme {
			return true
		}
	}
	return false
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func containsSeason(list []registry.Season, want registry.Season) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
