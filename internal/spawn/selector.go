package spawn

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/config"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

const (
	tierRarityBase = 0.9
	// maxFinalChance keeps even maximally boosted candidates from becoming
	// certain spawns.
	maxFinalChance = 0.95
)

// Selector probabilistically chooses spawn candidates for a chunk, composing
// base chance, tier rarity, world density, chunk richness and the softcapped
// global spawn multiplier.
type Selector struct {
	registry *registry.Registry
	profile  config.WorldProfile
	log      *slog.Logger
}

func NewSelector(reg *registry.Registry, profile config.WorldProfile, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{registry: reg, profile: profile, log: logger}
}

// Select runs the spawn pipeline: drop malformed candidates, filter by
// preconditions, shuffle away positional bias, then roll each survivor
// against its composed chance until maxCount entities are accepted. The
// density bonus is added before the chunk and global multipliers so a
// near-zero base chance can still occasionally fire in rich chunks, while
// tier rarity always gates multiplicatively first. Malformed candidates are
// logged and skipped, never fatal.
func (s *Selector) Select(rng *rand.Rand, candidates []registry.Candidate, maxCount int, ch *world.Chunk) []registry.Candidate {
	if maxCount <= 0 || len(candidates) == 0 {
		return nil
	}

	valid := make([]registry.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Name == "" || c.Conditions == nil {
			s.log.Warn("skipping malformed spawn candidate",
				"name", c.Name, "kind", string(c.Kind), "terrain", ch.Terrain)
			continue
		}
		if !CheckConditions(c.Conditions, ch) {
			continue
		}
		valid = append(valid, c)
	}

	rng.Shuffle(len(valid), func(i, j int) {
		valid[i], valid[j] = valid[j], valid[i]
	})

	score := ResourceScore(ch)
	chunkMultiplier := 0.6 + score*0.8
	densityBonus := (s.profile.ResourceDensity - 50) / 100
	globalMultiplier := Softcap(s.profile.SpawnMultiplier)

	var selected []registry.Candidate
	for _, c := range valid {
		if len(selected) >= maxCount {
			break
		}

		baseChance := c.Conditions.Chance
		if baseChance <= 0 {
			baseChance = 1.0
		}

		tierMultiplier := 1.0
		if item, ok := s.registry.Item(c.Name); ok && item.Tier > 1 {
			tierMultiplier = math.Pow(tierRarityBase, float64(item.Tier-1))
		}

		finalChance := ((baseChance * tierMultiplier) + densityBonus) * chunkMultiplier * globalMultiplier
		if finalChance < 0 {
			finalChance = 0
		}
		if finalChance > maxFinalChance {
			finalChance = maxFinalChance
		}

		if rng.Float64() < finalChance {
			selected = append(selected, c)
		}
	}
	return selected
}
