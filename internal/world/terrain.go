package world

import (
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
)

type weightedTerrain struct {
	name   string
	weight float64
}

// safeFallbackTerrains is used when mutual adjacency filtering leaves no
// legal candidate for a position.
var safeFallbackTerrains = []string{"plains", "forest"}

// candidateTerrains resolves which terrains may legally occupy an empty
// position. With no generated neighbors every configured biome qualifies.
// Otherwise a biome qualifies only when it and every neighbor terrain allow
// each other; the check is symmetric against all neighbors, not just one.
func candidateTerrains(reg *registry.Registry, s *State, at Coord) []weightedTerrain {
	neighborSet := make(map[string]struct{})
	for _, n := range at.Neighbors4() {
		ch, ok := s.Chunks[n]
		if !ok || ch.Wall() {
			continue
		}
		neighborSet[ch.Terrain] = struct{}{}
	}

	if len(neighborSet) == 0 {
		out := make([]weightedTerrain, 0, len(reg.BiomeNames()))
		for _, name := range reg.BiomeNames() {
			b, _ := reg.Biome(name)
			out = append(out, weightedTerrain{name: name, weight: b.SpreadWeight})
		}
		return out
	}

	var out []weightedTerrain
	for _, name := range reg.BiomeNames() {
		b, _ := reg.Biome(name)
		if mutuallyAllowed(reg, b, neighborSet) {
			out = append(out, weightedTerrain{name: name, weight: b.SpreadWeight})
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, name := range safeFallbackTerrains {
		if b, ok := reg.Biome(name); ok {
			out = append(out, weightedTerrain{name: name, weight: b.SpreadWeight})
		}
	}
	return out
}

func mutuallyAllowed(reg *registry.Registry, candidate registry.Biome, neighbors map[string]struct{}) bool {
	for neighbor := range neighbors {
		if !containsString(candidate.AllowedNeighbors, neighbor) {
			return false
		}
		nb, ok := reg.Biome(neighbor)
		if !ok || !containsString(nb.AllowedNeighbors, candidate.Name) {
			return false
		}
	}
	return true
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// pickWeighted draws one terrain proportionally to spread weight. The final
// candidate absorbs any floating-point overrun of the cumulative walk.
func pickWeighted(rng *rand.Rand, candidates []weightedTerrain) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	total := 0.0
	for _, c := range candidates {
		if c.weight > 0 {
			total += c.weight
		}
	}
	if total <= 0 {
		return candidates[rng.Intn(len(candidates))].name, true
	}

	r := rng.Float64() * total
	for _, c := range candidates {
		if c.weight <= 0 {
			continue
		}
		r -= c.weight
		if r <= 0 {
			return c.name, true
		}
	}
	return candidates[len(candidates)-1].name, true
}
