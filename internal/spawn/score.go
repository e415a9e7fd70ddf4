package spawn

import "github.com/ngoccc0/dreamland-engine-sub002/internal/world"

// softcapK controls how hard multipliers above 1.0 are tamed. With k=0.4 a
// nominal 10x multiplier yields roughly 2.2x, and the transform approaches
// 1/k = 2.5 as the input grows without bound.
const softcapK = 0.4

// Softcap applies a diminishing-returns transform to a multiplier. Values at
// or below 1.0 pass through untouched.
func Softcap(m float64) float64 {
	if m <= 1 {
		return m
	}
	return m / (1 + (m-1)*softcapK)
}

// ResourceScore composites five normalized environmental factors into a
// [0, 1] richness measure: dense vegetation and moisture raise it, human
// presence, danger and predators depress it. It scales both spawn
// probability and spawn counts.
func ResourceScore(ch *world.Chunk) float64 {
	terms := [5]float64{
		ch.VegetationDensity / 100,
		ch.Moisture / 100,
		1 - ch.HumanPresence/100,
		1 - ch.DangerLevel/100,
		1 - ch.PredatorPresence/100,
	}
	sum := 0.0
	for _, t := range terms {
		sum += t
	}
	return sum / float64(len(terms))
}
