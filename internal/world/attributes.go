package world

import (
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/config"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
)

const (
	// seasonEffectScale converts season modifier rows into attribute points.
	seasonEffectScale = 1.0
	// sunIntensityScale maps profile sun intensity (0..100) into the light
	// budget before vegetation shading is subtracted.
	sunIntensityScale = 0.8
	lightJitter       = 10.0

	caveLightMin = -100.0
	caveLightMax = -60.0
)

// deriveAttributes draws base values uniformly from the biome's ranges and
// applies the current season and world profile modifiers. Biome ranges
// describe the terrain's typical shape; season/profile deltas describe the
// current conditions, so the same biome row serves all seasons.
func deriveAttributes(rng *rand.Rand, biome registry.Biome, mods registry.SeasonModifiers, profile config.WorldProfile) Attributes {
	vegetation := uniformIn(rng, biome.Vegetation)
	danger := uniformIn(rng, biome.Danger)

	attrs := Attributes{
		VegetationDensity: clamp(vegetation, 0, 100),
		Moisture:          clamp(uniformIn(rng, biome.Moisture)+mods.Moisture*seasonEffectScale+profile.MoistureBias, 0, 100),
		Elevation:         clamp(uniformIn(rng, biome.Elevation), 0, 100),
		DangerLevel:       clamp(danger, 0, 100),
		MagicAffinity:     clamp(uniformIn(rng, biome.Magic), 0, 100),
		HumanPresence:     clamp(uniformIn(rng, biome.HumanTraces), 0, 100),
		PredatorPresence:  clamp(uniformIn(rng, biome.Predators), 0, 100),
		Temperature:       clamp(uniformIn(rng, biome.Temperature)+mods.Temperature*seasonEffectScale+profile.TemperatureBias, 0, 100),
		WindLevel:         clamp(20+rng.Float64()*60+mods.Wind*seasonEffectScale, 0, 100),
		TravelCost:        biome.TravelCost,
	}

	if biome.Name == "cave" {
		// Caves ignore the sun entirely and sit in a fixed dark band.
		attrs.LightLevel = caveLightMin + rng.Float64()*(caveLightMax-caveLightMin)
	} else {
		jitter := (rng.Float64()*2 - 1) * lightJitter
		light := profile.SunIntensity*sunIntensityScale + mods.Sun*seasonEffectScale - attrs.VegetationDensity + jitter
		attrs.LightLevel = clamp(light, -100, 100)
	}

	attrs.Explorability = clamp(100-attrs.VegetationDensity/2-attrs.DangerLevel/2, 0, 100)

	if len(biome.SoilTypes) > 0 {
		attrs.SoilType = biome.SoilTypes[rng.Intn(len(biome.SoilTypes))]
	} else {
		attrs.SoilType = "dirt"
	}

	return attrs
}

func uniformIn(rng *rand.Rand, r registry.Range) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
