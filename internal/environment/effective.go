package environment

import (
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

// EffectiveAttributes is the read-time view of a chunk: its stored base
// attributes with the current weather deltas applied. The chunk itself is
// never mutated; generation-time state stays stable while the view shifts
// with the region's weather.
func EffectiveAttributes(ch *world.Chunk, weather registry.WeatherPreset) world.Attributes {
	out := ch.Attributes
	out.Temperature = clamp(out.Temperature+weather.Effects.Temperature, 0, 100)
	out.Moisture = clamp(out.Moisture+weather.Effects.Moisture, 0, 100)
	out.LightLevel = clamp(out.LightLevel+weather.Effects.Light, -100, 100)
	out.WindLevel = clamp(out.WindLevel+weather.Effects.Wind, 0, 100)
	return out
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
