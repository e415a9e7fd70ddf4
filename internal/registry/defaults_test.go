package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreInternallyConsistent(t *testing.T) {
	reg := Default()

	names := reg.BiomeNames()
	require.NotEmpty(t, names)
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}

	for _, name := range names {
		biome, ok := reg.Biome(name)
		require.True(t, ok)

		assert.Greater(t, biome.SpreadWeight, 0.0, "biome %s needs a positive spread weight", name)
		assert.GreaterOrEqual(t, biome.MaxSize, biome.MinSize, "biome %s size window inverted", name)
		assert.GreaterOrEqual(t, biome.MinSize, 1, "biome %s cannot grow empty regions", name)
		assert.NotEmpty(t, biome.SoilTypes, "biome %s has no soil types", name)

		for _, neighbor := range biome.AllowedNeighbors {
			assert.True(t, known[neighbor],
				"biome %s allows unknown neighbor %s", name, neighbor)
		}
		assert.Contains(t, biome.AllowedNeighbors, name,
			"biome %s must allow itself so regions can grow", name)

		_, ok = reg.Template(name)
		assert.True(t, ok, "biome %s has no content template", name)
	}
}

func TestDefaultTemplateReferencesResolve(t *testing.T) {
	reg := Default()

	for _, name := range reg.BiomeNames() {
		template, ok := reg.Template(name)
		require.True(t, ok)

		for _, c := range template.Items {
			_, ok := reg.Item(c.Name)
			assert.True(t, ok, "template %s references unknown item %s", name, c.Name)
			assert.NotNil(t, c.Conditions, "template %s item %s has no conditions", name, c.Name)
		}
		for _, c := range template.Structures {
			require.NotNil(t, c.Structure, "template %s structure %s has no spec", name, c.Name)
			for _, loot := range c.Structure.Loot {
				_, ok := reg.Item(loot.ItemID)
				assert.True(t, ok, "structure %s loot references unknown item %s", c.Name, loot.ItemID)
			}
		}
	}
}

func TestDefaultItemSpawnsReferenceKnownBiomes(t *testing.T) {
	reg := Default()

	for _, id := range reg.ItemIDs() {
		item, ok := reg.Item(id)
		require.True(t, ok)

		assert.True(t, item.Enabled, "default item %s should be enabled", id)
		assert.GreaterOrEqual(t, item.Tier, 1, "item %s tier must start at 1", id)
		for biome := range item.NaturalSpawn {
			_, ok := reg.Biome(biome)
			assert.True(t, ok, "item %s spawns in unknown biome %s", id, biome)
		}
	}
}

func TestDefaultSeasonsAndWeatherComplete(t *testing.T) {
	reg := Default()

	for _, season := range []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter} {
		mods := reg.SeasonMods(season)
		_ = mods // every season resolves; zero rows are legal values
	}

	presets := reg.WeatherPresets()
	require.NotEmpty(t, presets)

	hasClear := false
	hasNonExtreme := false
	for _, p := range presets {
		assert.Greater(t, p.Weight, 0.0, "preset %s needs a positive weight", p.Name)
		if p.Name == "clear" {
			hasClear = true
		}
		if !p.HasTag("storm") && !p.HasTag("heat") && !p.HasTag("cold") {
			hasNonExtreme = true
		}
		for _, biome := range p.Biomes {
			_, ok := reg.Biome(biome)
			assert.True(t, ok, "preset %s names unknown biome %s", p.Name, biome)
		}
	}
	assert.True(t, hasClear, "the default table needs a clear preset as fallback anchor")
	assert.True(t, hasNonExtreme, "the cooldown needs at least one non-extreme preset")
}

func TestTranslateFallsBackToKey(t *testing.T) {
	reg := Default()

	assert.Equal(t, "Flint", reg.Translate("item.flint"))
	assert.Equal(t, "item.unmapped", reg.Translate("item.unmapped"))
}

func TestNewRegistryIsEmptyButUsable(t *testing.T) {
	reg := New()

	assert.Empty(t, reg.BiomeNames())
	reg.PutBiome(Biome{Name: "meadow", SpreadWeight: 1})
	b, ok := reg.Biome("meadow")
	require.True(t, ok)
	assert.Equal(t, "meadow", b.Name)
}
