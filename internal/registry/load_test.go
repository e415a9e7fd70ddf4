package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadEmptyDirReturnsDefaults(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().BiomeNames(), reg.BiomeNames())
}

func TestLoadSkipsMissingFiles(t *testing.T) {
	reg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().BiomeNames(), reg.BiomeNames())
}

func TestLoadMergesBiomesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "biomes.yaml", `
- name: crystal_fields
  spreadWeight: 2
  allowedNeighbors: [crystal_fields, plains]
  minSize: 3
  maxSize: 6
  vegetation: {min: 10, max: 30}
  soilTypes: [crystal]
  travelCost: 2
- name: plains
  spreadWeight: 20
  allowedNeighbors: [plains, crystal_fields]
  minSize: 4
  maxSize: 8
  soilTypes: [loam]
  travelCost: 1
`)

	reg, err := Load(dir)
	require.NoError(t, err)

	added, ok := reg.Biome("crystal_fields")
	require.True(t, ok, "new biome should merge in")
	assert.Equal(t, 2.0, added.SpreadWeight)
	assert.Equal(t, 10.0, added.Vegetation.Min)

	overridden, ok := reg.Biome("plains")
	require.True(t, ok)
	assert.Equal(t, 20.0, overridden.SpreadWeight, "file rows replace default rows")

	_, ok = reg.Biome("forest")
	assert.True(t, ok, "untouched defaults must survive the merge")
}

func TestLoadMergesItemsAndLocale(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "items.yaml", `
- id: moon_pearl
  tier: 4
  baseQuantity: {min: 1, max: 1}
  nameKey: item.moon_pearl
  enabled: true
  naturalSpawn:
    swamp:
      chance: 0.1
      conditions:
        ranges:
          lightLevel: {max: -20}
`)
	writeTable(t, dir, "locale.yaml", `
item.moon_pearl: Moon Pearl
item.flint: Flintstone
`)

	reg, err := Load(dir)
	require.NoError(t, err)

	pearl, ok := reg.Item("moon_pearl")
	require.True(t, ok)
	assert.Equal(t, 4, pearl.Tier)
	spawn := pearl.NaturalSpawn["swamp"]
	require.NotNil(t, spawn.Conditions)
	bound := spawn.Conditions.Ranges["lightLevel"]
	require.NotNil(t, bound.Max)
	assert.Equal(t, -20.0, *bound.Max)
	assert.Nil(t, bound.Min, "an absent side must stay unconstrained")

	assert.Equal(t, "Moon Pearl", reg.Translate("item.moon_pearl"))
	assert.Equal(t, "Flintstone", reg.Translate("item.flint"), "locale overrides win")
	assert.Equal(t, "Firewood", reg.Translate("item.firewood"), "untouched locale rows survive")
}

func TestLoadWeatherReplacesWholeTable(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "weather.yaml", `
- name: eternal_drizzle
  weight: 1
  effects: {moisture: 15, light: -10}
`)

	reg, err := Load(dir)
	require.NoError(t, err)

	presets := reg.WeatherPresets()
	require.Len(t, presets, 1)
	assert.Equal(t, "eternal_drizzle", presets[0].Name)
	assert.Equal(t, 15.0, presets[0].Effects.Moisture)
}

func TestLoadRejectsMalformedTables(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "biomes.yaml", `
- spreadWeight: 3
`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "biomes.yaml")
}

func TestLoadRejectsUnparsableYAML(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "items.yaml", "{{not yaml")

	_, err := Load(dir)
	require.Error(t, err)
}
