package content

import (
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/config"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func neutralProfile() config.WorldProfile {
	return config.WorldProfile{SpawnMultiplier: 1, ResourceDensity: 50}
}

func flintRegistry() *registry.Registry {
	reg := registry.New()
	reg.PutItem(registry.ItemDef{
		ID:           "flint",
		Tier:         1,
		BaseQuantity: registry.QuantityRange{Min: 1, Max: 1},
		NameKey:      "item.flint",
		Enabled:      true,
	})
	reg.PutLocale("item.flint", "Flint")
	return reg
}

func barrenChunk(terrain string) *world.Chunk {
	return &world.Chunk{
		Terrain: terrain,
		Attributes: world.Attributes{
			HumanPresence:    100,
			DangerLevel:      100,
			PredatorPresence: 100,
			SoilType:         "dirt",
		},
	}
}

func lushChunk(terrain string) *world.Chunk {
	return &world.Chunk{
		Terrain: terrain,
		Attributes: world.Attributes{
			VegetationDensity: 100,
			Moisture:          100,
			SoilType:          "dirt",
		},
	}
}

func TestPopulateWithoutTemplateYieldsDegenerateChunk(t *testing.T) {
	a := NewAssembler(registry.New(), neutralProfile(), discardLogger())
	ch := lushChunk("uncharted")

	a.Populate(rand.New(rand.NewSource(1)), ch)

	require.NotEmpty(t, ch.Description)
	assert.Empty(t, ch.Items)
	assert.Empty(t, ch.NPCs)
	assert.Nil(t, ch.Enemy)
	assert.Contains(t, ch.Actions, "explore")
	assert.Contains(t, ch.Actions, "listen")
}

func TestDescribeFillsEveryPlaceholder(t *testing.T) {
	a := NewAssembler(registry.New(), neutralProfile(), discardLogger())
	template := registry.TerrainTemplate{
		Terrain:              "forest",
		DescriptionTemplates: []string{"A {adjective} forest with {feature}."},
		Adjectives:           []string{"gloomy", "sunlit"},
		Features:             []string{"a mossy clearing", "an old stump"},
	}
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 20; i++ {
		text := a.describe(rng, template)
		assert.NotContains(t, text, "{adjective}")
		assert.NotContains(t, text, "{feature}")
	}
}

func TestItemBudgetScalesWithRichness(t *testing.T) {
	neutral := NewAssembler(registry.New(), neutralProfile(), discardLogger())
	assert.Equal(t, 5, neutral.itemBudget(barrenChunk("plains")))

	dense := NewAssembler(registry.New(),
		config.WorldProfile{SpawnMultiplier: 1, ResourceDensity: 100}, discardLogger())
	assert.Equal(t, 15, dense.itemBudget(lushChunk("plains")))
}

func TestAddItemMergesStacksByID(t *testing.T) {
	a := NewAssembler(flintRegistry(), neutralProfile(), discardLogger())
	rng := rand.New(rand.NewSource(2))
	ch := lushChunk("plains")

	a.addItem(rng, ch, "flint", registry.QuantityRange{})
	a.addItem(rng, ch, "flint", registry.QuantityRange{})

	require.Len(t, ch.Items, 1)
	assert.Equal(t, "flint", ch.Items[0].ItemID)
	assert.Equal(t, "Flint", ch.Items[0].Name)
	assert.Equal(t, 2, ch.Items[0].Quantity)
}

func TestAddItemDropsUnknownIDs(t *testing.T) {
	a := NewAssembler(flintRegistry(), neutralProfile(), discardLogger())
	ch := lushChunk("plains")

	a.addItem(rand.New(rand.NewSource(2)), ch, "unobtainium", registry.QuantityRange{})

	assert.Empty(t, ch.Items)
}

func TestAddItemLootOverrideBeatsBaseQuantity(t *testing.T) {
	a := NewAssembler(flintRegistry(), neutralProfile(), discardLogger())
	ch := lushChunk("plains")

	a.addItem(rand.New(rand.NewSource(2)), ch, "flint", registry.QuantityRange{Min: 3, Max: 3})

	require.Len(t, ch.Items, 1)
	assert.Equal(t, 3, ch.Items[0].Quantity)
}

func TestBuildEnemyFallsBackToDefaults(t *testing.T) {
	a := NewAssembler(registry.New(), neutralProfile(), discardLogger())
	rng := rand.New(rand.NewSource(3))

	enemy := a.buildEnemy(rng, registry.Candidate{Kind: registry.KindEnemy, Name: "shade"})

	require.NotNil(t, enemy)
	assert.NotEmpty(t, enemy.ID)
	assert.Equal(t, "shade", enemy.Name)
	assert.Equal(t, 100.0, enemy.HP)
	assert.Equal(t, 10.0, enemy.Damage)
	assert.Equal(t, "aggressive", enemy.Behavior)
}

func TestBuildEnemyAppliesSpec(t *testing.T) {
	reg := registry.New()
	reg.PutLocale("enemy.wolf", "Gray Wolf")
	a := NewAssembler(reg, neutralProfile(), discardLogger())

	enemy := a.buildEnemy(rand.New(rand.NewSource(3)), registry.Candidate{
		Kind: registry.KindEnemy,
		Name: "wolf",
		Enemy: &registry.EnemySpec{
			Name:     "enemy.wolf",
			HP:       40,
			Damage:   12,
			Behavior: "territorial",
		},
	})

	assert.Equal(t, "Gray Wolf", enemy.Name)
	assert.Equal(t, 40.0, enemy.HP)
	assert.Equal(t, 12.0, enemy.Damage)
	assert.Equal(t, "territorial", enemy.Behavior)
}

func TestPlaceStructureRollsLootIndependently(t *testing.T) {
	a := NewAssembler(flintRegistry(), neutralProfile(), discardLogger())
	rng := rand.New(rand.NewSource(4))
	ch := lushChunk("plains")

	candidate := registry.Candidate{
		Kind: registry.KindStructure,
		Name: "camp",
		Structure: &registry.StructureSpec{
			Name: "camp",
			Loot: []registry.LootEntry{
				{ItemID: "flint", Chance: 1, Quantity: registry.QuantityRange{Min: 2, Max: 2}},
				{ItemID: "flint", Chance: 0, Quantity: registry.QuantityRange{Min: 50, Max: 50}},
			},
		},
	}
	a.placeStructure(rng, ch, candidate)

	require.Len(t, ch.Structures, 1)
	require.Len(t, ch.Items, 1)
	assert.Equal(t, 2, ch.Items[0].Quantity, "only the certain loot entry should fire")
}

func TestDeriveActionsReflectContent(t *testing.T) {
	a := NewAssembler(flintRegistry(), neutralProfile(), discardLogger())
	ch := lushChunk("plains")
	ch.Items = []world.ItemStack{{ItemID: "flint", Name: "Flint", Quantity: 1}}
	ch.NPCs = []world.NPC{{ID: "n1", Name: "Hermit"}}
	ch.Enemy = &world.Enemy{ID: "e1", Name: "shade"}

	actions := a.deriveActions(ch)

	assert.Contains(t, actions, "observe-enemy")
	assert.Contains(t, actions, "talk-to-npc")
	assert.Contains(t, actions, "pick-up-flint")
	assert.Equal(t, "explore", actions[len(actions)-2])
	assert.Equal(t, "listen", actions[len(actions)-1])
}

func TestItemPoolUnionsTemplateAndNaturalSpawns(t *testing.T) {
	reg := flintRegistry()
	reg.PutItem(registry.ItemDef{
		ID:      "wild_berries",
		Tier:    1,
		Enabled: true,
		NaturalSpawn: map[string]registry.NaturalSpawn{
			"plains": {Chance: 0.8},
		},
	})
	reg.PutItem(registry.ItemDef{
		ID:      "snow_lichen",
		Tier:    2,
		Enabled: true,
		NaturalSpawn: map[string]registry.NaturalSpawn{
			"tundra": {Chance: 0.4},
		},
	})
	a := NewAssembler(reg, neutralProfile(), discardLogger())

	template := registry.TerrainTemplate{
		Terrain: "plains",
		Items: []registry.Candidate{{
			Kind:       registry.KindItem,
			Name:       "wild_berries",
			Conditions: &registry.Conditions{Chance: 0.6},
		}},
	}
	pool := a.itemPool(template, "plains")

	require.Len(t, pool, 1, "template entries win ID collisions and off-terrain spawns stay out")
	assert.Equal(t, "wild_berries", pool[0].Name)
	assert.Equal(t, 0.6, pool[0].Conditions.Chance)
}

func TestItemPoolDefaultsNaturalChance(t *testing.T) {
	reg := registry.New()
	reg.PutItem(registry.ItemDef{
		ID:      "driftwood",
		Tier:    1,
		Enabled: true,
		NaturalSpawn: map[string]registry.NaturalSpawn{
			"plains": {},
		},
	})
	a := NewAssembler(reg, neutralProfile(), discardLogger())

	pool := a.itemPool(registry.TerrainTemplate{Terrain: "plains"}, "plains")

	require.Len(t, pool, 1)
	assert.Equal(t, defaultNaturalChance, pool[0].Conditions.Chance)
}

func TestPopulateIsDeterministicPerSeed(t *testing.T) {
	reg := registry.Default()

	populate := func(seed int64) *world.Chunk {
		a := NewAssembler(reg, neutralProfile(), discardLogger())
		ch := &world.Chunk{
			Terrain: "forest",
			Attributes: world.Attributes{
				VegetationDensity: 80,
				Moisture:          60,
				DangerLevel:       20,
				SoilType:          "dirt",
				LightLevel:        30,
			},
		}
		a.Populate(rand.New(rand.NewSource(seed)), ch)
		return ch
	}

	first := populate(1001)
	second := populate(1001)
	require.Equal(t, first, second, "identical seeds must reproduce content, IDs included")

	for _, npc := range first.NPCs {
		assert.True(t, strings.Count(npc.ID, "-") == 4, "NPC IDs should be UUIDs, got %q", npc.ID)
	}
}
