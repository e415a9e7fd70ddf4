package content

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/config"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/spawn"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

const (
	maxNPCsPerChunk       = 3
	maxEnemiesPerChunk    = 3
	maxStructuresPerChunk = 2
	baseItemBudget        = 10
	// defaultNaturalChance applies to registry items whose natural-spawn
	// entry does not declare its own chance.
	defaultNaturalChance = 0.5
)

// Assembler builds the generated content of one chunk: description text,
// items, NPCs, the hostile occupant, structures with their loot, and the
// available action list.
type Assembler struct {
	registry *registry.Registry
	profile  config.WorldProfile
	selector *spawn.Selector
	log      *slog.Logger
}

func NewAssembler(reg *registry.Registry, profile config.WorldProfile, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		registry: reg,
		profile:  profile,
		selector: spawn.NewSelector(reg, profile, logger),
		log:      logger,
	}
}

// Populate fills the chunk's content in place. A terrain without a template
// yields a degenerate but valid chunk rather than an error: by the time
// content reaches a player, a best-effort chunk must already exist.
func (a *Assembler) Populate(rng *rand.Rand, ch *world.Chunk) {
	template, ok := a.registry.Template(ch.Terrain)
	if !ok {
		a.log.Error("no content template for terrain", "terrain", ch.Terrain,
			"x", ch.Coord.X, "y", ch.Coord.Y)
		ch.Description = "An unremarkable stretch of unknown land."
		ch.Actions = a.deriveActions(ch)
		return
	}

	ch.Description = a.describe(rng, template)

	items := a.selector.Select(rng, a.itemPool(template, ch.Terrain), a.itemBudget(ch), ch)
	npcs := a.selector.Select(rng, template.NPCs, maxNPCsPerChunk, ch)
	enemies := a.selector.Select(rng, template.Enemies, maxEnemiesPerChunk, ch)
	structures := a.selector.Select(rng, template.Structures, maxStructuresPerChunk, ch)

	for _, c := range items {
		a.addItem(rng, ch, c.Name, registry.QuantityRange{})
	}
	for _, c := range npcs {
		ch.NPCs = append(ch.NPCs, a.buildNPC(rng, c))
	}
	for _, c := range structures {
		a.placeStructure(rng, ch, c)
	}
	if len(enemies) > 0 {
		// Only the first selected enemy occupies the chunk.
		ch.Enemy = a.buildEnemy(rng, enemies[0])
	}

	ch.Actions = a.deriveActions(ch)
}

// describe substitutes a random adjective and feature into a random
// description template for the terrain.
func (a *Assembler) describe(rng *rand.Rand, template registry.TerrainTemplate) string {
	if len(template.DescriptionTemplates) == 0 {
		return "An unremarkable stretch of " + template.Terrain + "."
	}
	text := template.DescriptionTemplates[rng.Intn(len(template.DescriptionTemplates))]
	if len(template.Adjectives) > 0 {
		text = strings.ReplaceAll(text, "{adjective}", template.Adjectives[rng.Intn(len(template.Adjectives))])
	}
	if len(template.Features) > 0 {
		text = strings.ReplaceAll(text, "{feature}", template.Features[rng.Intn(len(template.Features))])
	}
	return text
}

// itemPool unions the template's static item candidates with every enabled
// registry item that declares a natural spawn for this terrain. Template
// entries win on ID collision.
func (a *Assembler) itemPool(template registry.TerrainTemplate, terrain string) []registry.Candidate {
	pool := append([]registry.Candidate(nil), template.Items...)
	seen := make(map[string]struct{}, len(pool))
	for _, c := range pool {
		seen[c.Name] = struct{}{}
	}

	// Sorted iteration keeps the pool order, and with it the RNG stream,
	// stable across seeded runs.
	for _, id := range a.registry.ItemIDs() {
		item, _ := a.registry.Item(id)
		if !item.Enabled {
			continue
		}
		natural, ok := item.NaturalSpawn[terrain]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		conditions := &registry.Conditions{Chance: natural.Chance}
		if conditions.Chance <= 0 {
			conditions.Chance = defaultNaturalChance
		}
		if natural.Conditions != nil {
			conditions.Ranges = natural.Conditions.Ranges
			conditions.SoilTypes = natural.Conditions.SoilTypes
		}
		pool = append(pool, registry.Candidate{
			Kind:       registry.KindItem,
			Name:       id,
			Conditions: conditions,
		})
	}
	return pool
}

// itemBudget scales the distinct-item cap with both world richness and the
// chunk's own resource score.
func (a *Assembler) itemBudget(ch *world.Chunk) int {
	countMultiplier := 0.5 + spawn.ResourceScore(ch)*(a.profile.ResourceDensity/100)
	return int(math.Floor(baseItemBudget * spawn.Softcap(a.profile.SpawnMultiplier) * countMultiplier))
}

// addItem resolves an item reference and merges a rolled quantity into the
// chunk's item list, keyed by canonical item ID. Unresolvable references are
// dropped from the spawned list. An explicit quantity range (loot entries)
// overrides the item's own base quantity.
func (a *Assembler) addItem(rng *rand.Rand, ch *world.Chunk, itemID string, override registry.QuantityRange) {
	item, ok := a.registry.Item(itemID)
	if !ok {
		return
	}
	quantityRange := item.BaseQuantity
	if override.Max > 0 {
		quantityRange = override
	}
	quantity := rollQuantity(rng, quantityRange)

	for i := range ch.Items {
		if ch.Items[i].ItemID == itemID {
			ch.Items[i].Quantity += quantity
			return
		}
	}
	ch.Items = append(ch.Items, world.ItemStack{
		ItemID:   itemID,
		Name:     a.registry.Translate(item.NameKey),
		Quantity: quantity,
	})
}

func (a *Assembler) buildNPC(rng *rand.Rand, c registry.Candidate) world.NPC {
	npc := world.NPC{ID: newID(rng), Name: c.Name}
	if c.NPC != nil {
		npc.Name = a.registry.Translate(c.NPC.Name)
		for _, line := range c.NPC.Dialogue {
			npc.Dialogue = append(npc.Dialogue, a.registry.Translate(line))
		}
	}
	return npc
}

func (a *Assembler) buildEnemy(rng *rand.Rand, c registry.Candidate) *world.Enemy {
	enemy := &world.Enemy{
		ID:       newID(rng),
		Name:     c.Name,
		HP:       100,
		Damage:   10,
		Behavior: "aggressive",
	}
	if c.Enemy != nil {
		if c.Enemy.Name != "" {
			enemy.Name = a.registry.Translate(c.Enemy.Name)
		}
		if c.Enemy.HP > 0 {
			enemy.HP = c.Enemy.HP
		}
		if c.Enemy.Damage > 0 {
			enemy.Damage = c.Enemy.Damage
		}
		if c.Enemy.Behavior != "" {
			enemy.Behavior = c.Enemy.Behavior
		}
	}
	return enemy
}

// placeStructure records the structure and rolls its loot table, each entry
// independently, merging results into the chunk's item list.
func (a *Assembler) placeStructure(rng *rand.Rand, ch *world.Chunk, c registry.Candidate) {
	structure := world.Structure{ID: newID(rng), Name: c.Name}
	if c.Structure != nil {
		structure.Name = a.registry.Translate(c.Structure.Name)
		for _, entry := range c.Structure.Loot {
			if entry.Chance <= 0 || rng.Float64() >= entry.Chance {
				continue
			}
			a.addItem(rng, ch, entry.ItemID, entry.Quantity)
		}
	}
	ch.Structures = append(ch.Structures, structure)
}

func (a *Assembler) deriveActions(ch *world.Chunk) []string {
	var actions []string
	if ch.Enemy != nil {
		actions = append(actions, "observe-enemy")
	}
	if len(ch.NPCs) > 0 {
		actions = append(actions, "talk-to-npc")
	}
	for _, item := range ch.Items {
		actions = append(actions, fmt.Sprintf("pick-up-%s", item.ItemID))
	}
	actions = append(actions, "explore", "listen")
	return actions
}

// newID draws instance identity from the generation RNG stream so that
// seeded runs reproduce entity IDs along with everything else.
func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func rollQuantity(rng *rand.Rand, q registry.QuantityRange) int {
	if q.Min < 1 {
		q.Min = 1
	}
	if q.Max <= q.Min {
		return q.Min
	}
	return q.Min + rng.Intn(q.Max-q.Min+1)
}
