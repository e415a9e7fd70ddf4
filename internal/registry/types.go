package registry

// Season identifies one of the four generation seasons.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Range bounds a uniform attribute draw. Min and Max are inclusive.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// QuantityRange bounds an integer quantity roll.
type QuantityRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Biome describes the generation parameters of one terrain type: how eagerly
// it spreads, which terrains may border it, how large its regions grow, and
// the value ranges its chunk attributes are drawn from.
type Biome struct {
	Name             string   `yaml:"name"`
	SpreadWeight     float64  `yaml:"spreadWeight"`
	AllowedNeighbors []string `yaml:"allowedNeighbors"`
	MinSize          int      `yaml:"minSize"`
	MaxSize          int      `yaml:"maxSize"`

	Vegetation  Range `yaml:"vegetation"`
	Moisture    Range `yaml:"moisture"`
	Elevation   Range `yaml:"elevation"`
	Danger      Range `yaml:"danger"`
	Magic       Range `yaml:"magic"`
	HumanTraces Range `yaml:"humanTraces"`
	Predators   Range `yaml:"predators"`
	Temperature Range `yaml:"temperature"`

	SoilTypes  []string `yaml:"soilTypes"`
	TravelCost int      `yaml:"travelCost"`
}

// SeasonModifiers shift attribute derivation for one season.
type SeasonModifiers struct {
	Temperature float64 `yaml:"temperature"`
	Moisture    float64 `yaml:"moisture"`
	Wind        float64 `yaml:"wind"`
	Sun         float64 `yaml:"sun"`
}

// Bound constrains one chunk attribute. A nil side is unconstrained.
type Bound struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// AtLeast bounds an attribute from below only.
func AtLeast(v float64) Bound { return Bound{Min: &v} }

// AtMost bounds an attribute from above only.
func AtMost(v float64) Bound { return Bound{Max: &v} }

// Between bounds an attribute on both sides.
func Between(lo, hi float64) Bound { return Bound{Min: &lo, Max: &hi} }

// Conditions gate a spawn candidate against a chunk. Ranges are keyed by
// chunk attribute name; keys the engine does not recognise are skipped so
// modded tables stay loadable. Chance is the base spawn probability and is
// not itself a precondition.
type Conditions struct {
	Chance    float64          `yaml:"chance"`
	Ranges    map[string]Bound `yaml:"ranges"`
	SoilTypes []string         `yaml:"soilTypes"`
}

// CandidateKind tags the payload carried by a spawn candidate.
type CandidateKind string

const (
	KindItem      CandidateKind = "item"
	KindNPC       CandidateKind = "npc"
	KindEnemy     CandidateKind = "enemy"
	KindStructure CandidateKind = "structure"
)

// Candidate is a potential spawn: an item reference or an embedded NPC,
// enemy or structure spec, plus the conditions under which it may appear.
type Candidate struct {
	Kind       CandidateKind  `yaml:"kind"`
	Name       string         `yaml:"name"`
	Conditions *Conditions    `yaml:"conditions"`
	NPC        *NPCSpec       `yaml:"npc,omitempty"`
	Enemy      *EnemySpec     `yaml:"enemy,omitempty"`
	Structure  *StructureSpec `yaml:"structure,omitempty"`
}

// NPCSpec describes a non-hostile inhabitant.
type NPCSpec struct {
	Name     string   `yaml:"name"`
	Dialogue []string `yaml:"dialogue,omitempty"`
}

// EnemySpec describes a hostile spawn. Zero fields fall back to engine
// defaults when the enemy is placed.
type EnemySpec struct {
	Name     string  `yaml:"name"`
	HP       float64 `yaml:"hp"`
	Damage   float64 `yaml:"damage"`
	Behavior string  `yaml:"behavior"`
}

// StructureSpec describes a fixed structure and its loot table.
type StructureSpec struct {
	Name string      `yaml:"name"`
	Loot []LootEntry `yaml:"loot,omitempty"`
}

// LootEntry rolls independently when its structure spawns.
type LootEntry struct {
	ItemID   string        `yaml:"item"`
	Chance   float64       `yaml:"chance"`
	Quantity QuantityRange `yaml:"quantity"`
}

// NaturalSpawn places a registry item into a biome's candidate pool.
type NaturalSpawn struct {
	Chance     float64     `yaml:"chance"`
	Conditions *Conditions `yaml:"conditions,omitempty"`
}

// ItemDef is one entry of the item registry.
type ItemDef struct {
	ID           string                  `yaml:"id"`
	Tier         int                     `yaml:"tier"`
	BaseQuantity QuantityRange           `yaml:"baseQuantity"`
	NameKey      string                  `yaml:"nameKey"`
	DescKey      string                  `yaml:"descKey"`
	Enabled      bool                    `yaml:"enabled"`
	NaturalSpawn map[string]NaturalSpawn `yaml:"naturalSpawn,omitempty"`
}

// TerrainTemplate holds the content tables for one terrain: description
// fragments and the static spawn candidate lists.
type TerrainTemplate struct {
	Terrain              string      `yaml:"terrain"`
	DescriptionTemplates []string    `yaml:"descriptionTemplates"`
	Adjectives           []string    `yaml:"adjectives"`
	Features             []string    `yaml:"features"`
	Items                []Candidate `yaml:"items,omitempty"`
	NPCs                 []Candidate `yaml:"npcs,omitempty"`
	Enemies              []Candidate `yaml:"enemies,omitempty"`
	Structures           []Candidate `yaml:"structures,omitempty"`
}

// WeatherEffects are the deltas a weather state applies to the effective
// view of a chunk.
type WeatherEffects struct {
	Temperature float64 `yaml:"temperature"`
	Moisture    float64 `yaml:"moisture"`
	Light       float64 `yaml:"light"`
	Wind        float64 `yaml:"wind"`
}

// WeatherPreset is a selectable weather state with biome and season
// affinities, a selection weight, and exclusivity tags used by the
// anti-repetition cooldown.
type WeatherPreset struct {
	Name    string         `yaml:"name"`
	Biomes  []string       `yaml:"biomes,omitempty"`
	Seasons []Season       `yaml:"seasons,omitempty"`
	Tags    []string       `yaml:"tags,omitempty"`
	Weight  float64        `yaml:"weight"`
	Effects WeatherEffects `yaml:"effects"`
}

// HasTag reports whether the preset carries the given exclusivity tag.
func (p WeatherPreset) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
