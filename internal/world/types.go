package world

// Coord identifies a chunk in global grid space.
type Coord struct {
	X int
	Y int
}

// Neighbors4 returns the 4-connected neighborhood of the coordinate.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// WallRegionID is the sentinel region for impassable wall chunks.
const WallRegionID = -1

// WallTerrain is the sentinel terrain name walls carry. It never appears in
// the biome table and is never a candidate for region growth.
const WallTerrain = "wall"

// Region is a contiguous single-terrain group of chunks generated together.
// It is created once and never structurally mutated afterwards.
type Region struct {
	ID      int
	Terrain string
	Cells   []Coord
}

// Attributes are the per-chunk environmental values derived at generation
// time. All values are clamped to [0, 100] except LightLevel ([-100, 100]).
type Attributes struct {
	VegetationDensity float64
	Moisture          float64
	Elevation         float64
	DangerLevel       float64
	MagicAffinity     float64
	HumanPresence     float64
	PredatorPresence  float64
	Temperature       float64
	Explorability     float64
	SoilType          string
	TravelCost        int
	LightLevel        float64
	WindLevel         float64
}

// ByName resolves an attribute by its condition-table key. The boolean is
// false for keys the engine does not define, letting callers skip unknown
// (modded) condition keys.
func (a Attributes) ByName(key string) (float64, bool) {
	switch key {
	case "vegetationDensity":
		return a.VegetationDensity, true
	case "moisture":
		return a.Moisture, true
	case "elevation":
		return a.Elevation, true
	case "dangerLevel":
		return a.DangerLevel, true
	case "magicAffinity":
		return a.MagicAffinity, true
	case "humanPresence":
		return a.HumanPresence, true
	case "predatorPresence":
		return a.PredatorPresence, true
	case "temperature":
		return a.Temperature, true
	case "explorability":
		return a.Explorability, true
	case "lightLevel":
		return a.LightLevel, true
	case "windLevel":
		return a.WindLevel, true
	case "travelCost":
		return float64(a.TravelCost), true
	}
	return 0, false
}

// ItemStack is a spawned quantity of one registry item.
type ItemStack struct {
	ItemID   string
	Name     string // translated display name, presentation only
	Quantity int
}

// NPC is a spawned non-hostile inhabitant.
type NPC struct {
	ID       string
	Name     string
	Dialogue []string
}

// Enemy is the chunk's sole hostile occupant.
type Enemy struct {
	ID       string
	Name     string
	HP       float64
	Damage   float64
	Behavior string
}

// Structure is a spawned fixed structure. Its loot has already been merged
// into the chunk's item list.
type Structure struct {
	ID   string
	Name string
}

// Chunk is the atomic world cell: identity, derived environment and
// generated content.
type Chunk struct {
	Coord    Coord
	RegionID int
	Terrain  string

	Attributes

	Description string
	Items       []ItemStack
	NPCs        []NPC
	Enemy       *Enemy
	Structures  []Structure
	Actions     []string
	Explored    bool
	LastVisited int64
}

// Wall reports whether the chunk is an impassable wall sentinel.
func (c *Chunk) Wall() bool {
	return c.RegionID == WallRegionID
}

// State is the sparse world map plus its region table. The generation core
// treats it copy-on-write: drivers clone it, mutate the clone and hand it
// back, so a given State value never changes once published.
type State struct {
	Chunks  map[Coord]*Chunk
	Regions map[int]*Region

	nextRegionID int
}

// NewState returns an empty world.
func NewState() *State {
	return &State{
		Chunks:  make(map[Coord]*Chunk),
		Regions: make(map[int]*Region),
	}
}

// Clone shallow-copies the state maps. Chunks and regions themselves are
// immutable once created, so sharing them across clones is safe.
func (s *State) Clone() *State {
	out := &State{
		Chunks:       make(map[Coord]*Chunk, len(s.Chunks)),
		Regions:      make(map[int]*Region, len(s.Regions)),
		nextRegionID: s.nextRegionID,
	}
	for k, v := range s.Chunks {
		out.Chunks[k] = v
	}
	for k, v := range s.Regions {
		out.Regions[k] = v
	}
	return out
}

// Occupied reports whether a coordinate already holds a chunk.
func (s *State) Occupied(c Coord) bool {
	_, ok := s.Chunks[c]
	return ok
}

func (s *State) allocRegionID() int {
	id := s.nextRegionID
	s.nextRegionID++
	return id
}
