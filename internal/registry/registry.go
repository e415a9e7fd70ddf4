package registry

import "sort"

// Registry bundles the read-only data tables the generation engine consumes:
// biome parameters, terrain content templates, item definitions, season
// modifiers, weather presets and localized display strings.
type Registry struct {
	biomes    map[string]Biome
	templates map[string]TerrainTemplate
	items     map[string]ItemDef
	seasons   map[Season]SeasonModifiers
	weather   []WeatherPreset
	locale    map[string]string
}

// New returns an empty registry. Most callers want Default or Load; New is
// the starting point for hand-built tables.
func New() *Registry {
	return &Registry{
		biomes:    make(map[string]Biome),
		templates: make(map[string]TerrainTemplate),
		items:     make(map[string]ItemDef),
		seasons:   make(map[Season]SeasonModifiers),
		locale:    make(map[string]string),
	}
}

// PutBiome adds or replaces a biome row.
func (r *Registry) PutBiome(b Biome) {
	r.biomes[b.Name] = b
}

// PutTemplate adds or replaces a terrain content template.
func (r *Registry) PutTemplate(t TerrainTemplate) {
	r.templates[t.Terrain] = t
}

// PutItem adds or replaces an item definition.
func (r *Registry) PutItem(it ItemDef) {
	r.items[it.ID] = it
}

// PutSeason adds or replaces one season's modifier row.
func (r *Registry) PutSeason(s Season, mods SeasonModifiers) {
	r.seasons[s] = mods
}

// SetWeather replaces the whole weather preset table.
func (r *Registry) SetWeather(presets []WeatherPreset) {
	r.weather = presets
}

// PutLocale adds or replaces one localized string.
func (r *Registry) PutLocale(key, value string) {
	r.locale[key] = value
}

// Biome returns the configuration for a terrain type.
func (r *Registry) Biome(name string) (Biome, bool) {
	b, ok := r.biomes[name]
	return b, ok
}

// BiomeNames lists every configured terrain type in sorted order. The order
// is stable so that seeded generation consumes its RNG stream
// deterministically.
func (r *Registry) BiomeNames() []string {
	names := make([]string, 0, len(r.biomes))
	for name := range r.biomes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ItemIDs lists every item definition ID in sorted order.
func (r *Registry) ItemIDs() []string {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Template returns the content template for a terrain type.
func (r *Registry) Template(terrain string) (TerrainTemplate, bool) {
	t, ok := r.templates[terrain]
	return t, ok
}

// Item resolves an item definition by canonical ID.
func (r *Registry) Item(id string) (ItemDef, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Items returns every item definition. The returned map is shared; callers
// must not mutate it.
func (r *Registry) Items() map[string]ItemDef {
	return r.items
}

// SeasonMods returns the modifier row for a season, zero-valued when the
// season is unknown.
func (r *Registry) SeasonMods(s Season) SeasonModifiers {
	return r.seasons[s]
}

// WeatherPresets returns the full weather table.
func (r *Registry) WeatherPresets() []WeatherPreset {
	return r.weather
}

// Translate maps a localization key to its display string. Unknown keys come
// back unchanged so missing locale rows degrade visibly instead of failing.
func (r *Registry) Translate(key string) string {
	if s, ok := r.locale[key]; ok {
		return s
	}
	return key
}
