package registry

// Default returns a registry populated with the built-in data tables. The
// engine is fully functional on these; Load merges YAML overrides on top.
func Default() *Registry {
	return &Registry{
		biomes:    defaultBiomes(),
		templates: defaultTemplates(),
		items:     defaultItems(),
		seasons:   defaultSeasons(),
		weather:   defaultWeather(),
		locale:    defaultLocale(),
	}
}

func defaultBiomes() map[string]Biome {
	biomes := []Biome{
		{
			Name:             "plains",
			SpreadWeight:     10,
			AllowedNeighbors: []string{"plains", "forest", "swamp", "desert", "tundra", "mountain"},
			MinSize:          6,
			MaxSize:          14,
			Vegetation:       Range{Min: 30, Max: 70},
			Moisture:         Range{Min: 30, Max: 60},
			Elevation:        Range{Min: 10, Max: 40},
			Danger:           Range{Min: 0, Max: 25},
			Magic:            Range{Min: 0, Max: 20},
			HumanTraces:      Range{Min: 20, Max: 60},
			Predators:        Range{Min: 5, Max: 30},
			Temperature:      Range{Min: 40, Max: 70},
			SoilTypes:        []string{"loam", "clay", "silt"},
			TravelCost:       1,
		},
		{
			Name:             "forest",
			SpreadWeight:     8,
			AllowedNeighbors: []string{"forest", "plains", "swamp", "mountain", "tundra"},
			MinSize:          8,
			MaxSize:          18,
			Vegetation:       Range{Min: 60, Max: 95},
			Moisture:         Range{Min: 40, Max: 75},
			Elevation:        Range{Min: 15, Max: 50},
			Danger:           Range{Min: 10, Max: 45},
			Magic:            Range{Min: 10, Max: 40},
			HumanTraces:      Range{Min: 5, Max: 35},
			Predators:        Range{Min: 20, Max: 55},
			Temperature:      Range{Min: 35, Max: 60},
			SoilTypes:        []string{"loam", "peat"},
			TravelCost:       2,
		},
		{
			Name:             "swamp",
			SpreadWeight:     4,
			AllowedNeighbors: []string{"swamp", "forest", "plains"},
			MinSize:          5,
			MaxSize:          12,
			Vegetation:       Range{Min: 50, Max: 85},
			Moisture:         Range{Min: 75, Max: 100},
			Elevation:        Range{Min: 0, Max: 15},
			Danger:           Range{Min: 25, Max: 60},
			Magic:            Range{Min: 20, Max: 55},
			HumanTraces:      Range{Min: 0, Max: 15},
			Predators:        Range{Min: 30, Max: 65},
			Temperature:      Range{Min: 40, Max: 65},
			SoilTypes:        []string{"peat", "mud"},
			TravelCost:       3,
		},
		{
			Name:             "desert",
			SpreadWeight:     4,
			AllowedNeighbors: []string{"desert", "plains", "mountain", "volcanic"},
			MinSize:          8,
			MaxSize:          20,
			Vegetation:       Range{Min: 0, Max: 15},
			Moisture:         Range{Min: 0, Max: 15},
			Elevation:        Range{Min: 10, Max: 45},
			Danger:           Range{Min: 20, Max: 50},
			Magic:            Range{Min: 5, Max: 30},
			HumanTraces:      Range{Min: 0, Max: 20},
			Predators:        Range{Min: 10, Max: 40},
			Temperature:      Range{Min: 70, Max: 100},
			SoilTypes:        []string{"sand"},
			TravelCost:       3,
		},
		{
			Name:             "tundra",
			SpreadWeight:     4,
			AllowedNeighbors: []string{"tundra", "plains", "forest", "mountain"},
			MinSize:          7,
			MaxSize:          16,
			Vegetation:       Range{Min: 5, Max: 30},
			Moisture:         Range{Min: 20, Max: 50},
			Elevation:        Range{Min: 20, Max: 60},
			Danger:           Range{Min: 15, Max: 45},
			Magic:            Range{Min: 10, Max: 35},
			HumanTraces:      Range{Min: 0, Max: 15},
			Predators:        Range{Min: 15, Max: 50},
			Temperature:      Range{Min: 0, Max: 25},
			SoilTypes:        []string{"permafrost", "gravel"},
			TravelCost:       2,
		},
		{
			Name:             "mountain",
			SpreadWeight:     5,
			AllowedNeighbors: []string{"mountain", "plains", "forest", "tundra", "desert", "cave", "volcanic"},
			MinSize:          5,
			MaxSize:          12,
			Vegetation:       Range{Min: 5, Max: 35},
			Moisture:         Range{Min: 15, Max: 45},
			Elevation:        Range{Min: 65, Max: 100},
			Danger:           Range{Min: 30, Max: 65},
			Magic:            Range{Min: 15, Max: 45},
			HumanTraces:      Range{Min: 0, Max: 20},
			Predators:        Range{Min: 20, Max: 55},
			Temperature:      Range{Min: 10, Max: 40},
			SoilTypes:        []string{"rock", "gravel"},
			TravelCost:       4,
		},
		{
			Name:             "cave",
			SpreadWeight:     2,
			AllowedNeighbors: []string{"cave", "mountain", "volcanic"},
			MinSize:          3,
			MaxSize:          8,
			Vegetation:       Range{Min: 0, Max: 10},
			Moisture:         Range{Min: 40, Max: 80},
			Elevation:        Range{Min: 0, Max: 30},
			Danger:           Range{Min: 50, Max: 90},
			Magic:            Range{Min: 30, Max: 75},
			HumanTraces:      Range{Min: 0, Max: 10},
			Predators:        Range{Min: 40, Max: 80},
			Temperature:      Range{Min: 20, Max: 40},
			SoilTypes:        []string{"rock"},
			TravelCost:       4,
		},
		{
			Name:             "volcanic",
			SpreadWeight:     1,
			AllowedNeighbors: []string{"volcanic", "mountain", "desert", "cave"},
			MinSize:          3,
			MaxSize:          8,
			Vegetation:       Range{Min: 0, Max: 5},
			Moisture:         Range{Min: 0, Max: 10},
			Elevation:        Range{Min: 50, Max: 95},
			Danger:           Range{Min: 65, Max: 100},
			Magic:            Range{Min: 40, Max: 85},
			HumanTraces:      Range{Min: 0, Max: 5},
			Predators:        Range{Min: 25, Max: 60},
			Temperature:      Range{Min: 80, Max: 100},
			SoilTypes:        []string{"ash", "basalt"},
			TravelCost:       5,
		},
	}

	out := make(map[string]Biome, len(biomes))
	for _, b := range biomes {
		out[b.Name] = b
	}
	return out
}

func defaultItems() map[string]ItemDef {
	items := []ItemDef{
		{
			ID: "wild_berries", Tier: 1,
			BaseQuantity: QuantityRange{Min: 1, Max: 4},
			NameKey:      "item.wild_berries", DescKey: "item.wild_berries.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"plains": {Chance: 0.5, Conditions: &Conditions{Ranges: map[string]Bound{"vegetationDensity": Between(25, 100)}}},
				"forest": {Chance: 0.6, Conditions: &Conditions{Ranges: map[string]Bound{"vegetationDensity": Between(40, 100)}}},
			},
		},
		{
			ID: "firewood", Tier: 1,
			BaseQuantity: QuantityRange{Min: 1, Max: 3},
			NameKey:      "item.firewood", DescKey: "item.firewood.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"forest": {Chance: 0.7},
				"swamp":  {Chance: 0.3},
			},
		},
		{
			ID: "flint", Tier: 1,
			BaseQuantity: QuantityRange{Min: 1, Max: 2},
			NameKey:      "item.flint", DescKey: "item.flint.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"mountain": {Chance: 0.5},
				"plains":   {Chance: 0.2},
				"desert":   {Chance: 0.3},
			},
		},
		{
			ID: "medicinal_herb", Tier: 2,
			BaseQuantity: QuantityRange{Min: 1, Max: 2},
			NameKey:      "item.medicinal_herb", DescKey: "item.medicinal_herb.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"forest": {Chance: 0.35, Conditions: &Conditions{Ranges: map[string]Bound{"moisture": Between(40, 100)}}},
				"swamp":  {Chance: 0.45},
			},
		},
		{
			ID: "iron_ore", Tier: 3,
			BaseQuantity: QuantityRange{Min: 1, Max: 3},
			NameKey:      "item.iron_ore", DescKey: "item.iron_ore.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"mountain": {Chance: 0.4, Conditions: &Conditions{SoilTypes: []string{"rock"}}},
				"cave":     {Chance: 0.55},
			},
		},
		{
			ID: "glowcap_mushroom", Tier: 3,
			BaseQuantity: QuantityRange{Min: 1, Max: 3},
			NameKey:      "item.glowcap_mushroom", DescKey: "item.glowcap_mushroom.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"cave":  {Chance: 0.5, Conditions: &Conditions{Ranges: map[string]Bound{"magicAffinity": AtLeast(30)}}},
				"swamp": {Chance: 0.25},
			},
		},
		{
			ID: "obsidian_shard", Tier: 4,
			BaseQuantity: QuantityRange{Min: 1, Max: 2},
			NameKey:      "item.obsidian_shard", DescKey: "item.obsidian_shard.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"volcanic": {Chance: 0.5},
			},
		},
		{
			ID: "ancient_relic", Tier: 5,
			BaseQuantity: QuantityRange{Min: 1, Max: 1},
			NameKey:      "item.ancient_relic", DescKey: "item.ancient_relic.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"cave":     {Chance: 0.15, Conditions: &Conditions{Ranges: map[string]Bound{"magicAffinity": AtLeast(50)}}},
				"volcanic": {Chance: 0.1},
			},
		},
		{
			ID: "cactus_fruit", Tier: 1,
			BaseQuantity: QuantityRange{Min: 1, Max: 3},
			NameKey:      "item.cactus_fruit", DescKey: "item.cactus_fruit.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"desert": {Chance: 0.45},
			},
		},
		{
			ID: "snow_lichen", Tier: 2,
			BaseQuantity: QuantityRange{Min: 1, Max: 2},
			NameKey:      "item.snow_lichen", DescKey: "item.snow_lichen.desc",
			Enabled: true,
			NaturalSpawn: map[string]NaturalSpawn{
				"tundra": {Chance: 0.4, Conditions: &Conditions{Ranges: map[string]Bound{"temperature": AtMost(30)}}},
			},
		},
	}

	out := make(map[string]ItemDef, len(items))
	for _, it := range items {
		out[it.ID] = it
	}
	return out
}

func defaultTemplates() map[string]TerrainTemplate {
	templates := []TerrainTemplate{
		{
			Terrain: "plains",
			DescriptionTemplates: []string{
				"A {adjective} stretch of open grassland. {feature}",
				"{adjective} plains roll toward the horizon. {feature}",
			},
			Adjectives: []string{"windswept", "sunlit", "quiet", "rolling"},
			Features:   []string{"A worn trail crosses it.", "Tall grass sways in waves.", "A lone boulder breaks the expanse."},
			Items: []Candidate{
				{Kind: KindItem, Name: "wild_berries", Conditions: &Conditions{Chance: 0.4}},
				{Kind: KindItem, Name: "flint", Conditions: &Conditions{Chance: 0.25}},
			},
			NPCs: []Candidate{
				{Kind: KindNPC, Name: "wandering_trader", Conditions: &Conditions{Chance: 0.1, Ranges: map[string]Bound{"humanPresence": AtLeast(30)}},
					NPC: &NPCSpec{Name: "npc.wandering_trader", Dialogue: []string{"dialogue.trader.greeting"}}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "plains_wolf", Conditions: &Conditions{Chance: 0.15, Ranges: map[string]Bound{"predatorPresence": AtLeast(20)}},
					Enemy: &EnemySpec{Name: "enemy.plains_wolf", HP: 60, Damage: 8, Behavior: "territorial"}},
			},
			Structures: []Candidate{
				{Kind: KindStructure, Name: "abandoned_camp", Conditions: &Conditions{Chance: 0.08, Ranges: map[string]Bound{"humanPresence": AtLeast(25)}},
					Structure: &StructureSpec{Name: "structure.abandoned_camp", Loot: []LootEntry{
						{ItemID: "firewood", Chance: 0.7, Quantity: QuantityRange{Min: 1, Max: 3}},
						{ItemID: "flint", Chance: 0.4, Quantity: QuantityRange{Min: 1, Max: 2}},
					}}},
			},
		},
		{
			Terrain: "forest",
			DescriptionTemplates: []string{
				"A {adjective} forest closes in around you. {feature}",
				"You stand beneath {adjective} trees. {feature}",
			},
			Adjectives: []string{"dense", "ancient", "shadowed", "mossy"},
			Features:   []string{"Birdsong filters through the canopy.", "Roots knot the ground underfoot.", "Something rustles in the undergrowth."},
			Items: []Candidate{
				{Kind: KindItem, Name: "firewood", Conditions: &Conditions{Chance: 0.6}},
				{Kind: KindItem, Name: "wild_berries", Conditions: &Conditions{Chance: 0.45}},
				{Kind: KindItem, Name: "medicinal_herb", Conditions: &Conditions{Chance: 0.25, Ranges: map[string]Bound{"moisture": AtLeast(40)}}},
			},
			NPCs: []Candidate{
				{Kind: KindNPC, Name: "hermit", Conditions: &Conditions{Chance: 0.06, Ranges: map[string]Bound{"humanPresence": AtMost(30)}},
					NPC: &NPCSpec{Name: "npc.hermit", Dialogue: []string{"dialogue.hermit.greeting"}}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "forest_wolf", Conditions: &Conditions{Chance: 0.2, Ranges: map[string]Bound{"predatorPresence": AtLeast(25)}},
					Enemy: &EnemySpec{Name: "enemy.forest_wolf", HP: 70, Damage: 10, Behavior: "pack"}},
				{Kind: KindEnemy, Name: "giant_spider", Conditions: &Conditions{Chance: 0.1, Ranges: map[string]Bound{"dangerLevel": AtLeast(30)}},
					Enemy: &EnemySpec{Name: "enemy.giant_spider", HP: 45, Damage: 14, Behavior: "ambush"}},
			},
			Structures: []Candidate{
				{Kind: KindStructure, Name: "hunters_stand", Conditions: &Conditions{Chance: 0.07},
					Structure: &StructureSpec{Name: "structure.hunters_stand", Loot: []LootEntry{
						{ItemID: "firewood", Chance: 0.5, Quantity: QuantityRange{Min: 1, Max: 2}},
					}}},
			},
		},
		{
			Terrain: "swamp",
			DescriptionTemplates: []string{
				"A {adjective} marsh spreads before you. {feature}",
				"{adjective} water pools between hummocks. {feature}",
			},
			Adjectives: []string{"stagnant", "mist-wreathed", "sucking", "brackish"},
			Features:   []string{"Insects drone in thick clouds.", "Pale lights drift over the water.", "Dead trees claw at the sky."},
			Items: []Candidate{
				{Kind: KindItem, Name: "medicinal_herb", Conditions: &Conditions{Chance: 0.4}},
				{Kind: KindItem, Name: "glowcap_mushroom", Conditions: &Conditions{Chance: 0.2, SoilTypes: []string{"peat", "mud"}}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "bog_lurker", Conditions: &Conditions{Chance: 0.2, Ranges: map[string]Bound{"moisture": AtLeast(70)}},
					Enemy: &EnemySpec{Name: "enemy.bog_lurker", HP: 90, Damage: 12, Behavior: "ambush"}},
			},
			Structures: []Candidate{
				{Kind: KindStructure, Name: "sunken_shrine", Conditions: &Conditions{Chance: 0.05, Ranges: map[string]Bound{"magicAffinity": AtLeast(35)}},
					Structure: &StructureSpec{Name: "structure.sunken_shrine", Loot: []LootEntry{
						{ItemID: "ancient_relic", Chance: 0.25, Quantity: QuantityRange{Min: 1, Max: 1}},
						{ItemID: "glowcap_mushroom", Chance: 0.5, Quantity: QuantityRange{Min: 1, Max: 2}},
					}}},
			},
		},
		{
			Terrain: "desert",
			DescriptionTemplates: []string{
				"A {adjective} expanse of sand. {feature}",
				"{adjective} dunes shift underfoot. {feature}",
			},
			Adjectives: []string{"scorched", "shimmering", "endless", "wind-carved"},
			Features:   []string{"Heat ripples blur the distance.", "Bleached bones jut from a dune.", "The sand hisses in the wind."},
			Items: []Candidate{
				{Kind: KindItem, Name: "cactus_fruit", Conditions: &Conditions{Chance: 0.35}},
				{Kind: KindItem, Name: "flint", Conditions: &Conditions{Chance: 0.3}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "dust_scorpion", Conditions: &Conditions{Chance: 0.18, Ranges: map[string]Bound{"temperature": AtLeast(70)}},
					Enemy: &EnemySpec{Name: "enemy.dust_scorpion", HP: 50, Damage: 16, Behavior: "aggressive"}},
			},
			Structures: []Candidate{
				{Kind: KindStructure, Name: "buried_caravan", Conditions: &Conditions{Chance: 0.06},
					Structure: &StructureSpec{Name: "structure.buried_caravan", Loot: []LootEntry{
						{ItemID: "flint", Chance: 0.5, Quantity: QuantityRange{Min: 1, Max: 2}},
						{ItemID: "ancient_relic", Chance: 0.1, Quantity: QuantityRange{Min: 1, Max: 1}},
					}}},
			},
		},
		{
			Terrain: "tundra",
			DescriptionTemplates: []string{
				"A {adjective} frozen plain. {feature}",
				"{adjective} ground crunches with frost. {feature}",
			},
			Adjectives: []string{"frost-bitten", "bleak", "glittering", "silent"},
			Features:   []string{"Your breath hangs in the air.", "Lichen clings to scattered stones.", "The wind cuts to the bone."},
			Items: []Candidate{
				{Kind: KindItem, Name: "snow_lichen", Conditions: &Conditions{Chance: 0.35}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "ice_stalker", Conditions: &Conditions{Chance: 0.15, Ranges: map[string]Bound{"temperature": AtMost(25)}},
					Enemy: &EnemySpec{Name: "enemy.ice_stalker", HP: 80, Damage: 12, Behavior: "stalking"}},
			},
		},
		{
			Terrain: "mountain",
			DescriptionTemplates: []string{
				"A {adjective} mountainside rises above. {feature}",
				"{adjective} crags loom overhead. {feature}",
			},
			Adjectives: []string{"sheer", "weathered", "towering", "snow-capped"},
			Features:   []string{"Loose scree slides with each step.", "An eagle circles far overhead.", "A cold wind funnels through the pass."},
			Items: []Candidate{
				{Kind: KindItem, Name: "iron_ore", Conditions: &Conditions{Chance: 0.3, SoilTypes: []string{"rock"}}},
				{Kind: KindItem, Name: "flint", Conditions: &Conditions{Chance: 0.4}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "cliff_harpy", Conditions: &Conditions{Chance: 0.12, Ranges: map[string]Bound{"elevation": AtLeast(70)}},
					Enemy: &EnemySpec{Name: "enemy.cliff_harpy", HP: 65, Damage: 13, Behavior: "aggressive"}},
			},
			Structures: []Candidate{
				{Kind: KindStructure, Name: "collapsed_mine", Conditions: &Conditions{Chance: 0.08},
					Structure: &StructureSpec{Name: "structure.collapsed_mine", Loot: []LootEntry{
						{ItemID: "iron_ore", Chance: 0.6, Quantity: QuantityRange{Min: 1, Max: 3}},
					}}},
			},
		},
		{
			Terrain: "cave",
			DescriptionTemplates: []string{
				"A {adjective} cavern swallows the light. {feature}",
				"{adjective} darkness presses in. {feature}",
			},
			Adjectives: []string{"dripping", "echoing", "lightless", "fungal"},
			Features:   []string{"Water drips somewhere unseen.", "Pale mushrooms glow faintly.", "The air tastes of stone and age."},
			Items: []Candidate{
				{Kind: KindItem, Name: "glowcap_mushroom", Conditions: &Conditions{Chance: 0.45}},
				{Kind: KindItem, Name: "iron_ore", Conditions: &Conditions{Chance: 0.35}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "cave_horror", Conditions: &Conditions{Chance: 0.25, Ranges: map[string]Bound{"dangerLevel": AtLeast(50)}},
					Enemy: &EnemySpec{Name: "enemy.cave_horror", HP: 120, Damage: 18, Behavior: "aggressive"}},
			},
			Structures: []Candidate{
				{Kind: KindStructure, Name: "forgotten_altar", Conditions: &Conditions{Chance: 0.07, Ranges: map[string]Bound{"magicAffinity": AtLeast(40)}},
					Structure: &StructureSpec{Name: "structure.forgotten_altar", Loot: []LootEntry{
						{ItemID: "ancient_relic", Chance: 0.3, Quantity: QuantityRange{Min: 1, Max: 1}},
					}}},
			},
		},
		{
			Terrain: "volcanic",
			DescriptionTemplates: []string{
				"A {adjective} field of cooled lava. {feature}",
				"{adjective} vents hiss around you. {feature}",
			},
			Adjectives: []string{"smoldering", "ash-choked", "glassy", "sulfurous"},
			Features:   []string{"The ground is warm through your boots.", "Red light pulses in distant fissures.", "Ash drifts down like grey snow."},
			Items: []Candidate{
				{Kind: KindItem, Name: "obsidian_shard", Conditions: &Conditions{Chance: 0.4}},
			},
			Enemies: []Candidate{
				{Kind: KindEnemy, Name: "magma_wraith", Conditions: &Conditions{Chance: 0.2, Ranges: map[string]Bound{"temperature": AtLeast(80)}},
					Enemy: &EnemySpec{Name: "enemy.magma_wraith", HP: 110, Damage: 20, Behavior: "aggressive"}},
			},
		},
	}

	out := make(map[string]TerrainTemplate, len(templates))
	for _, t := range templates {
		out[t.Terrain] = t
	}
	return out
}

func defaultSeasons() map[Season]SeasonModifiers {
	return map[Season]SeasonModifiers{
		SeasonSpring: {Temperature: 0, Moisture: 10, Wind: 5, Sun: 5},
		SeasonSummer: {Temperature: 15, Moisture: -10, Wind: -5, Sun: 15},
		SeasonAutumn: {Temperature: -5, Moisture: 5, Wind: 10, Sun: -5},
		SeasonWinter: {Temperature: -20, Moisture: -5, Wind: 15, Sun: -15},
	}
}

func defaultWeather() []WeatherPreset {
	return []WeatherPreset{
		{
			Name: "clear", Weight: 10,
			Effects: WeatherEffects{Light: 10},
		},
		{
			Name: "overcast", Weight: 6,
			Effects: WeatherEffects{Light: -15, Moisture: 5},
		},
		{
			Name: "rain", Weight: 5,
			Biomes:  []string{"plains", "forest", "swamp", "mountain", "tundra"},
			Seasons: []Season{SeasonSpring, SeasonSummer, SeasonAutumn},
			Effects: WeatherEffects{Moisture: 20, Light: -20, Temperature: -5},
		},
		{
			Name: "fog", Weight: 3,
			Biomes:  []string{"forest", "swamp", "plains", "tundra"},
			Effects: WeatherEffects{Light: -30, Moisture: 10, Wind: -10},
		},
		{
			Name: "thunderstorm", Weight: 2,
			Biomes:  []string{"plains", "forest", "swamp", "mountain"},
			Seasons: []Season{SeasonSpring, SeasonSummer, SeasonAutumn},
			Tags:    []string{"storm"},
			Effects: WeatherEffects{Moisture: 30, Light: -40, Wind: 30, Temperature: -10},
		},
		{
			Name: "heatwave", Weight: 2,
			Biomes:  []string{"desert", "plains", "volcanic"},
			Seasons: []Season{SeasonSummer},
			Tags:    []string{"heat"},
			Effects: WeatherEffects{Temperature: 25, Moisture: -20, Light: 15},
		},
		{
			Name: "snowfall", Weight: 3,
			Biomes:  []string{"tundra", "mountain", "forest", "plains"},
			Seasons: []Season{SeasonWinter, SeasonAutumn},
			Effects: WeatherEffects{Temperature: -10, Light: -10, Moisture: 10},
		},
		{
			Name: "blizzard", Weight: 1,
			Biomes:  []string{"tundra", "mountain"},
			Seasons: []Season{SeasonWinter},
			Tags:    []string{"cold", "storm"},
			Effects: WeatherEffects{Temperature: -30, Light: -35, Wind: 40},
		},
		{
			Name: "ashfall", Weight: 2,
			Biomes:  []string{"volcanic"},
			Tags:    []string{"heat"},
			Effects: WeatherEffects{Light: -25, Temperature: 10, Wind: 5},
		},
	}
}

func defaultLocale() map[string]string {
	return map[string]string{
		"item.wild_berries":          "Wild Berries",
		"item.wild_berries.desc":     "A handful of tart berries.",
		"item.firewood":              "Firewood",
		"item.firewood.desc":         "Dry branches, good for a fire.",
		"item.flint":                 "Flint",
		"item.flint.desc":            "A sharp-edged stone.",
		"item.medicinal_herb":        "Medicinal Herb",
		"item.medicinal_herb.desc":   "Bitter leaves with healing properties.",
		"item.iron_ore":              "Iron Ore",
		"item.iron_ore.desc":         "A heavy chunk of raw ore.",
		"item.glowcap_mushroom":      "Glowcap Mushroom",
		"item.glowcap_mushroom.desc": "It sheds a faint blue light.",
		"item.obsidian_shard":        "Obsidian Shard",
		"item.obsidian_shard.desc":   "Volcanic glass, razor sharp.",
		"item.ancient_relic":         "Ancient Relic",
		"item.ancient_relic.desc":    "An artifact of a forgotten age.",
		"item.cactus_fruit":          "Cactus Fruit",
		"item.cactus_fruit.desc":     "Juicy flesh beneath the spines.",
		"item.snow_lichen":           "Snow Lichen",
		"item.snow_lichen.desc":      "Hardy growth scraped from cold stone.",
		"npc.wandering_trader":       "Wandering Trader",
		"npc.hermit":                 "Hermit",
		"enemy.plains_wolf":          "Plains Wolf",
		"enemy.forest_wolf":          "Forest Wolf",
		"enemy.giant_spider":         "Giant Spider",
		"enemy.bog_lurker":           "Bog Lurker",
		"enemy.dust_scorpion":        "Dust Scorpion",
		"enemy.ice_stalker":          "Ice Stalker",
		"enemy.cliff_harpy":          "Cliff Harpy",
		"enemy.cave_horror":          "Cave Horror",
		"enemy.magma_wraith":         "Magma Wraith",
		"structure.abandoned_camp":   "Abandoned Camp",
		"structure.hunters_stand":    "Hunter's Stand",
		"structure.sunken_shrine":    "Sunken Shrine",
		"structure.buried_caravan":   "Buried Caravan",
		"structure.collapsed_mine":   "Collapsed Mine",
		"structure.forgotten_altar":  "Forgotten Altar",
		"dialogue.trader.greeting":   "Looking to trade, stranger?",
		"dialogue.hermit.greeting":   "Few find their way out here.",
	}
}
