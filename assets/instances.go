package assets

import (
	"zonegen/internal/gamemap"
	"zonegen/internal/generate"
)

// off is shared by archetypes that opt out of dead zones.
var off = false

func between(lo, hi int) generate.IntRange { return generate.IntRange{Min: lo, Max: hi} }

// Instances is the built-in table of wilderness zones picked by weight.
var Instances = generate.InstanceTable{
	"meadow": {
		Weight:  40,
		Width:   between(50, 80),
		Height:  between(40, 60),
		Enemies: between(4, 10),
		Chests:  between(1, 3),
		Exits:   2,
		Prefabs: []string{"empty_square"},
		Floor:   gamemap.TileGrass,
	},
	"ruins": {
		Weight:  25,
		Width:   between(60, 90),
		Height:  between(50, 70),
		Enemies: between(6, 14),
		Chests:  between(2, 4),
		Exits:   1,
		Prefabs: []string{"temple", "empty_square"},
		Floor:   gamemap.TileCobblestone,
	},
	"dunes": {
		Weight:  25,
		Width:   between(70, 120),
		Height:  between(40, 60),
		Enemies: between(3, 8),
		Chests:  between(0, 2),
		Exits:   2,
		Floor:   gamemap.TileSand,
	},
	"undercroft": {
		Weight:  10,
		Width:   between(60, 80),
		Height:  between(45, 60),
		Enemies: between(8, 16),
		Chests:  between(1, 3),
		Exits:   1,
		Prefabs: []string{"catacombs"},
		Floor:   gamemap.TileGround,
	},
}

// HubName is the archetype every session starts in.
const HubName = "hub"

// Hubs holds archetypes that are only ever built by name.
var Hubs = generate.InstanceTable{
	HubName: {
		Weight:    1,
		Width:     between(61, 61),
		Height:    between(41, 41),
		Exits:     4,
		Prefabs:   []string{"hub"},
		Floor:     gamemap.TileCobblestone,
		DeadZones: &off,
	},
}
