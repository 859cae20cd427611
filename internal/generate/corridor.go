package generate

import (
	"math/rand"

	"zonegen/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// carveCorridor digs a ground tunnel between (x1,y1) and (x2,y2).
func carveCorridor(grid *gamemap.TileGrid, x1, y1, x2, y2 int, style CorridorStyle, rng *rand.Rand) {
	const floor = gamemap.TileGround
	switch style {
	case CorridorZShaped:
		carveZShaped(grid, x1, y1, x2, y2, floor)
	case CorridorStraight:
		carveH(grid, x1, x2, y1, floor)
		carveV(grid, y1, y2, x2, floor)
	default: // LShaped
		if rng.Intn(2) == 0 {
			carveH(grid, x1, x2, y1, floor)
			carveV(grid, y1, y2, x2, floor)
		} else {
			carveV(grid, y1, y2, x1, floor)
			carveH(grid, x1, x2, y2, floor)
		}
	}
}

func carveH(grid *gamemap.TileGrid, x1, x2, y int, t gamemap.TileType) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		grid.Set(x, y, t)
	}
}

func carveV(grid *gamemap.TileGrid, y1, y2, x int, t gamemap.TileType) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		grid.Set(x, y, t)
	}
}

func carveZShaped(grid *gamemap.TileGrid, x1, y1, x2, y2 int, t gamemap.TileType) {
	midY := (y1 + y2) / 2
	carveV(grid, y1, midY, x1, t)
	carveH(grid, x1, x2, midY, t)
	carveV(grid, midY, y2, x2, t)
}
