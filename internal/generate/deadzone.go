package generate

import (
	"log/slog"
	"math/rand"

	"zonegen/internal/gamemap"
)

// DeadZoneConfig tunes how many obstacle regions a grid gets and how big
// they are.
type DeadZoneConfig struct {
	MinSize, MaxSize int // interior side length, inclusive
	Margin           int // minimum distance between the wall ring and the grid edge
	Buffer           int // clearance checked around each ring
	MinArea          int // grids smaller than this get no dead zones
	AreaPerZone      int
	MaxZones         int
}

// DefaultDeadZoneConfig returns the tuning used by instance builds.
func DefaultDeadZoneConfig() DeadZoneConfig {
	return DeadZoneConfig{
		MinSize:     3,
		MaxSize:     10,
		Margin:      3,
		Buffer:      2,
		MinArea:     400,
		AreaPerZone: 2500,
		MaxZones:    10,
	}
}

// DeadZoneCount returns how many regions to attempt for a grid of the given
// area: none below MinArea, otherwise one per AreaPerZone (rounded up),
// capped at MaxZones.
func DeadZoneCount(area int, cfg DeadZoneConfig) int {
	if area < cfg.MinArea || cfg.AreaPerZone <= 0 {
		return 0
	}
	n := (area + cfg.AreaPerZone - 1) / cfg.AreaPerZone
	return min(n, cfg.MaxZones)
}

// DeadZoneRegion is one accepted obstacle: a wall ring around a DeadZone
// interior.
type DeadZoneRegion struct {
	Ring     gamemap.Rect
	Interior gamemap.Rect
}

// Guard returns the ring grown by the validation buffer.
func (r DeadZoneRegion) Guard(buffer int) gamemap.Rect {
	return r.Ring.Expand(buffer)
}

// DeadZoneGenerator carves obstacle regions into a grid.
type DeadZoneGenerator struct {
	Config DeadZoneConfig
	Rand   *rand.Rand

	// Claimed holds structure bounds (prefabs) that regions must keep clear of.
	Claimed []gamemap.Rect

	// Logger receives a debug event per rejected attempt. Optional.
	Logger *slog.Logger

	accepted []DeadZoneRegion
}

// PlaceDeadZones makes n attempts on grid with a fresh generator.
func PlaceDeadZones(grid *gamemap.TileGrid, n int, claimed []gamemap.Rect, rng *rand.Rand, cfg DeadZoneConfig) ([]DeadZoneRegion, []gamemap.Collider) {
	gen := &DeadZoneGenerator{Config: cfg, Rand: rng, Claimed: claimed}
	return gen.Place(grid, n)
}

// Place makes n attempts and returns the regions that were carved along
// with the colliders for their wall rings. An attempt that does not fit or
// would crowd existing walls, dead zones or claimed structures is dropped,
// so fewer than n regions is a normal outcome.
func (d *DeadZoneGenerator) Place(grid *gamemap.TileGrid, n int) ([]DeadZoneRegion, []gamemap.Collider) {
	var (
		placed    []DeadZoneRegion
		colliders []gamemap.Collider
	)
	for range n {
		region, ok := d.candidate(grid)
		if !ok {
			d.skipped("no room inside margins", region)
			continue
		}
		if !d.valid(grid, region) {
			d.skipped("too close to existing structure", region)
			continue
		}
		colliders = append(colliders, carveDeadZone(grid, region)...)
		d.accepted = append(d.accepted, region)
		placed = append(placed, region)
	}
	return placed, colliders
}

func (d *DeadZoneGenerator) skipped(reason string, region DeadZoneRegion) {
	if d.Logger == nil {
		return
	}
	d.Logger.Debug("dead zone skipped", "reason", reason, "ring", region.Ring)
}

// candidate draws a side length and an anchor. It reports false when the
// drawn ring cannot fit inside the margins.
func (d *DeadZoneGenerator) candidate(grid *gamemap.TileGrid) (DeadZoneRegion, bool) {
	cfg := d.Config
	side := cfg.MinSize + d.Rand.Intn(max(1, cfg.MaxSize-cfg.MinSize+1))
	ring := side + 2

	spanX := grid.Width - 2*cfg.Margin - ring + 1
	spanY := grid.Height - 2*cfg.Margin - ring + 1
	if spanX <= 0 || spanY <= 0 {
		return DeadZoneRegion{}, false
	}
	x := cfg.Margin + d.Rand.Intn(spanX)
	y := cfg.Margin + d.Rand.Intn(spanY)

	r := gamemap.RectAt(x, y, ring, ring)
	return DeadZoneRegion{Ring: r, Interior: r.Expand(-1)}, true
}

func (d *DeadZoneGenerator) valid(grid *gamemap.TileGrid, region DeadZoneRegion) bool {
	if !grid.Bounds().ContainsRect(region.Ring) {
		return false
	}
	guard := region.Guard(d.Config.Buffer)
	if grid.AnyIn(guard, gamemap.TileType.IsStructural) {
		return false
	}
	for _, c := range d.Claimed {
		if guard.Intersects(c) {
			return false
		}
	}
	for _, prev := range d.accepted {
		if guard.Intersects(prev.Guard(d.Config.Buffer)) {
			return false
		}
	}
	return true
}

// carveDeadZone stamps the ring and interior and returns the ring colliders.
// Each side of the ring is merged on its own so the four runs never share
// a corner tile.
func carveDeadZone(grid *gamemap.TileGrid, region DeadZoneRegion) []gamemap.Collider {
	r := region.Ring
	grid.Outline(r, gamemap.TileWall)

	sides := []gamemap.Rect{
		{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y1},         // top
		{X1: r.X1, Y1: r.Y2, X2: r.X2, Y2: r.Y2},         // bottom
		{X1: r.X1, Y1: r.Y1 + 1, X2: r.X1, Y2: r.Y2 - 1}, // left
		{X1: r.X2, Y1: r.Y1 + 1, X2: r.X2, Y2: r.Y2 - 1}, // right
	}
	var colliders []gamemap.Collider
	for _, side := range sides {
		colliders = append(colliders, ExtractColliders(grid, side)...)
	}

	grid.Fill(region.Interior, gamemap.TileDeadZone)
	return colliders
}
