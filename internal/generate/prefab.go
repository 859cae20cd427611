package generate

import (
	"math/rand"
	"sort"

	"zonegen/internal/gamemap"
)

// Prefab stamps a self-contained structure into a grid.
//
// Build either commits the whole structure and returns the rectangle it
// used, or returns false without touching the grid. Markers derives the
// structure's points of interest from the rectangle Build returned, so it
// must only be called after a successful Build.
type Prefab interface {
	Name() string
	Build(grid *gamemap.TileGrid, rng *rand.Rand, claimed []gamemap.Rect) (gamemap.Rect, bool)
	Markers(bounds gamemap.Rect) *gamemap.MarkerTable
}

var prefabRegistry = map[string]func() Prefab{
	"hub":          func() Prefab { return Hub{} },
	"temple":       func() Prefab { return Temple{} },
	"empty_square": func() Prefab { return EmptySquare{} },
	"catacombs":    func() Prefab { return &Catacombs{} },
}

// NewPrefab returns the prefab registered under id.
func NewPrefab(id string) (Prefab, error) {
	mk, ok := prefabRegistry[id]
	if !ok {
		return nil, &ConfigurationError{Kind: "prefab", Key: id}
	}
	return mk(), nil
}

// PrefabIDs lists the registered prefab ids in sorted order.
func PrefabIDs() []string {
	ids := make([]string, 0, len(prefabRegistry))
	for id := range prefabRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// findSite returns the first anchor rectangle of size w×h that is free.
// Candidates are tried in a fixed order: grid center, then the centers of
// the NW, NE, SW and SE quadrants.
func findSite(grid *gamemap.TileGrid, w, h int, claimed []gamemap.Rect) (gamemap.Rect, bool) {
	qw, qh := grid.Width/4, grid.Height/4
	centers := []gamemap.Point{
		{X: grid.Width / 2, Y: grid.Height / 2},
		{X: qw, Y: qh},
		{X: grid.Width - 1 - qw, Y: qh},
		{X: qw, Y: grid.Height - 1 - qh},
		{X: grid.Width - 1 - qw, Y: grid.Height - 1 - qh},
	}
	for _, c := range centers {
		r := gamemap.RectAt(c.X-w/2, c.Y-h/2, w, h)
		if siteFree(grid, r, claimed) {
			return r, true
		}
	}
	return gamemap.Rect{}, false
}

// siteFree reports whether r plus a one-tile apron sits inside the grid
// interior, away from walls, dead zones and other structures.
func siteFree(grid *gamemap.TileGrid, r gamemap.Rect, claimed []gamemap.Rect) bool {
	apron := r.Expand(1)
	if !grid.Interior().ContainsRect(apron) {
		return false
	}
	if grid.AnyIn(apron, func(t gamemap.TileType) bool { return !t.IsFloor() }) {
		return false
	}
	for _, c := range claimed {
		if apron.Intersects(c) {
			return false
		}
	}
	return true
}
