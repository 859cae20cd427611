package gamemap

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle with inclusive edges.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// RectAt returns the w×h rectangle whose top-left corner is (x, y).
func RectAt(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.X2 < r.X1 || r.Y2 < r.Y1 }

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X1 >= r.X1 && other.X2 <= r.X2 && other.Y1 >= r.Y1 && other.Y2 <= r.Y2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Expand returns r grown by n cells on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X1: r.X1 - n, Y1: r.Y1 - n, X2: r.X2 + n, Y2: r.Y2 + n}
}

// Clip returns the part of r that lies inside bounds. The result may be Empty.
func (r Rect) Clip(bounds Rect) Rect {
	return Rect{
		X1: max(r.X1, bounds.X1),
		Y1: max(r.Y1, bounds.Y1),
		X2: min(r.X2, bounds.X2),
		Y2: min(r.Y2, bounds.Y2),
	}
}

// TileGrid is the mutable tile array a layout is built on.
// Tiles are stored row-major; (x, y) addresses column x of row y.
type TileGrid struct {
	Width, Height int
	tiles         []TileType
}

// New creates a TileGrid with every cell set to TileUnset.
func New(width, height int) *TileGrid {
	return &TileGrid{Width: width, Height: height, tiles: make([]TileType, width*height)}
}

// Bounds returns the rectangle covering the whole grid.
func (g *TileGrid) Bounds() Rect {
	return Rect{X1: 0, Y1: 0, X2: g.Width - 1, Y2: g.Height - 1}
}

// Interior returns the grid minus its outermost ring of cells.
func (g *TileGrid) Interior() Rect {
	return g.Bounds().Expand(-1)
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (g *TileGrid) At(x, y int) TileType {
	return g.tiles[y*g.Width+x]
}

// Set replaces the tile at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, t TileType) {
	if g.InBounds(x, y) {
		g.tiles[y*g.Width+x] = t
	}
}

// Fill sets every in-bounds cell of r to t.
func (g *TileGrid) Fill(r Rect, t TileType) {
	r = r.Clip(g.Bounds())
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			g.tiles[y*g.Width+x] = t
		}
	}
}

// Outline sets the one-cell border of r to t.
func (g *TileGrid) Outline(r Rect, t TileType) {
	for x := r.X1; x <= r.X2; x++ {
		g.Set(x, r.Y1, t)
		g.Set(x, r.Y2, t)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		g.Set(r.X1, y, t)
		g.Set(r.X2, y, t)
	}
}

// IsOpen returns true when (x, y) is in bounds and an actor can stand there.
func (g *TileGrid) IsOpen(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.At(x, y).Walkable()
}

// Count returns the number of cells holding t.
func (g *TileGrid) Count(t TileType) int {
	return g.CountIn(g.Bounds(), t)
}

// CountIn returns the number of in-bounds cells of r holding t.
func (g *TileGrid) CountIn(r Rect, t TileType) int {
	r = r.Clip(g.Bounds())
	n := 0
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if g.tiles[y*g.Width+x] == t {
				n++
			}
		}
	}
	return n
}

// AnyIn reports whether any in-bounds cell of r satisfies pred.
func (g *TileGrid) AnyIn(r Rect, pred func(TileType) bool) bool {
	r = r.Clip(g.Bounds())
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if pred(g.tiles[y*g.Width+x]) {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the grid.
func (g *TileGrid) Clone() *TileGrid {
	c := &TileGrid{Width: g.Width, Height: g.Height, tiles: make([]TileType, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}
