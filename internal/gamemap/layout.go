package gamemap

import "encoding/json"

// Collider is an axis-aligned physics rectangle in tile units.
// Tile (x, y) spans [x, x+1) × [y, y+1), so a single-tile collider at
// (3, 4) has its center at (3.5, 4.5).
type Collider struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
}

// Footprint returns the tiles covered by c.
func (c Collider) Footprint() Rect {
	x := int(c.CenterX - float64(c.Width)/2)
	y := int(c.CenterY - float64(c.Height)/2)
	return RectAt(x, y, c.Width, c.Height)
}

// ColliderFor returns the collider covering r exactly.
func ColliderFor(r Rect) Collider {
	return Collider{
		CenterX: float64(r.X1) + float64(r.Width())/2,
		CenterY: float64(r.Y1) + float64(r.Height())/2,
		Width:   r.Width(),
		Height:  r.Height(),
	}
}

// MapLayout is the finished, read-only result of a build.
// Accessors return copies so a published layout can be shared freely.
type MapLayout struct {
	grid      *TileGrid
	markers   *MarkerTable
	colliders []Collider
}

// NewMapLayout freezes the given parts. The grid and marker table are
// copied so later writes by the caller cannot reach the layout.
func NewMapLayout(grid *TileGrid, markers *MarkerTable, colliders []Collider) *MapLayout {
	if markers == nil {
		markers = NewMarkerTable()
	}
	cs := make([]Collider, len(colliders))
	copy(cs, colliders)
	return &MapLayout{grid: grid.Clone(), markers: markers.Clone(), colliders: cs}
}

func (l *MapLayout) Width() int  { return l.grid.Width }
func (l *MapLayout) Height() int { return l.grid.Height }

// Tile returns the tile at (x, y). Panics if out of bounds.
func (l *MapLayout) Tile(x, y int) TileType { return l.grid.At(x, y) }

// InBounds reports whether (x, y) lies inside the layout.
func (l *MapLayout) InBounds(x, y int) bool { return l.grid.InBounds(x, y) }

// Grid returns a copy of the tile grid.
func (l *MapLayout) Grid() *TileGrid { return l.grid.Clone() }

// Markers returns a copy of the marker table.
func (l *MapLayout) Markers() *MarkerTable { return l.markers.Clone() }

// MarkerPositions returns the cells tagged with kind.
func (l *MapLayout) MarkerPositions(kind MarkerType) []Point {
	return l.markers.Positions(kind)
}

// Colliders returns a copy of the wall colliders.
func (l *MapLayout) Colliders() []Collider {
	out := make([]Collider, len(l.colliders))
	copy(out, l.colliders)
	return out
}

type layoutJSON struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Tiles     [][]TileType `json:"tiles"`
	Markers   *MarkerTable `json:"markers"`
	Colliders []Collider   `json:"colliders"`
}

// MarshalJSON encodes the layout with tile rows top to bottom.
// Output is stable for equal layouts.
func (l *MapLayout) MarshalJSON() ([]byte, error) {
	rows := make([][]TileType, l.grid.Height)
	for y := range rows {
		rows[y] = make([]TileType, l.grid.Width)
		for x := range rows[y] {
			rows[y][x] = l.grid.At(x, y)
		}
	}
	return json.Marshal(layoutJSON{
		Width:     l.grid.Width,
		Height:    l.grid.Height,
		Tiles:     rows,
		Markers:   l.markers,
		Colliders: l.colliders,
	})
}
