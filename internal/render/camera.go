package render

// Camera translates between world coordinates and screen coordinates.
// Each world tile is CellWidth terminal columns wide: 2 for emoji, 1 for ASCII.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	CellWidth  int
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH, cellW int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, CellWidth: cellW}
	c.Center(cx, cy)
	return c
}

func (c *Camera) cell() int {
	if c.CellWidth <= 0 {
		return 1
	}
	return c.CellWidth
}

// Columns returns how many world tiles fit across the view.
func (c *Camera) Columns() int { return c.ViewWidth / c.cell() }

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.Columns()/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Pan moves the view by (dx, dy) world tiles.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// Clamp keeps the view over a w×h map. A map narrower or shorter than the
// view is pinned to the top-left corner.
func (c *Camera) Clamp(w, h int) {
	c.OffsetX = max(0, min(c.OffsetX, w-c.Columns()))
	c.OffsetY = max(0, min(c.OffsetY, h-c.ViewHeight))
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.cell()
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+c.cell() <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/c.cell() + c.OffsetX, sy + c.OffsetY
}
