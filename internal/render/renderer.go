package render

import (
	"zonegen/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved below the map.
const hudRows = 3

// Renderer draws a zone layout onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(0, h-hudRows), theme.CellWidth),
		theme:  theme,
	}
}

// Camera exposes the viewport for panning.
func (r *Renderer) Camera() *Camera { return r.camera }

// Theme returns the active theme.
func (r *Renderer) Theme() Theme { return r.theme }

// SetTheme swaps glyph sets, keeping the same world tile in the view's corner.
func (r *Renderer) SetTheme(th Theme) {
	r.theme = th
	r.camera.CellWidth = th.CellWidth
}

// Resize re-reads the screen size after a resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-hudRows)
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawLayout clears the screen and draws terrain with markers on top. The
// caller shows the frame, usually after DrawHUD.
func (r *Renderer) DrawLayout(l *gamemap.MapLayout) {
	r.screen.Clear()
	r.camera.Clamp(l.Width(), l.Height())
	r.drawTiles(l)
	r.drawMarkers(l)
}

func (r *Renderer) drawTiles(l *gamemap.MapLayout) {
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			g := r.theme.Tile(l.Tile(x, y))
			r.putGlyph(sx, sy, g.Text, g.Style)
		}
	}
}

// drawMarkers draws markers in declaration order so later kinds win if a
// theme ever maps two kinds onto one cell.
func (r *Renderer) drawMarkers(l *gamemap.MapLayout) {
	for _, kind := range gamemap.MarkerTypes {
		g, ok := r.theme.Marker(kind)
		if !ok {
			continue
		}
		for _, p := range l.MarkerPositions(kind) {
			sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, g.Text, g.Style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
