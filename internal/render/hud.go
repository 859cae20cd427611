package render

import (
	"fmt"
	"strings"

	"zonegen/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLine summarizes a layout for the HUD.
func StatusLine(name string, seed int64, l *gamemap.MapLayout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] seed %d  %dx%d  colliders %d", name, seed, l.Width(), l.Height(), len(l.Colliders()))
	for _, kind := range gamemap.MarkerTypes {
		if n := len(l.MarkerPositions(kind)); n > 0 {
			fmt.Fprintf(&b, "  %s %d", kind, n)
		}
	}
	return b.String()
}

// DrawHUD renders a separator, the status line and a hint line at the
// bottom of the screen, then shows the frame.
func (r *Renderer) DrawHUD(status, hint string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, hint, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
