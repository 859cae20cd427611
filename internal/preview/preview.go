// Package preview is an interactive terminal viewer for generated zones.
package preview

import (
	"fmt"
	"log/slog"
	"math/rand"

	"zonegen/internal/gamemap"
	"zonegen/internal/generate"
	"zonegen/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Generator builds the layout for a seed and names the archetype it used.
type Generator func(seed int64) (*gamemap.MapLayout, string, error)

const hint = "arrows/hjkl pan  HJKL pan fast  r next seed  R previous  t theme  c center  q quit"

// panFast is how many tiles a shifted pan key moves.
const panFast = 10

// Viewer shows one layout at a time and regenerates on request.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	gen      Generator
	logger   *slog.Logger

	seed   int64
	name   string
	layout *gamemap.MapLayout
	err    error
	theme  int
}

// New creates a viewer that starts at seed. The screen must already be
// initialized; Run does not finalize it.
func New(screen tcell.Screen, gen Generator, seed int64, theme render.Theme, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	v := &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen, theme),
		gen:      gen,
		logger:   logger,
		seed:     seed,
	}
	for i, th := range render.Themes {
		if th.Name == theme.Name {
			v.theme = i
		}
	}
	return v
}

// Seed returns the seed of the layout on screen.
func (v *Viewer) Seed() int64 { return v.seed }

// Layout returns the layout on screen, or nil if none was ever built.
func (v *Viewer) Layout() *gamemap.MapLayout { return v.layout }

// Run generates the first layout and handles input until the user quits or
// the screen is closed. It returns the error from the first generation, if
// any; later failures are shown on the status line and the previous layout
// stays up.
func (v *Viewer) Run() error {
	if err := v.regenerate(v.seed); err != nil {
		return err
	}
	for {
		v.draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one key press and reports whether the viewer should exit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	cam := v.renderer.Camera()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		cam.Pan(0, -1)
	case tcell.KeyDown:
		cam.Pan(0, 1)
	case tcell.KeyLeft:
		cam.Pan(-1, 0)
	case tcell.KeyRight:
		cam.Pan(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'k':
			cam.Pan(0, -1)
		case 'j':
			cam.Pan(0, 1)
		case 'h':
			cam.Pan(-1, 0)
		case 'l':
			cam.Pan(1, 0)
		case 'K':
			cam.Pan(0, -panFast)
		case 'J':
			cam.Pan(0, panFast)
		case 'H':
			cam.Pan(-panFast, 0)
		case 'L':
			cam.Pan(panFast, 0)
		case 'r':
			_ = v.regenerate(v.seed + 1)
		case 'R':
			_ = v.regenerate(v.seed - 1)
		case 't', 'T':
			v.theme = (v.theme + 1) % len(render.Themes)
			v.renderer.SetTheme(render.Themes[v.theme])
		case 'c', 'C':
			v.centerOnSpawn()
		}
	}
	return false
}

// regenerate builds the layout for seed. On failure the current layout and
// seed are kept and the error is shown on the status line.
func (v *Viewer) regenerate(seed int64) error {
	l, name, err := v.gen(seed)
	if err != nil {
		v.err = fmt.Errorf("seed %d: %w", seed, err)
		v.logger.Error("layout generation failed", "seed", seed, "error", err)
		return v.err
	}
	v.seed, v.name, v.layout, v.err = seed, name, l, nil
	v.logger.Info("layout generated", "seed", seed, "instance", name,
		"width", l.Width(), "height", l.Height())
	v.centerOnSpawn()
	return nil
}

// centerOnSpawn points the camera at the player spawn, or the middle of the
// map when there is none.
func (v *Viewer) centerOnSpawn() {
	if v.layout == nil {
		return
	}
	x, y := v.layout.Width()/2, v.layout.Height()/2
	if spawns := v.layout.MarkerPositions(gamemap.MarkerPlayerSpawn); len(spawns) > 0 {
		x, y = spawns[0].X, spawns[0].Y
	}
	v.renderer.CenterOn(x, y)
}

func (v *Viewer) draw() {
	if v.layout == nil {
		return
	}
	v.renderer.DrawLayout(v.layout)
	status := render.StatusLine(v.name, v.seed, v.layout)
	if v.err != nil {
		status = "error: " + v.err.Error()
	}
	v.renderer.DrawHUD(status, hint)
}

// TableGenerator returns a Generator over table. With a non-empty name every
// seed builds that archetype; otherwise one is picked by weight per seed.
func TableGenerator(table generate.InstanceTable, name string, logger *slog.Logger) Generator {
	return func(seed int64) (*gamemap.MapLayout, string, error) {
		rng := rand.New(rand.NewSource(seed))
		var (
			l   *gamemap.MapLayout
			p   generate.InstanceParams
			err error
		)
		if name != "" {
			l, p, err = generate.GenerateNamed(table, name, rng, logger)
		} else {
			l, p, err = generate.Generate(table, rng, logger)
		}
		return l, p.Name, err
	}
}
