package generate

import (
	"log/slog"
	"math/rand"

	"zonegen/internal/gamemap"
)

// scatter hands out random free cells to markers. A cell is free when it is
// open terrain, outside every prefab, and carries no marker yet. Each cell
// is handed out at most once, so no two markers ever share a tile.
type scatter struct {
	free    []gamemap.Point
	markers *gamemap.MarkerTable
	rng     *rand.Rand
	logger  *slog.Logger
}

func newScatter(grid *gamemap.TileGrid, claimed []gamemap.Rect, markers *gamemap.MarkerTable, rng *rand.Rand, logger *slog.Logger) *scatter {
	occupied := markers.Occupied()
	s := &scatter{markers: markers, rng: rng, logger: logger}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := gamemap.Point{X: x, Y: y}
			if !grid.IsOpen(x, y) || occupied[p] || inAny(claimed, x, y) {
				continue
			}
			s.free = append(s.free, p)
		}
	}
	return s
}

// place tags up to n free cells with kind and returns how many it placed.
func (s *scatter) place(kind gamemap.MarkerType, n int) int {
	placed := 0
	for ; placed < n && len(s.free) > 0; placed++ {
		i := s.rng.Intn(len(s.free))
		p := s.free[i]
		last := len(s.free) - 1
		s.free[i] = s.free[last]
		s.free = s.free[:last]
		s.markers.Add(kind, p)
	}
	if placed < n {
		s.logger.Warn("marker scatter exhausted", "kind", kind.String(), "requested", n, "placed", placed)
	}
	return placed
}

func inAny(rects []gamemap.Rect, x, y int) bool {
	for _, r := range rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}
