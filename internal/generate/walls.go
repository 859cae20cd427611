package generate

import "zonegen/internal/gamemap"

// Orientation is the axis a WallSection runs along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// WallSection is a maximal run of wall tiles along one axis, found while
// scanning. It only exists to produce one collider.
type WallSection struct {
	X, Y   int // first tile of the run
	Dir    Orientation
	Length int
}

// Rect returns the tiles covered by the section.
func (s WallSection) Rect() gamemap.Rect {
	if s.Dir == Vertical {
		return gamemap.RectAt(s.X, s.Y, 1, s.Length)
	}
	return gamemap.RectAt(s.X, s.Y, s.Length, 1)
}

// Collider returns the single collider covering the section.
func (s WallSection) Collider() gamemap.Collider {
	return gamemap.ColliderFor(s.Rect())
}

// ExtractWallSections merges the wall tiles of grid inside region into as
// few runs as the greedy scan finds. Tiles are scanned row-major; each
// unvisited wall first grows right, and only grows down if no wall lies to
// its right. Every wall tile in region ends up in exactly one section.
func ExtractWallSections(grid *gamemap.TileGrid, region gamemap.Rect) []WallSection {
	region = region.Clip(grid.Bounds())
	if region.Empty() {
		return nil
	}
	w := region.Width()
	visited := make([]bool, w*region.Height())
	seen := func(x, y int) bool { return visited[(y-region.Y1)*w+(x-region.X1)] }
	mark := func(x, y int) { visited[(y-region.Y1)*w+(x-region.X1)] = true }
	free := func(x, y int) bool {
		return region.Contains(x, y) && grid.At(x, y) == gamemap.TileWall && !seen(x, y)
	}

	var sections []WallSection
	for y := region.Y1; y <= region.Y2; y++ {
		for x := region.X1; x <= region.X2; x++ {
			if !free(x, y) {
				continue
			}
			mark(x, y)
			sec := WallSection{X: x, Y: y, Dir: Horizontal, Length: 1}
			for nx := x + 1; free(nx, y); nx++ {
				mark(nx, y)
				sec.Length++
			}
			if sec.Length == 1 {
				for ny := y + 1; free(x, ny); ny++ {
					mark(x, ny)
					sec.Length++
				}
				if sec.Length > 1 {
					sec.Dir = Vertical
				}
			}
			sections = append(sections, sec)
		}
	}
	return sections
}

// ExtractColliders returns one collider per wall section in region.
func ExtractColliders(grid *gamemap.TileGrid, region gamemap.Rect) []gamemap.Collider {
	sections := ExtractWallSections(grid, region)
	out := make([]gamemap.Collider, len(sections))
	for i, s := range sections {
		out[i] = s.Collider()
	}
	return out
}
