package generate

import (
	"math/rand"

	"zonegen/internal/gamemap"
)

// Hub is the walled town square NPCs gather in. It has a doorway in the
// middle of each side.
type Hub struct{}

const hubW, hubH = 21, 15

func (Hub) Name() string { return "hub" }

func (Hub) Build(grid *gamemap.TileGrid, _ *rand.Rand, claimed []gamemap.Rect) (gamemap.Rect, bool) {
	r, ok := findSite(grid, hubW, hubH, claimed)
	if !ok {
		return gamemap.Rect{}, false
	}
	carveBuilding(grid, r, gamemap.TileCobblestone)
	cx, cy := r.Center()
	grid.Set(cx, r.Y1, gamemap.TileCobblestone) // north door
	grid.Set(cx, r.Y2, gamemap.TileCobblestone) // south door
	grid.Set(r.X1, cy, gamemap.TileCobblestone) // west door
	grid.Set(r.X2, cy, gamemap.TileCobblestone) // east door
	return r, true
}

func (Hub) Markers(bounds gamemap.Rect) *gamemap.MarkerTable {
	m := gamemap.NewMarkerTable()
	cx, cy := bounds.Center()
	m.Add(gamemap.MarkerNPCSpawn, gamemap.Point{X: cx, Y: cy})
	m.Add(gamemap.MarkerPlayerSpawn, gamemap.Point{X: cx, Y: cy + 3})
	return m
}

// Temple is a walled maze with a treasure at its heart and a single
// entrance on the south wall.
type Temple struct{}

// templeSize must be 4k+3 so the center lands on a maze cell.
const templeSize = 15

func (Temple) Name() string { return "temple" }

func (Temple) Build(grid *gamemap.TileGrid, rng *rand.Rand, claimed []gamemap.Rect) (gamemap.Rect, bool) {
	r, ok := findSite(grid, templeSize, templeSize, claimed)
	if !ok {
		return gamemap.Rect{}, false
	}
	grid.Fill(r, gamemap.TileWall)
	carveMaze(grid, r, rng)
	cx, _ := r.Center()
	grid.Set(cx, r.Y2, gamemap.TileCobblestone) // entrance
	return r, true
}

func (Temple) Markers(bounds gamemap.Rect) *gamemap.MarkerTable {
	m := gamemap.NewMarkerTable()
	cx, cy := bounds.Center()
	m.Add(gamemap.MarkerTreasure, gamemap.Point{X: cx, Y: cy})
	return m
}

// carveMaze digs a perfect maze into r with a randomized depth-first walk.
// Cells sit at odd offsets from r's corner; the walls between them are
// knocked out as the walk advances.
func carveMaze(grid *gamemap.TileGrid, r gamemap.Rect, rng *rand.Rand) {
	cols, rows := (r.Width()-1)/2, (r.Height()-1)/2
	cellXY := func(cx, cy int) (int, int) { return r.X1 + 1 + 2*cx, r.Y1 + 1 + 2*cy }
	visited := make([]bool, cols*rows)
	dirs := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	type cell struct{ x, y int }
	stack := []cell{{cols / 2, rows - 1}}
	visited[(rows-1)*cols+cols/2] = true
	x, y := cellXY(cols/2, rows-1)
	grid.Set(x, y, gamemap.TileCobblestone)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		moved := false
		for _, i := range rng.Perm(4) {
			nx, ny := cur.x+dirs[i][0], cur.y+dirs[i][1]
			if nx < 0 || nx >= cols || ny < 0 || ny >= rows || visited[ny*cols+nx] {
				continue
			}
			visited[ny*cols+nx] = true
			ax, ay := cellXY(cur.x, cur.y)
			bx, by := cellXY(nx, ny)
			grid.Set((ax+bx)/2, (ay+by)/2, gamemap.TileCobblestone)
			grid.Set(bx, by, gamemap.TileCobblestone)
			stack = append(stack, cell{nx, ny})
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}
}

// EmptySquare is an open cobblestone plaza with no walls, used as a safe
// arrival point.
type EmptySquare struct{}

const squareSize = 9

func (EmptySquare) Name() string { return "empty_square" }

func (EmptySquare) Build(grid *gamemap.TileGrid, _ *rand.Rand, claimed []gamemap.Rect) (gamemap.Rect, bool) {
	r, ok := findSite(grid, squareSize, squareSize, claimed)
	if !ok {
		return gamemap.Rect{}, false
	}
	grid.Fill(r, gamemap.TileCobblestone)
	return r, true
}

func (EmptySquare) Markers(bounds gamemap.Rect) *gamemap.MarkerTable {
	m := gamemap.NewMarkerTable()
	cx, cy := bounds.Center()
	m.Add(gamemap.MarkerPlayerSpawn, gamemap.Point{X: cx, Y: cy})
	return m
}

// carveBuilding walls the border of r and fills its inside with floor.
func carveBuilding(grid *gamemap.TileGrid, r gamemap.Rect, floor gamemap.TileType) {
	grid.Fill(r, floor)
	grid.Outline(r, gamemap.TileWall)
}
