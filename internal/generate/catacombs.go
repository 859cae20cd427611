package generate

import (
	"math/rand"

	"zonegen/internal/gamemap"
)

// Catacombs is a block of rooms cut out of solid rock by binary space
// partitioning and joined by corridors. A tunnel runs from the first room
// out through the south wall.
//
// Unlike the other prefabs its markers depend on the rooms the last Build
// carved, so each value should be used for a single placement.
type Catacombs struct {
	Corridors CorridorStyle

	rooms []gamemap.Rect
}

const catacombsW, catacombsH = 31, 21

// bspConfig bounds how a catacomb block is partitioned.
type bspConfig struct {
	MinLeafSize int
	MaxLeafSize int
	MinRoomSize int
	RoomPadding int
}

var catacombsBSP = bspConfig{MinLeafSize: 6, MaxLeafSize: 12, MinRoomSize: 3, RoomPadding: 1}

func (*Catacombs) Name() string { return "catacombs" }

func (c *Catacombs) Build(grid *gamemap.TileGrid, rng *rand.Rand, claimed []gamemap.Rect) (gamemap.Rect, bool) {
	r, ok := findSite(grid, catacombsW, catacombsH, claimed)
	if !ok {
		return gamemap.Rect{}, false
	}
	grid.Fill(r, gamemap.TileWall)

	root := partition(r.Expand(-1), catacombsBSP, rng)
	c.rooms = c.rooms[:0]
	root.createRooms(grid, catacombsBSP, rng, &c.rooms)
	root.connectChildren(grid, c.Corridors, rng)

	if len(c.rooms) > 0 {
		x, y := c.rooms[0].Center()
		carveV(grid, y, r.Y2, x, gamemap.TileGround)
	}
	return r, true
}

// Markers puts a chest in the last room and an enemy spawn in every room
// between the first and the last. Rooms come from the latest Build, which
// carves them inside bounds.
func (c *Catacombs) Markers(bounds gamemap.Rect) *gamemap.MarkerTable {
	m := gamemap.NewMarkerTable()
	if len(c.rooms) < 2 {
		return m
	}
	for i, room := range c.rooms[1:] {
		x, y := room.Center()
		kind := gamemap.MarkerEnemySpawn
		if i == len(c.rooms)-2 {
			kind = gamemap.MarkerChest
		}
		m.Add(kind, gamemap.Point{X: x, Y: y})
	}
	return m
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

// partition splits area until every leaf is at most MaxLeafSize on a side,
// with an occasional extra split below that.
func partition(area gamemap.Rect, cfg bspConfig, rng *rand.Rand) *bspLeaf {
	root := &bspLeaf{X: area.X1, Y: area.Y1, W: area.Width(), H: area.Height()}

	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				rng.Float64() > 0.25 {
				if leaf.split(cfg, rng) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}
	return root
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg bspConfig, rng *rand.Rand) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Horizontal when taller, vertical when wider.
	splitH := rng.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + rng.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves one room inside each terminal leaf, padded away from
// the leaf edges, and appends it to rooms in tree order.
func (l *bspLeaf) createRooms(grid *gamemap.TileGrid, cfg bspConfig, rng *rand.Rand, rooms *[]gamemap.Rect) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(grid, cfg, rng, rooms)
		}
		if l.right != nil {
			l.right.createRooms(grid, cfg, rng, rooms)
		}
		return
	}
	pad := cfg.RoomPadding
	availW := max(l.W-2*pad, cfg.MinRoomSize)
	availH := max(l.H-2*pad, cfg.MinRoomSize)

	rw := cfg.MinRoomSize + rng.Intn(max(1, availW-cfg.MinRoomSize+1))
	rh := cfg.MinRoomSize + rng.Intn(max(1, availH-cfg.MinRoomSize+1))
	rw = min(rw, l.W-2*pad)
	rh = min(rh, l.H-2*pad)
	if rw < 3 || rh < 3 {
		return
	}

	rx := l.X + pad + rng.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + rng.Intn(max(1, l.H-rh-2*pad+1))

	room := gamemap.RectAt(rx, ry, rw, rh)
	l.room = &room
	grid.Fill(room, gamemap.TileGround)
	*rooms = append(*rooms, room)
}

// getRoom returns a room from this leaf's subtree, preferring the left side.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.getRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.getRoom()
	}
	return nil
}

// connectChildren carves corridors between the two children of every split leaf.
func (l *bspLeaf) connectChildren(grid *gamemap.TileGrid, style CorridorStyle, rng *rand.Rand) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(grid, style, rng)
	l.right.connectChildren(grid, style, rng)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lCX, lCY := lRoom.Center()
	rCX, rCY := rRoom.Center()
	carveCorridor(grid, lCX, lCY, rCX, rCY, style, rng)
}
