package generate

import (
	"math/rand"
	"testing"

	"zonegen/internal/gamemap"
)

// walledGrid returns a floor grid with its perimeter ring and colliders.
func walledGrid(w, h int) (*gamemap.TileGrid, []gamemap.Collider) {
	g := floorGrid(w, h)
	g.Outline(g.Bounds(), gamemap.TileWall)
	return g, ExtractColliders(g, g.Bounds())
}

func TestDeadZoneCount(t *testing.T) {
	cfg := DefaultDeadZoneConfig()
	cases := []struct {
		area int
		want int
	}{
		{0, 0},
		{399, 0},
		{400, 1},
		{2500, 1},
		{2501, 2},
		{10000, 4},
		{25000, 10},
		{1_000_000, 10},
	}
	for _, tc := range cases {
		if got := DeadZoneCount(tc.area, cfg); got != tc.want {
			t.Errorf("DeadZoneCount(%d) = %d; want %d", tc.area, got, tc.want)
		}
	}
}

func TestDeadZonesStayInsideSmallGrid(t *testing.T) {
	cfg := DefaultDeadZoneConfig()
	cfg.MinSize, cfg.MaxSize, cfg.Margin = 3, 10, 4

	for seed := int64(0); seed < 200; seed++ {
		g, perimeter := walledGrid(20, 20)
		gen := &DeadZoneGenerator{Config: cfg, Rand: rand.New(rand.NewSource(seed))}
		regions, cs := gen.Place(g, 3)

		for _, r := range regions {
			if r.Ring.X1 < cfg.Margin || r.Ring.Y1 < cfg.Margin ||
				r.Ring.X2 > 20-1-cfg.Margin || r.Ring.Y2 > 20-1-cfg.Margin {
				t.Fatalf("seed=%d: ring %+v breaks the %d-tile margin", seed, r.Ring, cfg.Margin)
			}
			side := r.Interior.Width()
			if side < cfg.MinSize || side > cfg.MaxSize || r.Interior.Height() != side {
				t.Errorf("seed=%d: interior %+v is not a square within [3,10]", seed, r.Interior)
			}
			if n := g.CountIn(r.Interior, gamemap.TileDeadZone); n != side*side {
				t.Errorf("seed=%d: interior holds %d dead-zone tiles; want %d", seed, n, side*side)
			}
		}
		checkCoverage(t, g, append(perimeter, cs...))
	}
}

func TestDeadZoneRingColliders(t *testing.T) {
	g, _ := walledGrid(40, 40)
	gen := &DeadZoneGenerator{Config: DefaultDeadZoneConfig(), Rand: rand.New(rand.NewSource(3))}
	regions, cs := gen.Place(g, 1)
	if len(regions) != 1 {
		t.Fatalf("expected the only attempt on an empty 40x40 grid to succeed, got %d", len(regions))
	}
	if len(cs) != 4 {
		t.Errorf("one ring should give 4 colliders, got %d", len(cs))
	}
	for _, c := range cs {
		if !regions[0].Ring.ContainsRect(c.Footprint()) {
			t.Errorf("collider %+v outside ring %+v", c, regions[0].Ring)
		}
	}
}

func TestDeadZonesDoNotCrowdEachOther(t *testing.T) {
	cfg := DefaultDeadZoneConfig()
	for seed := int64(0); seed < 30; seed++ {
		for _, size := range []int{60, 100, 200} {
			g, perimeter := walledGrid(size, size)
			n := DeadZoneCount(size*size, cfg)
			gen := &DeadZoneGenerator{Config: cfg, Rand: rand.New(rand.NewSource(seed))}
			regions, cs := gen.Place(g, n)

			if len(regions) > min(10, (size*size+2499)/2500) {
				t.Errorf("seed=%d size=%d: %d regions exceeds bound", seed, size, len(regions))
			}
			for i := range regions {
				for j := i + 1; j < len(regions); j++ {
					if regions[i].Guard(cfg.Buffer).Intersects(regions[j].Guard(cfg.Buffer)) {
						t.Errorf("seed=%d size=%d: regions %d and %d overlap with buffer", seed, size, i, j)
					}
				}
			}
			checkCoverage(t, g, append(perimeter, cs...))
		}
	}
}

func TestDeadZonesAvoidClaimedStructures(t *testing.T) {
	g, _ := walledGrid(30, 30)
	before := g.Clone()
	gen := &DeadZoneGenerator{
		Config:  DefaultDeadZoneConfig(),
		Rand:    rand.New(rand.NewSource(1)),
		Claimed: []gamemap.Rect{g.Interior()},
	}
	regions, cs := gen.Place(g, 10)
	if len(regions) != 0 || len(cs) != 0 {
		t.Errorf("claimed interior should reject every region, got %d", len(regions))
	}
	if !sameGrid(g, before) {
		t.Error("rejected attempts must not touch the grid")
	}
}

func TestDeadZoneTooLargeForGridIsSkipped(t *testing.T) {
	g, _ := walledGrid(8, 8)
	cfg := DefaultDeadZoneConfig()
	cfg.MinSize, cfg.MaxSize = 6, 6
	gen := &DeadZoneGenerator{Config: cfg, Rand: rand.New(rand.NewSource(1))}
	regions, _ := gen.Place(g, 3)
	if len(regions) != 0 {
		t.Errorf("an 8-wide ring cannot fit inside margins of an 8x8 grid, got %d regions", len(regions))
	}
}

func TestPlaceDeadZonesMatchesGenerator(t *testing.T) {
	a, _ := walledGrid(80, 80)
	b, _ := walledGrid(80, 80)
	cfg := DefaultDeadZoneConfig()
	ra, _ := PlaceDeadZones(a, 4, nil, rand.New(rand.NewSource(11)), cfg)
	gen := &DeadZoneGenerator{Config: cfg, Rand: rand.New(rand.NewSource(11))}
	rb, _ := gen.Place(b, 4)
	if len(ra) != len(rb) || !sameGrid(a, b) {
		t.Error("PlaceDeadZones should behave like a fresh generator")
	}
}
