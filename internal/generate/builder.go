package generate

import (
	"fmt"
	"log/slog"
	"math/rand"

	"zonegen/internal/gamemap"
)

// LayoutBuilder collects the stages of one zone build and runs them in a
// fixed order when Build is called:
//
//	floor fill → exterior walls → prefabs → dead zones → scatter → finalize
//
// The With* methods only record settings, so their call order does not
// matter. A builder produces at most one layout.
type LayoutBuilder struct {
	width, height int
	rng           *rand.Rand
	logger        *slog.Logger

	floor       gamemap.TileType
	floorSet    bool
	walls       bool
	prefabs     []Prefab
	deadZones   *DeadZoneConfig
	chests      int
	enemies     int
	exits       int
	playerSpawn bool

	err  error // first configuration error from WithPrefabs
	used bool
}

// NewLayoutBuilder starts a width×height build driven by rng.
func NewLayoutBuilder(width, height int, rng *rand.Rand) *LayoutBuilder {
	return &LayoutBuilder{width: width, height: height, rng: rng, logger: slog.Default()}
}

// WithLogger sets the logger soft placement failures are reported to.
func (b *LayoutBuilder) WithLogger(l *slog.Logger) *LayoutBuilder {
	if l != nil {
		b.logger = l
	}
	return b
}

// WithFloor sets the tile every cell starts as. Required.
func (b *LayoutBuilder) WithFloor(t gamemap.TileType) *LayoutBuilder {
	b.floor, b.floorSet = t, true
	return b
}

// WithExteriorWalls rings the grid with a one-tile wall. Required.
func (b *LayoutBuilder) WithExteriorWalls() *LayoutBuilder {
	b.walls = true
	return b
}

// WithPrefab appends p to the structures stamped in stage 3.
func (b *LayoutBuilder) WithPrefab(p Prefab) *LayoutBuilder {
	b.prefabs = append(b.prefabs, p)
	return b
}

// WithPrefabs resolves ids through the prefab registry and appends them in
// order. An unknown id makes Build fail with a *ConfigurationError.
func (b *LayoutBuilder) WithPrefabs(ids ...string) *LayoutBuilder {
	for _, id := range ids {
		p, err := NewPrefab(id)
		if err != nil {
			if b.err == nil {
				b.err = err
			}
			continue
		}
		b.prefabs = append(b.prefabs, p)
	}
	return b
}

// WithDeadZones enables stage 4 with the given tuning.
func (b *LayoutBuilder) WithDeadZones(cfg DeadZoneConfig) *LayoutBuilder {
	b.deadZones = &cfg
	return b
}

// WithChests requests n chest markers.
func (b *LayoutBuilder) WithChests(n int) *LayoutBuilder {
	b.chests = n
	return b
}

// WithEnemies requests n enemy spawn markers.
func (b *LayoutBuilder) WithEnemies(n int) *LayoutBuilder {
	b.enemies = n
	return b
}

// WithExits requests n level exit markers.
func (b *LayoutBuilder) WithExits(n int) *LayoutBuilder {
	b.exits = n
	return b
}

// WithPlayerSpawn scatters a player spawn marker when no prefab provides one.
func (b *LayoutBuilder) WithPlayerSpawn() *LayoutBuilder {
	b.playerSpawn = true
	return b
}

// Build runs every configured stage and returns the finished layout.
func (b *LayoutBuilder) Build() (*gamemap.MapLayout, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	b.used = true

	grid := gamemap.New(b.width, b.height)
	markers := gamemap.NewMarkerTable()
	var (
		colliders []gamemap.Collider
		claimed   []gamemap.Rect
	)

	// 1. floor
	grid.Fill(grid.Bounds(), b.floor)

	// 2. exterior walls; only the ring holds walls at this point
	grid.Outline(grid.Bounds(), gamemap.TileWall)
	colliders = append(colliders, ExtractColliders(grid, grid.Bounds())...)

	// 3. prefabs
	for _, p := range b.prefabs {
		bounds, ok := p.Build(grid, b.rng, claimed)
		if !ok {
			b.logger.Warn("prefab placement failed", "prefab", p.Name(), "error", ErrNoSpace)
			continue
		}
		colliders = append(colliders, ExtractColliders(grid, bounds)...)
		markers.Merge(p.Markers(bounds))
		claimed = append(claimed, bounds)
	}

	// 4. dead zones
	if b.deadZones != nil {
		n := DeadZoneCount(b.width*b.height, *b.deadZones)
		gen := &DeadZoneGenerator{Config: *b.deadZones, Rand: b.rng, Claimed: claimed, Logger: b.logger}
		regions, cs := gen.Place(grid, n)
		colliders = append(colliders, cs...)
		b.logger.Debug("dead zones placed", "requested", n, "accepted", len(regions))
	}

	// 5. scatter
	s := newScatter(grid, claimed, markers, b.rng, b.logger)
	s.place(gamemap.MarkerLevelExit, b.exits)
	s.place(gamemap.MarkerChest, b.chests)
	s.place(gamemap.MarkerEnemySpawn, b.enemies)
	if b.playerSpawn && markers.Count(gamemap.MarkerPlayerSpawn) == 0 {
		s.place(gamemap.MarkerPlayerSpawn, 1)
	}

	// 6. finalize
	layout := gamemap.NewMapLayout(grid, markers, colliders)
	b.logger.Debug("layout built",
		"width", b.width, "height", b.height,
		"colliders", len(colliders), "markers", markers.Total())
	return layout, nil
}

func (b *LayoutBuilder) check() error {
	switch {
	case b.used:
		return fmt.Errorf("%w: builder already consumed", ErrPrecondition)
	case b.err != nil:
		return b.err
	case b.rng == nil:
		return fmt.Errorf("%w: no random source", ErrPrecondition)
	case b.width < minSide || b.height < minSide:
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrPrecondition, b.width, b.height)
	case !b.floorSet:
		return fmt.Errorf("%w: floor fill not configured", ErrPrecondition)
	case !b.floor.Walkable():
		return fmt.Errorf("%w: %v is not a walkable floor tile", ErrPrecondition, b.floor)
	case !b.walls:
		return fmt.Errorf("%w: exterior walls not configured", ErrPrecondition)
	case b.chests < 0 || b.enemies < 0 || b.exits < 0:
		return fmt.Errorf("%w: negative marker count", ErrPrecondition)
	}
	return nil
}
