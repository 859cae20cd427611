package gamemap

import (
	"encoding/json"
	"fmt"
)

// MarkerType identifies a point of interest that entity spawning reads.
type MarkerType uint8

const (
	MarkerPlayerSpawn MarkerType = iota
	MarkerNPCSpawn
	MarkerLevelExit
	MarkerChest
	MarkerEnemySpawn
	MarkerTreasure
)

// MarkerTypes lists every marker kind in declaration order.
var MarkerTypes = []MarkerType{
	MarkerPlayerSpawn,
	MarkerNPCSpawn,
	MarkerLevelExit,
	MarkerChest,
	MarkerEnemySpawn,
	MarkerTreasure,
}

var markerNames = [...]string{
	MarkerPlayerSpawn: "player_spawn",
	MarkerNPCSpawn:    "npc_spawn",
	MarkerLevelExit:   "level_exit",
	MarkerChest:       "chest",
	MarkerEnemySpawn:  "enemy_spawn",
	MarkerTreasure:    "treasure",
}

func (m MarkerType) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("marker(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler so marker kinds can key JSON objects.
func (m MarkerType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MarkerType) UnmarshalText(b []byte) error {
	for i, name := range markerNames {
		if name == string(b) {
			*m = MarkerType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown marker type %q", b)
}

// MarkerTable maps each marker kind to the cells tagged with it.
// A cell appears at most once per kind; insertion order is kept so output
// is reproducible for a fixed seed.
type MarkerTable struct {
	points map[MarkerType][]Point
}

// NewMarkerTable returns an empty table.
func NewMarkerTable() *MarkerTable {
	return &MarkerTable{points: make(map[MarkerType][]Point)}
}

// Add tags p with kind. It returns false if p already carries kind.
func (t *MarkerTable) Add(kind MarkerType, p Point) bool {
	if t.Has(kind, p) {
		return false
	}
	t.points[kind] = append(t.points[kind], p)
	return true
}

// Has reports whether p carries kind.
func (t *MarkerTable) Has(kind MarkerType, p Point) bool {
	for _, q := range t.points[kind] {
		if q == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the cells tagged with kind.
func (t *MarkerTable) Positions(kind MarkerType) []Point {
	src := t.points[kind]
	if len(src) == 0 {
		return nil
	}
	out := make([]Point, len(src))
	copy(out, src)
	return out
}

// Count returns the number of cells tagged with kind.
func (t *MarkerTable) Count(kind MarkerType) int {
	return len(t.points[kind])
}

// Total returns the number of entries across all kinds.
func (t *MarkerTable) Total() int {
	n := 0
	for _, pts := range t.points {
		n += len(pts)
	}
	return n
}

// Kinds returns the kinds present in the table in declaration order.
func (t *MarkerTable) Kinds() []MarkerType {
	var out []MarkerType
	for _, k := range MarkerTypes {
		if len(t.points[k]) > 0 {
			out = append(out, k)
		}
	}
	return out
}

// Occupied returns the set of cells carrying any marker.
func (t *MarkerTable) Occupied() map[Point]bool {
	occ := make(map[Point]bool, t.Total())
	for _, pts := range t.points {
		for _, p := range pts {
			occ[p] = true
		}
	}
	return occ
}

// Merge adds every entry of other, skipping duplicates. It returns the
// number of entries that were added.
func (t *MarkerTable) Merge(other *MarkerTable) int {
	if other == nil {
		return 0
	}
	added := 0
	for _, k := range MarkerTypes {
		for _, p := range other.points[k] {
			if t.Add(k, p) {
				added++
			}
		}
	}
	return added
}

// Clone returns a deep copy of the table.
func (t *MarkerTable) Clone() *MarkerTable {
	c := NewMarkerTable()
	c.Merge(t)
	return c
}

// MarshalJSON encodes the table as an object keyed by marker name.
func (t *MarkerTable) MarshalJSON() ([]byte, error) {
	out := make(map[MarkerType][]Point, len(t.points))
	for k, pts := range t.points {
		if len(pts) > 0 {
			out[k] = pts
		}
	}
	return json.Marshal(out)
}
