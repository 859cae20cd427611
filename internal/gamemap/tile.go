package gamemap

import "fmt"

// TileType classifies one grid cell.
type TileType uint8

const (
	TileUnset TileType = iota // only before floor fill
	TileGround
	TileGrass
	TileCobblestone
	TileSand
	TileWater
	TileWall
	TileDeadZone
)

var tileNames = [...]string{
	TileUnset:       "unset",
	TileGround:      "ground",
	TileGrass:       "grass",
	TileCobblestone: "cobblestone",
	TileSand:        "sand",
	TileWater:       "water",
	TileWall:        "wall",
	TileDeadZone:    "dead_zone",
}

// String returns the lowercase name used in JSON and logs.
func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// ParseTileType is the inverse of String.
func ParseTileType(s string) (TileType, error) {
	for i, name := range tileNames {
		if name == s {
			return TileType(i), nil
		}
	}
	return TileUnset, fmt.Errorf("unknown tile type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t TileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TileType) UnmarshalText(b []byte) error {
	v, err := ParseTileType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// IsFloor reports whether t is terrain rather than structure. Wall and
// DeadZone are structural and only ever stamped by the generator. Only
// walkable floor types may fill a whole instance.
func (t TileType) IsFloor() bool {
	switch t {
	case TileGround, TileGrass, TileCobblestone, TileSand, TileWater:
		return true
	}
	return false
}

// IsStructural reports whether t was placed by a generation stage as an obstacle.
func (t TileType) IsStructural() bool {
	return t == TileWall || t == TileDeadZone
}

// Walkable reports whether actors can stand on t.
func (t TileType) Walkable() bool {
	return t.IsFloor() && t != TileWater
}
