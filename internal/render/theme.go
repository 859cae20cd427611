package render

import (
	"zonegen/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Glyph is what one tile or marker looks like on screen.
type Glyph struct {
	Text  string
	Style tcell.Style
}

// Theme maps terrain and markers to glyphs. Every glyph in a theme must be
// CellWidth columns wide.
type Theme struct {
	Name      string
	CellWidth int
	Tiles     map[gamemap.TileType]Glyph
	Markers   map[gamemap.MarkerType]Glyph
}

var base = tcell.StyleDefault.Background(tcell.ColorBlack)

func fg(c tcell.Color) tcell.Style { return base.Foreground(c) }

// EmojiTheme draws each tile as a double-width emoji. Emoji carry their own
// colors, so only the background is styled.
var EmojiTheme = Theme{
	Name:      "emoji",
	CellWidth: 2,
	Tiles: map[gamemap.TileType]Glyph{
		gamemap.TileUnset:       {"❔", base},
		gamemap.TileGround:      {"🟫", base},
		gamemap.TileGrass:       {"🟩", base},
		gamemap.TileCobblestone: {"⬜", base},
		gamemap.TileSand:        {"🟨", base},
		gamemap.TileWater:       {"🟦", base},
		gamemap.TileWall:        {"🧱", base},
		gamemap.TileDeadZone:    {"⬛", base},
	},
	Markers: map[gamemap.MarkerType]Glyph{
		gamemap.MarkerPlayerSpawn: {"🧙", base},
		gamemap.MarkerNPCSpawn:    {"🙏", base},
		gamemap.MarkerLevelExit:   {"🚪", base},
		gamemap.MarkerChest:       {"📦", base},
		gamemap.MarkerEnemySpawn:  {"👻", base},
		gamemap.MarkerTreasure:    {"💎", base},
	},
}

// ASCIITheme is for terminals without emoji fonts.
var ASCIITheme = Theme{
	Name:      "ascii",
	CellWidth: 1,
	Tiles: map[gamemap.TileType]Glyph{
		gamemap.TileUnset:       {"?", fg(tcell.ColorRed)},
		gamemap.TileGround:      {".", fg(tcell.ColorOlive)},
		gamemap.TileGrass:       {"\"", fg(tcell.ColorGreen)},
		gamemap.TileCobblestone: {",", fg(tcell.ColorSilver)},
		gamemap.TileSand:        {":", fg(tcell.ColorYellow)},
		gamemap.TileWater:       {"~", fg(tcell.ColorBlue)},
		gamemap.TileWall:        {"#", fg(tcell.ColorWhite)},
		gamemap.TileDeadZone:    {" ", base.Background(tcell.ColorDarkGray)},
	},
	Markers: map[gamemap.MarkerType]Glyph{
		gamemap.MarkerPlayerSpawn: {"@", fg(tcell.ColorAqua)},
		gamemap.MarkerNPCSpawn:    {"N", fg(tcell.ColorFuchsia)},
		gamemap.MarkerLevelExit:   {">", fg(tcell.ColorWhite)},
		gamemap.MarkerChest:       {"C", fg(tcell.ColorGold)},
		gamemap.MarkerEnemySpawn:  {"e", fg(tcell.ColorRed)},
		gamemap.MarkerTreasure:    {"$", fg(tcell.ColorGold)},
	},
}

// Themes lists the built-in themes in the order the viewer cycles them.
var Themes = []Theme{EmojiTheme, ASCIITheme}

// ThemeByName returns the built-in theme called name.
func ThemeByName(name string) (Theme, bool) {
	for _, th := range Themes {
		if th.Name == name {
			return th, true
		}
	}
	return Theme{}, false
}

// Tile returns the glyph for t, falling back to the Unset glyph.
func (th Theme) Tile(t gamemap.TileType) Glyph {
	if g, ok := th.Tiles[t]; ok {
		return g
	}
	return th.Tiles[gamemap.TileUnset]
}

// Marker returns the glyph for m and whether the theme draws it.
func (th Theme) Marker(m gamemap.MarkerType) (Glyph, bool) {
	g, ok := th.Markers[m]
	return g, ok
}
