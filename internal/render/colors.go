package render

import (
	"unicode"

	"floorplan/internal/plan"

	"github.com/gdamore/tcell/v2"
)

// Theme is the glyph and colour set used to draw one plan raster. Emoji
// themes occupy two terminal columns per cell, ASCII themes one.
type Theme struct {
	Name   string
	Glyphs map[plan.CellKind]string
	Colors map[plan.CellKind]tcell.Color
}

var cellColors = map[plan.CellKind]tcell.Color{
	plan.CellWall:      tcell.ColorGray,
	plan.CellFloor:     tcell.ColorDarkSlateGray,
	plan.CellFurniture: tcell.ColorSandyBrown,
	plan.CellDoor:      tcell.ColorYellow,
	plan.CellDecor:     tcell.ColorAqua,
	plan.CellWallDecor: tcell.ColorFuchsia,
	plan.CellCharacter: tcell.ColorLime,
	plan.CellCompanion: tcell.ColorOrange,
}

// Themes lists the available preview themes; the first is the default.
var Themes = []Theme{
	{
		Name: "ascii",
		Glyphs: map[plan.CellKind]string{
			plan.CellEmpty:     " ",
			plan.CellWall:      "#",
			plan.CellFloor:     ".",
			plan.CellFurniture: "", // the piece's label letter
			plan.CellDoor:      "+",
			plan.CellDecor:     "", // the decor type's label letter, lowercased
			plan.CellWallDecor: "~",
			plan.CellCharacter: "@",
			plan.CellCompanion: "d",
		},
		Colors: cellColors,
	},
	{
		Name: "emoji",
		Glyphs: map[plan.CellKind]string{
			plan.CellEmpty:     " ",
			plan.CellWall:      "🧱",
			plan.CellFloor:     "🟫",
			plan.CellFurniture: "🪑",
			plan.CellDoor:      "🚪",
			plan.CellDecor:     "🧦",
			plan.CellWallDecor: "🖼️",
			plan.CellCharacter: "🧑",
			plan.CellCompanion: "🐕",
		},
		Colors: cellColors,
	},
}

// ThemeByName returns the theme called name, or the default.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// Glyph returns the string drawn for c.
func (t Theme) Glyph(c plan.Cell) string {
	g := t.Glyphs[c.Kind]
	if g != "" {
		return g
	}
	if c.Label == 0 {
		return "?"
	}
	if c.Kind == plan.CellDecor {
		return string(unicode.ToLower(c.Label))
	}
	return string(c.Label)
}

// Style returns the tcell style of c.
func (t Theme) Style(c plan.Cell) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	if col, ok := t.Colors[c.Kind]; ok {
		style = style.Foreground(col)
	}
	return style
}
