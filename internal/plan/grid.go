package plan

import (
	"math"
	"unicode"
)

// Grid is a coarse raster of a floor plan where each cell covers Scale x
// Scale units. It exists for previews and tests; generation never reads it.
type Grid struct {
	Width, Height int
	Scale         float64
	Cells         [][]Cell
}

// NewGrid creates a grid of empty cells.
func NewGrid(width, height int, scale float64) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{Width: width, Height: height, Scale: scale, Cells: cells}
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns a pointer to the cell at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) *Cell {
	return &g.Cells[y][x]
}

// Set replaces the cell at (x, y); out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = c
	}
}

// Count returns how many cells are of kind k.
func (g *Grid) Count(k CellKind) int {
	n := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].Kind == k {
				n++
			}
		}
	}
	return n
}

func (g *Grid) cellSpan(lo, hi float64) (int, int) {
	a := int(math.Floor(lo / g.Scale))
	b := int(math.Ceil(hi/g.Scale)) - 1
	if b < a {
		b = a
	}
	return a, b
}

// fillRect stamps c over every cell r touches.
func (g *Grid) fillRect(r Rect, c Cell) {
	x1, x2 := g.cellSpan(r.X, r.Right())
	y1, y2 := g.cellSpan(r.Y, r.Bottom())
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.Set(x, y, c)
		}
	}
}

// outlineRect stamps c over the border cells of r.
func (g *Grid) outlineRect(r Rect, c Cell) {
	x1, x2 := g.cellSpan(r.X, r.Right())
	y1, y2 := g.cellSpan(r.Y, r.Bottom())
	for x := x1; x <= x2; x++ {
		g.Set(x, y1, c)
		g.Set(x, y2, c)
	}
	for y := y1; y <= y2; y++ {
		g.Set(x1, y, c)
		g.Set(x2, y, c)
	}
}

func (g *Grid) point(p Point, c Cell) {
	g.Set(int(p.X/g.Scale), int(p.Y/g.Scale), c)
}

func label(s string) rune {
	for _, r := range s {
		return unicode.ToUpper(r)
	}
	return ' '
}

// RasterizeRoom draws a room layout at the given scale. Rows above WallY
// become wall; the rest of the room is floor framed by a wall border.
func RasterizeRoom(l RoomLayout, scale float64) *Grid {
	if scale <= 0 {
		scale = 1
	}
	g := NewGrid(int(math.Ceil(l.RoomWidth/scale)), int(math.Ceil(l.RoomHeight/scale)), scale)
	stampRoom(g, l, Point{}, true)
	return g
}

// RasterizeApartment draws every room of a, its doors, and the bedroom's
// character and companion.
func RasterizeApartment(a Apartment, scale float64) *Grid {
	if scale <= 0 {
		scale = 1
	}
	g := NewGrid(int(math.Ceil(a.FloorPlan.Width/scale)), int(math.Ceil(a.FloorPlan.Height/scale)), scale)
	for _, r := range a.Rooms {
		stampRoom(g, r.Layout, Point{X: r.Bounds.X, Y: r.Bounds.Y}, r.Type == Bedroom)
	}
	for _, c := range a.Connections {
		g.fillRect(c.Position, Cell{Kind: CellDoor})
	}
	return g
}

func stampRoom(g *Grid, l RoomLayout, origin Point, actors bool) {
	bounds := Rect{X: origin.X, Y: origin.Y, W: l.RoomWidth, H: l.RoomHeight}
	g.fillRect(bounds, Cell{Kind: CellFloor})
	if l.WallY > 0 {
		g.fillRect(Rect{X: origin.X, Y: origin.Y, W: l.RoomWidth, H: l.WallY}, Cell{Kind: CellWall})
	}
	g.outlineRect(bounds, Cell{Kind: CellWall})

	for _, d := range l.WallDecor {
		g.fillRect(d.Bounds().Translate(origin.X, origin.Y), Cell{Kind: CellWallDecor, Label: label(d.Type)})
	}
	for _, d := range l.Decor {
		g.point(Point{X: origin.X + d.X, Y: origin.Y + d.Y}, Cell{Kind: CellDecor, Label: label(d.Type)})
	}
	for _, name := range l.FurnitureNames() {
		r := l.Furniture[name]
		c := Cell{Kind: CellFurniture, Label: label(string(name))}
		if name == Door {
			c = Cell{Kind: CellDoor}
		}
		g.fillRect(r.Translate(origin.X, origin.Y), c)
	}
	if actors {
		g.point(Point{X: origin.X + l.CharPos.X, Y: origin.Y + l.CharPos.Y - 1}, Cell{Kind: CellCharacter})
		g.point(Point{X: origin.X + l.DogPos.X, Y: origin.Y + l.DogPos.Y - 1}, Cell{Kind: CellCompanion})
	}
}
