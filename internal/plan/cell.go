package plan

// CellKind identifies what covers one raster cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellFloor
	CellFurniture
	CellDoor
	CellDecor
	CellWallDecor
	CellCharacter
	CellCompanion
)

// Cell is one raster cell. Label carries the first letter of the furniture
// piece or decor type covering it, when there is one.
type Cell struct {
	Kind  CellKind
	Label rune
}

// Blocking reports whether a character could not stand on the cell.
func (c Cell) Blocking() bool {
	return c.Kind == CellWall || c.Kind == CellFurniture || c.Kind == CellEmpty
}
