package render

// Camera translates between grid cells and screen coordinates. CellWidth
// is the number of terminal columns one grid cell occupies.
type Camera struct {
	OffsetX    int
	OffsetY    int
	CellWidth  int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera whose viewport shows a gridW x gridH raster
// centred when it fits, or anchored at the top-left when it does not.
func NewCamera(gridW, gridH, cellWidth, viewW, viewH int) *Camera {
	if cellWidth < 1 {
		cellWidth = 1
	}
	c := &Camera{CellWidth: cellWidth, ViewWidth: viewW, ViewHeight: viewH}
	c.Fit(gridW, gridH)
	return c
}

// Fit positions the camera over a gridW x gridH raster.
func (c *Camera) Fit(gridW, gridH int) {
	cols := c.ViewWidth / c.CellWidth
	c.OffsetX = 0
	if gridW < cols {
		c.OffsetX = -(cols - gridW) / 2
	}
	c.OffsetY = 0
	if gridH < c.ViewHeight {
		c.OffsetY = -(c.ViewHeight - gridH) / 2
	}
}

// Pan moves the viewport by (dx, dy) cells.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// WorldToScreen converts cell (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.CellWidth
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+c.CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to cell coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/c.CellWidth + c.OffsetX, sy + c.OffsetY
}
