// Package plan holds the geometric output of floor-plan generation: room
// layouts, apartments, and the collision primitives used to build them.
package plan

// Pad is the clearance, on every side, kept between furniture footprints.
const Pad = 3

// Point is a position in room-local or apartment-global coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether r and other share interior area. Rectangles
// whose edges merely touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Shrink returns r pulled inward by d on every side.
func (r Rect) Shrink(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Grow returns r pushed outward by d on every side.
func (r Rect) Grow(d float64) Rect { return r.Shrink(-d) }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Overlaps reports whether a, padded by Pad on every side, intersects b.
// Two pieces therefore need a gap of at least Pad between them. The test is
// symmetric.
func Overlaps(a, b Rect) bool {
	return a.Grow(Pad).Intersects(b)
}

// OverlapsAny reports whether r overlaps any rectangle in placed.
func OverlapsAny(r Rect, placed []Rect) bool {
	for _, p := range placed {
		if Overlaps(r, p) {
			return true
		}
	}
	return false
}

// InBounds reports whether r keeps the room margins: 2 units from the left,
// top and right walls, 4 from the bottom.
func InBounds(r Rect, roomW, roomH float64) bool {
	return r.X >= 2 && r.Y >= 2 && r.Right() <= roomW-2 && r.Bottom() <= roomH-4
}
