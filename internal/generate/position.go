package generate

import (
	"math"

	"floorplan/internal/plan"
	"floorplan/internal/rng"
)

// Actor footprints.
const (
	CharWidth  = 16
	CharHeight = 24
	DogWidth   = 14
	DogHeight  = 10
)

const (
	openFloorAttempts = 50
	nearbyAttempts    = 30
	nearbyMinRadius   = 15
	nearbyMaxRadius   = 35
	nearbySquash      = 0.5
	nearbyFallbackDX  = 25
	nearbyFallbackDY  = 5
)

// footprint is the box of a w x h actor standing with its feet at p.
func footprint(p plan.Point, w, h float64) plan.Rect {
	return plan.Rect{X: p.X - w/2, Y: p.Y - h, W: w, H: h}
}

// standable reports whether an actor box at r stays in the room, below the
// wall strip, and clear of everything placed.
func standable(r plan.Rect, placed []plan.Rect, roomW, roomH, floorTop float64) bool {
	return plan.InBounds(r, roomW, roomH) && r.Y >= floorTop && !plan.OverlapsAny(r, placed)
}

// FindOpenFloor returns the feet position of a w x h actor on open floor,
// or the room's lower-centre point when no sample fits.
func FindOpenFloor(src rng.Source, placed []plan.Rect, w, h, roomW, roomH, floorTop float64) plan.Point {
	if p, ok := tryOpenFloor(src, placed, w, h, roomW, roomH, floorTop); ok {
		return p
	}
	return openFloorFallback(roomW, roomH)
}

func tryOpenFloor(src rng.Source, placed []plan.Rect, w, h, roomW, roomH, floorTop float64) (plan.Point, bool) {
	for range openFloorAttempts {
		p := plan.Point{
			X: rng.Range(src, w/2+2, roomW-w/2-2),
			Y: rng.Range(src, floorTop+h, roomH-4),
		}
		if standable(footprint(p, w, h), placed, roomW, roomH, floorTop) {
			return p, true
		}
	}
	return plan.Point{}, false
}

func openFloorFallback(roomW, roomH float64) plan.Point {
	return plan.Point{X: roomW / 2, Y: roomH * 0.75}
}

// FindNearby returns a position on a squashed ring around anchor, so the
// companion ends up beside the anchor rather than above or below it. It
// falls back to a fixed offset from anchor.
func FindNearby(src rng.Source, placed []plan.Rect, anchor plan.Point, w, h, roomW, roomH, floorTop float64) plan.Point {
	if p, ok := tryNearby(src, placed, anchor, w, h, roomW, roomH, floorTop); ok {
		return p
	}
	return nearbyFallback(anchor)
}

func tryNearby(src rng.Source, placed []plan.Rect, anchor plan.Point, w, h, roomW, roomH, floorTop float64) (plan.Point, bool) {
	for range nearbyAttempts {
		angle := rng.Angle(src)
		radius := rng.Range(src, nearbyMinRadius, nearbyMaxRadius)
		p := plan.Point{
			X: anchor.X + math.Cos(angle)*radius,
			Y: anchor.Y + math.Sin(angle)*radius*nearbySquash,
		}
		if standable(footprint(p, w, h), placed, roomW, roomH, floorTop) {
			return p, true
		}
	}
	return plan.Point{}, false
}

func nearbyFallback(anchor plan.Point) plan.Point {
	return plan.Point{X: anchor.X + nearbyFallbackDX, Y: anchor.Y + nearbyFallbackDY}
}
