package generate

import (
	"floorplan/assets"
	"floorplan/internal/plan"
	"floorplan/internal/rng"
)

const furnitureAttempts = 80

// Back-wall snap probabilities: below snapLeft the piece goes against the
// left wall, below snapRight against the right wall.
const (
	snapLeft  = 0.2
	snapRight = 0.35
)

// placeFurniture places each named piece in order. Every accepted rectangle
// joins g.placed before the next piece is sampled.
func (g *roomGen) placeFurniture(names []plan.FurnitureName) map[plan.FurnitureName]plan.Rect {
	out := make(map[plan.FurnitureName]plan.Rect, len(names))
	for i, name := range names {
		def := assets.FurnitureDef(name)
		r, ok := g.tryPlace(name, def)
		if !ok {
			r = g.fallbackSlot(i, name, def)
		}
		out[name] = r
		g.placed = append(g.placed, r)
	}
	return out
}

// tryPlace samples up to furnitureAttempts candidates and returns the first
// one that fits.
func (g *roomGen) tryPlace(name plan.FurnitureName, def plan.FurnitureDef) (plan.Rect, bool) {
	door := isDoor(name, def)
	for range furnitureAttempts {
		r := g.sample(name, def)
		if door {
			if !g.doorFits(r) {
				continue
			}
		} else if !plan.InBounds(r, g.geom.w, g.geom.h) || r.Y < g.geom.floorTop {
			continue
		}
		if plan.OverlapsAny(r, g.placed) {
			continue
		}
		return r, true
	}
	return plan.Rect{}, false
}

func isDoor(name plan.FurnitureName, def plan.FurnitureDef) bool {
	return name == plan.Door || def.Placement == plan.PlaceRightWall
}

// doorX pins a door into the wall on the room's door side.
func (g *roomGen) doorX(def plan.FurnitureDef) float64 {
	if g.side == plan.DoorRight {
		return g.geom.w - def.W - 1
	}
	return 1
}

// doorFits applies the margin rule minus the side margins the door is set into.
func (g *roomGen) doorFits(r plan.Rect) bool {
	return r.Y >= 2 && r.Bottom() <= g.geom.h-4 && r.X >= 0 && r.Right() <= g.geom.w
}

// sample draws one candidate rectangle from the piece's placement policy.
func (g *roomGen) sample(name plan.FurnitureName, def plan.FurnitureDef) plan.Rect {
	src, geo := g.src, g.geom
	r := plan.Rect{W: def.W, H: def.H}

	if isDoor(name, def) {
		r.X = g.doorX(def)
		if geo.wallStrip {
			r.Y = geo.floorTop - def.H*0.6 + rng.Range(src, 0, 6)
		} else {
			r.Y = rng.Range(src, 2, geo.h-4-def.H)
		}
		return r
	}

	top := geo.top()
	switch def.Placement {
	case plan.PlaceBackWall:
		roll := src.Float64()
		switch {
		case roll < snapLeft:
			r.X = 2 + rng.Range(src, 0, 4)
			r.Y = rng.Range(src, top, geo.h-4-def.H)
		case roll < snapRight:
			r.X = geo.w - def.W - 2 - rng.Range(src, 0, 4)
			r.Y = top + rng.Range(src, 0, 12)
		default:
			r.X = rng.Range(src, 2, geo.w-2-def.W)
			if geo.wallStrip {
				r.Y = top + rng.Range(src, 0, 6)
			} else {
				r.Y = top + rng.Range(src, 0, 4)
			}
		}
	case plan.PlaceSideWall:
		if rng.Chance(src, 0.5) {
			r.X = 2 + rng.Range(src, 0, 3)
		} else {
			r.X = geo.w - def.W - 2 - rng.Range(src, 0, 3)
		}
		r.Y = rng.Range(src, top, geo.h-4-def.H)
	default:
		inset := 12.0
		if !geo.wallStrip {
			inset = 8
		}
		r.X = rng.Range(src, inset, geo.w-inset-def.W)
		r.Y = rng.Range(src, top+inset, geo.h-inset-def.H)
	}
	return r
}

// fallbackSlot is used once every sample for a piece has been rejected. It
// stacks pieces near the room origin by placement order and may overlap
// earlier pieces; it always stays inside the room margins.
func (g *roomGen) fallbackSlot(order int, name plan.FurnitureName, def plan.FurnitureDef) plan.Rect {
	geo := g.geom
	if isDoor(name, def) {
		y := clamp(geo.floorTop-def.H*0.6, 2, geo.h-4-def.H)
		return plan.Rect{X: g.doorX(def), Y: y, W: def.W, H: def.H}
	}
	minY := max(2, geo.floorTop)
	x := clamp(4+10*float64(order), 2, geo.w-2-def.W)
	y := clamp(geo.floorTop+4+6*float64(order), minY, geo.h-4-def.H)
	return plan.Rect{X: x, Y: y, W: def.W, H: def.H}
}

// clamp pins v into [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
