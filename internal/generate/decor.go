package generate

import (
	"math"

	"floorplan/assets"
	"floorplan/internal/plan"
	"floorplan/internal/rng"
)

const (
	floorDecorAttempts = 15
	wallDecorAttempts  = 20
	windowMargin       = 6
)

// decorCounts returns the inclusive floor and wall decor count ranges.
func (m Mode) decorCounts() (floorLo, floorHi, wallLo, wallHi int) {
	if m == ModeApartment {
		return 1, 4, 1, 3
	}
	return 2, 6, 2, 5
}

// scatterFloorDecor drops clutter onto open floor. Standalone rooms keep an
// item even when every sample hits furniture; apartment rooms drop it.
func (g *roomGen) scatterFloorDecor() []plan.FloorDecorItem {
	lo, hi, _, _ := g.mode.decorCounts()
	count := rng.IntRange(g.src, lo, hi)
	items := make([]plan.FloorDecorItem, 0, count)
	for range count {
		typ := assets.FloorDecorTypes[rng.Intn(g.src, len(assets.FloorDecorTypes))]
		size := rng.Range(g.src, 3, 7)
		rot := rng.Range(g.src, -math.Pi/4, math.Pi/4)
		x, y, ok := g.tryFloorSpot(size)
		if !ok {
			continue
		}
		items = append(items, plan.FloorDecorItem{Type: typ, X: x, Y: y, Rot: rot, Size: size})
	}
	return items
}

// tryFloorSpot samples centre points for a decor item of half-size size.
// In standalone mode the last sample is kept whatever it hits.
func (g *roomGen) tryFloorSpot(size float64) (float64, float64, bool) {
	geo := g.geom
	for attempt := range floorDecorAttempts {
		x := rng.Range(g.src, 2+size, geo.w-2-size)
		y := rng.Range(g.src, geo.floorTop+2+size, geo.h-4-size)
		fp := plan.Rect{X: x - size, Y: y - size, W: size * 2, H: size * 2}
		if !plan.OverlapsAny(fp, g.placed) {
			return x, y, true
		}
		if attempt == floorDecorAttempts-1 && g.mode == ModeStandalone {
			return x, y, true
		}
	}
	return 0, 0, false
}

// windowBand is the x span above the desk kept free for the window.
func windowBand(furniture map[plan.FurnitureName]plan.Rect) (lo, hi float64, ok bool) {
	desk, ok := furniture[plan.Desk]
	if !ok {
		return 0, 0, false
	}
	return desk.X - windowMargin, desk.Right() + windowMargin, true
}

// scatterWallDecor hangs decor inside the wall strip. Rooms without a wall
// strip get none; items that never find a spot are skipped.
func (g *roomGen) scatterWallDecor(furniture map[plan.FurnitureName]plan.Rect) []plan.WallDecorItem {
	geo := g.geom
	if geo.wallY <= 0 {
		return nil
	}
	_, _, lo, hi := g.mode.decorCounts()
	count := rng.IntRange(g.src, lo, hi)
	bandLo, bandHi, hasWindow := windowBand(furniture)

	var items []plan.WallDecorItem
	var boxes []plan.Rect
	for range count {
		def := assets.WallDecorTypes[rng.Intn(g.src, len(assets.WallDecorTypes))]
		w := rng.Range(g.src, def.MinW, def.MaxW)
		h := rng.Range(g.src, def.MinH, def.MaxH)
		rot := rng.Range(g.src, -0.05, 0.05)
		for range wallDecorAttempts {
			r := plan.Rect{
				X: rng.Range(g.src, 4, geo.w-4-w),
				Y: rng.Range(g.src, 4, geo.wallY-4-h),
				W: w,
				H: h,
			}
			if hasWindow && r.X < bandHi && r.Right() > bandLo {
				continue
			}
			if plan.OverlapsAny(r, boxes) {
				continue
			}
			boxes = append(boxes, r)
			items = append(items, plan.WallDecorItem{Type: def.Type, X: r.X, Y: r.Y, W: w, H: h, Rot: rot})
			break
		}
	}
	return items
}
