package generate

import (
	"math"

	"floorplan/assets"
	"floorplan/internal/plan"
	"floorplan/internal/rng"
)

// Default standalone room size.
const (
	DefaultRoomWidth  = 240
	DefaultRoomHeight = 160
)

// wallStripRatio is the share of a standalone room's height taken by the
// back wall; baseboard is the band between the wall strip and the floor.
const (
	wallStripRatio = 0.35
	baseboard      = 4
)

// Mode selects between the primary standalone room and the sparser
// sub-rooms of an apartment.
type Mode uint8

const (
	ModeStandalone Mode = iota
	ModeApartment
)

// RoomOptions drives generation of one room.
type RoomOptions struct {
	Width, Height float64
	TopDown       bool                 // no wall strip
	Furniture     []plan.FurnitureName // placement order
	Mode          Mode
	Actors        bool // place the character and companion
}

// DefaultRoomOptions returns the standalone home room: 240x160 with a wall
// strip, the six-piece manifest, and actors.
func DefaultRoomOptions() RoomOptions {
	return RoomOptions{
		Width:     DefaultRoomWidth,
		Height:    DefaultRoomHeight,
		Furniture: assets.SingleRoomFurniture,
		Mode:      ModeStandalone,
		Actors:    true,
	}
}

// roomGeom is the fixed geometry of the room being generated.
type roomGeom struct {
	w, h      float64
	wallY     float64 // bottom of the wall strip; 0 when top-down
	floorTop  float64 // first y usable by floor-standing items
	wallStrip bool
}

func newRoomGeom(opts RoomOptions) roomGeom {
	g := roomGeom{w: opts.Width, h: opts.Height}
	if !opts.TopDown {
		g.wallStrip = true
		g.wallY = math.Round(opts.Height * wallStripRatio)
		g.floorTop = g.wallY + baseboard
	}
	return g
}

// top is the y a wall-hugging item is pushed against.
func (g roomGeom) top() float64 {
	if g.wallStrip {
		return g.floorTop
	}
	return 2
}

// roomGen carries the state of one single-room generation: the stream, the
// geometry, the door side chosen for the room, and every rectangle placed
// so far.
type roomGen struct {
	src    rng.Source
	geom   roomGeom
	mode   Mode
	side   plan.DoorSide
	placed []plan.Rect
}

// GenerateSingleRoomLayout generates the standalone home room.
func GenerateSingleRoomLayout(src rng.Source) plan.RoomLayout {
	return GenerateRoom(src, DefaultRoomOptions())
}

// GenerateRoom runs furniture placement, decor scatter and, when
// opts.Actors is set, the position finder for one room.
func GenerateRoom(src rng.Source, opts RoomOptions) plan.RoomLayout {
	g := &roomGen{
		src:  src,
		geom: newRoomGeom(opts),
		mode: opts.Mode,
		side: plan.DoorLeft,
	}
	if rng.Chance(src, 0.5) {
		g.side = plan.DoorRight
	}

	furniture := g.placeFurniture(opts.Furniture)
	decor := g.scatterFloorDecor()
	wallDecor := g.scatterWallDecor(furniture)

	layout := plan.RoomLayout{
		Furniture:  furniture,
		Decor:      decor,
		WallDecor:  wallDecor,
		WallY:      g.geom.wallY,
		FloorTop:   g.geom.floorTop,
		RoomWidth:  g.geom.w,
		RoomHeight: g.geom.h,
		DoorSide:   g.side,
	}
	if opts.Actors {
		layout.CharPos, layout.DogPos = g.placeActors()
	} else {
		layout.CharPos, layout.DogPos = placeholderActors(g.geom)
	}
	return layout
}

// placeActors positions the character on open floor, then the companion
// beside it.
func (g *roomGen) placeActors() (plan.Point, plan.Point) {
	char := FindOpenFloor(g.src, g.placed, CharWidth, CharHeight, g.geom.w, g.geom.h, g.geom.floorTop)
	g.placed = append(g.placed, footprint(char, CharWidth, CharHeight))
	dog := FindNearby(g.src, g.placed, char, DogWidth, DogHeight, g.geom.w, g.geom.h, g.geom.floorTop)
	return char, dog
}

// placeholderActors parks the actors at the room centre for rooms that are
// never the rendered home view.
func placeholderActors(g roomGeom) (plan.Point, plan.Point) {
	c := plan.Point{X: g.w / 2, Y: g.h / 2}
	return c, plan.Point{X: c.X + nearbyFallbackDX, Y: c.Y + nearbyFallbackDY}
}
