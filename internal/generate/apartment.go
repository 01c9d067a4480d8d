package generate

import (
	"math"
	"slices"

	"floorplan/assets"
	"floorplan/internal/plan"
	"floorplan/internal/rng"

	"github.com/zyedidia/generic/mapset"
)

const (
	roomAttachAttempts = 60
	// attachShare is the wall length a freshly attached room shares with
	// its anchor, enough for a door plus both insets.
	attachShare = plan.DoorSlot + 2*plan.DoorInset
	// edgeTolerance is how far apart two walls may be and still count as shared.
	edgeTolerance = plan.WallGap + 2
)

// side is the edge of an anchor room a new room is attached to.
type side uint8

const (
	sideLeft side = iota
	sideRight
	sideTop
	sideBottom
)

// GenerateApartment builds an apartment of roomCount rooms. A count of one
// or less yields the standalone home room wrapped as a single bedroom. The
// count is capped at the number of archetypes.
func GenerateApartment(src rng.Source, roomCount int) plan.Apartment {
	if roomCount <= 1 {
		return singleRoomApartment(src)
	}
	roomCount = min(roomCount, len(assets.RoomTypeOrder))

	types := pickRoomTypes(src, roomCount)
	sizes := make([]plan.Rect, len(types))
	for i, t := range types {
		def := assets.RoomTypes[t]
		sizes[i] = plan.Rect{
			W: float64(rng.IntRange(src, int(def.MinW), int(def.MaxW))),
			H: float64(rng.IntRange(src, int(def.MinH), int(def.MaxH))),
		}
	}

	bounds := placeRooms(src, sizes)
	floorPlan := normalize(bounds)
	connections := findConnections(src, bounds)

	rooms := make([]plan.Room, len(types))
	for i, t := range types {
		manifest := assets.RoomTypes[t].Furniture
		if t == plan.Bedroom {
			manifest = append([]plan.FurnitureName{plan.Door}, manifest...)
		}
		rooms[i] = plan.Room{
			ID:     i,
			Type:   t,
			Bounds: bounds[i],
			Layout: GenerateRoom(src, RoomOptions{
				Width:     bounds[i].W,
				Height:    bounds[i].H,
				TopDown:   true,
				Furniture: manifest,
				Mode:      ModeApartment,
			}),
		}
	}

	for i := range rooms {
		if rooms[i].Type == plan.Bedroom {
			placeHomeActors(src, &rooms[i].Layout)
			break
		}
	}

	return plan.Apartment{Rooms: rooms, Connections: connections, FloorPlan: floorPlan}
}

func singleRoomApartment(src rng.Source) plan.Apartment {
	layout := GenerateSingleRoomLayout(src)
	return plan.Apartment{
		Rooms: []plan.Room{{
			ID:     0,
			Type:   plan.Bedroom,
			Bounds: plan.Rect{W: layout.RoomWidth, H: layout.RoomHeight},
			Layout: layout,
		}},
		Connections: []plan.Connection{},
		FloorPlan:   plan.Size{Width: layout.RoomWidth, Height: layout.RoomHeight},
	}
}

// pickRoomTypes always includes a bedroom and a bathroom, adds a kitchen
// from three rooms up, then fills from the optional pool without repeats.
// The bedroom stays first; the rest are shuffled.
func pickRoomTypes(src rng.Source, n int) []plan.RoomType {
	types := []plan.RoomType{plan.Bedroom, plan.Bathroom}
	if n >= 3 {
		types = append(types, plan.Kitchen)
	}
	chosen := mapset.New[plan.RoomType]()
	for _, t := range types {
		chosen.Put(t)
	}

	pool := slices.Clone(assets.OptionalRooms)
	for len(types) < n && len(pool) > 0 {
		i := rng.Intn(src, len(pool))
		t := pool[i]
		pool = slices.Delete(pool, i, i+1)
		if chosen.Has(t) {
			continue
		}
		chosen.Put(t)
		types = append(types, t)
	}

	rest := types[1:]
	rng.Shuffle(src, len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	return types
}

// collides tests two rooms with both pulled in by the wall gap, so rooms
// that touch edge to edge are allowed.
func collides(a, b plan.Rect) bool {
	return a.Shrink(plan.WallGap).Intersects(b.Shrink(plan.WallGap))
}

func collidesAny(r plan.Rect, placed []plan.Rect) bool {
	for _, p := range placed {
		if collides(r, p) {
			return true
		}
	}
	return false
}

// placeRooms lays the rooms out on an adjacency graph: the first at the
// origin, each later one against a random side of an already placed room.
func placeRooms(src rng.Source, sizes []plan.Rect) []plan.Rect {
	if len(sizes) == 0 {
		return nil
	}
	placed := []plan.Rect{{W: sizes[0].W, H: sizes[0].H}}
	for _, size := range sizes[1:] {
		r, ok := tryAttach(src, placed, size.W, size.H)
		if !ok {
			r = fallbackFlushRight(placed, size.W, size.H)
		}
		placed = append(placed, r)
	}
	return placed
}

func tryAttach(src rng.Source, placed []plan.Rect, w, h float64) (plan.Rect, bool) {
	for range roomAttachAttempts {
		anchor := placed[rng.Intn(src, len(placed))]
		r := attach(src, anchor, side(rng.Intn(src, 4)), w, h)
		if !collidesAny(r, placed) {
			return r, true
		}
	}
	return plan.Rect{}, false
}

// attach puts a w x h room flush against one side of anchor, sliding it
// along that side so the two always share at least attachShare of wall.
func attach(src rng.Source, anchor plan.Rect, s side, w, h float64) plan.Rect {
	r := plan.Rect{W: w, H: h}
	switch s {
	case sideLeft, sideRight:
		r.Y = anchor.Y + math.Floor(rng.Range(src, attachShare-h, anchor.H-attachShare))
		if s == sideLeft {
			r.X = anchor.X - w
		} else {
			r.X = anchor.Right()
		}
	default:
		r.X = anchor.X + math.Floor(rng.Range(src, attachShare-w, anchor.W-attachShare))
		if s == sideTop {
			r.Y = anchor.Y - h
		} else {
			r.Y = anchor.Bottom()
		}
	}
	return r
}

// fallbackFlushRight puts the room edge to edge right of the last placed
// room, the same zero-gap contact attach uses. If that spot is taken it
// moves to the right extent of the plan, where nothing can collide.
func fallbackFlushRight(placed []plan.Rect, w, h float64) plan.Rect {
	last := placed[len(placed)-1]
	r := plan.Rect{X: last.Right(), Y: last.Y, W: w, H: h}
	if !collidesAny(r, placed) {
		return r
	}
	for _, p := range placed {
		r.X = max(r.X, p.Right())
	}
	return r
}

// normalize shifts rooms in place so the smallest x and y are zero and
// returns the extent of the plan.
func normalize(rooms []plan.Rect) plan.Size {
	if len(rooms) == 0 {
		return plan.Size{}
	}
	minX, minY := rooms[0].X, rooms[0].Y
	for _, r := range rooms[1:] {
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
	}
	var size plan.Size
	for i := range rooms {
		rooms[i] = rooms[i].Translate(-minX, -minY)
		size.Width = max(size.Width, rooms[i].Right())
		size.Height = max(size.Height, rooms[i].Bottom())
	}
	return size
}

// findConnections carves one door for every pair of rooms sharing enough wall.
func findConnections(src rng.Source, rooms []plan.Rect) []plan.Connection {
	conns := []plan.Connection{}
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if c, ok := connect(src, rooms[i], rooms[j]); ok {
				c.RoomA, c.RoomB = i, j
				conns = append(conns, c)
			}
		}
	}
	return conns
}

// connect looks for a shared vertical wall first, then a horizontal one.
func connect(src rng.Source, a, b plan.Rect) (plan.Connection, bool) {
	if wallX, ok := sharedEdge(a.X, a.Right(), b.X, b.Right()); ok {
		lo, hi := max(a.Y, b.Y), min(a.Bottom(), b.Bottom())
		if hi-lo > plan.MinSharedWall {
			y := doorOffset(src, lo, hi)
			return plan.Connection{
				Position: plan.Rect{X: wallX - plan.WallGap, Y: y, W: 2 * plan.WallGap, H: plan.DoorSlot},
				Axis:     plan.AxisVertical,
			}, true
		}
	}
	if wallY, ok := sharedEdge(a.Y, a.Bottom(), b.Y, b.Bottom()); ok {
		lo, hi := max(a.X, b.X), min(a.Right(), b.Right())
		if hi-lo > plan.MinSharedWall {
			x := doorOffset(src, lo, hi)
			return plan.Connection{
				Position: plan.Rect{X: x, Y: wallY - plan.WallGap, W: plan.DoorSlot, H: 2 * plan.WallGap},
				Axis:     plan.AxisHorizontal,
			}, true
		}
	}
	return plan.Connection{}, false
}

// sharedEdge reports whether the far edge of one span meets the near edge
// of the other within edgeTolerance, returning the wall's coordinate.
func sharedEdge(aLo, aHi, bLo, bHi float64) (float64, bool) {
	if math.Abs(aHi-bLo) <= edgeTolerance {
		return (aHi + bLo) / 2, true
	}
	if math.Abs(bHi-aLo) <= edgeTolerance {
		return (bHi + aLo) / 2, true
	}
	return 0, false
}

// doorOffset picks where a door starts along a shared wall [lo, hi], kept
// DoorInset away from both ends. Walls too short for the insets get the
// door centred.
func doorOffset(src rng.Source, lo, hi float64) float64 {
	start := lo + plan.DoorInset
	end := hi - plan.DoorInset - plan.DoorSlot
	if end < start {
		return lo + (hi-lo-plan.DoorSlot)/2
	}
	return math.Floor(rng.Range(src, start, end))
}

// placeHomeActors replaces the placeholder actor positions of the bedroom
// with real ones found against its furniture.
func placeHomeActors(src rng.Source, l *plan.RoomLayout) {
	placed := l.FurnitureRects()
	l.CharPos = FindOpenFloor(src, placed, CharWidth, CharHeight, l.RoomWidth, l.RoomHeight, l.FloorTop)
	placed = append(placed, footprint(l.CharPos, CharWidth, CharHeight))
	l.DogPos = FindNearby(src, placed, l.CharPos, DogWidth, DogHeight, l.RoomWidth, l.RoomHeight, l.FloorTop)
}
