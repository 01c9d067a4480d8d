package generate

import (
	"math/rand"
	"reflect"
	"testing"

	"floorplan/assets"
	"floorplan/internal/plan"
	"floorplan/internal/rng"
)

// furnitureOverlaps counts padded overlaps between placed furniture pieces.
func furnitureOverlaps(l plan.RoomLayout) int {
	rects := l.FurnitureRects()
	n := 0
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if plan.Overlaps(rects[i], rects[j]) {
				n++
			}
		}
	}
	return n
}

func checkDoor(t *testing.T, seed uint32, l plan.RoomLayout) {
	t.Helper()
	door, ok := l.Furniture[plan.Door]
	if !ok {
		t.Fatalf("seed=%d: no door", seed)
	}
	switch l.DoorSide {
	case plan.DoorLeft:
		if door.X != 1 {
			t.Errorf("seed=%d: left door at x=%v, want 1", seed, door.X)
		}
	case plan.DoorRight:
		if want := l.RoomWidth - door.W - 1; door.X != want {
			t.Errorf("seed=%d: right door at x=%v, want %v", seed, door.X, want)
		}
	default:
		t.Errorf("seed=%d: door side %q", seed, l.DoorSide)
	}
}

func TestSingleRoomSeed42(t *testing.T) {
	l := GenerateSingleRoomLayout(rng.NewSeeded(42))
	if _, ok := l.Furniture[plan.Door]; !ok {
		t.Fatal("expected a door")
	}
	if l.RoomWidth != 240 || l.RoomHeight != 160 {
		t.Errorf("room %vx%v, want 240x160", l.RoomWidth, l.RoomHeight)
	}
	if l.CharPos.X <= 0 || l.CharPos.X >= 240 || l.CharPos.Y <= 0 || l.CharPos.Y >= 160 {
		t.Errorf("charPos %v outside the room", l.CharPos)
	}
	if n := len(l.Decor); n < 2 || n > 6 {
		t.Errorf("decor count %d, want 2..6", n)
	}
	if len(l.Furniture) != len(assets.SingleRoomFurniture) {
		t.Errorf("placed %d pieces, want %d", len(l.Furniture), len(assets.SingleRoomFurniture))
	}
}

func TestSingleRoomInvariants(t *testing.T) {
	for seed := uint32(0); seed < 500; seed++ {
		l := GenerateSingleRoomLayout(rng.NewSeeded(seed))
		checkDoor(t, seed, l)
		for name, r := range l.Furniture {
			if name == plan.Door {
				if r.Y < 2 || r.Bottom() > l.RoomHeight-4 {
					t.Errorf("seed=%d: door %v outside vertical margins", seed, r)
				}
				continue
			}
			if !plan.InBounds(r, l.RoomWidth, l.RoomHeight) {
				t.Errorf("seed=%d: %s %v out of bounds", seed, name, r)
			}
			if r.Y < l.FloorTop {
				t.Errorf("seed=%d: %s %v crosses into the wall strip (floorTop %v)", seed, name, r, l.FloorTop)
			}
		}
		if l.WallY <= 0 || l.FloorTop < l.WallY {
			t.Errorf("seed=%d: wallY=%v floorTop=%v", seed, l.WallY, l.FloorTop)
		}
		if n := len(l.WallDecor); n > 5 {
			t.Errorf("seed=%d: %d wall decor items, want at most 5", seed, n)
		}
	}
}

func TestSingleRoomOverlapRate(t *testing.T) {
	const runs = 10000
	bad := 0
	for seed := uint32(0); seed < runs; seed++ {
		if furnitureOverlaps(GenerateSingleRoomLayout(rng.NewSeeded(seed))) > 0 {
			bad++
		}
	}
	if bad > runs/100 {
		t.Errorf("%d of %d runs had overlapping furniture, want at most 1%%", bad, runs)
	}
}

func TestSingleRoomDeterministic(t *testing.T) {
	for seed := uint32(0); seed < 20; seed++ {
		a := GenerateSingleRoomLayout(rng.NewSeeded(seed))
		b := GenerateSingleRoomLayout(rng.NewSeeded(seed))
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("seed=%d: layouts differ", seed)
		}
	}
	for seed := int64(0); seed < 10; seed++ {
		a := GenerateSingleRoomLayout(rand.New(rand.NewSource(seed)))
		b := GenerateSingleRoomLayout(rand.New(rand.NewSource(seed)))
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("math/rand seed=%d: layouts differ", seed)
		}
	}
}

func TestWallDecorStaysInStrip(t *testing.T) {
	for seed := uint32(0); seed < 200; seed++ {
		l := GenerateSingleRoomLayout(rng.NewSeeded(seed))
		lo, hi, hasWindow := windowBand(l.Furniture)
		for i, d := range l.WallDecor {
			if d.Y < 0 || d.Y+d.H > l.WallY {
				t.Errorf("seed=%d: %s %v leaves the wall strip [0,%v)", seed, d.Type, d.Bounds(), l.WallY)
			}
			if hasWindow && d.X < hi && d.X+d.W > lo {
				t.Errorf("seed=%d: %s covers the window band [%v,%v]", seed, d.Type, lo, hi)
			}
			for _, o := range l.WallDecor[i+1:] {
				if plan.Overlaps(d.Bounds(), o.Bounds()) {
					t.Errorf("seed=%d: wall decor %s and %s overlap", seed, d.Type, o.Type)
				}
			}
		}
	}
}

func TestTopDownRoomHasNoWallStrip(t *testing.T) {
	opts := RoomOptions{
		Width:     140,
		Height:    110,
		TopDown:   true,
		Furniture: assets.RoomTypes[plan.Bedroom].Furniture,
		Mode:      ModeApartment,
	}
	for seed := uint32(0); seed < 100; seed++ {
		l := GenerateRoom(rng.NewSeeded(seed), opts)
		if l.WallY != 0 || l.FloorTop != 0 {
			t.Fatalf("seed=%d: top-down room has wallY=%v floorTop=%v", seed, l.WallY, l.FloorTop)
		}
		if len(l.WallDecor) != 0 {
			t.Errorf("seed=%d: top-down room got %d wall decor items", seed, len(l.WallDecor))
		}
		if n := len(l.Decor); n > 4 {
			t.Errorf("seed=%d: %d floor decor items, want at most 4", seed, n)
		}
		for _, d := range l.Decor {
			if plan.OverlapsAny(d.Footprint(), l.FurnitureRects()) {
				t.Errorf("seed=%d: %s at (%v,%v) overlaps furniture", seed, d.Type, d.X, d.Y)
			}
		}
		want := plan.Point{X: 70, Y: 55}
		if l.CharPos != want {
			t.Errorf("seed=%d: placeholder charPos %v, want %v", seed, l.CharPos, want)
		}
	}
}

func TestTryPlaceFullRoomFallsBack(t *testing.T) {
	g := &roomGen{
		src:    rng.NewSeeded(3),
		geom:   newRoomGeom(DefaultRoomOptions()),
		side:   plan.DoorLeft,
		placed: []plan.Rect{{X: 0, Y: 0, W: 240, H: 160}},
	}
	def := assets.FurnitureDef(plan.Bed)
	if _, ok := g.tryPlace(plan.Bed, def); ok {
		t.Fatal("nothing should fit in a room that is already full")
	}

	got := g.placeFurniture([]plan.FurnitureName{plan.Desk, plan.Bed})
	for i, name := range []plan.FurnitureName{plan.Desk, plan.Bed} {
		want := g.fallbackSlot(i, name, assets.FurnitureDef(name))
		if got[name] != want {
			t.Errorf("%s = %v, want fallback %v", name, got[name], want)
		}
		if !plan.InBounds(got[name], 240, 160) {
			t.Errorf("%s fallback %v out of bounds", name, got[name])
		}
	}
	if len(g.placed) != 3 {
		t.Errorf("placed has %d rects, want 3", len(g.placed))
	}
}

func TestFallbackSlotClamps(t *testing.T) {
	g := &roomGen{geom: newRoomGeom(RoomOptions{Width: 60, Height: 60, TopDown: true}), side: plan.DoorRight}
	for order := 0; order < 10; order++ {
		r := g.fallbackSlot(order, plan.Table, assets.FurnitureDef(plan.Table))
		if !plan.InBounds(r, 60, 60) {
			t.Errorf("order=%d: %v out of bounds", order, r)
		}
	}
	door := g.fallbackSlot(0, plan.Door, assets.FurnitureDef(plan.Door))
	if door.X != 60-16-1 || door.Y != 2 {
		t.Errorf("door fallback %v, want pinned right at y=2", door)
	}
}

func TestDoorSideFollowsCoinFlip(t *testing.T) {
	low := rng.Func(func() float64 { return 0.1 })
	high := rng.Func(func() float64 { return 0.9 })
	if side := GenerateSingleRoomLayout(low).DoorSide; side != plan.DoorRight {
		t.Errorf("low draw gave %q, want right", side)
	}
	if side := GenerateSingleRoomLayout(high).DoorSide; side != plan.DoorLeft {
		t.Errorf("high draw gave %q, want left", side)
	}
}

func TestFloorDecorWhenNoSpotIsFree(t *testing.T) {
	cases := []struct {
		name   string
		opts   RoomOptions
		lo, hi int
		kept   bool
	}{
		{"standalone keeps every item", DefaultRoomOptions(), 2, 6, true},
		{"apartment drops every item", RoomOptions{Width: 120, Height: 100, TopDown: true, Mode: ModeApartment}, 1, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := uint32(0); seed < 50; seed++ {
				geom := newRoomGeom(tc.opts)
				g := &roomGen{
					src:    rng.NewSeeded(seed),
					geom:   geom,
					mode:   tc.opts.Mode,
					placed: []plan.Rect{{X: 0, Y: 0, W: geom.w, H: geom.h}},
				}
				// The item count is the first draw of the stream.
				drawn := rng.IntRange(rng.NewSeeded(seed), tc.lo, tc.hi)

				items := g.scatterFloorDecor()
				want := 0
				if tc.kept {
					want = drawn
				}
				if len(items) != want {
					t.Fatalf("seed=%d: %d items, want %d", seed, len(items), want)
				}
				for _, d := range items {
					if d.Y-d.Size < geom.floorTop {
						t.Errorf("seed=%d: forced item %v above the floor", seed, d)
					}
				}
			}
		})
	}
}

func TestFloorDecorApartmentCountInRange(t *testing.T) {
	opts := RoomOptions{Width: 120, Height: 100, TopDown: true, Mode: ModeApartment}
	for seed := uint32(0); seed < 100; seed++ {
		g := &roomGen{src: rng.NewSeeded(seed), geom: newRoomGeom(opts), mode: ModeApartment}
		if n := len(g.scatterFloorDecor()); n < 1 || n > 4 {
			t.Errorf("seed=%d: %d items in an empty apartment room, want 1..4", seed, n)
		}
	}
}
