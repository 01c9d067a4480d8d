package browse

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"floorplan/internal/plan"
	"floorplan/internal/render"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen() tcell.SimulationScreen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init()
	ss.SetSize(120, 40)
	return ss
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewClampsOptions(t *testing.T) {
	cases := []struct {
		in        Options
		rooms     int
		themeName string
	}{
		{Options{Rooms: 0}, 1, "ascii"},
		{Options{Rooms: 4, Theme: "emoji"}, 4, "emoji"},
		{Options{Rooms: 40, Theme: "nope"}, MaxRooms, "ascii"},
	}
	for _, c := range cases {
		b := New(newSimScreen(), c.in)
		if b.Rooms() != c.rooms {
			t.Errorf("Rooms() = %d, want %d", b.Rooms(), c.rooms)
		}
		if got := b.renderer.Theme().Name; got != c.themeName {
			t.Errorf("theme = %q, want %q", got, c.themeName)
		}
		if b.opts.Scale != DefaultScale {
			t.Errorf("scale = %v, want %v", b.opts.Scale, DefaultScale)
		}
	}
}

func TestHandleKeySeedAndRooms(t *testing.T) {
	b := New(newSimScreen(), Options{Seed: 10, Rooms: 2, RandomSeed: func() uint32 { return 999 }})

	steps := []struct {
		ev    *tcell.EventKey
		seed  uint32
		rooms int
	}{
		{key('n'), 11, 2},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), 12, 2},
		{key('p'), 11, 2},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), 10, 2},
		{key('+'), 10, 3},
		{key('='), 10, 4},
		{key('-'), 10, 3},
		{key('r'), 999, 3},
	}
	for i, s := range steps {
		if !b.HandleKey(s.ev) {
			t.Fatalf("step %d: HandleKey returned false", i)
		}
		if b.Seed() != s.seed || b.Rooms() != s.rooms {
			t.Errorf("step %d: seed=%d rooms=%d, want seed=%d rooms=%d", i, b.Seed(), b.Rooms(), s.seed, s.rooms)
		}
	}
}

func TestRoomCountStaysInRange(t *testing.T) {
	b := New(newSimScreen(), Options{Rooms: 1})
	b.HandleKey(key('-'))
	if b.Rooms() != 1 {
		t.Errorf("rooms below 1: %d", b.Rooms())
	}
	for i := 0; i < 10; i++ {
		b.HandleKey(key('+'))
	}
	if b.Rooms() != MaxRooms {
		t.Errorf("rooms = %d, want %d", b.Rooms(), MaxRooms)
	}
}

func TestSeedWrapsAtZero(t *testing.T) {
	b := New(newSimScreen(), Options{Seed: 0})
	b.HandleKey(key('p'))
	if b.Seed() != ^uint32(0) {
		t.Errorf("seed = %d, want %d", b.Seed(), ^uint32(0))
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		key('Q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		b := New(newSimScreen(), Options{})
		if b.HandleKey(ev) {
			t.Errorf("key %v did not quit", ev.Name())
		}
	}
}

func TestThemeToggleCycles(t *testing.T) {
	b := New(newSimScreen(), Options{})
	first := b.renderer.Theme().Name
	b.HandleKey(key('t'))
	if b.renderer.Theme().Name == first {
		t.Fatal("theme did not change")
	}
	for i := 1; i < len(render.Themes); i++ {
		b.HandleKey(key('t'))
	}
	if b.renderer.Theme().Name != first {
		t.Errorf("theme after full cycle = %q, want %q", b.renderer.Theme().Name, first)
	}
}

func TestCurrentIsCached(t *testing.T) {
	b := New(newSimScreen(), Options{Seed: 7, Rooms: 4})
	v1 := b.current()
	v2 := b.current()
	if v1.grid != v2.grid {
		t.Error("second lookup regenerated the plan")
	}
	if len(v1.apartment.Rooms) != 4 {
		t.Errorf("rooms = %d, want 4", len(v1.apartment.Rooms))
	}
}

func TestDrawShowsStatus(t *testing.T) {
	ss := newSimScreen()
	b := New(ss, Options{Seed: 42, Rooms: 3})
	b.Draw()
	_, h := ss.Size()
	row := screenRow(ss, h-2)
	if !strings.HasPrefix(row, "seed 42  rooms 3") {
		t.Errorf("status row = %q", strings.TrimSpace(row))
	}
	if !strings.Contains(row, "Bedroom") || !strings.Contains(row, "Bathroom") {
		t.Errorf("status row missing room labels: %q", strings.TrimSpace(row))
	}
	a := b.current().apartment
	want := fmt.Sprintf("reachable %d/3", len(a.Reachable(0)))
	if !strings.Contains(row, want) {
		t.Errorf("status row missing %q: %q", want, strings.TrimSpace(row))
	}
}

func TestStatusReportsSplitApartment(t *testing.T) {
	b := New(newSimScreen(), Options{})
	a := plan.Apartment{
		Rooms: []plan.Room{
			{ID: 0, Type: plan.Bedroom},
			{ID: 1, Type: plan.Living},
			{ID: 2, Type: plan.Bathroom},
		},
		Connections: []plan.Connection{{RoomA: 0, RoomB: 1}},
	}
	line := b.status(view{apartment: a})[0]
	if !strings.Contains(line, "reachable 2/3 (split)") {
		t.Errorf("status = %q, want reachable 2/3 (split)", line)
	}
	if !strings.Contains(line, "Bedroom, Living Room, Bathroom") {
		t.Errorf("status = %q, want room labels", line)
	}

	a.Connections = append(a.Connections, plan.Connection{RoomA: 1, RoomB: 2})
	line = b.status(view{apartment: a})[0]
	if !strings.Contains(line, "reachable 3/3") || strings.Contains(line, "split") {
		t.Errorf("status = %q, want reachable 3/3", line)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	ss := newSimScreen()
	b := New(ss, Options{Seed: 1, Rooms: 2})
	done := make(chan struct{})
	go func() {
		b.Run()
		close(done)
	}()
	_ = ss.PostEvent(key('n'))
	_ = ss.PostEvent(key('q'))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if b.Seed() != 2 {
		t.Errorf("seed = %d, want 2", b.Seed())
	}
}
