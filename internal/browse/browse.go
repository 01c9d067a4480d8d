// Package browse is the interactive seed browser shared by the floorplan
// CLI and the SSH server. It draws one apartment per seed and lets the user
// step through seeds and room counts from the keyboard.
package browse

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"floorplan/assets"
	"floorplan/internal/generate"
	"floorplan/internal/plan"
	"floorplan/internal/render"
	"floorplan/internal/rng"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/cache"
)

const (
	// MaxRooms is the largest room count the browser offers.
	MaxRooms = 6
	// DefaultScale is the number of plan units per preview cell.
	DefaultScale = 8.0

	cacheSize = 64
)

// Options configures a browsing session.
type Options struct {
	Seed  uint32
	Rooms int
	Scale float64
	Theme string
	// RandomSeed picks the seed for the "r" key; nil uses math/rand/v2.
	RandomSeed func() uint32
}

type planKey struct {
	seed  uint32
	rooms int
}

type view struct {
	apartment plan.Apartment
	grid      *plan.Grid
}

// Browser holds the state of one interactive session.
type Browser struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	plans    *cache.Cache[planKey, view]
	theme    int
}

// New creates a browser that draws onto an initialised screen.
func New(screen tcell.Screen, opts Options) *Browser {
	if opts.Rooms < 1 {
		opts.Rooms = 1
	}
	opts.Rooms = min(opts.Rooms, MaxRooms)
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.RandomSeed == nil {
		opts.RandomSeed = rand.Uint32
	}
	b := &Browser{
		screen: screen,
		opts:   opts,
		plans:  cache.New[planKey, view](cacheSize),
	}
	for i, t := range render.Themes {
		if t.Name == opts.Theme {
			b.theme = i
		}
	}
	b.renderer = render.NewRenderer(screen, render.Themes[b.theme])
	return b
}

// Seed returns the seed currently shown.
func (b *Browser) Seed() uint32 { return b.opts.Seed }

// Rooms returns the room count currently shown.
func (b *Browser) Rooms() int { return b.opts.Rooms }

// current returns the plan for the active seed and room count, generating
// it on first use.
func (b *Browser) current() view {
	k := planKey{seed: b.opts.Seed, rooms: b.opts.Rooms}
	if v, ok := b.plans.Get(k); ok {
		return v
	}
	a := generate.GenerateApartment(rng.NewSeeded(k.seed), k.rooms)
	v := view{apartment: a, grid: plan.RasterizeApartment(a, b.opts.Scale)}
	b.plans.Put(k, v)
	return v
}

func (b *Browser) status(v view) []string {
	a := v.apartment
	labels := make([]string, len(a.Rooms))
	for i, r := range a.Rooms {
		labels[i] = assets.RoomLabel(r.Type)
	}
	reach := fmt.Sprintf("reachable %d/%d", len(a.Reachable(0)), len(a.Rooms))
	if !a.FullyConnected() {
		reach += " (split)"
	}
	return []string{
		fmt.Sprintf("seed %d  rooms %d  doors %d  %s  %s",
			b.opts.Seed, len(a.Rooms), len(a.Connections), reach, strings.Join(labels, ", ")),
		"n/→ next  p/← prev  +/- rooms  r random  t theme  arrows pan  q quit",
	}
}

// Draw renders the current plan.
func (b *Browser) Draw() {
	v := b.current()
	b.renderer.DrawFrame(v.grid, b.status(v))
}

// HandleKey applies one key press. It returns false when the user asked to
// quit.
func (b *Browser) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		b.setSeed(b.opts.Seed + 1)
		return true
	case tcell.KeyLeft:
		b.setSeed(b.opts.Seed - 1)
		return true
	case tcell.KeyUp:
		b.pan(0, -1)
		return true
	case tcell.KeyDown:
		b.pan(0, 1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'n':
		b.setSeed(b.opts.Seed + 1)
	case 'p':
		b.setSeed(b.opts.Seed - 1)
	case '+', '=':
		b.setRooms(b.opts.Rooms + 1)
	case '-', '_':
		b.setRooms(b.opts.Rooms - 1)
	case 'r':
		b.setSeed(b.opts.RandomSeed())
	case 't':
		b.theme = (b.theme + 1) % len(render.Themes)
		b.renderer.SetTheme(render.Themes[b.theme])
		b.renderer.Recenter()
	case 'h':
		b.pan(-1, 0)
	case 'l':
		b.pan(1, 0)
	case 'k':
		b.pan(0, -1)
	case 'j':
		b.pan(0, 1)
	}
	return true
}

func (b *Browser) setSeed(seed uint32) {
	b.opts.Seed = seed
	b.renderer.Recenter()
}

func (b *Browser) setRooms(n int) {
	n = max(1, min(n, MaxRooms))
	if n == b.opts.Rooms {
		return
	}
	b.opts.Rooms = n
	b.renderer.Recenter()
}

func (b *Browser) pan(dx, dy int) {
	if cam := b.renderer.Camera(); cam != nil {
		cam.Pan(dx, dy)
	}
}

// Run draws and processes events until the user quits or the screen is
// finalised. The caller owns the screen's lifecycle.
func (b *Browser) Run() {
	b.Draw()
	for {
		switch ev := b.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			b.screen.Sync()
			b.renderer.Recenter()
		case *tcell.EventKey:
			if !b.HandleKey(ev) {
				return
			}
		default:
			continue
		}
		b.Draw()
	}
}

// Run creates a browser on screen and runs it to completion.
func Run(screen tcell.Screen, opts Options) {
	New(screen, opts).Run()
}
