package render

import (
	"strings"

	"floorplan/internal/plan"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved below the plan.
const hudRows = 3

// Renderer draws plan rasters onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen and theme.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// SetTheme switches the glyph theme used by later frames.
func (r *Renderer) SetTheme(t Theme) { r.theme = t }

// Theme returns the active theme.
func (r *Renderer) Theme() Theme { return r.theme }

// Camera returns the camera of the last frame, or nil before the first.
func (r *Renderer) Camera() *Camera { return r.camera }

// cellWidth is how many columns a cell takes under t: the widest glyph wins.
func cellWidth(t Theme) int {
	w := 1
	for _, g := range t.Glyphs {
		w = max(w, runewidth.StringWidth(g))
	}
	return w
}

// DrawFrame clears the screen and draws g above the status lines.
func (r *Renderer) DrawFrame(g *plan.Grid, status []string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	viewH := max(h-hudRows, 0)
	if r.camera == nil || r.camera.ViewWidth != w || r.camera.ViewHeight != viewH {
		r.camera = NewCamera(g.Width, g.Height, cellWidth(r.theme), w, viewH)
	} else {
		r.camera.CellWidth = cellWidth(r.theme)
	}
	r.drawGrid(g)
	r.DrawHUD(status)
	r.screen.Show()
}

// Recenter fits the camera to g on the next frame.
func (r *Renderer) Recenter() { r.camera = nil }

func (r *Renderer) drawGrid(g *plan.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			c := *g.At(x, y)
			r.putGlyph(sx, sy, r.theme.Glyph(c), r.theme.Style(c))
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), padding it to the camera's cell width.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	for col := runewidth.StringWidth(glyph); col < r.camera.CellWidth; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}

// Text renders g as plain lines, one row per line, using t's glyphs. It is
// what the CLI prints when no terminal UI is wanted.
func Text(g *plan.Grid, t Theme) string {
	var b strings.Builder
	width := cellWidth(t)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			glyph := t.Glyph(*g.At(x, y))
			b.WriteString(glyph)
			for col := runewidth.StringWidth(glyph); col < width; col++ {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
