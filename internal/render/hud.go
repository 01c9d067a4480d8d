package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders a separator and up to hudRows-1 status lines at the
// bottom of the screen. Lines wider than the screen are truncated.
func (r *Renderer) DrawHUD(lines []string) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows
	if hudY < 0 {
		return
	}
	r.drawHLine(hudY, tcell.ColorGray)

	styles := []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorWhite),
		tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
	}
	for i, line := range lines {
		if i >= hudRows-1 {
			break
		}
		line = runewidth.Truncate(line, screenW, "…")
		r.drawText(0, hudY+1+i, line, styles[i%len(styles)])
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
