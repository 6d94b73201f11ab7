package termhost

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	sunbeam "github.com/grindlemire/go-sunbeam"
)

// rect is an integer cell rectangle, [x0, x1) x [y0, y1).
type rect struct {
	x0, y0, x1, y1 int
}

func cells(b sunbeam.BoundingBox) rect {
	return rect{
		x0: int(math.Round(b.Left)),
		y0: int(math.Round(b.Top)),
		x1: int(math.Round(b.Right())),
		y1: int(math.Round(b.Bottom())),
	}
}

func (r rect) intersect(o rect) rect {
	return rect{x0: max(r.x0, o.x0), y0: max(r.y0, o.y0), x1: min(r.x1, o.x1), y1: min(r.y1, o.y1)}
}

func (r rect) empty() bool {
	return r.x1 <= r.x0 || r.y1 <= r.y0
}

// tcellColor converts a colorful color to a 24-bit tcell color.
func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// textColor picks black or white, whichever reads better on bg.
func textColor(bg colorful.Color) tcell.Color {
	l, _, _ := bg.Clamped().Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

// draw renders the scene onto screen.
func (s *scene) draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()
	clip := rect{x1: width, y1: height}

	drawText(screen, s.menu.x, 0, s.menu.w, "Menu", tcell.StyleDefault.Bold(true))
	drawText(screen, s.grid.x, 0, s.grid.w, "Grid", tcell.StyleDefault.Bold(true))

	for _, p := range []*panel{s.menu, s.grid} {
		s.drawPanel(screen, p, clip)
	}

	drawText(screen, 0, height-1, width, s.status(), tcell.StyleDefault.Dim(true))
}

func (s *scene) drawPanel(screen tcell.Screen, p *panel, clip rect) {
	vp := cells(p.viewportBox()).intersect(clip)
	if fill, ok := p.scroll.Fill(); ok {
		fillRect(screen, vp, tcell.StyleDefault.Background(tcellColor(fill)))
	}

	tileClip := clip
	if !p.scroll.Overflow() {
		tileClip = vp
	}
	for _, t := range p.tiles {
		s.drawTile(screen, t, tileClip)
	}
}

func (s *scene) drawTile(screen tcell.Screen, t *tile, clip rect) {
	box := cells(t.BoundingBox())
	visible := box.intersect(clip)
	if visible.empty() {
		return
	}

	bg := colorful.Color{R: 0.3, G: 0.3, B: 0.3}
	if v, ok := t.focus.Value(); ok && v.Kind() == sunbeam.PropColor {
		bg = v.Color()
	}
	style := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(textColor(bg))
	if t.selected {
		style = style.Bold(true).Underline(true)
	}
	fillRect(screen, visible, style)

	label := t.label
	if t.selected {
		label = "* " + label
	}
	w := box.x1 - box.x0
	label = runewidth.Truncate(label, max(w-2, 0), "…")
	lx := box.x0 + (w-runewidth.StringWidth(label))/2
	ly := box.y0 + (box.y1-box.y0)/2
	if ly < visible.y0 || ly >= visible.y1 {
		return
	}
	drawClipped(screen, lx, ly, label, style, visible)
}

func (s *scene) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "focus: %s", strings.Join(s.path, "/"))
	m, g := s.menu.scroll.Target(), s.grid.scroll.Target()
	fmt.Fprintf(&b, "  menu: %.0f  grid: %.0f,%.0f", m.Y, g.X, g.Y)
	if s.selected != "" {
		fmt.Fprintf(&b, "  selected: %s", s.selected)
	}
	b.WriteString("  [arrows] move  [enter] select  [q] quit")
	return b.String()
}

func fillRect(screen tcell.Screen, r rect, style tcell.Style) {
	for y := r.y0; y < r.y1; y++ {
		for x := r.x0; x < r.x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes s at (x, y), truncated to width cells.
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, width, "…")
	drawClipped(screen, x, y, s, style, rect{x0: x, y0: y, x1: x + width, y1: y + 1})
}

func drawClipped(screen tcell.Screen, x, y int, s string, style tcell.Style, clip rect) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= clip.x0 && x+w <= clip.x1 {
			screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}
