package termhost

import (
	"fmt"
	"math"
	"time"

	sunbeam "github.com/grindlemire/go-sunbeam"
	"github.com/grindlemire/go-sunbeam/internal/debug"
)

// Tile geometry in layout units.
const (
	menuTileWidth  = 20
	menuTileHeight = 3

	gridTileWidth  = 14
	gridTileHeight = 3
	gridGapX       = 2
	gridGapY       = 1

	// Screen rows above and below the panels.
	headerRows = 2
	footerRows = 2
	// Columns between the menu and the grid.
	panelGap = 2
)

// tile is one focusable rectangle placed inside a panel's track.
type tile struct {
	panel *panel
	key   string
	label string
	focus *sunbeam.Focusable

	// Position and size inside the track, in layout units.
	x, y, w, h float64

	selected bool
}

// BoundingBox returns the tile's on-screen box, following the panel's
// animated scroll position.
func (t *tile) BoundingBox() sunbeam.BoundingBox {
	tr := t.panel.trackBox()
	z := t.panel.zoom
	return sunbeam.NewBoundingBox(tr.Left+t.x*z, tr.Top+t.y*z, t.w*z, t.h*z)
}

// panel is a Scroll plus the screen rectangle it is drawn in.
type panel struct {
	name   string
	scroll *sunbeam.Scroll

	// Screen rectangle in cells.
	x, y, w, h int
	zoom       float64

	// content is the track's scroll extent in layout units.
	content sunbeam.Size
	tiles   []*tile
}

// viewportBox is the on-screen viewport.
func (p *panel) viewportBox() sunbeam.BoundingBox {
	return sunbeam.NewBoundingBox(float64(p.x), float64(p.y), float64(p.w), float64(p.h))
}

// trackBox is the on-screen track, shifted by the animated position.
func (p *panel) trackBox() sunbeam.BoundingBox {
	pos := p.scroll.Position()
	return sunbeam.NewBoundingBox(
		float64(p.x)-pos.X*p.zoom,
		float64(p.y)-pos.Y*p.zoom,
		p.content.Width*p.zoom,
		p.content.Height*p.zoom,
	)
}

type viewport struct{ p *panel }

func (v viewport) BoundingBox() sunbeam.BoundingBox { return v.p.viewportBox() }

func (v viewport) LayoutSize() sunbeam.Size {
	return sunbeam.Size{Width: float64(v.p.w) / v.p.zoom, Height: float64(v.p.h) / v.p.zoom}
}

type track struct{ p *panel }

func (t track) BoundingBox() sunbeam.BoundingBox { return t.p.trackBox() }

func (t track) ScrollSize() sunbeam.Size { return t.p.content }

// scene is the whole demo: a container, the menu and the grid.
type scene struct {
	cfg       Config
	container *sunbeam.Container
	menu      *panel
	grid      *panel
	path      []string
	selected  string
}

func newScene(cfg Config, width, height int) (*scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	focusColor, blurColor, _ := cfg.colors()
	prop, err := sunbeam.NewFocusProp("background", sunbeam.ColorValue(focusColor), sunbeam.ColorValue(blurColor))
	if err != nil {
		return nil, err
	}

	s := &scene{cfg: cfg}
	s.container, err = sunbeam.NewContainer(
		sunbeam.WithKeyConfig(cfg.Keys),
		sunbeam.WithManagerOptions(sunbeam.WithOnFocusUpdate(func(path []string) {
			s.path = path
		})),
	)
	if err != nil {
		return nil, err
	}

	if s.menu, err = newPanel("menu", cfg.Menu, cfg.Zoom); err != nil {
		return nil, err
	}
	if s.grid, err = newPanel("grid", cfg.Grid, cfg.Zoom); err != nil {
		return nil, err
	}

	for i := range cfg.MenuItems {
		s.menu.addTile(fmt.Sprintf("menu-%d", i), fmt.Sprintf("Item %d", i+1),
			0, float64(i*menuTileHeight), menuTileWidth, menuTileHeight)
	}
	for r := range cfg.Rows {
		for c := range cfg.Cols {
			s.grid.addTile(fmt.Sprintf("tile-%d-%d", r, c), fmt.Sprintf("Tile %d:%d", r+1, c+1),
				float64(c*(gridTileWidth+gridGapX)), float64(r*(gridTileHeight+gridGapY)),
				gridTileWidth, gridTileHeight)
		}
	}
	s.menu.content = sunbeam.Size{Width: menuTileWidth, Height: float64(cfg.MenuItems * menuTileHeight)}
	s.grid.content = sunbeam.Size{
		Width:  float64(cfg.Cols*(gridTileWidth+gridGapX) - gridGapX),
		Height: float64(cfg.Rows*(gridTileHeight+gridGapY) - gridGapY),
	}

	// Geometry must be in place before the first leaf registers, since
	// registration focuses it and triggers a scroll.
	s.resize(width, height)

	for _, p := range []*panel{s.menu, s.grid} {
		scope := p.scroll.Mount(s.container.Scope())
		for _, t := range p.tiles {
			t.focus = sunbeam.NewFocusable(scope,
				sunbeam.WithKey(t.key),
				sunbeam.WithParentPath(p.name),
				sunbeam.WithFocusProp(prop),
			)
			t.focus.Ref().Set(t)
			if err := t.focus.Mount(s.container); err != nil {
				return nil, err
			}
		}
	}
	debug.Log("termhost.newScene: menu=%d grid=%dx%d zoom=%v", cfg.MenuItems, cfg.Rows, cfg.Cols, cfg.Zoom)
	return s, nil
}

func newPanel(name string, cfg sunbeam.ScrollConfig, zoom float64) (*panel, error) {
	scroll, err := sunbeam.NewScroll(sunbeam.WithScrollName(name), sunbeam.WithScrollConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	p := &panel{name: name, scroll: scroll, zoom: zoom}
	scroll.ViewportRef().Set(viewport{p})
	scroll.TrackRef().Set(track{p})
	return p, nil
}

// addTile records a tile; its Focusable is created once the panel mounts.
func (p *panel) addTile(key, label string, x, y, w, h float64) {
	p.tiles = append(p.tiles, &tile{panel: p, key: key, label: label, x: x, y: y, w: w, h: h})
}

// resize lays the panels out for a width x height screen.
func (s *scene) resize(width, height int) {
	z := s.cfg.Zoom
	panelHeight := max(height-headerRows-footerRows, 1)

	s.menu.x, s.menu.y = 1, headerRows
	s.menu.w = max(int(math.Ceil(menuTileWidth*z)), 1)
	s.menu.h = panelHeight

	s.grid.x, s.grid.y = s.menu.x+s.menu.w+panelGap, headerRows
	s.grid.w = max(width-s.grid.x-1, 1)
	s.grid.h = panelHeight
}

// focused returns the focused tile, or nil.
func (s *scene) focused() *tile {
	for _, p := range []*panel{s.menu, s.grid} {
		for _, t := range p.tiles {
			if t.focus.Focused() {
				return t
			}
		}
	}
	return nil
}

// tileAt returns the visible tile under the screen cell (x, y), or nil.
func (s *scene) tileAt(x, y int) *tile {
	cx, cy := float64(x)+0.5, float64(y)+0.5
	for _, p := range []*panel{s.menu, s.grid} {
		vp := p.viewportBox()
		if !p.scroll.Overflow() && !inside(vp, cx, cy) {
			continue
		}
		for _, t := range p.tiles {
			if inside(t.BoundingBox(), cx, cy) {
				return t
			}
		}
	}
	return nil
}

// selectFocused marks the focused tile as selected.
func (s *scene) selectFocused() {
	t := s.focused()
	if t == nil {
		return
	}
	t.selected = !t.selected
	s.selected = t.label
}

// tick advances both scroll animations and reports whether anything moved.
func (s *scene) tick(dt time.Duration) bool {
	a := s.menu.scroll.Tick(dt)
	b := s.grid.scroll.Tick(dt)
	return a || b
}

// unmount detaches every leaf and scroll, leaving nothing subscribed.
func (s *scene) unmount() {
	for _, p := range []*panel{s.menu, s.grid} {
		for _, t := range p.tiles {
			if t.focus != nil {
				t.focus.Unmount()
			}
		}
		p.scroll.Unmount()
	}
}

func inside(b sunbeam.BoundingBox, x, y float64) bool {
	return x >= b.Left && x < b.Right() && y >= b.Top && y < b.Bottom()
}
