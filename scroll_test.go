package sunbeam

import (
	"testing"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHost renders one Scroll the way a real host would: the viewport sits
// at origin, everything is drawn zoom times its layout size, and the track
// is shifted by the Scroll's animated position.
type testHost struct {
	scroll  *Scroll
	left    float64
	top     float64
	layout  Size
	content Size
	zoom    float64
}

type hostViewport struct{ h *testHost }

func (v hostViewport) BoundingBox() BoundingBox {
	return NewBoundingBox(v.h.left, v.h.top, v.h.layout.Width*v.h.zoom, v.h.layout.Height*v.h.zoom)
}

func (v hostViewport) LayoutSize() Size { return v.h.layout }

type hostTrack struct{ h *testHost }

func (t hostTrack) BoundingBox() BoundingBox {
	pos := t.h.scroll.Position()
	return NewBoundingBox(
		t.h.left-pos.X*t.h.zoom,
		t.h.top-pos.Y*t.h.zoom,
		t.h.content.Width*t.h.zoom,
		t.h.content.Height*t.h.zoom,
	)
}

func (t hostTrack) ScrollSize() Size { return t.h.content }

func newTestHost(s *Scroll, layout, content Size, zoom float64) *testHost {
	h := &testHost{scroll: s, left: 5, top: 3, layout: layout, content: content, zoom: zoom}
	s.ViewportRef().Set(hostViewport{h})
	s.TrackRef().Set(hostTrack{h})
	return h
}

// item measures a box placed at layout coordinates inside the track.
func (h *testHost) item(x, y, w, hgt float64) Measurer {
	return MeasureFunc(func() BoundingBox {
		tr := hostTrack{h}.BoundingBox()
		return NewBoundingBox(tr.Left+x*h.zoom, tr.Top+y*h.zoom, w*h.zoom, hgt*h.zoom)
	})
}

func settle(s *Scroll) {
	for i := 0; i < 600 && s.Animating(); i++ {
		s.Tick(time.Second / 60)
	}
}

func TestScroll_RevealsFocusedElement(t *testing.T) {
	type tc struct {
		opts []ScrollOption
		zoom float64
		item [4]float64
		want ScrollOffset
	}

	tests := map[string]tc{
		"below the fold": {
			item: [4]float64{0, 45, 10, 10},
			want: ScrollOffset{Y: 25},
		},
		"zoomed canvas gives the same logical offset": {
			zoom: 0.5,
			item: [4]float64{0, 45, 10, 10},
			want: ScrollOffset{Y: 25},
		},
		"vertical only ignores x": {
			opts: []ScrollOption{WithScrollDirection(ScrollVertical)},
			item: [4]float64{150, 45, 10, 10},
			want: ScrollOffset{Y: 25},
		},
		"oversized with top stickiness": {
			opts: []ScrollOption{WithVerticalStickiness(StickLeading)},
			item: [4]float64{0, 40, 10, 60},
			want: ScrollOffset{Y: 40},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			zoom := tt.zoom
			if zoom == 0 {
				zoom = 1
			}
			opts := append([]ScrollOption{WithTransition(InstantTransition())}, tt.opts...)
			s := MustNewScroll(opts...)
			h := newTestHost(s, Size{Width: 100, Height: 30}, Size{Width: 300, Height: 200}, zoom)

			bus := NewFocusChangeBus()
			scope := s.Mount(bus.Root())

			el := h.item(tt.item[0], tt.item[1], tt.item[2], tt.item[3])
			bus.Notify(scope, FocusChange{BoundingBox: el.BoundingBox()})

			assert.InDelta(t, tt.want.X, s.Target().X, 1e-9)
			assert.InDelta(t, tt.want.Y, s.Target().Y, 1e-9)
			assert.Equal(t, s.Target(), s.Position(), "instant transition lands immediately")
		})
	}
}

func TestScroll_RetargetMidAnimation(t *testing.T) {
	s := MustNewScroll(WithScrollDirection(ScrollVertical))
	h := newTestHost(s, Size{Width: 100, Height: 30}, Size{Width: 100, Height: 500}, 1)
	bus := NewFocusChangeBus()
	scope := s.Mount(bus.Root())

	far := h.item(0, 200, 10, 10)
	bus.Notify(scope, FocusChange{BoundingBox: far.BoundingBox()})
	require.Equal(t, 180.0, s.Target().Y)

	// Let the spring run part of the way.
	for i := 0; i < 5; i++ {
		s.Tick(time.Second / 60)
	}
	mid := s.Position().Y
	require.True(t, mid > 0 && mid < 180, "mid-flight position %v", mid)

	// An element already visible at the current instantaneous position must
	// not move the target, even though the old target was further along.
	visible := h.item(0, mid+5, 10, 10)
	bus.Notify(scope, FocusChange{BoundingBox: visible.BoundingBox()})
	assert.InDelta(t, mid, s.Target().Y, 1e-9)
	assert.InDelta(t, mid, s.Position().Y, 1e-9, "retarget must not jump")

	settle(s)
	assert.False(t, s.Animating())
	assert.InDelta(t, mid, s.Position().Y, 1e-9)
}

func TestScroll_NestedScrollShadowsOuter(t *testing.T) {
	bus := NewFocusChangeBus()

	var outerTargets, innerTargets []ScrollOffset
	outer := MustNewScroll(WithScrollName("outer"), WithTransition(InstantTransition()),
		WithOnScroll(func(o ScrollOffset) { outerTargets = append(outerTargets, o) }))
	inner := MustNewScroll(WithScrollName("inner"), WithTransition(InstantTransition()),
		WithOnScroll(func(o ScrollOffset) { innerTargets = append(innerTargets, o) }))

	oh := newTestHost(outer, Size{Width: 100, Height: 30}, Size{Width: 100, Height: 300}, 1)
	ih := newTestHost(inner, Size{Width: 50, Height: 10}, Size{Width: 500, Height: 10}, 1)

	outerScope := outer.Mount(bus.Root())
	innerScope := inner.Mount(outerScope)

	bus.Notify(innerScope, FocusChange{BoundingBox: ih.item(200, 0, 10, 10).BoundingBox()})
	assert.Len(t, innerTargets, 1)
	assert.Empty(t, outerTargets, "outer scroll reacted to a nested focus change")

	bus.Notify(outerScope, FocusChange{BoundingBox: oh.item(0, 100, 10, 10).BoundingBox()})
	assert.Len(t, outerTargets, 1)
	assert.Len(t, innerTargets, 1)

	// After the inner scroll unmounts its subtree reports to the outer one.
	inner.Unmount()
	bus.Notify(innerScope, FocusChange{BoundingBox: oh.item(0, 200, 10, 10).BoundingBox()})
	assert.Len(t, outerTargets, 2)
}

func TestScroll_MissingGeometryIsNoop(t *testing.T) {
	s := MustNewScroll(WithTransition(InstantTransition()))
	bus := NewFocusChangeBus()
	scope := s.Mount(bus.Root())

	bus.Notify(scope, FocusChange{BoundingBox: NewBoundingBox(0, 500, 10, 10)})
	assert.Equal(t, ScrollOffset{}, s.Target())

	// Zero layout size: degenerate scale.
	newTestHost(s, Size{}, Size{Width: 100, Height: 100}, 1)
	bus.Notify(scope, FocusChange{BoundingBox: NewBoundingBox(0, 500, 10, 10)})
	assert.Equal(t, ScrollOffset{}, s.Target())
}

func TestScroll_UnmountAbandonsAnimation(t *testing.T) {
	s := MustNewScroll()
	h := newTestHost(s, Size{Width: 100, Height: 30}, Size{Width: 100, Height: 500}, 1)
	bus := NewFocusChangeBus()
	scope := s.Mount(bus.Root())

	bus.Notify(scope, FocusChange{BoundingBox: h.item(0, 300, 10, 10).BoundingBox()})
	s.Tick(time.Second / 60)
	require.True(t, s.Animating())

	s.Unmount()
	assert.False(t, s.Animating())
	assert.Nil(t, s.Scope())
	assert.False(t, s.Tick(time.Second/60))
}

func TestScroll_MountWithoutParent(t *testing.T) {
	s := MustNewScroll(WithTransition(InstantTransition()))
	h := newTestHost(s, Size{Width: 100, Height: 30}, Size{Width: 100, Height: 500}, 1)
	bus := NewFocusChangeBus()
	old := s.Mount(bus.Root())

	require.NotPanics(t, func() {
		assert.Nil(t, s.Mount(nil))
	})
	assert.Nil(t, s.Scope())

	// The earlier mount was released.
	bus.Notify(old, FocusChange{BoundingBox: h.item(0, 300, 10, 10).BoundingBox()})
	assert.Equal(t, ScrollOffset{}, s.Target())
}

func TestNewScroll_Config(t *testing.T) {
	cfg := DefaultScrollConfig()
	cfg.Direction = "horizontal"
	cfg.HorizontalStickiness = "right"
	cfg.Overflow = false
	cfg.Fill = "#202020"
	cfg.Transition = TweenTransition(200*time.Millisecond, "easeInOut")

	s, err := NewScroll(WithScrollConfig(cfg))
	require.NoError(t, err)

	assert.Equal(t, Policy{Direction: ScrollHorizontal, Horizontal: StickTrailing}, s.Policy())
	assert.False(t, s.Overflow())
	fill, ok := s.Fill()
	require.True(t, ok)
	assert.Equal(t, "#202020", fill.Hex())

	cfg.Direction = "sideways"
	_, err = NewScroll(WithScrollConfig(cfg))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewScroll(WithTransition(TransitionConfig{Type: "spring"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScrollConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*ScrollConfig)
		wantErr bool
	}{
		"defaults":           {mutate: func(*ScrollConfig) {}},
		"bad direction":      {mutate: func(c *ScrollConfig) { c.Direction = "up" }, wantErr: true},
		"bad stickiness":     {mutate: func(c *ScrollConfig) { c.VerticalStickiness = "middle" }, wantErr: true},
		"bad fill":           {mutate: func(c *ScrollConfig) { c.Fill = "purple" }, wantErr: true},
		"bad easing":         {mutate: func(c *ScrollConfig) { c.Transition = TweenTransition(time.Second, "wobble") }, wantErr: true},
		"instant transition": {mutate: func(c *ScrollConfig) { c.Transition = InstantTransition() }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultScrollConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScroll_FillDefaults(t *testing.T) {
	s := MustNewScroll(WithFill(colorful.Color{R: 1}))
	c, ok := s.Fill()
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", c.Hex())

	_, ok = MustNewScroll().Fill()
	assert.False(t, ok)
}
