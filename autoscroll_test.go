package sunbeam

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// scene builds unscaled geometry: a viewport at the origin and a track
// shifted by the current scroll offset.
func scene(viewW, viewH, extentW, extentH float64, at ScrollOffset) (Viewport, Track) {
	vp := Viewport{
		Box:    NewBoundingBox(0, 0, viewW, viewH),
		Layout: Size{Width: viewW, Height: viewH},
	}
	tr := Track{
		Box:    NewBoundingBox(-at.X, -at.Y, extentW, extentH),
		Extent: Size{Width: extentW, Height: extentH},
	}
	return vp, tr
}

func TestComputeOffset_Reveal(t *testing.T) {
	type tc struct {
		at      ScrollOffset
		element BoundingBox
		policy  Policy
		want    ScrollOffset
	}

	tests := map[string]tc{
		"already visible does not move": {
			at:      ScrollOffset{X: 10, Y: 10},
			element: NewBoundingBox(20, 5, 30, 20),
			policy:  Policy{Direction: ScrollBoth},
			want:    ScrollOffset{X: 10, Y: 10},
		},
		"below viewport aligns bottom edges": {
			element: NewBoundingBox(0, 60, 10, 10),
			policy:  Policy{Direction: ScrollVertical},
			want:    ScrollOffset{Y: 20},
		},
		"above viewport aligns top edges": {
			at:      ScrollOffset{Y: 100},
			element: NewBoundingBox(0, -30, 10, 10),
			policy:  Policy{Direction: ScrollVertical},
			want:    ScrollOffset{Y: 70},
		},
		"right of viewport aligns right edges": {
			element: NewBoundingBox(150, 0, 20, 10),
			policy:  Policy{Direction: ScrollHorizontal},
			want:    ScrollOffset{X: 70},
		},
		"left of viewport aligns left edges": {
			at:      ScrollOffset{X: 200},
			element: NewBoundingBox(-50, 0, 20, 10),
			policy:  Policy{Direction: ScrollHorizontal},
			want:    ScrollOffset{X: 150},
		},
		"oversized leading aligns left edge": {
			element: NewBoundingBox(40, 0, 140, 10),
			policy:  Policy{Direction: ScrollHorizontal, Horizontal: StickLeading},
			want:    ScrollOffset{X: 40},
		},
		"oversized trailing aligns right edge": {
			element: NewBoundingBox(40, 0, 140, 10),
			policy:  Policy{Direction: ScrollHorizontal, Horizontal: StickTrailing},
			want:    ScrollOffset{X: 80},
		},
		"oversized auto moves minimally": {
			element: NewBoundingBox(40, 0, 140, 10),
			policy:  Policy{Direction: ScrollHorizontal, Horizontal: StickAuto},
			want:    ScrollOffset{X: 80},
		},
		"oversized leading on y": {
			element: NewBoundingBox(0, 10, 10, 80),
			policy:  Policy{Direction: ScrollVertical, Vertical: StickLeading},
			want:    ScrollOffset{Y: 10},
		},
		"stickiness ignored when element fits": {
			element: NewBoundingBox(10, 0, 20, 10),
			policy:  Policy{Direction: ScrollHorizontal, Horizontal: StickTrailing},
			want:    ScrollOffset{},
		},
		"clamped at start": {
			at:      ScrollOffset{Y: 5},
			element: NewBoundingBox(0, -40, 10, 10),
			policy:  Policy{Direction: ScrollVertical},
			want:    ScrollOffset{Y: 0},
		},
		"clamped at end": {
			element: NewBoundingBox(0, 900, 10, 10),
			policy:  Policy{Direction: ScrollVertical},
			want:    ScrollOffset{Y: 450},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vp, tr := scene(100, 50, 1000, 500, tt.at)
			got, ok := ComputeOffset(tt.at, vp, tr, tt.element, tt.policy)
			if !ok {
				t.Fatal("ComputeOffset() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("ComputeOffset() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeOffset_DisabledAxisKeepsLastEmitted(t *testing.T) {
	// The live track says x=30, but the engine last emitted x=12. A
	// vertical-only policy must keep the emitted value.
	last := ScrollOffset{X: 12, Y: 0}
	vp, tr := scene(100, 50, 1000, 500, ScrollOffset{X: 30})

	got, ok := ComputeOffset(last, vp, tr, NewBoundingBox(500, 80, 10, 10), Policy{Direction: ScrollVertical})
	if !ok {
		t.Fatal("ComputeOffset() ok = false")
	}
	if got.X != 12 {
		t.Errorf("X = %v, want 12 (untouched)", got.X)
	}
	if got.Y != 40 {
		t.Errorf("Y = %v, want 40", got.Y)
	}
}

func TestComputeOffset_DegenerateGeometry(t *testing.T) {
	type tc struct {
		viewport Viewport
		track    Track
		policy   Policy
		wantOK   bool
	}

	good := Viewport{Box: NewBoundingBox(0, 0, 100, 50), Layout: Size{Width: 100, Height: 50}}
	goodTrack := Track{Box: NewBoundingBox(0, 0, 1000, 500), Extent: Size{Width: 1000, Height: 500}}

	tests := map[string]tc{
		"zero layout width": {
			viewport: Viewport{Box: good.Box, Layout: Size{Width: 0, Height: 50}},
			track:    goodTrack,
			policy:   Policy{Direction: ScrollBoth},
		},
		"zero layout width ignored on vertical": {
			viewport: Viewport{Box: good.Box, Layout: Size{Width: 0, Height: 50}},
			track:    goodTrack,
			policy:   Policy{Direction: ScrollVertical},
			wantOK:   true,
		},
		"empty viewport box": {
			viewport: Viewport{Layout: good.Layout},
			track:    goodTrack,
			policy:   Policy{Direction: ScrollBoth},
		},
		"empty track": {
			viewport: good,
			track:    Track{},
			policy:   Policy{Direction: ScrollHorizontal},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			current := ScrollOffset{X: 7, Y: 9}
			got, ok := ComputeOffset(current, tt.viewport, tt.track, NewBoundingBox(0, 0, 1, 1), tt.policy)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok && got != current {
				t.Errorf("skipped compute returned %+v, want current %+v", got, current)
			}
		})
	}
}

func TestComputeOffset_ScaledViewport(t *testing.T) {
	// Rendered at half size: 100x50 layout shows as 50x25 on screen, and the
	// track has scrolled 40 layout units which is 20 on screen.
	vp := Viewport{Box: NewBoundingBox(10, 10, 50, 25), Layout: Size{Width: 100, Height: 50}}
	tr := Track{Box: NewBoundingBox(-10, 10, 500, 25), Extent: Size{Width: 1000, Height: 50}}

	// Element 100 layout units right of the viewport start, 20 wide.
	el := NewBoundingBox(10+50, 10, 10, 5)

	got, ok := ComputeOffset(ScrollOffset{X: 40}, vp, tr, el, Policy{Direction: ScrollHorizontal})
	if !ok {
		t.Fatal("ok = false")
	}
	// trailing edge on screen relative to viewport = 60; delta = (60-50)/0.5 = 20.
	if got.X != 60 {
		t.Errorf("X = %v, want 60", got.X)
	}
}

func TestParseStickiness(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Stickiness
		wantErr bool
	}{
		"auto":    {in: "auto", want: StickAuto},
		"empty":   {in: "", want: StickAuto},
		"top":     {in: "top", want: StickLeading},
		"left":    {in: "Left", want: StickLeading},
		"bottom":  {in: "bottom", want: StickTrailing},
		"right":   {in: " right ", want: StickTrailing},
		"unknown": {in: "middle", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseStickiness(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStickiness(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseStickiness(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseScrollDirection(t *testing.T) {
	tests := map[string]struct {
		in         string
		want       ScrollDirection
		vertical   bool
		horizontal bool
		wantErr    bool
	}{
		"vertical":   {in: "vertical", want: ScrollVertical, vertical: true},
		"horizontal": {in: "horizontal", want: ScrollHorizontal, horizontal: true},
		"both":       {in: "both", want: ScrollBoth, vertical: true, horizontal: true},
		"bad":        {in: "diagonal", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseScrollDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want || got.Vertical() != tt.vertical || got.Horizontal() != tt.horizontal {
				t.Errorf("ParseScrollDirection(%q) = %v (v=%v h=%v)", tt.in, got, got.Vertical(), got.Horizontal())
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func genStickiness() gopter.Gen {
	return gen.OneConstOf(StickAuto, StickLeading, StickTrailing)
}

func TestComputeOffset_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Property: the result always lies within [0, max(extent - layout, 0)].
	properties.Property("result is clamped to the valid range", prop.ForAll(
		func(at, elemLeft, elemWidth, extent float64, stick Stickiness) bool {
			vp, tr := scene(100, 50, extent, 50, ScrollOffset{X: at})
			got, ok := ComputeOffset(ScrollOffset{X: at}, vp, tr,
				NewBoundingBox(elemLeft, 0, elemWidth, 10),
				Policy{Direction: ScrollHorizontal, Horizontal: stick})
			if !ok {
				return false
			}
			hi := math.Max(extent-100, 0)
			return got.X >= 0 && got.X <= hi
		},
		gen.Float64Range(-500, 5000),
		gen.Float64Range(-10000, 10000),
		gen.Float64Range(0, 3000),
		gen.Float64Range(1, 4000),
		genStickiness(),
	))

	// Property: an element fully inside the viewport never moves the track (auto).
	properties.Property("minimal movement for visible elements", prop.ForAll(
		func(at, left, top, w, h float64) bool {
			if left+w > 100 || top+h > 50 {
				return true
			}
			current := ScrollOffset{X: at, Y: at / 2}
			vp, tr := scene(100, 50, 5000, 5000, current)
			got, ok := ComputeOffset(current, vp, tr, NewBoundingBox(left, top, w, h), Policy{Direction: ScrollBoth})
			return ok && got == current
		},
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 99),
		gen.Float64Range(0, 49),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 50),
	))

	// Property: zooming all on-screen geometry by k leaves the logical result unchanged.
	properties.Property("scale invariance", prop.ForAll(
		func(at, elemLeft, elemWidth, k float64, stick Stickiness) bool {
			current := ScrollOffset{X: at}
			vp, tr := scene(100, 50, 2000, 50, current)
			el := NewBoundingBox(elemLeft, 0, elemWidth, 10)
			policy := Policy{Direction: ScrollHorizontal, Horizontal: stick}

			base, ok1 := ComputeOffset(current, vp, tr, el, policy)

			vp.Box = vp.Box.Scale(k)
			tr.Box = tr.Box.Scale(k)
			scaled, ok2 := ComputeOffset(current, vp, tr, el.Scale(k), policy)

			return ok1 && ok2 && math.Abs(base.X-scaled.X) < 1e-6
		},
		gen.Float64Range(0, 1900),
		gen.Float64Range(-3000, 3000),
		gen.Float64Range(0, 400),
		gen.Float64Range(0.1, 8),
		genStickiness(),
	))

	// Property: a vertical-only policy never recomputes the x component.
	properties.Property("axis independence", prop.ForAll(
		func(lastX, liveX, elemLeft, elemTop float64) bool {
			last := ScrollOffset{X: lastX}
			vp, tr := scene(100, 50, 5000, 5000, ScrollOffset{X: liveX})
			got, ok := ComputeOffset(last, vp, tr, NewBoundingBox(elemLeft, elemTop, 10, 10), Policy{Direction: ScrollVertical})
			return ok && got.X == lastX
		},
		gen.Float64Range(0, 4900),
		gen.Float64Range(0, 4900),
		gen.Float64Range(-5000, 5000),
		gen.Float64Range(-5000, 5000),
	))

	properties.TestingRun(t)
}
