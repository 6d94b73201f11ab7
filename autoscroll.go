package sunbeam

import (
	"fmt"
	"strings"
)

// ScrollDirection selects which axes a Scroll follows focus on.
type ScrollDirection uint8

const (
	// ScrollBoth follows focus on both axes.
	ScrollBoth ScrollDirection = iota
	// ScrollVertical follows focus on the y axis only.
	ScrollVertical
	// ScrollHorizontal follows focus on the x axis only.
	ScrollHorizontal
)

// String returns the configuration name of the direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollVertical:
		return "vertical"
	case ScrollHorizontal:
		return "horizontal"
	default:
		return "both"
	}
}

// Vertical reports whether the y axis is enabled.
func (d ScrollDirection) Vertical() bool {
	return d == ScrollVertical || d == ScrollBoth
}

// Horizontal reports whether the x axis is enabled.
func (d ScrollDirection) Horizontal() bool {
	return d == ScrollHorizontal || d == ScrollBoth
}

// ParseScrollDirection parses "vertical", "horizontal" or "both".
func ParseScrollDirection(s string) (ScrollDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return ScrollVertical, nil
	case "horizontal":
		return ScrollHorizontal, nil
	case "both", "":
		return ScrollBoth, nil
	}
	return ScrollBoth, fmt.Errorf("%w: unknown scroll direction %q", ErrInvalidConfig, s)
}

// Stickiness decides which edge of an element that is larger than the
// viewport stays visible.
type Stickiness uint8

const (
	// StickAuto reveals with minimal movement, whatever the element size.
	StickAuto Stickiness = iota
	// StickLeading aligns the top (or left) edges of oversized elements.
	StickLeading
	// StickTrailing aligns the bottom (or right) edges of oversized elements.
	StickTrailing
)

// String returns the axis-neutral configuration name.
func (s Stickiness) String() string {
	switch s {
	case StickLeading:
		return "leading"
	case StickTrailing:
		return "trailing"
	default:
		return "auto"
	}
}

// ParseStickiness accepts "auto", "leading", "trailing" and the per-axis
// aliases "top"/"left" (leading) and "bottom"/"right" (trailing).
func ParseStickiness(s string) (Stickiness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return StickAuto, nil
	case "leading", "top", "left":
		return StickLeading, nil
	case "trailing", "bottom", "right":
		return StickTrailing, nil
	}
	return StickAuto, fmt.Errorf("%w: unknown stickiness %q", ErrInvalidConfig, s)
}

// Policy is the per-container autoscroll configuration.
type Policy struct {
	Direction  ScrollDirection
	Vertical   Stickiness
	Horizontal Stickiness
}

// Viewport is the measured visible window of a scroll container.
type Viewport struct {
	// Box is the on-screen box, already scaled.
	Box BoundingBox
	// Layout is the unscaled size (offsetWidth/offsetHeight).
	Layout Size
}

// Track is the measured scrolled content of a scroll container.
type Track struct {
	// Box is the on-screen box; only its position is used.
	Box BoundingBox
	// Extent is the full scrollable size in layout units.
	Extent Size
}

// axis is the one-dimensional slice of the geometry the engine works on.
type axis struct {
	viewStart  float64 // on-screen viewport leading edge
	viewSize   float64 // on-screen viewport size
	layoutSize float64 // unscaled viewport size
	trackStart float64 // on-screen track leading edge
	extent     float64 // scrollable extent in layout units
	elemStart  float64 // on-screen element leading edge
	elemSize   float64 // on-screen element size
}

func (a axis) degenerate() bool {
	return a.layoutSize <= 0 || a.viewSize <= 0 || a.extent <= 0
}

// reveal returns the clamped offset that brings the element into view.
func (a axis) reveal(stick Stickiness) float64 {
	scale := a.viewSize / a.layoutSize

	// The live offset comes from geometry so a target set mid-animation
	// starts from where the track actually is.
	live := (a.viewStart - a.trackStart) / scale

	offsetStart := a.elemStart - a.viewStart
	trailingEdge := offsetStart + a.elemSize

	leading := (a.elemStart - a.viewStart) / scale
	trailing := (trailingEdge - a.viewSize) / scale

	var delta float64
	switch {
	case stick == StickAuto || a.elemSize <= a.viewSize:
		if a.elemStart < a.viewStart {
			delta = leading
		} else if trailingEdge > a.viewSize {
			delta = trailing
		}
	case stick == StickLeading:
		delta = leading
	case stick == StickTrailing:
		delta = trailing
	}

	return clampFloat(live+delta, 0, max(a.extent-a.layoutSize, 0))
}

// ComputeOffset returns the scroll offset that reveals element inside
// viewport. current is the last offset the container emitted; axes disabled
// by policy keep their component of it untouched.
//
// The second result is false when the geometry of an enabled axis cannot be
// used (zero layout size, empty viewport, empty track). current is returned
// unchanged in that case and the caller should skip the update.
//
// ComputeOffset is pure: it never animates or mutates anything.
func ComputeOffset(current ScrollOffset, viewport Viewport, track Track, element BoundingBox, policy Policy) (ScrollOffset, bool) {
	x := axis{
		viewStart:  viewport.Box.Left,
		viewSize:   viewport.Box.Width,
		layoutSize: viewport.Layout.Width,
		trackStart: track.Box.Left,
		extent:     track.Extent.Width,
		elemStart:  element.Left,
		elemSize:   element.Width,
	}
	y := axis{
		viewStart:  viewport.Box.Top,
		viewSize:   viewport.Box.Height,
		layoutSize: viewport.Layout.Height,
		trackStart: track.Box.Top,
		extent:     track.Extent.Height,
		elemStart:  element.Top,
		elemSize:   element.Height,
	}

	if (policy.Direction.Horizontal() && x.degenerate()) || (policy.Direction.Vertical() && y.degenerate()) {
		return current, false
	}

	next := current
	if policy.Direction.Horizontal() {
		next.X = x.reveal(policy.Horizontal)
	}
	if policy.Direction.Vertical() {
		next.Y = y.reveal(policy.Vertical)
	}
	return next, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
