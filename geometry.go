package sunbeam

// BoundingBox is an on-screen rectangle in the coordinate space of the
// nearest positioned ancestor. It already reflects any scaling applied by
// the host, so a box rendered at half size reports half the width.
//
// Boxes are snapshots: measure again whenever a fresh value is needed.
type BoundingBox struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewBoundingBox creates a BoundingBox from its position and size.
func NewBoundingBox(left, top, width, height float64) BoundingBox {
	return BoundingBox{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x coordinate just past the right edge.
func (b BoundingBox) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the y coordinate just past the bottom edge.
func (b BoundingBox) Bottom() float64 {
	return b.Top + b.Height
}

// Empty reports whether the box has no area.
func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() (x, y float64) {
	return b.Left + b.Width/2, b.Top + b.Height/2
}

// Contains reports whether other lies entirely inside b.
func (b BoundingBox) Contains(other BoundingBox) bool {
	return other.Left >= b.Left && other.Top >= b.Top &&
		other.Right() <= b.Right() && other.Bottom() <= b.Bottom()
}

// Translate returns the box moved by (dx, dy).
func (b BoundingBox) Translate(dx, dy float64) BoundingBox {
	b.Left += dx
	b.Top += dy
	return b
}

// Scale returns the box with every coordinate multiplied by k, as if the
// whole coordinate space were zoomed around the origin.
func (b BoundingBox) Scale(k float64) BoundingBox {
	return BoundingBox{
		Left:   b.Left * k,
		Top:    b.Top * k,
		Width:  b.Width * k,
		Height: b.Height * k,
	}
}

// Size is a width/height pair in unscaled layout units.
type Size struct {
	Width  float64
	Height float64
}

// ScrollOffset is how far a scroll track has been shifted, in layout units.
// Both components are non-negative.
type ScrollOffset struct {
	X float64
	Y float64
}

// Measurer is anything that can report its live on-screen bounding box.
type Measurer interface {
	BoundingBox() BoundingBox
}

// ViewportMeasurer is the visible window of a Scroll. LayoutSize is the
// unscaled size of the window (its offsetWidth/offsetHeight).
type ViewportMeasurer interface {
	Measurer
	LayoutSize() Size
}

// TrackMeasurer is the scrolled content of a Scroll. ScrollSize is the full
// scrollable extent of the content in layout units.
type TrackMeasurer interface {
	Measurer
	ScrollSize() Size
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func() BoundingBox

// BoundingBox calls f.
func (f MeasureFunc) BoundingBox() BoundingBox {
	return f()
}
