package sunbeam

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/grindlemire/go-sunbeam/internal/debug"
	"github.com/grindlemire/go-sunbeam/internal/motion"
)

// Scroll is a scroll container that keeps its focused descendant visible.
// It owns one scroll offset, recomputes it whenever a leaf inside its scope
// gains focus, and animates the visible position towards the new target.
//
// The host renders the track shifted by Position() and exposes the live
// geometry through ViewportRef and TrackRef.
type Scroll struct {
	name       string
	policy     Policy
	overflow   bool
	fill       colorful.Color
	hasFill    bool
	transition TransitionConfig
	onScroll   func(ScrollOffset)

	viewport *Ref[ViewportMeasurer]
	track    *Ref[TrackMeasurer]

	target ScrollOffset
	x, y   *motion.Value

	scope   *Scope
	restore func()

	err error // first option error, reported by NewScroll
}

// ScrollOption configures a Scroll.
type ScrollOption func(*Scroll)

// WithScrollName names the scope the Scroll mounts; useful in debug logs.
func WithScrollName(name string) ScrollOption {
	return func(s *Scroll) {
		s.name = name
	}
}

// WithScrollDirection sets the axes that follow focus.
func WithScrollDirection(d ScrollDirection) ScrollOption {
	return func(s *Scroll) {
		s.policy.Direction = d
	}
}

// WithVerticalStickiness sets the edge kept visible for oversized elements on y.
func WithVerticalStickiness(st Stickiness) ScrollOption {
	return func(s *Scroll) {
		s.policy.Vertical = st
	}
}

// WithHorizontalStickiness sets the edge kept visible for oversized elements on x.
func WithHorizontalStickiness(st Stickiness) ScrollOption {
	return func(s *Scroll) {
		s.policy.Horizontal = st
	}
}

// WithOverflow sets whether content outside the viewport is drawn.
func WithOverflow(visible bool) ScrollOption {
	return func(s *Scroll) {
		s.overflow = visible
	}
}

// WithFill sets the viewport background color.
func WithFill(c colorful.Color) ScrollOption {
	return func(s *Scroll) {
		s.fill = c
		s.hasFill = true
	}
}

// WithTransition sets how the track animates to new targets.
func WithTransition(t TransitionConfig) ScrollOption {
	return func(s *Scroll) {
		s.transition = t
	}
}

// WithOnScroll is called with every new target offset.
func WithOnScroll(fn func(ScrollOffset)) ScrollOption {
	return func(s *Scroll) {
		s.onScroll = fn
	}
}

// WithScrollConfig applies a whole ScrollConfig.
func WithScrollConfig(cfg ScrollConfig) ScrollOption {
	return func(s *Scroll) {
		policy, err := cfg.Policy()
		if err != nil {
			s.setErr(err)
			return
		}
		fill, ok, err := cfg.FillColor()
		if err != nil {
			s.setErr(err)
			return
		}
		s.policy = policy
		s.overflow = cfg.Overflow
		s.fill, s.hasFill = fill, ok
		s.transition = cfg.Transition
	}
}

func (s *Scroll) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// NewScroll creates a Scroll. Defaults follow focus on both axes with auto
// stickiness, visible overflow and the default spring.
func NewScroll(opts ...ScrollOption) (*Scroll, error) {
	s := &Scroll{
		name:       "scroll",
		policy:     Policy{Direction: ScrollBoth},
		overflow:   true,
		transition: DefaultTransition(),
		viewport:   NewRef[ViewportMeasurer](),
		track:      NewRef[TrackMeasurer](),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, fmt.Errorf("new scroll: %w", s.err)
	}

	t, err := s.transition.build()
	if err != nil {
		return nil, fmt.Errorf("new scroll: %w", err)
	}
	s.x = motion.NewValue(t, 0)
	s.y = motion.NewValue(t, 0)
	return s, nil
}

// MustNewScroll creates a Scroll and panics on error.
func MustNewScroll(opts ...ScrollOption) *Scroll {
	s, err := NewScroll(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// ViewportRef is set by the host to the rendered viewport.
func (s *Scroll) ViewportRef() *Ref[ViewportMeasurer] {
	return s.viewport
}

// TrackRef is set by the host to the rendered track.
func (s *Scroll) TrackRef() *Ref[TrackMeasurer] {
	return s.track
}

// Mount creates the Scroll's scope under parent and starts receiving focus
// changes published inside it. Leaves inside the Scroll must use the
// returned scope. Mounting again first unmounts.
//
// parent must be non-nil since it carries the bus. A nil parent leaves the
// Scroll unmounted and returns nil; leaves given a nil scope skip scrolling.
func (s *Scroll) Mount(parent *Scope) *Scope {
	if s.scope != nil {
		s.Unmount()
	}
	if parent == nil {
		debug.Log("Scroll.Mount: %s has no parent scope, staying unmounted", s.name)
		return nil
	}
	s.scope = parent.Child(s.name)
	s.restore = parent.Bus().Publish(s.scope, s.HandleFocusChange)
	debug.Log("Scroll.Mount: scope=%s policy=%+v", s.scope.Path(), s.policy)
	return s.scope
}

// Unmount stops receiving focus changes, restoring whatever handler was
// installed before, and abandons any animation in flight.
func (s *Scroll) Unmount() {
	if s.restore != nil {
		s.restore()
		s.restore = nil
	}
	s.scope = nil
	s.x.Stop()
	s.y.Stop()
}

// Scope returns the mounted scope, or nil when unmounted.
func (s *Scroll) Scope() *Scope {
	return s.scope
}

// HandleFocusChange recomputes the target offset for a focused element and
// starts animating towards it. Missing or degenerate geometry is a no-op.
func (s *Scroll) HandleFocusChange(c FocusChange) {
	vp, ok := s.viewport.Get()
	if !ok || vp == nil {
		debug.Log("Scroll.HandleFocusChange: %s viewport not mounted", s.name)
		return
	}
	tr, ok := s.track.Get()
	if !ok || tr == nil {
		debug.Log("Scroll.HandleFocusChange: %s track not mounted", s.name)
		return
	}

	next, ok := ComputeOffset(
		s.target,
		Viewport{Box: vp.BoundingBox(), Layout: vp.LayoutSize()},
		Track{Box: tr.BoundingBox(), Extent: tr.ScrollSize()},
		c.BoundingBox,
		s.policy,
	)
	if !ok {
		debug.Log("Scroll.HandleFocusChange: %s degenerate geometry, skipping", s.name)
		return
	}
	s.ScrollTo(next)
}

// ScrollTo sets a new target and animates towards it from the current
// position.
func (s *Scroll) ScrollTo(o ScrollOffset) {
	s.target = o
	s.x.AnimateTo(o.X)
	s.y.AnimateTo(o.Y)
	if s.onScroll != nil {
		s.onScroll(o)
	}
}

// Tick advances the animation by dt and reports whether the position moved.
func (s *Scroll) Tick(dt time.Duration) bool {
	movedX := s.x.Step(dt)
	movedY := s.y.Step(dt)
	return movedX || movedY
}

// Target returns the last offset computed for this Scroll.
func (s *Scroll) Target() ScrollOffset {
	return s.target
}

// Position returns the instantaneous, possibly mid-animation offset.
func (s *Scroll) Position() ScrollOffset {
	return ScrollOffset{X: s.x.Get(), Y: s.y.Get()}
}

// Animating reports whether the position is still moving.
func (s *Scroll) Animating() bool {
	return s.x.Active() || s.y.Active()
}

// Policy returns the autoscroll policy.
func (s *Scroll) Policy() Policy {
	return s.policy
}

// Overflow reports whether content outside the viewport should be drawn.
func (s *Scroll) Overflow() bool {
	return s.overflow
}

// Fill returns the background color, if one is configured.
func (s *Scroll) Fill() (colorful.Color, bool) {
	return s.fill, s.hasFill
}
