package sunbeam

import (
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"

	"github.com/grindlemire/go-sunbeam/internal/debug"
)

// FocusEvent is passed to focus and blur callbacks.
type FocusEvent struct {
	// Element is the mounted element, or nil if the ref was unset.
	Element Measurer
	// Path is the leaf's focus path at the time of the transition.
	Path []string
}

// Focusable glues one leaf of the focus tree to the autoscroll machinery.
// On every focus evaluation it runs the leaf's focus boolean through an
// EdgeDetector; when focus is gained it measures the element and notifies
// the nearest scroll container through its scope.
type Focusable struct {
	key      string
	parent   []string
	scope    *Scope
	ref      *Ref[Measurer]
	detector *EdgeDetector
	path     []string

	onFocus func(FocusEvent)
	onBlur  func(FocusEvent)
	prop    *FocusProp

	tree       FocusTree
	unregister func()
}

// FocusableOption configures a Focusable.
type FocusableOption func(*Focusable)

// WithKey sets an explicit, stable focus key.
func WithKey(key string) FocusableOption {
	return func(f *Focusable) {
		f.key = key
	}
}

// WithParentPath sets the keys of the focusable groups enclosing the leaf.
func WithParentPath(path ...string) FocusableOption {
	return func(f *Focusable) {
		f.parent = slices.Clone(path)
	}
}

// WithOnFocus is called once each time the leaf gains focus.
func WithOnFocus(fn func(FocusEvent)) FocusableOption {
	return func(f *Focusable) {
		f.onFocus = fn
	}
}

// WithOnBlur is called once each time the leaf loses focus.
func WithOnBlur(fn func(FocusEvent)) FocusableOption {
	return func(f *Focusable) {
		f.onBlur = fn
	}
}

// WithFocusProp attaches a focus-reactive value, read back with Value.
func WithFocusProp(p FocusProp) FocusableOption {
	return func(f *Focusable) {
		f.prop = &p
	}
}

// NewFocusable creates a leaf that reports focus changes into scope. Pass
// the scope returned by the enclosing Scroll's Mount, or the container's
// root scope when the leaf is not inside any scrollable region.
//
// Without WithKey a key is generated once here and kept for the leaf's
// lifetime.
func NewFocusable(scope *Scope, opts ...FocusableOption) *Focusable {
	f := &Focusable{
		scope:    scope,
		ref:      NewRef[Measurer](),
		detector: NewEdgeDetector(false),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.key == "" {
		f.key = ulid.Make().String()
	}
	f.path = append(slices.Clone(f.parent), f.key)
	return f
}

// Key returns the leaf's focus key.
func (f *Focusable) Key() string {
	return f.key
}

// Ref returns the reference the host sets once the element is rendered.
func (f *Focusable) Ref() *Ref[Measurer] {
	return f.ref
}

// Scope returns the bus scope the leaf notifies.
func (f *Focusable) Scope() *Scope {
	return f.scope
}

// Mount registers the leaf with tree. The tree may focus the leaf during
// registration, in which case the focus edge fires before Mount returns.
func (f *Focusable) Mount(tree FocusTree) error {
	if f.unregister != nil {
		return fmt.Errorf("focusable %q already mounted", f.key)
	}
	unregister, err := tree.Register(Leaf{
		Key:     f.key,
		Parent:  f.parent,
		Ref:     f.ref,
		OnState: f.Update,
	})
	if err != nil {
		return fmt.Errorf("mount focusable: %w", err)
	}
	f.tree = tree
	f.unregister = unregister
	return nil
}

// Unmount removes the leaf from its tree and discards its transition state.
// A focused leaf fires its blur callback first.
func (f *Focusable) Unmount() {
	if f.unregister == nil {
		return
	}
	f.unregister()
	f.unregister = nil
	f.tree = nil
	// Trees that drop the leaf without a final state still end with a blur.
	f.detector.Observe(false, f.transition)
	f.detector = NewEdgeDetector(false)
}

// Update feeds the latest focus state for this leaf. It is called by the
// tree on every focus change, and fires callbacks only on transitions.
func (f *Focusable) Update(state FocusState) {
	if len(state.Path) > 0 {
		f.path = slices.Clone(state.Path)
	}
	f.detector.Observe(state.Focused, f.transition)
}

func (f *Focusable) transition(focused bool) {
	el, mounted := f.ref.Get()
	if !mounted {
		el = nil
	}
	ev := FocusEvent{Element: el, Path: slices.Clone(f.path)}

	if !focused {
		if f.onBlur != nil {
			f.onBlur(ev)
		}
		return
	}

	switch {
	case el == nil:
		debug.Log("Focusable.transition: %s gained focus before mount, skipping scroll", f.key)
	case f.scope == nil:
		debug.Log("Focusable.transition: %s has no scope, skipping scroll", f.key)
	default:
		f.scope.Bus().Notify(f.scope, FocusChange{BoundingBox: el.BoundingBox()})
	}
	if f.onFocus != nil {
		f.onFocus(ev)
	}
}

// Tap forwards a "tap to focus" request to the tree.
func (f *Focusable) Tap() bool {
	if f.tree == nil {
		return false
	}
	return f.tree.Focus(f.key)
}

// Focused reports the last observed focus state.
func (f *Focusable) Focused() bool {
	return f.detector.Value()
}

// Path returns the leaf's last known focus path.
func (f *Focusable) Path() []string {
	return slices.Clone(f.path)
}

// Value resolves the attached focus prop for the current focus state.
// ok is false when no prop is attached.
func (f *Focusable) Value() (v PropValue, ok bool) {
	if f.prop == nil {
		return PropValue{}, false
	}
	return f.prop.Resolve(f.Focused()), true
}

// Prop returns the attached focus prop, if any.
func (f *Focusable) Prop() (FocusProp, bool) {
	if f.prop == nil {
		return FocusProp{}, false
	}
	return *f.prop, true
}
