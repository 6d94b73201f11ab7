package sunbeam

import (
	"fmt"
	"math"
	"slices"

	"github.com/grindlemire/go-sunbeam/internal/debug"
)

// Direction is a discrete navigation direction.
type Direction uint8

const (
	// DirUp moves toward smaller Top values.
	DirUp Direction = iota
	// DirDown moves toward larger Top values.
	DirDown
	// DirLeft moves toward smaller Left values.
	DirLeft
	// DirRight moves toward larger Left values.
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// FocusState is what a leaf sees each time the tree's focus changes.
type FocusState struct {
	Focused bool
	// Path lists keys from the outermost focusable group down to the leaf.
	Path []string
}

// Leaf describes a focusable leaf registering with a FocusTree.
type Leaf struct {
	Key    string
	Parent []string
	// Ref is the rendered element; it may be unset until the host mounts it.
	Ref *Ref[Measurer]
	// OnState is called with the leaf's state on registration and again on
	// every focus change in the tree, whether or not this leaf changed.
	OnState func(FocusState)
}

// FocusTree is the focus-tree capability a Focusable registers with.
type FocusTree interface {
	// Register adds a leaf. The returned function removes it again.
	Register(leaf Leaf) (unregister func(), err error)
	// Focus moves focus to the leaf with key, reporting whether it exists.
	Focus(key string) bool
}

// Navigator moves focus in response to directional input.
type Navigator interface {
	MoveUp() bool
	MoveDown() bool
	MoveLeft() bool
	MoveRight() bool
}

// Candidate is a leaf considered during a directional move.
type Candidate struct {
	Key  string
	Path []string
	Box  BoundingBox
}

// PreferredChildFunc lets the host pick which candidate receives focus when
// moving in dir from origin. Returning ok=false falls back to the nearest
// candidate. origin is nil when nothing was focused.
type PreferredChildFunc func(candidates []Candidate, origin *Candidate, dir Direction) (key string, ok bool)

// FocusManager is a reference FocusTree and Navigator. Leaves are kept in
// registration order for Next/Prev cycling, and directional moves pick the
// nearest leaf on screen in the requested direction.
//
// FocusManager is not safe for concurrent use; drive it from the update loop.
type FocusManager struct {
	leaves        []*Leaf
	current       int    // index of the focused leaf (-1 = none)
	generation    uint64 // bumped by every publish
	preferred     PreferredChildFunc
	onFocusUpdate func(path []string)
}

// Compile-time interface checks.
var (
	_ FocusTree = (*FocusManager)(nil)
	_ Navigator = (*FocusManager)(nil)
)

// ManagerOption configures a FocusManager.
type ManagerOption func(*FocusManager)

// WithPreferredChild installs a hook that chooses among move candidates.
func WithPreferredChild(fn PreferredChildFunc) ManagerOption {
	return func(m *FocusManager) {
		m.preferred = fn
	}
}

// WithOnFocusUpdate is called with the new focus path after every change.
func WithOnFocusUpdate(fn func(path []string)) ManagerOption {
	return func(m *FocusManager) {
		m.onFocusUpdate = fn
	}
}

// NewFocusManager creates an empty FocusManager.
func NewFocusManager(opts ...ManagerOption) *FocusManager {
	m := &FocusManager{current: -1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds a leaf. The first leaf registered is focused automatically.
func (m *FocusManager) Register(leaf Leaf) (func(), error) {
	if leaf.Key == "" {
		return nil, fmt.Errorf("register focusable: empty key")
	}
	if m.indexOf(leaf.Key) >= 0 {
		return nil, fmt.Errorf("register focusable %q: %w", leaf.Key, ErrDuplicateKey)
	}

	l := leaf
	l.Parent = slices.Clone(leaf.Parent)
	m.leaves = append(m.leaves, &l)
	debug.Log("FocusManager.Register: key=%s total=%d current=%d", l.Key, len(m.leaves), m.current)

	if l.OnState != nil {
		l.OnState(FocusState{Focused: false, Path: pathOf(&l)})
	}

	if m.current == -1 {
		debug.Log("FocusManager.Register: auto-focusing first leaf %s", l.Key)
		m.setCurrent(len(m.leaves) - 1)
	}

	return func() { m.unregister(l.Key) }, nil
}

// unregister removes a leaf, moving focus on if it was focused. A focused
// leaf is told it lost focus before the next leaf gains it.
func (m *FocusManager) unregister(key string) {
	idx := m.indexOf(key)
	if idx == -1 {
		return
	}

	removed := m.leaves[idx]
	wasFocused := idx == m.current
	m.leaves = slices.Delete(m.leaves, idx, idx+1)

	switch {
	case len(m.leaves) == 0:
		m.current = -1
		if wasFocused {
			blur(removed)
		}
		m.publish()
	case wasFocused:
		m.current = -1
		gen := m.generation
		blur(removed)
		if m.generation != gen {
			// The blur callback already moved focus.
			return
		}
		if len(m.leaves) == 0 {
			m.publish()
			return
		}
		next := idx
		if next >= len(m.leaves) {
			next = 0
		}
		m.setCurrent(next)
	case idx < m.current:
		// Shift current down since a leaf before it was removed
		m.current--
	}
}

// Focused returns the focused key and path, or ok=false if nothing is focused.
func (m *FocusManager) Focused() (key string, path []string, ok bool) {
	if m.current < 0 || m.current >= len(m.leaves) {
		return "", nil, false
	}
	l := m.leaves[m.current]
	return l.Key, pathOf(l), true
}

// Focus moves focus to the leaf with key.
func (m *FocusManager) Focus(key string) bool {
	idx := m.indexOf(key)
	if idx == -1 {
		return false
	}
	m.setCurrent(idx)
	return true
}

// Next moves focus to the next leaf in registration order, wrapping around.
func (m *FocusManager) Next() {
	if len(m.leaves) == 0 {
		return
	}
	m.setCurrent((m.current + 1) % len(m.leaves))
}

// Prev moves focus to the previous leaf in registration order, wrapping around.
func (m *FocusManager) Prev() {
	if len(m.leaves) == 0 {
		return
	}
	prev := m.current - 1
	if prev < 0 {
		prev = len(m.leaves) - 1
	}
	m.setCurrent(prev)
}

// MoveUp moves focus to the nearest leaf above the focused one.
func (m *FocusManager) MoveUp() bool { return m.Move(DirUp) }

// MoveDown moves focus to the nearest leaf below the focused one.
func (m *FocusManager) MoveDown() bool { return m.Move(DirDown) }

// MoveLeft moves focus to the nearest leaf left of the focused one.
func (m *FocusManager) MoveLeft() bool { return m.Move(DirLeft) }

// MoveRight moves focus to the nearest leaf right of the focused one.
func (m *FocusManager) MoveRight() bool { return m.Move(DirRight) }

// Move moves focus in dir and reports whether focus changed. With nothing
// focused, the first leaf receives focus.
func (m *FocusManager) Move(dir Direction) bool {
	if len(m.leaves) == 0 {
		return false
	}
	if m.current < 0 {
		m.setCurrent(0)
		return true
	}

	originLeaf := m.leaves[m.current]
	originBox, ok := measure(originLeaf)
	if !ok {
		debug.Log("FocusManager.Move: focused leaf %s is not mounted", originLeaf.Key)
		return false
	}
	origin := Candidate{Key: originLeaf.Key, Path: pathOf(originLeaf), Box: originBox}

	var candidates []Candidate
	for i, l := range m.leaves {
		if i == m.current {
			continue
		}
		box, ok := measure(l)
		if !ok || !inDirection(originBox, box, dir) {
			continue
		}
		candidates = append(candidates, Candidate{Key: l.Key, Path: pathOf(l), Box: box})
	}
	if len(candidates) == 0 {
		return false
	}

	target := nearest(originBox, candidates, dir)
	if m.preferred != nil {
		if key, ok := m.preferred(candidates, &origin, dir); ok && slices.ContainsFunc(candidates, func(c Candidate) bool { return c.Key == key }) {
			target = key
		}
	}

	debug.Log("FocusManager.Move: %s from %s to %s (%d candidates)", dir, origin.Key, target, len(candidates))
	return m.Focus(target)
}

// setCurrent focuses the leaf at idx and re-evaluates every leaf.
func (m *FocusManager) setCurrent(idx int) {
	if idx == m.current {
		return
	}
	m.current = idx
	m.publish()
}

// publish pushes the current state to every leaf and the update callback.
// A callback that changes focus starts a newer publish, which delivers the
// fresh state to every leaf; the older one then stops.
func (m *FocusManager) publish() {
	m.generation++
	gen := m.generation

	// Copy so callbacks may unregister leaves.
	leaves := slices.Clone(m.leaves)
	focused := -1
	if m.current >= 0 && m.current < len(m.leaves) {
		focused = m.current
	}
	for i, l := range leaves {
		if l.OnState != nil {
			l.OnState(FocusState{Focused: i == focused, Path: pathOf(l)})
		}
		if m.generation != gen {
			return
		}
	}
	if m.onFocusUpdate != nil {
		var path []string
		if focused >= 0 {
			path = pathOf(leaves[focused])
		}
		m.onFocusUpdate(path)
	}
}

func blur(l *Leaf) {
	if l.OnState != nil {
		l.OnState(FocusState{Focused: false, Path: pathOf(l)})
	}
}

func (m *FocusManager) indexOf(key string) int {
	return slices.IndexFunc(m.leaves, func(l *Leaf) bool { return l.Key == key })
}

func pathOf(l *Leaf) []string {
	path := make([]string, 0, len(l.Parent)+1)
	path = append(path, l.Parent...)
	return append(path, l.Key)
}

func measure(l *Leaf) (BoundingBox, bool) {
	if l.Ref == nil {
		return BoundingBox{}, false
	}
	m, ok := l.Ref.Get()
	if !ok || m == nil {
		return BoundingBox{}, false
	}
	return m.BoundingBox(), true
}

// inDirection reports whether box's center lies strictly past origin's
// center in dir.
func inDirection(origin, box BoundingBox, dir Direction) bool {
	ox, oy := origin.Center()
	cx, cy := box.Center()
	switch dir {
	case DirUp:
		return cy < oy
	case DirDown:
		return cy > oy
	case DirLeft:
		return cx < ox
	case DirRight:
		return cx > ox
	}
	return false
}

// nearest returns the key of the candidate closest to origin in dir. The
// gap along the direction of travel counts once, the gap across it twice,
// and the cross-axis center distance breaks ties. Equal scores keep
// registration order.
func nearest(origin BoundingBox, candidates []Candidate, dir Direction) string {
	best := ""
	bestScore := math.Inf(1)
	for _, c := range candidates {
		score := travelGap(origin, c.Box, dir) + 2*crossGap(origin, c.Box, dir) + 0.01*crossCenterDistance(origin, c.Box, dir)
		if score < bestScore {
			best, bestScore = c.Key, score
		}
	}
	return best
}

func travelGap(o, c BoundingBox, dir Direction) float64 {
	var gap float64
	switch dir {
	case DirUp:
		gap = o.Top - c.Bottom()
	case DirDown:
		gap = c.Top - o.Bottom()
	case DirLeft:
		gap = o.Left - c.Right()
	case DirRight:
		gap = c.Left - o.Right()
	}
	return max(gap, 0)
}

func crossGap(o, c BoundingBox, dir Direction) float64 {
	if dir == DirUp || dir == DirDown {
		return rangeGap(o.Left, o.Right(), c.Left, c.Right())
	}
	return rangeGap(o.Top, o.Bottom(), c.Top, c.Bottom())
}

func crossCenterDistance(o, c BoundingBox, dir Direction) float64 {
	ox, oy := o.Center()
	cx, cy := c.Center()
	if dir == DirUp || dir == DirDown {
		return math.Abs(cx - ox)
	}
	return math.Abs(cy - oy)
}

// rangeGap is the distance between [a0,a1) and [b0,b1), zero if they overlap.
func rangeGap(a0, a1, b0, b1 float64) float64 {
	switch {
	case b0 >= a1:
		return b0 - a1
	case a0 >= b1:
		return a0 - b1
	}
	return 0
}
