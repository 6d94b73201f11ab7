package sunbeam

import (
	"strings"

	"github.com/grindlemire/go-sunbeam/internal/debug"
)

// FocusChange is published by a focusable leaf when it gains focus.
type FocusChange struct {
	// BoundingBox is the live on-screen box of the element that gained focus.
	BoundingBox BoundingBox
}

// FocusChangeHandler receives focus changes routed to a scope.
type FocusChangeHandler func(FocusChange)

func noopHandler(FocusChange) {}

// FocusChangeBus routes focus-gain notifications to the nearest enclosing
// scroll container. Scopes form an explicit chain mirroring the focusable
// tree: the root of the tree owns the bus, and every Scroll mounts a child
// scope for its subtree. A handler published on a scope shadows every handler
// above it, so a notification raised inside a nested scrollable region never
// reaches an outer one.
//
// The bus is not safe for concurrent use. It is driven from the single
// update loop that evaluates focus.
type FocusChangeBus struct {
	root   *Scope
	nextID uint64
}

// Scope is one region of the focusable tree. Each scope holds a stack of
// published handlers; the top of the stack is the scope's current handler.
type Scope struct {
	bus      *FocusChangeBus
	parent   *Scope
	name     string
	handlers []publishedHandler
}

type publishedHandler struct {
	id uint64
	fn FocusChangeHandler
}

// NewFocusChangeBus creates a bus with an empty root scope.
func NewFocusChangeBus() *FocusChangeBus {
	b := &FocusChangeBus{}
	b.root = &Scope{bus: b, name: "root"}
	return b
}

// Root returns the root scope of the bus.
func (b *FocusChangeBus) Root() *Scope {
	return b.root
}

// Child creates a scope nested inside s.
func (s *Scope) Child(name string) *Scope {
	return &Scope{bus: s.bus, parent: s, name: name}
}

// Parent returns the enclosing scope, or nil for the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Name returns the scope's name.
func (s *Scope) Name() string {
	return s.name
}

// Bus returns the bus that owns the scope.
func (s *Scope) Bus() *FocusChangeBus {
	return s.bus
}

// Path returns the scope names from the root down to s, joined with "/".
func (s *Scope) Path() string {
	var names []string
	for cur := s; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

// Publish installs handler as the current handler of scope and returns a
// function that removes it again. Removing re-exposes whatever was installed
// before, so mount and unmount keep stack discipline. The restore function is
// idempotent and only ever removes its own entry. A nil scope means the root.
func (b *FocusChangeBus) Publish(scope *Scope, handler FocusChangeHandler) (restore func()) {
	scope = b.scopeOrRoot(scope)
	if handler == nil {
		handler = noopHandler
	}

	b.nextID++
	id := b.nextID
	scope.handlers = append(scope.handlers, publishedHandler{id: id, fn: handler})
	debug.Log("FocusChangeBus.Publish: scope=%s id=%d depth=%d", scope.Path(), id, len(scope.handlers))

	return func() {
		for i := len(scope.handlers) - 1; i >= 0; i-- {
			if scope.handlers[i].id == id {
				scope.handlers = append(scope.handlers[:i], scope.handlers[i+1:]...)
				debug.Log("FocusChangeBus.restore: scope=%s id=%d depth=%d", scope.Path(), id, len(scope.handlers))
				return
			}
		}
	}
}

// Isolate publishes a no-op handler on scope. Focus changes inside the scope
// are then consumed there and never reach an outer container.
func (b *FocusChangeBus) Isolate(scope *Scope) (restore func()) {
	return b.Publish(scope, noopHandler)
}

// Handler returns the nearest handler installed on scope or one of its
// ancestors. It returns a no-op when nothing is installed.
func (b *FocusChangeBus) Handler(scope *Scope) FocusChangeHandler {
	for cur := b.scopeOrRoot(scope); cur != nil; cur = cur.parent {
		if n := len(cur.handlers); n > 0 {
			return cur.handlers[n-1].fn
		}
	}
	return noopHandler
}

// Notify delivers change to the nearest handler for scope. A change with no
// subscriber is dropped; focus is still granted, nothing scrolls.
func (b *FocusChangeBus) Notify(scope *Scope, change FocusChange) {
	scope = b.scopeOrRoot(scope)
	if !b.subscribed(scope) {
		debug.Log("FocusChangeBus.Notify: no scroll container above scope=%s, dropping", scope.Path())
		return
	}
	b.Handler(scope)(change)
}

func (b *FocusChangeBus) subscribed(scope *Scope) bool {
	for cur := scope; cur != nil; cur = cur.parent {
		if len(cur.handlers) > 0 {
			return true
		}
	}
	return false
}

func (b *FocusChangeBus) scopeOrRoot(scope *Scope) *Scope {
	if scope == nil {
		return b.root
	}
	return scope
}
