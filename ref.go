package sunbeam

import "sync"

// Ref is a reference to something the host mounts later, such as the
// rendered element behind a Focusable or the viewport of a Scroll.
// It is empty until Set is called and may be cleared again on unmount.
// Thread-safe.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

// NewRef creates a new empty Ref.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Set stores v in this ref.
func (r *Ref[T]) Set(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
	r.set = true
}

// Clear empties the ref, typically when the referenced element unmounts.
func (r *Ref[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.value = zero
	r.set = false
}

// Get returns the referenced value and whether it has been set.
func (r *Ref[T]) Get() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.set
}

// IsSet returns true if the ref currently holds a value.
func (r *Ref[T]) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set
}
