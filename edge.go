package sunbeam

// EdgeDetector turns a boolean that is re-evaluated over and over (once per
// update cycle) into discrete transitions. It fires once when the value flips
// from false to true or true to false and stays quiet while it is stable.
//
// The detector is seeded with the value that holds when it is created, so a
// value that starts out true does not produce a transition on its first
// observation.
type EdgeDetector struct {
	last bool
}

// NewEdgeDetector creates a detector seeded with initial.
func NewEdgeDetector(initial bool) *EdgeDetector {
	return &EdgeDetector{last: initial}
}

// Observe records value and calls onChange(value) if it differs from the
// previous observation. It returns true when a transition happened.
// A nil onChange still records the value.
func (d *EdgeDetector) Observe(value bool, onChange func(bool)) bool {
	if value == d.last {
		return false
	}
	d.last = value
	if onChange != nil {
		onChange(value)
	}
	return true
}

// Value returns the last observed value.
func (d *EdgeDetector) Value() bool {
	return d.last
}
