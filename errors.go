package sunbeam

import "errors"

var (
	// ErrInvalidConfig is wrapped by every configuration parsing error.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateKey is returned when two leaves register with one key.
	ErrDuplicateKey = errors.New("duplicate focusable key")

	// ErrKindMismatch is returned when focused and blurred prop values
	// are of different kinds.
	ErrKindMismatch = errors.New("focus prop kind mismatch")
)
