package motion

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Kind selects the animation model.
type Kind uint8

const (
	// Spring animates with a damped harmonic oscillator.
	Spring Kind = iota
	// Tween interpolates over a fixed duration through an easing curve.
	Tween
	// Instant jumps straight to the target.
	Instant
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case Tween:
		return "tween"
	case Instant:
		return "instant"
	default:
		return "spring"
	}
}

// ParseKind parses "spring", "tween" or "instant".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spring", "":
		return Spring, nil
	case "tween":
		return Tween, nil
	case "instant", "none":
		return Instant, nil
	}
	return Spring, fmt.Errorf("unknown transition type %q", s)
}

// Transition describes how a Value moves to a new target.
type Transition struct {
	Kind Kind

	// Spring parameters.
	Damping   float64
	Stiffness float64
	Mass      float64

	// Tween parameters.
	Duration time.Duration
	Ease     Easing
}

// DefaultSpring is the stiff, well damped spring used for scroll tracks.
func DefaultSpring() Transition {
	return Transition{Kind: Spring, Damping: 40, Stiffness: 300, Mass: 1}
}

// NewTween returns a tween transition.
func NewTween(d time.Duration, ease Easing) Transition {
	return Transition{Kind: Tween, Duration: d, Ease: ease}
}

// Validate reports parameters the integrator cannot work with.
func (t Transition) Validate() error {
	switch t.Kind {
	case Spring:
		if t.Stiffness <= 0 {
			return fmt.Errorf("spring stiffness must be positive, got %v", t.Stiffness)
		}
		// An undamped spring oscillates forever and never comes to rest.
		if t.Damping <= 0 {
			return fmt.Errorf("spring damping must be positive, got %v", t.Damping)
		}
		if t.Mass < 0 {
			return fmt.Errorf("spring mass must not be negative, got %v", t.Mass)
		}
	case Tween:
		if t.Duration < 0 {
			return fmt.Errorf("tween duration must not be negative, got %v", t.Duration)
		}
	}
	return nil
}

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Easing curves.
var (
	Linear    Easing = func(t float64) float64 { return t }
	EaseIn    Easing = func(t float64) float64 { return t * t * t }
	EaseOut   Easing = func(t float64) float64 { return 1 - math.Pow(1-t, 3) }
	EaseInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}
)

// ParseEasing parses "linear", "easeIn", "easeOut" or "easeInOut"
// (case-insensitive, dashes allowed).
func ParseEasing(s string) (Easing, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "linear":
		return Linear, nil
	case "easein":
		return EaseIn, nil
	case "easeout", "":
		return EaseOut, nil
	case "easeinout":
		return EaseInOut, nil
	}
	return nil, fmt.Errorf("unknown easing %q", s)
}
