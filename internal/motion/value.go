package motion

import (
	"math"
	"time"
)

const (
	// springStep is the fixed integration step; larger frame deltas are
	// split into several steps to keep stiff springs stable.
	springStep = time.Second / 240

	restDelta = 0.01
	restSpeed = 0.01
)

// Value is an animated scalar.
type Value struct {
	transition Transition

	current  float64
	velocity float64
	target   float64

	// Tween state.
	from    float64
	elapsed time.Duration

	active bool
}

// NewValue creates a Value resting at initial.
func NewValue(t Transition, initial float64) *Value {
	if t.Kind == Spring && t.Mass <= 0 {
		t.Mass = 1
	}
	if t.Kind == Tween && t.Ease == nil {
		t.Ease = EaseOut
	}
	return &Value{transition: t, current: initial, target: initial}
}

// Get returns the instantaneous value.
func (v *Value) Get() float64 {
	return v.current
}

// Target returns the value being animated to.
func (v *Value) Target() float64 {
	return v.target
}

// Velocity returns the current velocity in units per second.
func (v *Value) Velocity() float64 {
	return v.velocity
}

// Active reports whether the value is still moving.
func (v *Value) Active() bool {
	return v.active
}

// AnimateTo retargets the animation. Motion continues from the current
// position; springs also keep their velocity.
func (v *Value) AnimateTo(target float64) {
	v.target = target
	switch v.transition.Kind {
	case Instant:
		v.Jump(target)
		return
	case Tween:
		if v.transition.Duration <= 0 {
			v.Jump(target)
			return
		}
		v.from = v.current
		v.elapsed = 0
	}
	v.active = v.current != target || v.velocity != 0
}

// Jump moves to x immediately and stops any animation.
func (v *Value) Jump(x float64) {
	v.current = x
	v.target = x
	v.velocity = 0
	v.active = false
}

// Stop abandons the animation where it is.
func (v *Value) Stop() {
	v.velocity = 0
	v.active = false
}

// Step advances the animation by dt and reports whether the value changed.
func (v *Value) Step(dt time.Duration) bool {
	if !v.active || dt <= 0 {
		return false
	}
	before := v.current

	switch v.transition.Kind {
	case Tween:
		v.stepTween(dt)
	case Spring:
		v.stepSpring(dt)
	default:
		v.Jump(v.target)
	}

	return v.current != before
}

func (v *Value) stepTween(dt time.Duration) {
	v.elapsed += dt
	progress := float64(v.elapsed) / float64(v.transition.Duration)
	if progress >= 1 {
		v.Jump(v.target)
		return
	}
	v.current = v.from + (v.target-v.from)*v.transition.Ease(progress)
}

func (v *Value) stepSpring(dt time.Duration) {
	t := v.transition
	for dt > 0 {
		step := min(dt, springStep)
		dt -= step
		secs := step.Seconds()

		// Semi-implicit Euler on F = -k*x - c*v.
		displacement := v.current - v.target
		accel := (-t.Stiffness*displacement - t.Damping*v.velocity) / t.Mass
		v.velocity += accel * secs
		v.current += v.velocity * secs

		if math.Abs(v.current-v.target) < restDelta && math.Abs(v.velocity) < restSpeed {
			v.Jump(v.target)
			return
		}
	}
}
