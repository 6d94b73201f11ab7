package sunbeam

import (
	"errors"
	"fmt"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/grindlemire/go-sunbeam/internal/motion"
)

// TransitionConfig describes how a Scroll animates to a new target.
// Type is "spring", "tween" or "instant".
type TransitionConfig struct {
	Type      string        `mapstructure:"type" yaml:"type"`
	Damping   float64       `mapstructure:"damping" yaml:"damping,omitempty"`
	Stiffness float64       `mapstructure:"stiffness" yaml:"stiffness,omitempty"`
	Mass      float64       `mapstructure:"mass" yaml:"mass,omitempty"`
	Duration  time.Duration `mapstructure:"duration" yaml:"duration,omitempty"`
	Ease      string        `mapstructure:"ease" yaml:"ease,omitempty"`
}

// SpringTransition returns a spring transition config.
func SpringTransition(damping, stiffness float64) TransitionConfig {
	return TransitionConfig{Type: "spring", Damping: damping, Stiffness: stiffness, Mass: 1}
}

// TweenTransition returns a fixed-duration eased transition config.
func TweenTransition(d time.Duration, ease string) TransitionConfig {
	return TransitionConfig{Type: "tween", Duration: d, Ease: ease}
}

// InstantTransition jumps straight to each new target.
func InstantTransition() TransitionConfig {
	return TransitionConfig{Type: "instant"}
}

// DefaultTransition is a spring with damping 40 and stiffness 300.
func DefaultTransition() TransitionConfig {
	return SpringTransition(40, 300)
}

func (c TransitionConfig) build() (motion.Transition, error) {
	kind, err := motion.ParseKind(c.Type)
	if err != nil {
		return motion.Transition{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var t motion.Transition
	switch kind {
	case motion.Spring:
		t = motion.Transition{Kind: motion.Spring, Damping: c.Damping, Stiffness: c.Stiffness, Mass: c.Mass}
	case motion.Tween:
		ease, err := motion.ParseEasing(c.Ease)
		if err != nil {
			return motion.Transition{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		t = motion.NewTween(c.Duration, ease)
	default:
		t = motion.Transition{Kind: motion.Instant}
	}

	if err := t.Validate(); err != nil {
		return motion.Transition{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return t, nil
}

// ScrollConfig is the serializable configuration of a Scroll. None of it
// changes which element is revealed except Direction and the stickiness
// settings; the rest is presentation.
type ScrollConfig struct {
	Direction            string           `mapstructure:"direction" yaml:"direction"`
	VerticalStickiness   string           `mapstructure:"vertical_stickiness" yaml:"vertical_stickiness"`
	HorizontalStickiness string           `mapstructure:"horizontal_stickiness" yaml:"horizontal_stickiness"`
	Overflow             bool             `mapstructure:"overflow" yaml:"overflow"`
	Transition           TransitionConfig `mapstructure:"transition" yaml:"transition"`
	Fill                 string           `mapstructure:"fill" yaml:"fill"`
}

// DefaultScrollConfig follows focus on both axes with auto stickiness,
// visible overflow, the default spring and no fill.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		Direction:            "both",
		VerticalStickiness:   "auto",
		HorizontalStickiness: "auto",
		Overflow:             true,
		Transition:           DefaultTransition(),
		Fill:                 "none",
	}
}

// Policy parses the autoscroll policy out of the config.
func (c ScrollConfig) Policy() (Policy, error) {
	dir, err := ParseScrollDirection(c.Direction)
	if err != nil {
		return Policy{}, err
	}
	v, err := ParseStickiness(c.VerticalStickiness)
	if err != nil {
		return Policy{}, fmt.Errorf("vertical: %w", err)
	}
	h, err := ParseStickiness(c.HorizontalStickiness)
	if err != nil {
		return Policy{}, fmt.Errorf("horizontal: %w", err)
	}
	return Policy{Direction: dir, Vertical: v, Horizontal: h}, nil
}

// FillColor parses Fill. ok is false for "none" or an empty string.
func (c ScrollConfig) FillColor() (col colorful.Color, ok bool, err error) {
	fill := strings.TrimSpace(c.Fill)
	if fill == "" || strings.EqualFold(fill, "none") {
		return colorful.Color{}, false, nil
	}
	col, err = colorful.Hex(fill)
	if err != nil {
		return colorful.Color{}, false, fmt.Errorf("%w: fill %q: %w", ErrInvalidConfig, c.Fill, err)
	}
	return col, true, nil
}

// Validate checks every field and reports all problems at once.
func (c ScrollConfig) Validate() error {
	var errs []error
	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Transition.build(); err != nil {
		errs = append(errs, fmt.Errorf("transition: %w", err))
	}
	if _, _, err := c.FillColor(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
