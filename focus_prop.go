package sunbeam

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PropKind is the declared kind of a focus-reactive value.
type PropKind uint8

const (
	// PropString holds free text.
	PropString PropKind = iota
	// PropBool holds a boolean flag.
	PropBool
	// PropNumber holds a float64.
	PropNumber
	// PropColor holds a colorful.Color.
	PropColor
)

// String returns the configuration name of the kind.
func (k PropKind) String() string {
	switch k {
	case PropBool:
		return "boolean"
	case PropNumber:
		return "number"
	case PropColor:
		return "color"
	default:
		return "string"
	}
}

// ParsePropKind parses "string", "boolean", "number" or "color".
func ParsePropKind(s string) (PropKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return PropString, nil
	case "boolean", "bool":
		return PropBool, nil
	case "number":
		return PropNumber, nil
	case "color":
		return PropColor, nil
	}
	return PropString, fmt.Errorf("%w: unknown prop kind %q", ErrInvalidConfig, s)
}

// PropValue is a value of one declared kind. Build it with StringValue,
// BoolValue, NumberValue or ColorValue; the accessor for any other kind
// returns the zero value.
type PropValue struct {
	kind  PropKind
	text  string
	flag  bool
	num   float64
	color colorful.Color
}

// StringValue creates a string prop value.
func StringValue(s string) PropValue { return PropValue{kind: PropString, text: s} }

// BoolValue creates a boolean prop value.
func BoolValue(b bool) PropValue { return PropValue{kind: PropBool, flag: b} }

// NumberValue creates a number prop value.
func NumberValue(n float64) PropValue { return PropValue{kind: PropNumber, num: n} }

// ColorValue creates a color prop value.
func ColorValue(c colorful.Color) PropValue { return PropValue{kind: PropColor, color: c} }

// ParsePropValue parses raw as a value of kind. Colors are "#rrggbb" or "#rgb".
func ParsePropValue(kind PropKind, raw string) (PropValue, error) {
	switch kind {
	case PropString:
		return StringValue(raw), nil
	case PropBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return PropValue{}, fmt.Errorf("%w: boolean prop %q: %w", ErrInvalidConfig, raw, err)
		}
		return BoolValue(b), nil
	case PropNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return PropValue{}, fmt.Errorf("%w: number prop %q: %w", ErrInvalidConfig, raw, err)
		}
		return NumberValue(n), nil
	case PropColor:
		c, err := colorful.Hex(strings.TrimSpace(raw))
		if err != nil {
			return PropValue{}, fmt.Errorf("%w: color prop %q: %w", ErrInvalidConfig, raw, err)
		}
		return ColorValue(c), nil
	}
	return PropValue{}, fmt.Errorf("%w: unknown prop kind %d", ErrInvalidConfig, kind)
}

// Kind returns the value's kind.
func (v PropValue) Kind() PropKind { return v.kind }

// Str returns the string payload.
func (v PropValue) Str() string { return v.text }

// Bool returns the boolean payload.
func (v PropValue) Bool() bool { return v.flag }

// Number returns the number payload.
func (v PropValue) Number() float64 { return v.num }

// Color returns the color payload.
func (v PropValue) Color() colorful.Color { return v.color }

// String formats the value for display.
func (v PropValue) String() string {
	switch v.kind {
	case PropBool:
		return strconv.FormatBool(v.flag)
	case PropNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case PropColor:
		return v.color.Hex()
	default:
		return v.text
	}
}

// FocusProp is a named value that depends on focus: Focused while the owning
// leaf holds focus, Blurred otherwise. The host decides how to apply it.
type FocusProp struct {
	Name    string
	Focused PropValue
	Blurred PropValue
}

// NewFocusProp creates a FocusProp. Both values must share a kind.
func NewFocusProp(name string, focused, blurred PropValue) (FocusProp, error) {
	if focused.kind != blurred.kind {
		return FocusProp{}, fmt.Errorf("%w: %s focused=%s blurred=%s", ErrKindMismatch, name, focused.kind, blurred.kind)
	}
	return FocusProp{Name: name, Focused: focused, Blurred: blurred}, nil
}

// Kind returns the kind shared by both values.
func (p FocusProp) Kind() PropKind {
	return p.Focused.kind
}

// Resolve returns the value to apply for the given focus state.
func (p FocusProp) Resolve(focused bool) PropValue {
	if focused {
		return p.Focused
	}
	return p.Blurred
}
