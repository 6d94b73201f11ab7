package sunbeam

import "strings"

// Key is the name of a key as reported by the host, e.g. "ArrowUp" or "a".
// Named keys use the DOM KeyboardEvent.key spelling so key configs written
// for browser hosts carry over unchanged.
type Key string

// Named keys.
const (
	KeyNone       Key = ""
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeySpace      Key = " "
	KeyTab        Key = "Tab"
	KeyBacktab    Key = "BackTab"
)

// aliases maps alternative spellings accepted in configuration files.
var aliases = map[string]Key{
	"up":         KeyArrowUp,
	"down":       KeyArrowDown,
	"left":       KeyArrowLeft,
	"right":      KeyArrowRight,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	"esc":        KeyEscape,
	"escape":     KeyEscape,
	"space":      KeySpace,
	"spacebar":   KeySpace,
	"tab":        KeyTab,
	"backtab":    KeyBacktab,
	"arrowup":    KeyArrowUp,
	"arrowdown":  KeyArrowDown,
	"arrowleft":  KeyArrowLeft,
	"arrowright": KeyArrowRight,
}

// ParseKey normalizes a configured key name. Multi-character names are
// matched case-insensitively against the named keys; single characters are
// kept as they are, so "j" and "J" stay distinct.
func ParseKey(s string) Key {
	if s == " " {
		return KeySpace
	}
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= 1 {
		return Key(s)
	}
	if k, ok := aliases[strings.ToLower(s)]; ok {
		return k
	}
	return Key(s)
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	}
	return string(k)
}
