package termhost

import (
	"github.com/gdamore/tcell/v2"

	sunbeam "github.com/grindlemire/go-sunbeam"
)

// keyName converts a tcell key event to the key name sunbeam binds.
func keyName(ev *tcell.EventKey) sunbeam.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return sunbeam.KeyArrowUp
	case tcell.KeyDown:
		return sunbeam.KeyArrowDown
	case tcell.KeyLeft:
		return sunbeam.KeyArrowLeft
	case tcell.KeyRight:
		return sunbeam.KeyArrowRight
	case tcell.KeyEnter:
		return sunbeam.KeyEnter
	case tcell.KeyEscape:
		return sunbeam.KeyEscape
	case tcell.KeyTab:
		return sunbeam.KeyTab
	case tcell.KeyBacktab:
		return sunbeam.KeyBacktab
	case tcell.KeyRune:
		return sunbeam.Key(string(ev.Rune()))
	}
	return sunbeam.KeyNone
}

// isQuit reports whether ev should end the demo.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
