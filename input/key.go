package input

import "github.com/gdamore/tcell/v2"

// Key identifies a paddle control key
type Key uint8

const (
	KeyNone Key = iota
	KeyW
	KeyS
	KeyArrowUp
	KeyArrowDown

	keyCount
)

// Translate maps a terminal key event to a paddle control key.
// Returns false for keys the simulation does not consume.
func Translate(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyArrowUp, true
	case tcell.KeyDown:
		return KeyArrowDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return KeyW, true
		case 's', 'S':
			return KeyS, true
		}
	}
	return KeyNone, false
}
