package ui

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// Action names understood by Controller.Do.
const (
	ActionUndo    = "undo"
	ActionClear   = "clear"
	ActionNext    = "next"
	ActionPrev    = "prev"
	ActionSave    = "save"
	ActionCopy    = "copy"
	ActionCopyURI = "copyuri"
	ActionQuit    = "quit"
	// ActionBrush is a prefix; "brush:cheetos" selects that brush.
	ActionBrush = "brush:"
)

const modMask = key.ModControl | key.ModShift

// Keymap maps shortcuts to action names.
type Keymap map[KeyShortcut]string

func (km Keymap) bindRune(r rune, mods key.Modifiers, action string) {
	km[KeyShortcut{Rune: r, Modifiers: mods}] = action
}

func (km Keymap) bindCode(c key.Code, action string) {
	km[KeyShortcut{Rune: -1, Code: c}] = action
}

// DefaultKeymap binds the number keys to brushes in order, plus the fixed
// editing shortcuts.
func DefaultKeymap(brushes []string) Keymap {
	km := Keymap{}
	km.bindRune('u', 0, ActionUndo)
	km.bindRune('z', key.ModControl, ActionUndo)
	km.bindRune('c', 0, ActionClear)
	km.bindRune('s', key.ModControl, ActionSave)
	km.bindRune('c', key.ModControl, ActionCopy)
	km.bindRune('c', modMask, ActionCopyURI)
	km.bindRune('q', 0, ActionQuit)
	km.bindCode(key.CodeLeftArrow, ActionPrev)
	km.bindCode(key.CodeRightArrow, ActionNext)
	km.bindCode(key.CodeEscape, ActionQuit)
	for i, name := range brushes {
		if i >= 9 {
			break
		}
		km.bindRune(rune('1'+i), 0, ActionBrush+name)
	}
	return km
}

// Lookup resolves a key press. Letters match case-insensitively and only the
// control and shift modifiers are significant. Shift is ignored for bindings
// that do not name it.
func (km Keymap) Lookup(e key.Event) (string, bool) {
	if e.Direction == key.DirRelease {
		return "", false
	}
	mods := e.Modifiers & modMask
	r := e.Rune
	if r > 0 && r <= 26 && mods&key.ModControl != 0 {
		// some drivers deliver ctrl+letter as the ASCII control character
		r = 'a' + r - 1
	}
	if r < 0 {
		a, ok := km[KeyShortcut{Rune: -1, Code: e.Code}]
		return a, ok
	}
	r = unicode.ToLower(r)
	if a, ok := km[KeyShortcut{Rune: r, Modifiers: mods}]; ok {
		return a, true
	}
	a, ok := km[KeyShortcut{Rune: r, Modifiers: mods &^ key.ModShift}]
	return a, ok
}
