package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the cursor and editing keys. Chords bound in the keymap
// package are matched first, so a formatting chord shadows an editing key
// bound to the same keys.
type KeyMap struct {
	// Caret movement.
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding
	DocStart, DocEnd      key.Binding

	// Selection extension.
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	ShiftHome, ShiftEnd                       key.Binding

	// Text mutation.
	Backspace, Delete, Enter key.Binding

	Copy, Cut, Paste key.Binding
}

func bind(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  bind("move left", "left"),
		Right: bind("move right", "right"),
		Up:    bind("move up", "up"),
		Down:  bind("move down", "down"),
		// Terminals report word jumps as either alt or ctrl arrows.
		WordLeft:  bind("previous word", "alt+left", "ctrl+left"),
		WordRight: bind("next word", "alt+right", "ctrl+right"),
		Home:      bind("line start", "home", "ctrl+a"),
		End:       bind("line end", "end", "ctrl+e"),
		PageUp:    bind("page up", "pgup"),
		PageDown:  bind("page down", "pgdown"),
		DocStart:  bind("document start", "ctrl+home"),
		DocEnd:    bind("document end", "ctrl+end"),

		ShiftLeft:  bind("select left", "shift+left"),
		ShiftRight: bind("select right", "shift+right"),
		ShiftUp:    bind("select up", "shift+up"),
		ShiftDown:  bind("select down", "shift+down"),
		ShiftHome:  bind("select to line start", "shift+home"),
		ShiftEnd:   bind("select to line end", "shift+end"),

		Backspace: bind("delete left", "backspace", "ctrl+h"),
		Delete:    bind("delete right", "delete"),
		Enter:     bind("new line", "enter"),

		Copy:  bind("copy", "ctrl+c"),
		Cut:   bind("cut", "ctrl+x"),
		Paste: bind("paste", "ctrl+v"),
	}
}
