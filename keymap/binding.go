package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyString converts a chord to the key string Bubble Tea reports.
// Terminals have no Cmd modifier, so Cmd maps to ctrl like Ctrl does.
func KeyString(chord string) string {
	mods, k := splitChord(chord)
	var ctrl, alt, shift bool
	for _, m := range mods {
		switch strings.ToLower(m) {
		case "cmd", "ctrl":
			ctrl = true
		case "alt", "option":
			alt = true
		case "shift":
			shift = true
		}
	}

	k = strings.ToLower(k)
	if shift {
		if len(k) == 1 {
			k = strings.ToUpper(k)
		} else {
			k = "shift+" + k
		}
	}
	if ctrl {
		k = "ctrl+" + k
	}
	if alt {
		k = "alt+" + k
	}
	return k
}

// Binding converts a chord to a key binding with help text.
func Binding(chord, help string) key.Binding {
	return key.NewBinding(key.WithKeys(KeyString(chord)), key.WithHelp(chord, help))
}

// Bound pairs a command with its key binding.
type Bound struct {
	Command Command
	Binding key.Binding
}

// Bindings returns key bindings for every chord in the map.
func (m Map) Bindings() []Bound {
	entries := m.Entries()
	out := make([]Bound, 0, len(entries))
	for _, e := range entries {
		out = append(out, Bound{Command: e.Command, Binding: Binding(e.Chord, e.Command.String())})
	}
	return out
}

// Match returns the command bound to msg.
func (m Map) Match(msg tea.KeyMsg) (Command, bool) {
	for _, b := range m.Bindings() {
		if key.Matches(msg, b.Binding) {
			return b.Command, true
		}
	}
	return Command{}, false
}
