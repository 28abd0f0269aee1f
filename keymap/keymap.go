// Package keymap maps chord names such as "Cmd-B" to toolbar actions and
// built-in editor commands.
//
// Chords use the "Mod-Mod-Key" form. FormatChord rewrites them for the
// platform: Cmd becomes Ctrl off Mac and Ctrl becomes Cmd on Mac. Defaults
// and overrides are formatted the same way before they are merged.
package keymap

import (
	"sort"
	"strings"
)

// Kind tells an action from a built-in command.
type Kind uint8

const (
	KindAction Kind = iota + 1
	KindBuiltin
)

// Command is what a chord triggers.
type Command struct {
	Kind Kind
	Name string
}

// Action returns a command running the named toolbar action.
func Action(name string) Command { return Command{Kind: KindAction, Name: name} }

// Builtin returns a command running the named editor command.
func Builtin(name string) Command { return Command{Kind: KindBuiltin, Name: name} }

func (c Command) IsZero() bool { return c == Command{} }

func (c Command) String() string {
	switch c.Kind {
	case KindAction:
		return c.Name
	case KindBuiltin:
		return "builtin:" + c.Name
	}
	return ""
}

// ParseCommand reads the config form of a command: "builtin:<name>" for a
// built-in, "none" or "" to unbind, anything else names an action.
func ParseCommand(s string) Command {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "none":
		return Command{}
	case strings.HasPrefix(s, "builtin:"):
		return Builtin(strings.TrimPrefix(s, "builtin:"))
	}
	return Action(s)
}

// Action names beyond the Markdown constructs.
const ActionUpload = "upload"

// Built-in command names.
const (
	BuiltinContinueList = "newlineAndIndentContinueMarkdownList"
	BuiltinUndo         = "undo"
	BuiltinRedo         = "redo"
)

// Entry is one chord binding.
type Entry struct {
	Chord   string
	Command Command
}

// Defaults returns the unformatted default bindings. Every chord is one a
// terminal can report: Ctrl-I, Ctrl-M and Ctrl-[ arrive as tab, enter and
// esc, and Ctrl with punctuation is not sent at all.
func Defaults() []Entry {
	return []Entry{
		{Chord: "Cmd-K", Command: Action("link")},
		{Chord: "Cmd-Alt-K", Command: Action("image")},
		{Chord: "Cmd-B", Command: Action("bold")},
		{Chord: "Alt-I", Command: Action("italic")},
		{Chord: "Alt-'", Command: Action("quote")},
		{Chord: "Cmd-L", Command: Action("unordered-list")},
		{Chord: "Cmd-Alt-L", Command: Action("ordered-list")},
		{Chord: "Cmd-Alt-U", Command: Action(ActionUpload)},
		{Chord: "Cmd-Z", Command: Builtin(BuiltinUndo)},
		{Chord: "Cmd-Y", Command: Builtin(BuiltinRedo)},
		{Chord: "Enter", Command: Builtin(BuiltinContinueList)},
	}
}

// FormatChord rewrites the platform modifier of name.
func FormatChord(name string, mac bool) string {
	mods, key := splitChord(name)
	from, to := "Cmd", "Ctrl"
	if mac {
		from, to = "Ctrl", "Cmd"
	}
	for i, m := range mods {
		if m == from {
			mods[i] = to
		}
	}
	return strings.Join(append(mods, key), "-")
}

// splitChord separates the modifiers from the key. A trailing "-" key, as
// in "Cmd--", is kept.
func splitChord(name string) (mods []string, key string) {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, "--") {
		key = "-"
		name = strings.TrimSuffix(name, "--")
		if name == "" {
			return nil, key
		}
		return strings.Split(name, "-"), key
	}
	parts := strings.Split(name, "-")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// Map holds formatted chords and their commands.
type Map struct {
	mac      bool
	commands map[string]Command
}

// New formats the defaults and overrides for the platform and merges them.
// An override replaces the command of the same formatted chord; a zero
// command removes the chord.
func New(mac bool, overrides map[string]Command) Map {
	m := Map{mac: mac, commands: make(map[string]Command)}
	for _, e := range Defaults() {
		m.commands[FormatChord(e.Chord, mac)] = e.Command
	}
	for chord, cmd := range overrides {
		formatted := FormatChord(chord, mac)
		if cmd.IsZero() {
			delete(m.commands, formatted)
			continue
		}
		m.commands[formatted] = cmd
	}
	return m
}

// Mac reports the platform the map was formatted for.
func (m Map) Mac() bool { return m.mac }

// Lookup returns the command bound to chord, formatting it first.
func (m Map) Lookup(chord string) (Command, bool) {
	cmd, ok := m.commands[FormatChord(chord, m.mac)]
	return cmd, ok
}

// Entries returns the bindings sorted by chord.
func (m Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.commands))
	for chord, cmd := range m.commands {
		out = append(out, Entry{Chord: chord, Command: cmd})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Chord < out[j].Chord })
	return out
}

// ChordFor returns the first chord, in sorted order, bound to cmd.
func (m Map) ChordFor(cmd Command) (string, bool) {
	for _, e := range m.Entries() {
		if e.Command == cmd {
			return e.Chord, true
		}
	}
	return "", false
}
