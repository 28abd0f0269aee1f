package keymap

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func TestFormatChord(t *testing.T) {
	cases := []struct {
		name string
		mac  bool
		want string
	}{
		{name: "Cmd-B", mac: false, want: "Ctrl-B"},
		{name: "Cmd-Alt-L", mac: false, want: "Ctrl-Alt-L"},
		{name: "Cmd-B", mac: true, want: "Cmd-B"},
		{name: "Ctrl-B", mac: true, want: "Cmd-B"},
		{name: "Ctrl-Alt-U", mac: false, want: "Ctrl-Alt-U"},
		{name: "Enter", mac: false, want: "Enter"},
		{name: "Cmd-'", mac: false, want: "Ctrl-'"},
		{name: "Cmd--", mac: false, want: "Ctrl--"},
		{name: "Shift-Cmd-Z", mac: false, want: "Shift-Ctrl-Z"},
	}
	for _, tc := range cases {
		if got := FormatChord(tc.name, tc.mac); got != tc.want {
			t.Fatalf("FormatChord(%q, mac=%v)=%q, want %q", tc.name, tc.mac, got, tc.want)
		}
	}
}

func TestNew_FormatsDefaults(t *testing.T) {
	m := New(false, nil)
	if _, ok := m.commands["Cmd-B"]; ok {
		t.Fatalf("non-mac map should not keep Cmd chords")
	}
	cmd, ok := m.Lookup("Cmd-B")
	if !ok || cmd != Action("bold") {
		t.Fatalf("Lookup(Cmd-B)=%v,%v, want bold", cmd, ok)
	}
	cmd, ok = m.Lookup("Ctrl-B")
	if !ok || cmd != Action("bold") {
		t.Fatalf("Lookup(Ctrl-B)=%v,%v, want bold", cmd, ok)
	}

	mac := New(true, nil)
	if _, ok := mac.commands["Cmd-Alt-L"]; !ok {
		t.Fatalf("mac map should keep Cmd chords")
	}
	if !mac.Mac() || m.Mac() {
		t.Fatalf("Mac() should report the formatting platform")
	}
}

func TestNew_OverridesUseSameFormatting(t *testing.T) {
	m := New(false, map[string]Command{
		"Cmd-B":  Action("italic"),
		"Ctrl-K": {},
		"Cmd-E":  Builtin(BuiltinUndo),
	})

	if cmd, _ := m.Lookup("Ctrl-B"); cmd != Action("italic") {
		t.Fatalf("Ctrl-B=%v, want italic override", cmd)
	}
	if _, ok := m.Lookup("Cmd-K"); ok {
		t.Fatalf("zero override should unbind Ctrl-K")
	}
	if cmd, _ := m.Lookup("Ctrl-E"); cmd != Builtin(BuiltinUndo) {
		t.Fatalf("Ctrl-E=%v, want undo", cmd)
	}
}

func TestMap_EntriesAndChordFor(t *testing.T) {
	m := New(true, nil)
	got := make([]string, 0)
	for _, e := range m.Entries() {
		if e.Command.Kind == KindBuiltin {
			got = append(got, e.Chord)
		}
	}
	want := []string{"Cmd-Y", "Cmd-Z", "Enter"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("builtin chords mismatch (-want +got):\n%s", diff)
	}

	chord, ok := m.ChordFor(Action("ordered-list"))
	if !ok || chord != "Cmd-Alt-L" {
		t.Fatalf("ChordFor(ordered-list)=%q,%v", chord, ok)
	}
	if _, ok := m.ChordFor(Action("nope")); ok {
		t.Fatalf("unknown command should have no chord")
	}
}

func TestParseCommand(t *testing.T) {
	cases := map[string]Command{
		"bold":          Action("bold"),
		" builtin:undo": Builtin("undo"),
		"none":          {},
		"":              {},
	}
	for in, want := range cases {
		if got := ParseCommand(in); got != want {
			t.Fatalf("ParseCommand(%q)=%v, want %v", in, got, want)
		}
	}
	if Builtin("redo").String() != "builtin:redo" || Action("bold").String() != "bold" {
		t.Fatalf("String() should round trip through ParseCommand")
	}
}

func TestKeyString(t *testing.T) {
	cases := map[string]string{
		"Ctrl-B":       "ctrl+b",
		"Cmd-B":        "ctrl+b",
		"Ctrl-Alt-L":   "alt+ctrl+l",
		"Enter":        "enter",
		"Shift-Ctrl-Z": "ctrl+Z",
		"Alt-Left":     "alt+left",
		"Shift-Tab":    "shift+tab",
	}
	for in, want := range cases {
		if got := KeyString(in); got != want {
			t.Fatalf("KeyString(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestMap_Match(t *testing.T) {
	m := New(false, nil)
	cases := []struct {
		msg  tea.KeyMsg
		want Command
	}{
		{msg: tea.KeyMsg{Type: tea.KeyCtrlB}, want: Action("bold")},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlL, Alt: true}, want: Action("ordered-list")},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlL}, want: Action("unordered-list")},
		{msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Builtin(BuiltinContinueList)},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlZ}, want: Builtin(BuiltinUndo)},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i"), Alt: true}, want: Action("italic")},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlK, Alt: true}, want: Action("image")},
	}
	for _, tc := range cases {
		got, ok := m.Match(tc.msg)
		if !ok || got != tc.want {
			t.Fatalf("Match(%q)=%v,%v, want %v", tc.msg.String(), got, ok, tc.want)
		}
	}
	if _, ok := m.Match(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); ok {
		t.Fatalf("plain rune should not match")
	}
}

// terminalKey returns the key message a terminal delivers for chord. Ctrl
// letters arrive as control characters, so Ctrl-I is reported as tab.
func terminalKey(chord string) (tea.KeyMsg, bool) {
	mods, k := splitChord(chord)
	var msg tea.KeyMsg
	ctrl := false
	for _, m := range mods {
		switch m {
		case "Cmd", "Ctrl":
			ctrl = true
		case "Alt":
			msg.Alt = true
		default:
			return msg, false
		}
	}
	switch {
	case k == "Enter" && !ctrl:
		msg.Type = tea.KeyEnter
	case len(k) == 1 && ctrl:
		c := strings.ToLower(k)[0]
		if c < 'a' || c > 'z' {
			return msg, false
		}
		msg.Type = tea.KeyType(int(tea.KeyCtrlA) + int(c-'a'))
	case len(k) == 1:
		msg.Type = tea.KeyRunes
		msg.Runes = []rune(strings.ToLower(k))
	default:
		return msg, false
	}
	return msg, true
}

func TestDefaults_ReachableFromTerminal(t *testing.T) {
	for _, mac := range []bool{false, true} {
		m := New(mac, nil)
		for _, e := range m.Entries() {
			msg, ok := terminalKey(e.Chord)
			if !ok {
				t.Fatalf("mac=%v: %q cannot be typed in a terminal", mac, e.Chord)
			}
			got, ok := m.Match(msg)
			if !ok || got != e.Command {
				t.Fatalf("mac=%v: %q arrives as %q and runs %v,%v, want %v", mac, e.Chord, msg.String(), got, ok, e.Command)
			}
		}
	}
}

func TestDefaults_AvoidControlAliases(t *testing.T) {
	aliases := map[string]bool{"ctrl+i": true, "ctrl+m": true, "ctrl+[": true, "ctrl+h": true, "ctrl+j": true}
	for _, e := range Defaults() {
		ks := strings.TrimPrefix(KeyString(FormatChord(e.Chord, false)), "alt+")
		if aliases[ks] {
			t.Fatalf("%q maps to %q, which terminals report as another key", e.Chord, ks)
		}
	}
}
