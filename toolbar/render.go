package toolbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/markdown"
)

// Styles controls toolbar rendering.
type Styles struct {
	Bar       lipgloss.Style
	Item      lipgloss.Style
	Active    lipgloss.Style
	Separator lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Bar:       lipgloss.NewStyle(),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

const itemGap = " "

// Toolbar renders items with active highlighting.
type Toolbar struct {
	items  []Item
	keys   keymap.Map
	styles Styles
}

// New returns a toolbar over items. Hints are read from keys.
func New(items []Item, keys keymap.Map, styles Styles) *Toolbar {
	return &Toolbar{items: items, keys: keys, styles: styles}
}

func (t *Toolbar) Items() []Item { return t.items }

// View renders the toolbar for state. Trailing items that do not fit in
// width are dropped; width <= 0 disables fitting.
func (t *Toolbar) View(state markdown.State, width int) string {
	parts := make([]string, 0, len(t.items))
	for _, it := range t.items {
		parts = append(parts, t.renderItem(it, state))
	}

	out := strings.Join(parts, itemGap)
	for width > 0 && len(parts) > 0 && lipgloss.Width(out) > width {
		parts = parts[:len(parts)-1]
		out = strings.Join(parts, itemGap)
	}
	return t.styles.Bar.Render(out)
}

func (t *Toolbar) renderItem(it Item, state markdown.State) string {
	switch it := it.(type) {
	case Separator:
		return t.styles.Separator.Render(it.Label)
	case Action:
		if Active(it, state) {
			return t.styles.Active.Render(it.Label)
		}
		return t.styles.Item.Render(it.Label)
	}
	return ""
}

// ActionAt returns the action rendered at cell x of the toolbar line.
func (t *Toolbar) ActionAt(x int) (Action, bool) {
	if x < 0 {
		return Action{}, false
	}
	var plain markdown.State
	gap := lipgloss.Width(itemGap)
	cur := 0
	for _, it := range t.items {
		w := lipgloss.Width(t.renderItem(it, plain))
		if x >= cur && x < cur+w {
			a, ok := it.(Action)
			return a, ok
		}
		cur += w + gap
	}
	return Action{}, false
}

// Help returns the help text of a with its chord hint, if bound.
func (t *Toolbar) Help(a Action) string {
	chord, ok := t.keys.ChordFor(a.Command())
	if !ok {
		return a.Help
	}
	return a.Help + " (" + Hint(chord, t.keys.Mac()) + ")"
}

// Hint renders a chord for display: Cmd becomes ⌘, and Alt becomes ⌥ on
// Mac.
func Hint(chord string, mac bool) string {
	chord = strings.ReplaceAll(chord, "Cmd", "⌘")
	if mac {
		chord = strings.ReplaceAll(chord, "Alt", "⌥")
	}
	return chord
}
