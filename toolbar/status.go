package toolbar

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/ninja/buffer"
)

var wordRE = regexp.MustCompile(`[a-zA-Z0-9_\x{0392}-\x{03c9}]+|[\x{4E00}-\x{9FFF}\x{3400}-\x{4dbf}\x{f900}-\x{faff}\x{3040}-\x{309f}\x{ac00}-\x{d7af}]+`)

// WordCount counts Latin/Greek words as one each and every character of a
// run starting at or above U+4E00 as one word.
func WordCount(text string) int {
	n := 0
	for _, m := range wordRE.FindAllString(text, -1) {
		r, _ := utf8.DecodeRuneInString(m)
		if r >= 0x4E00 {
			n += utf8.RuneCountInString(m)
			continue
		}
		n++
	}
	return n
}

// Field names a status bar field.
type Field string

const (
	FieldWords  Field = "words"
	FieldLines  Field = "lines"
	FieldCursor Field = "cursor"
)

// StatusItem is one status bar field with an optional label before it.
type StatusItem struct {
	Field Field
	Text  string
}

func DefaultStatus() []StatusItem {
	return []StatusItem{
		{Field: FieldLines, Text: "lines: "},
		{Field: FieldWords, Text: "words: "},
		{Field: FieldCursor},
	}
}

// Stats are the document figures the status bar shows.
type Stats struct {
	Words  int
	Lines  int
	Cursor buffer.Pos
}

// StatusStyles controls status bar rendering.
type StatusStyles struct {
	Bar     lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Message lipgloss.Style
}

func DefaultStatusStyles() StatusStyles {
	return StatusStyles{
		Bar:     lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Statusbar renders document figures and a transient message.
type Statusbar struct {
	items  []StatusItem
	styles StatusStyles
}

func NewStatusbar(items []StatusItem, styles StatusStyles) *Statusbar {
	return &Statusbar{items: items, styles: styles}
}

// View renders the fields left and msg right-aligned within width. The
// message is truncated first when space runs out.
func (s *Statusbar) View(stats Stats, msg string, width int) string {
	parts := make([]string, 0, len(s.items))
	for _, it := range s.items {
		var v string
		switch it.Field {
		case FieldWords:
			v = strconv.Itoa(stats.Words)
		case FieldLines:
			v = strconv.Itoa(stats.Lines)
		case FieldCursor:
			v = strconv.Itoa(stats.Cursor.Row) + ":" + strconv.Itoa(stats.Cursor.GraphemeCol)
		default:
			continue
		}
		parts = append(parts, s.styles.Label.Render(it.Text)+s.styles.Value.Render(v))
	}
	left := strings.Join(parts, "  ")

	if msg == "" || width <= 0 {
		return s.styles.Bar.Render(left)
	}

	room := width - lipgloss.Width(left) - 2
	if room <= 0 {
		return s.styles.Bar.Render(left)
	}
	msg = runewidth.Truncate(msg, room, "…")
	pad := width - lipgloss.Width(left) - runewidth.StringWidth(msg)
	return s.styles.Bar.Render(left + strings.Repeat(" ", pad) + s.styles.Message.Render(msg))
}
