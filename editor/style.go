package editor

import "github.com/charmbracelet/lipgloss"

// Style holds the content area styles. Markdown styling comes from the
// Highlighter and is layered under Selection and Cursor.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// LineNumber styles the gutter numbers; CurrentLineNumber the cursor row.
	LineNumber        lipgloss.Style
	CurrentLineNumber lipgloss.Style
	Gutter            lipgloss.Style

	// PickerTitle styles the header row shown above the upload file picker.
	PickerTitle lipgloss.Style
}

var (
	dimColor    = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	brightColor = lipgloss.AdaptiveColor{Light: "235", Dark: "250"}
	selectColor = lipgloss.AdaptiveColor{Light: "253", Dark: "237"}
)

func DefaultStyle() Style {
	return Style{
		Text:              lipgloss.NewStyle(),
		Selection:         lipgloss.NewStyle().Background(selectColor),
		Cursor:            lipgloss.NewStyle().Reverse(true),
		LineNumber:        lipgloss.NewStyle().Foreground(dimColor),
		CurrentLineNumber: lipgloss.NewStyle().Foreground(brightColor).Bold(true),
		Gutter:            lipgloss.NewStyle().Foreground(dimColor),
		PickerTitle:       lipgloss.NewStyle().Foreground(brightColor).Bold(true),
	}
}
