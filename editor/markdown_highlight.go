package editor

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/ninja/internal/grapheme"
	"github.com/iw2rmb/ninja/mdstyle"
)

// MarkdownStyles maps style tags to lipgloss styles.
type MarkdownStyles struct {
	Header   lipgloss.Style
	Quote    lipgloss.Style
	ListItem lipgloss.Style
	Strong   lipgloss.Style
	Em       lipgloss.Style
	Link     lipgloss.Style
	Image    lipgloss.Style
	Code     lipgloss.Style
}

func DefaultMarkdownStyles() MarkdownStyles {
	return MarkdownStyles{
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Quote:    lipgloss.NewStyle().Foreground(lipgloss.Color("108")).Italic(true),
		ListItem: lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		Strong:   lipgloss.NewStyle().Bold(true),
		Em:       lipgloss.NewStyle().Italic(true),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Image:    lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Underline(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}
}

// MarkdownHighlighter styles lines from their Markdown tags. Lines of fenced
// code blocks with a known language are tokenized with chroma instead.
type MarkdownHighlighter struct {
	styles MarkdownStyles
	theme  *chroma.Style
}

// HighlighterOption configures a MarkdownHighlighter.
type HighlighterOption func(*MarkdownHighlighter)

// WithCodeTheme selects the chroma theme for fenced code. An empty or
// unknown name disables code tokenizing.
func WithCodeTheme(name string) HighlighterOption {
	return func(h *MarkdownHighlighter) {
		h.theme = nil
		if name == "" {
			return
		}
		if st, ok := styles.Registry[name]; ok {
			h.theme = st
		}
	}
}

const defaultCodeTheme = "monokai"

func NewMarkdownHighlighter(st MarkdownStyles, opts ...HighlighterOption) *MarkdownHighlighter {
	h := &MarkdownHighlighter{styles: st, theme: styles.Get(defaultCodeTheme)}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

func (h *MarkdownHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	if ctx.Language != "" && h.theme != nil {
		if spans, ok := h.codeSpans(ctx.Language, ctx.Text); ok {
			return spans, nil
		}
	}

	var spans []HighlightSpan
	start := 0
	for i := 1; i <= len(ctx.Tags); i++ {
		if i < len(ctx.Tags) && ctx.Tags[i] == ctx.Tags[start] {
			continue
		}
		if st, ok := h.styleFor(ctx.Tags[start]); ok {
			spans = append(spans, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: i, Style: st})
		}
		start = i
	}
	return spans, nil
}

// styleFor picks the style of the most specific tag in set. Strong and em
// combine.
func (h *MarkdownHighlighter) styleFor(set mdstyle.TagSet) (lipgloss.Style, bool) {
	switch {
	case set.Has(mdstyle.Code):
		return h.styles.Code, true
	case set.Has(mdstyle.Image):
		return h.styles.Image, true
	case set.Has(mdstyle.Link):
		return h.styles.Link, true
	case set.Has(mdstyle.Strong) && set.Has(mdstyle.Em):
		return h.styles.Strong.Inherit(h.styles.Em), true
	case set.Has(mdstyle.Strong):
		return h.styles.Strong, true
	case set.Has(mdstyle.Em):
		return h.styles.Em, true
	case set.Has(mdstyle.Header):
		return h.styles.Header, true
	case set.Has(mdstyle.Quote):
		return h.styles.Quote, true
	case set.Has(mdstyle.ListItem):
		return h.styles.ListItem, true
	}
	return lipgloss.Style{}, false
}

func (h *MarkdownHighlighter) codeSpans(lang, text string) ([]HighlightSpan, bool) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return nil, false
	}

	var spans []HighlightSpan
	col := 0
	for _, tok := range it.Tokens() {
		n := grapheme.Count(tok.Value)
		spans = append(spans, HighlightSpan{StartGraphemeCol: col, EndGraphemeCol: col + n, Style: h.tokenStyle(tok.Type)})
		col += n
	}
	return spans, true
}

func (h *MarkdownHighlighter) tokenStyle(tt chroma.TokenType) lipgloss.Style {
	entry := h.theme.Get(tt)
	st := h.styles.Code
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	return st
}
