package editor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/ninja/mdstyle"
)

func tagsOf(sets ...mdstyle.TagSet) []mdstyle.TagSet { return sets }

func TestMarkdownHighlighter_MergesRunsOfEqualTags(t *testing.T) {
	r := testRenderer()
	st := MarkdownStyles{
		Strong: r.NewStyle().Bold(true),
		Em:     r.NewStyle().Italic(true),
		Quote:  r.NewStyle().Faint(true),
	}
	h := NewMarkdownHighlighter(st)

	strong := mdstyle.TagSet(0).With(mdstyle.Strong)
	quote := mdstyle.TagSet(0).With(mdstyle.Quote)
	spans, err := h.HighlightLine(LineContext{
		Text: "ab cd",
		Tags: tagsOf(0, strong, strong, quote, quote),
	})
	if err != nil {
		t.Fatalf("HighlightLine: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("spans=%d, want 2", len(spans))
	}
	if spans[0].StartGraphemeCol != 1 || spans[0].EndGraphemeCol != 3 || !spans[0].Style.GetBold() {
		t.Fatalf("span 0=[%d,%d) bold=%v, want [1,3) bold", spans[0].StartGraphemeCol, spans[0].EndGraphemeCol, spans[0].Style.GetBold())
	}
	if spans[1].StartGraphemeCol != 3 || spans[1].EndGraphemeCol != 5 {
		t.Fatalf("span 1=[%d,%d), want [3,5)", spans[1].StartGraphemeCol, spans[1].EndGraphemeCol)
	}
}

func TestMarkdownHighlighter_StylePrecedence(t *testing.T) {
	r := testRenderer()
	st := MarkdownStyles{
		Link:   r.NewStyle().Underline(true),
		Image:  r.NewStyle().Blink(true),
		Strong: r.NewStyle().Bold(true),
		Em:     r.NewStyle().Italic(true),
		Code:   r.NewStyle().Faint(true),
	}
	h := NewMarkdownHighlighter(st, WithCodeTheme(""))

	cases := []struct {
		name string
		set  mdstyle.TagSet
		want lipgloss.Style
	}{
		{name: "image over link", set: mdstyle.TagSet(0).With(mdstyle.Link).With(mdstyle.Image), want: st.Image},
		{name: "code over strong", set: mdstyle.TagSet(0).With(mdstyle.Strong).With(mdstyle.Code), want: st.Code},
		{name: "em", set: mdstyle.TagSet(0).With(mdstyle.Em), want: st.Em},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.styleFor(tc.set)
			if !ok {
				t.Fatalf("styleFor(%v) not styled", tc.set)
			}
			if got.Render("x") != tc.want.Render("x") {
				t.Fatalf("render=%q, want %q", got.Render("x"), tc.want.Render("x"))
			}
		})
	}

	both := mdstyle.TagSet(0).With(mdstyle.Strong).With(mdstyle.Em)
	got, _ := h.styleFor(both)
	if !got.GetBold() || !got.GetItalic() {
		t.Fatalf("strong+em bold=%v italic=%v, want both", got.GetBold(), got.GetItalic())
	}
	if _, ok := h.styleFor(0); ok {
		t.Fatalf("empty tag set should not be styled")
	}
}

func TestMarkdownHighlighter_TokenizesFencedCode(t *testing.T) {
	h := NewMarkdownHighlighter(DefaultMarkdownStyles())
	text := "x := 1"

	spans, err := h.HighlightLine(LineContext{Text: text, Language: "go"})
	if err != nil {
		t.Fatalf("HighlightLine: %v", err)
	}
	if len(spans) < 2 {
		t.Fatalf("spans=%d, want several tokens", len(spans))
	}
	if spans[0].StartGraphemeCol != 0 {
		t.Fatalf("first span starts at %d, want 0", spans[0].StartGraphemeCol)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].StartGraphemeCol != spans[i-1].EndGraphemeCol {
			t.Fatalf("span %d starts at %d, previous ends at %d", i, spans[i].StartGraphemeCol, spans[i-1].EndGraphemeCol)
		}
	}
}

func TestMarkdownHighlighter_UnknownLanguageFallsBackToTags(t *testing.T) {
	r := testRenderer()
	st := MarkdownStyles{Code: r.NewStyle().Faint(true)}
	h := NewMarkdownHighlighter(st)
	code := mdstyle.TagSet(0).With(mdstyle.Code)

	spans, _ := h.HighlightLine(LineContext{
		Text:     "ab",
		Language: "no-such-language",
		Tags:     tagsOf(code, code),
	})
	if len(spans) != 1 || spans[0].EndGraphemeCol != 2 {
		t.Fatalf("spans=%+v, want one code span", spans)
	}
}
