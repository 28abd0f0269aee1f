package mdstyle

import (
	"testing"

	"github.com/iw2rmb/ninja/buffer"
)

type textSource struct {
	text    string
	version uint64
}

func (s *textSource) Text() string        { return s.text }
func (s *textSource) TextVersion() uint64 { return s.version }

func (s *textSource) set(text string) {
	s.text = text
	s.version++
}

func styleAt(t *testing.T, text string, row, col int) string {
	t.Helper()
	c := New(&textSource{text: text})
	return c.StyleAt(buffer.Pos{Row: row, GraphemeCol: col})
}

func TestClassifier_InlineTags(t *testing.T) {
	cases := []struct {
		name string
		text string
		col  int
		want string
	}{
		{name: "plain", text: "hello", col: 2, want: ""},
		{name: "strong inside", text: "**hello**", col: 4, want: "strong"},
		{name: "strong after opening delimiter", text: "**hello**", col: 2, want: "strong"},
		{name: "strong at end", text: "**hello**", col: 9, want: "strong"},
		{name: "after strong", text: "**a** b", col: 7, want: ""},
		{name: "em", text: "say *hi* now", col: 6, want: "em"},
		{name: "underscore em", text: "_hi_", col: 2, want: "em"},
		{name: "nested", text: "**a *b* c**", col: 6, want: "strong em"},
		{name: "link", text: "see [home](http://x) now", col: 7, want: "link"},
		{name: "link target", text: "[home](http://x)", col: 10, want: "link"},
		{name: "empty link", text: "[](http://)", col: 1, want: "link"},
		{name: "image", text: "![alt](http://x)", col: 3, want: "link image"},
		{name: "empty image", text: "![](http://)", col: 2, want: "link image"},
		{name: "code span", text: "a `b` c", col: 4, want: "comment"},
		{name: "col zero reads first char", text: "**a**", col: 0, want: "strong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := styleAt(t, tc.text, 0, tc.col); got != tc.want {
				t.Fatalf("StyleAt(%q, %d)=%q, want %q", tc.text, tc.col, got, tc.want)
			}
		})
	}
}

func TestClassifier_LineTags(t *testing.T) {
	cases := []struct {
		name string
		text string
		row  int
		want string
	}{
		{name: "quote", text: "> hello", row: 0, want: "quote"},
		{name: "lazy quote", text: "> a\n> b\n> c", row: 2, want: "quote"},
		{name: "unordered", text: "* a\n* b", row: 1, want: "variable-2"},
		{name: "ordered", text: "1. a\n2. b", row: 0, want: "variable-2"},
		{name: "list in quote", text: "> * a", row: 0, want: "quote variable-2"},
		{name: "bare list marker", text: "* a\n* ", row: 1, want: "variable-2"},
		{name: "bare quote marker", text: "> ", row: 0, want: "quote"},
		{name: "heading", text: "# Title", row: 0, want: "header"},
		{name: "fence", text: "```\n* not a list\n```", row: 1, want: "comment"},
		{name: "fence line", text: "```\ncode\n```", row: 0, want: "comment"},
		{name: "paragraph", text: "a\n\nb", row: 2, want: ""},
		{name: "lazy list continuation", text: "* a\nb", row: 1, want: ""},
		{name: "lazy quote continuation", text: "> a\nb", row: 1, want: ""},
		{name: "quote in list", text: "* > a", row: 0, want: "quote variable-2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := styleAt(t, tc.text, tc.row, 0); got != tc.want {
				t.Fatalf("StyleAt(%q, row %d)=%q, want %q", tc.text, tc.row, got, tc.want)
			}
		})
	}
}

func TestClassifier_OutOfRange(t *testing.T) {
	c := New(&textSource{text: "**a**"})
	if got := c.StyleAt(buffer.Pos{Row: 3}); got != "" {
		t.Fatalf("StyleAt(row 3)=%q, want empty", got)
	}
	if got := c.StyleAt(buffer.Pos{Row: -1}); got != "" {
		t.Fatalf("StyleAt(row -1)=%q, want empty", got)
	}
	if got := styleAt(t, "", 0, 0); got != "" {
		t.Fatalf("StyleAt(empty)=%q, want empty", got)
	}
}

func TestClassifier_ReclassifiesOnTextVersion(t *testing.T) {
	src := &textSource{text: "hello"}
	c := New(src)
	p := buffer.Pos{GraphemeCol: 3}
	if got := c.StyleAt(p); got != "" {
		t.Fatalf("before=%q, want empty", got)
	}

	src.text = "**hello**"
	if got := c.StyleAt(p); got != "" {
		t.Fatalf("same version=%q, want cached empty", got)
	}

	src.set("**hello**")
	if got := c.StyleAt(p); got != "strong" {
		t.Fatalf("after=%q, want %q", got, "strong")
	}
}

func TestClassifier_LineTagsPerCluster(t *testing.T) {
	c := New(&textSource{text: "a **b** é"})
	got := c.LineTags(0)
	if len(got) != 9 {
		t.Fatalf("len=%d, want 9", len(got))
	}
	for i, set := range got {
		want := i >= 2 && i <= 6
		if set.Has(Strong) != want {
			t.Fatalf("col %d strong=%v, want %v", i, set.Has(Strong), want)
		}
	}
	if c.LineTags(5) != nil {
		t.Fatalf("LineTags(5) should be nil")
	}
}

func TestTagSet_StringOrder(t *testing.T) {
	set := TagSet(0).With(Image).With(Quote).With(Link)
	if got := set.String(); got != "quote link image" {
		t.Fatalf("String()=%q, want %q", got, "quote link image")
	}
	if TagSet(0).String() != "" {
		t.Fatalf("empty set should render empty")
	}
}

func TestClassifier_CodeLanguage(t *testing.T) {
	c := New(&textSource{text: "```go\nx := 1\n```\n\n```\nplain\n```"})
	if got := c.CodeLanguage(1); got != "go" {
		t.Fatalf("CodeLanguage(1)=%q, want %q", got, "go")
	}
	for _, row := range []int{0, 2, 5} {
		if got := c.CodeLanguage(row); got != "" {
			t.Fatalf("CodeLanguage(%d)=%q, want empty", row, got)
		}
	}
}
