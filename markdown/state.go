package markdown

import (
	"strings"

	"github.com/iw2rmb/ninja/buffer"
)

// Style tags reported by a Document's classifier.
const (
	TagStrong   = "strong"
	TagEm       = "em"
	TagQuote    = "quote"
	TagLink     = "link"
	TagImage    = "image"
	TagListItem = "variable-2"
)

// State is the set of constructs in effect at a position. It is computed
// fresh for each operation and never cached across edits.
type State struct {
	Bold          bool
	Italic        bool
	Quote         bool
	Link          bool
	Image         bool
	UnorderedList bool
	OrderedList   bool
}

// Inspect classifies the constructs active at p. A missing or empty style
// yields the zero State.
func Inspect(doc Document, p buffer.Pos) State {
	if doc == nil {
		return State{}
	}
	return ParseState(doc.StyleAt(p), doc.Line(p.Row))
}

// ParseState maps a space-separated style string to a State. line is the
// text of the line the style was read from; it decides which list kind a
// list-item tag means. Unknown tags are ignored.
func ParseState(style, line string) State {
	var s State
	for _, tag := range strings.Fields(style) {
		switch tag {
		case TagStrong:
			s.Bold = true
		case TagEm:
			s.Italic = true
		case TagQuote:
			s.Quote = true
		case TagLink:
			s.Link = true
		case TagImage:
			s.Image = true
		case TagListItem:
			if orderedLineRE.MatchString(line) {
				s.OrderedList = true
			} else {
				s.UnorderedList = true
			}
		}
	}
	return s
}

// Active reports whether c is in effect. Image shares the link detection.
func (s State) Active(c Construct) bool {
	switch c {
	case Bold:
		return s.Bold
	case Italic:
		return s.Italic
	case Quote:
		return s.Quote
	case UnorderedList:
		return s.UnorderedList
	case OrderedList:
		return s.OrderedList
	case Link, Image:
		return s.Link
	}
	return false
}

// Block returns the block construct in effect, if any. At most one block
// construct is assumed per line; quote wins over lists.
func (s State) Block() (Construct, bool) {
	switch {
	case s.Quote:
		return Quote, true
	case s.UnorderedList:
		return UnorderedList, true
	case s.OrderedList:
		return OrderedList, true
	}
	return 0, false
}

// Constructs lists the active constructs in declaration order.
func (s State) Constructs() []Construct {
	var out []Construct
	for c := Bold; c <= Image; c++ {
		if c == Image {
			if s.Image {
				out = append(out, c)
			}
			continue
		}
		if s.Active(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s State) IsZero() bool { return s == State{} }
