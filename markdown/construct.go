package markdown

import "regexp"

// Construct names a Markdown styling rule the engine can toggle.
type Construct uint8

const (
	Bold Construct = iota + 1
	Italic
	Quote
	UnorderedList
	OrderedList
	Link
	Image
)

var constructNames = map[Construct]string{
	Bold:          "bold",
	Italic:        "italic",
	Quote:         "quote",
	UnorderedList: "unordered-list",
	OrderedList:   "ordered-list",
	Link:          "link",
	Image:         "image",
}

func (c Construct) String() string {
	if name, ok := constructNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseConstruct maps a toolbar/keymap name to a Construct.
func ParseConstruct(name string) (Construct, bool) {
	for c, n := range constructNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Kind groups constructs by how their markup is applied.
type Kind uint8

const (
	KindInline Kind = iota + 1
	KindBlock
	KindDraw
)

// Descriptor is the static markup record of one construct. Match detects and
// removes existing markup; Prefix and Suffix are inserted.
//
// Inline constructs remove markup with Head (applied to the text before the
// caret) and Tail (applied to the text after it); both keep groups 1 and 3.
// Block constructs remove with Match keeping group 1 (leading whitespace).
type Descriptor struct {
	Construct   Construct
	Kind        Kind
	Match       *regexp.Regexp
	Head        *regexp.Regexp
	Tail        *regexp.Regexp
	Prefix      string
	Suffix      string
	CaretOffset int
}

// PlaceholderTarget is the link target drawn until a real URL is known.
const PlaceholderTarget = "http://"

var (
	linkMarkupRE  = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)]*)\)`)
	orderedLineRE = regexp.MustCompile(`^\s*\d+\.\s`)
)

var descriptors = map[Construct]Descriptor{
	Bold: {
		Construct:   Bold,
		Kind:        KindInline,
		Head:        regexp.MustCompile(`^(.*)?(\*|_){2}(\S+.*)?$`),
		Tail:        regexp.MustCompile(`^(.*\S+)?(\*|_){2}(\s+.*)?$`),
		Prefix:      "**",
		Suffix:      "**",
		CaretOffset: 2,
	},
	Italic: {
		Construct:   Italic,
		Kind:        KindInline,
		Head:        regexp.MustCompile(`^(.*)?(\*|_)(\S+.*)?$`),
		Tail:        regexp.MustCompile(`^(.*\S+)?(\*|_)(\s+.*)?$`),
		Prefix:      "*",
		Suffix:      "*",
		CaretOffset: 1,
	},
	Quote: {
		Construct: Quote,
		Kind:      KindBlock,
		Match:     regexp.MustCompile(`^(\s*)>\s+`),
		Prefix:    "> ",
	},
	UnorderedList: {
		Construct: UnorderedList,
		Kind:      KindBlock,
		Match:     regexp.MustCompile(`^(\s*)[*\-+]\s+`),
		Prefix:    "* ",
	},
	OrderedList: {
		Construct: OrderedList,
		Kind:      KindBlock,
		Match:     regexp.MustCompile(`^(\s*)\d+\.\s+`),
		Prefix:    ". ", // preceded by the item number
	},
	Link: {
		Construct:   Link,
		Kind:        KindDraw,
		Match:       linkMarkupRE,
		Prefix:      "[",
		Suffix:      "](" + PlaceholderTarget + ")",
		CaretOffset: 1,
	},
	Image: {
		Construct:   Image,
		Kind:        KindDraw,
		Match:       linkMarkupRE,
		Prefix:      "![",
		Suffix:      "](" + PlaceholderTarget + ")",
		CaretOffset: 2,
	},
}

// Describe returns the descriptor of c.
func Describe(c Construct) (Descriptor, bool) {
	d, ok := descriptors[c]
	return d, ok
}
