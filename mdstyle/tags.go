package mdstyle

import "strings"

// Tag is one style tag.
type Tag string

const (
	Header   Tag = "header"
	Quote    Tag = "quote"
	ListItem Tag = "variable-2"
	Strong   Tag = "strong"
	Em       Tag = "em"
	Link     Tag = "link"
	Image    Tag = "image"
	Code     Tag = "comment"
)

var tagOrder = []Tag{Header, Quote, ListItem, Strong, Em, Link, Image, Code}

// TagSet is a small set of tags.
type TagSet uint16

func bit(t Tag) TagSet {
	for i, o := range tagOrder {
		if o == t {
			return 1 << i
		}
	}
	return 0
}

func (s TagSet) With(t Tag) TagSet { return s | bit(t) }

func (s TagSet) Has(t Tag) bool { return s&bit(t) != 0 }

func (s TagSet) Tags() []Tag {
	var out []Tag
	for i, t := range tagOrder {
		if s&(1<<i) != 0 {
			out = append(out, t)
		}
	}
	return out
}

// String joins the tags with spaces in a fixed order.
func (s TagSet) String() string {
	tags := s.Tags()
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}
