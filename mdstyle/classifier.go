package mdstyle

import (
	"bytes"
	"regexp"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"

	"github.com/iw2rmb/ninja/buffer"
	"github.com/iw2rmb/ninja/internal/grapheme"
)

// Source is the document being classified.
type Source interface {
	Text() string
	TextVersion() uint64
}

type span struct {
	start, stop int
	tags        TagSet
}

// Classifier maps positions of a Source to style tags.
type Classifier struct {
	src    Source
	parser parser.Parser

	valid   bool
	version uint64

	text       string
	lineStarts []int
	lineTags   []TagSet
	spans      []span
	codeLang   map[int]string
}

var (
	bareListRE  = regexp.MustCompile(`^\s*([*\-+]|\d+\.)\s*$`)
	bareQuoteRE = regexp.MustCompile(`^\s*>\s*$`)
	fenceRE     = regexp.MustCompile("^\\s*(```|~~~)")

	// Rows that open a quote or list item, possibly after outer container
	// markers. Lazy continuation lines have no marker and are left untagged.
	quoteRowRE = regexp.MustCompile(`^\s*(?:(?:[*\-+]|\d+[.)])\s+|>\s*)*>`)
	listRowRE  = regexp.MustCompile(`^\s*(?:(?:[*\-+]|\d+[.)])\s+|>\s*)*(?:[*\-+]|\d+[.)])(?:\s|$)`)
)

// New returns a classifier over src.
func New(src Source) *Classifier {
	return &Classifier{
		src:    src,
		parser: goldmark.New().Parser(),
	}
}

// StyleAt returns the tags at p joined by spaces, or "" when none apply.
func (c *Classifier) StyleAt(p buffer.Pos) string {
	return c.TagsAt(p).String()
}

// TagsAt returns the line tags of p.Row plus the inline tags of the
// character before p (the character at p when p is at column 0).
func (c *Classifier) TagsAt(p buffer.Pos) TagSet {
	c.ensure()
	if p.Row < 0 || p.Row >= len(c.lineStarts) {
		return 0
	}

	set := c.lineTags[p.Row]
	col := p.GraphemeCol
	if col > 0 {
		col--
	}
	head, tail := grapheme.Cut(c.line(p.Row), col)
	if tail == "" {
		return set
	}
	return set | c.inlineAt(c.lineStarts[p.Row]+len(head))
}

// CodeLanguage returns the info-string language of the fenced code block
// whose content includes row, or "".
func (c *Classifier) CodeLanguage(row int) string {
	c.ensure()
	return c.codeLang[row]
}

// LineTags returns the tag set of every grapheme cluster in row. The line
// tags of row are included in each entry.
func (c *Classifier) LineTags(row int) []TagSet {
	c.ensure()
	if row < 0 || row >= len(c.lineStarts) {
		return nil
	}

	base := c.lineStarts[row]
	clusters := grapheme.Split(c.line(row))
	out := make([]TagSet, len(clusters))
	off := base
	for i, cluster := range clusters {
		out[i] = c.lineTags[row] | c.inlineAt(off)
		off += len(cluster)
	}
	return out
}

func (c *Classifier) inlineAt(off int) TagSet {
	var set TagSet
	for _, s := range c.spans {
		if s.start > off {
			break
		}
		if off < s.stop {
			set |= s.tags
		}
	}
	return set
}

func (c *Classifier) ensure() {
	v := c.src.TextVersion()
	if c.valid && v == c.version {
		return
	}
	c.classify(c.src.Text())
	c.version = v
	c.valid = true
}

func (c *Classifier) classify(text string) {
	c.text = text
	c.lineStarts = lineStarts(text)
	c.lineTags = make([]TagSet, len(c.lineStarts))
	c.spans = c.spans[:0]
	c.codeLang = make(map[int]string)

	src := []byte(text)
	doc := c.parser.Parse(gtext.NewReader(src))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Blockquote:
			c.markRows(n, Quote, quoteRowRE)
		case *ast.ListItem:
			c.markRows(n, ListItem, listRowRE)
		case *ast.Heading:
			c.markRows(n, Header, nil)
		case *ast.FencedCodeBlock:
			c.markFence(src, n.(*ast.FencedCodeBlock))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			c.markRows(n, Code, nil)
			return ast.WalkSkipChildren, nil
		}
		if n.HasChildren() && n.FirstChild().Type() == ast.TypeInline {
			c.inline(src, n)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	c.markBareMarkers()

	sort.SliceStable(c.spans, func(i, j int) bool { return c.spans[i].start < c.spans[j].start })
}

func (c *Classifier) line(row int) string {
	start := c.lineStarts[row]
	end := len(c.text)
	if row+1 < len(c.lineStarts) {
		end = c.lineStarts[row+1] - 1
	}
	return c.text[start:end]
}

func (c *Classifier) rowAt(off int) int {
	return sort.Search(len(c.lineStarts), func(i int) bool { return c.lineStarts[i] > off }) - 1
}

// blockRows returns the rows covered by the lines of n and its block
// descendants.
func (c *Classifier) blockRows(n ast.Node) (first, last int, ok bool) {
	first, last = -1, -1
	_ = ast.Walk(n, func(d ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || d.Type() != ast.TypeBlock {
			return ast.WalkSkipChildren, nil
		}
		lines := d.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			top := c.rowAt(seg.Start)
			bottom := top
			if seg.Stop > seg.Start {
				bottom = c.rowAt(seg.Stop - 1)
			}
			if first < 0 || top < first {
				first = top
			}
			if bottom > last {
				last = bottom
			}
		}
		return ast.WalkContinue, nil
	})
	return first, last, first >= 0
}

// markRows tags the rows of n. With marker set, only rows it matches are
// tagged.
func (c *Classifier) markRows(n ast.Node, tag Tag, marker *regexp.Regexp) {
	first, last, ok := c.blockRows(n)
	if !ok {
		return
	}
	for row := first; row <= last; row++ {
		if marker != nil && !marker.MatchString(c.line(row)) {
			continue
		}
		c.lineTags[row] = c.lineTags[row].With(tag)
	}
}

// markFence tags the content rows of a fenced block plus its fence rows.
func (c *Classifier) markFence(src []byte, n *ast.FencedCodeBlock) {
	first, last, ok := c.blockRows(n)
	if !ok {
		return
	}
	if lang := string(n.Language(src)); lang != "" {
		for row := first; row <= last; row++ {
			c.codeLang[row] = lang
		}
	}
	if first > 0 && fenceRE.MatchString(c.line(first-1)) {
		first--
	}
	if last+1 < len(c.lineStarts) && fenceRE.MatchString(c.line(last+1)) {
		last++
	}
	for row := first; row <= last; row++ {
		c.lineTags[row] = c.lineTags[row].With(Code)
	}
}

// markBareMarkers tags rows holding only a list or quote marker. Such items
// have no content lines for the parser to report.
func (c *Classifier) markBareMarkers() {
	for row := range c.lineStarts {
		if c.lineTags[row].Has(Code) {
			continue
		}
		line := c.line(row)
		switch {
		case bareListRE.MatchString(line):
			c.lineTags[row] = c.lineTags[row].With(ListItem)
		case bareQuoteRE.MatchString(line):
			c.lineTags[row] = c.lineTags[row].With(Quote)
		}
	}
}

func (c *Classifier) add(start, stop int, tags TagSet) {
	if stop <= start {
		return
	}
	c.spans = append(c.spans, span{start: start, stop: stop, tags: tags})
}

func (c *Classifier) inline(src []byte, block ast.Node) {
	from := 0
	if lines := block.Lines(); lines.Len() > 0 {
		from = lines.At(0).Start
	}
	for ch := block.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if _, stop, ok := c.inlineSpan(src, ch, from); ok {
			from = stop
		}
	}
}

// inlineSpan records the tags of n and its descendants and returns the byte
// span n covers, delimiters included. from is where the search for nodes
// without text segments starts.
func (c *Classifier) inlineSpan(src []byte, n ast.Node, from int) (int, int, bool) {
	switch node := n.(type) {
	case *ast.Text:
		return node.Segment.Start, node.Segment.Stop, true
	case *ast.RawHTML:
		if node.Segments.Len() == 0 {
			return 0, 0, false
		}
		return node.Segments.At(0).Start, node.Segments.At(node.Segments.Len() - 1).Stop, true
	case *ast.Emphasis:
		start, stop, ok := c.children(src, n, from)
		if !ok {
			return 0, 0, false
		}
		start = max(0, start-node.Level)
		stop = min(len(src), stop+node.Level)
		tag := Em
		if node.Level >= 2 {
			tag = Strong
		}
		c.add(start, stop, bit(tag))
		return start, stop, true
	case *ast.CodeSpan:
		start, stop, ok := c.children(src, n, from)
		if !ok {
			return 0, 0, false
		}
		for start > 0 && src[start-1] == '`' {
			start--
		}
		for stop < len(src) && src[stop] == '`' {
			stop++
		}
		c.add(start, stop, bit(Code))
		return start, stop, true
	case *ast.Link:
		return c.link(src, n, from, false)
	case *ast.Image:
		return c.link(src, n, from, true)
	case *ast.AutoLink:
		label := node.Label(src)
		idx := bytes.Index(src[from:], label)
		if idx < 0 {
			return 0, 0, false
		}
		start := max(0, from+idx-1)
		stop := min(len(src), from+idx+len(label)+1)
		c.add(start, stop, bit(Link))
		return start, stop, true
	}
	return c.children(src, n, from)
}

func (c *Classifier) children(src []byte, n ast.Node, from int) (start, stop int, ok bool) {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		s, e, found := c.inlineSpan(src, ch, from)
		if !found {
			continue
		}
		if !ok || s < start {
			start = s
		}
		if !ok || e > stop {
			stop = e
		}
		ok = true
		from = e
	}
	return start, stop, ok
}

func (c *Classifier) link(src []byte, n ast.Node, from int, image bool) (int, int, bool) {
	open := "["
	tags := bit(Link)
	if image {
		open = "!["
		tags = tags.With(Image)
	}

	start, stop, ok := c.children(src, n, from)
	if ok {
		start = max(0, start-len(open))
	} else {
		idx := bytes.Index(src[from:], []byte(open+"]"))
		if idx < 0 {
			return 0, 0, false
		}
		start = from + idx
		stop = start + len(open)
	}
	stop = closeLink(src, stop)
	c.add(start, stop, tags)
	return start, stop, true
}

// closeLink returns the end of the link whose label closes at src[at].
func closeLink(src []byte, at int) int {
	if at >= len(src) || src[at] != ']' {
		return min(at, len(src))
	}
	at++
	if at < len(src) {
		var end byte
		switch src[at] {
		case '(':
			end = ')'
		case '[':
			end = ']'
		}
		if end != 0 {
			if i := bytes.IndexByte(src[at:], end); i >= 0 {
				return at + i + 1
			}
		}
	}
	return at
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
