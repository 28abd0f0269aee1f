package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iw2rmb/ninja/buffer"
	"github.com/iw2rmb/ninja/internal/grapheme"
	"github.com/iw2rmb/ninja/internal/logging"
)

// Engine toggles and draws Markdown constructs in one Document. It is not
// safe for concurrent use; callers drive it from a single event loop.
type Engine struct {
	doc    Document
	logger logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. A nil logger keeps the no-op default.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine binds an engine to doc.
func NewEngine(doc Document, opts ...Option) (*Engine, error) {
	if doc == nil {
		return nil, documentRequiredError()
	}
	e := &Engine{doc: doc, logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// Document returns the bound document.
func (e *Engine) Document() Document { return e.doc }

// State inspects the constructs active at the selection start. A caret
// between an empty pair of emphasis markers counts as inside them.
func (e *Engine) State() State {
	sel := e.doc.Selection()
	s := Inspect(e.doc, sel.Start)
	n := emptyPairRun(e.doc, sel)
	s.Bold = s.Bold || pairActive(Bold, n)
	s.Italic = s.Italic || pairActive(Italic, n)
	return s
}

// Toggle dispatches c to ToggleInline, ToggleBlock, or Draw.
func (e *Engine) Toggle(c Construct) error {
	d, ok := Describe(c)
	if !ok {
		return unsupportedConstructError("toggle", c)
	}
	switch d.Kind {
	case KindInline:
		return e.ToggleInline(c)
	case KindBlock:
		return e.ToggleBlock(c)
	default:
		return e.Draw(c)
	}
}

// ToggleInline wraps the selection in the markers of c, or strips the
// nearest marker pair around the selection start when c is already active.
// Only the start line is rewritten when stripping.
func (e *Engine) ToggleInline(c Construct) error {
	d, ok := Describe(c)
	if !ok || d.Kind != KindInline {
		return unsupportedConstructError("toggle inline", c)
	}

	sel := e.doc.Selection()
	active := Inspect(e.doc, sel.Start).Active(c)
	pair := !active && pairActive(c, emptyPairRun(e.doc, sel))
	e.logger.Debug("toggle inline", "construct", c.String(), "active", active, "empty_pair", pair, "row", sel.Start.Row)

	switch {
	case pair:
		e.unwrapEmpty(sel, len(d.Prefix))
	case active:
		e.unwrapInline(d, sel)
	default:
		e.wrap(sel, d.Prefix, d.Suffix)
	}
	e.doc.Focus()
	return nil
}

// emptyPairRun returns the length of the '*' runs on both sides of a caret
// when they are equal, or 0. The classifier does not tag an empty pair such
// as "****" as emphasis.
func emptyPairRun(doc Document, sel buffer.Range) int {
	if !sel.IsEmpty() {
		return 0
	}
	head, tail := grapheme.Cut(doc.Line(sel.Start.Row), sel.Start.GraphemeCol)
	n := len(head) - len(strings.TrimRight(head, "*"))
	if n != len(tail)-len(strings.TrimLeft(tail, "*")) {
		return 0
	}
	return n
}

// pairActive reports whether an empty pair of n-star runs holds c. Runs of
// two or more hold bold; odd runs hold italic.
func pairActive(c Construct, n int) bool {
	switch c {
	case Bold:
		return n >= 2
	case Italic:
		return n%2 == 1
	}
	return false
}

// unwrapEmpty removes width marker characters on each side of the caret.
func (e *Engine) unwrapEmpty(sel buffer.Range, width int) {
	row := sel.Start.Row
	head, tail := grapheme.Cut(e.doc.Line(row), sel.Start.GraphemeCol)
	transact(e.doc, func() {
		e.doc.SetLine(row, head[:len(head)-width]+tail[width:])
		e.doc.SetSelection(Shift(sel, 0, width))
	})
}

func (e *Engine) unwrapInline(d Descriptor, sel buffer.Range) {
	row := sel.Start.Row
	line := e.doc.Line(row)
	head, tail := grapheme.Cut(line, sel.Start.GraphemeCol)

	nextHead := d.Head.ReplaceAllString(head, "$1$3")
	nextTail := d.Tail.ReplaceAllString(tail, "$1$3")
	if nextHead == head && nextTail == tail {
		return
	}

	removed := grapheme.Count(head) - grapheme.Count(nextHead)
	transact(e.doc, func() {
		e.doc.SetLine(row, nextHead+nextTail)
		e.doc.SetSelection(Shift(sel, 0, removed))
	})
}

// wrap replaces sel with prefix+text+suffix and keeps the original text
// selected inside the new markup.
func (e *Engine) wrap(sel buffer.Range, prefix, suffix string) {
	text := e.doc.TextInRange(sel)
	transact(e.doc, func() {
		e.doc.ReplaceRange(sel, prefix+text+suffix)
		e.doc.SetSelection(Shift(sel, grapheme.Count(prefix), 0))
	})
}

// ToggleBlock adds or removes the line marker of c on every line the
// selection touches. An active block construct other than c is stripped
// first. The selection is left as the document clamps it.
func (e *Engine) ToggleBlock(c Construct) error {
	d, ok := Describe(c)
	if !ok || d.Kind != KindBlock {
		return unsupportedConstructError("toggle block", c)
	}

	sel := e.doc.Selection()
	state := Inspect(e.doc, sel.Start)
	active := state.Active(c)
	prior, hasPrior := state.Block()
	if hasPrior && prior == c {
		hasPrior = false
	}
	multiline := sel.End.Row > sel.Start.Row

	e.logger.Debug("toggle block",
		"construct", c.String(),
		"active", active,
		"rows", sel.Rows(),
	)

	transact(e.doc, func() {
		n := 0
		for row := sel.Start.Row; row <= sel.End.Row && row < e.doc.LineCount(); row++ {
			text := e.doc.Line(row)
			if hasPrior {
				pd, _ := Describe(prior)
				text = stripBlock(pd, text)
			}
			if active {
				text = stripBlock(d, text)
			} else {
				n++
				text = blockMarker(d, n, multiline) + text
			}
			e.doc.SetLine(row, text)
		}
	})
	e.doc.Focus()
	return nil
}

func stripBlock(d Descriptor, line string) string {
	return d.Match.ReplaceAllString(line, "$1")
}

func blockMarker(d Descriptor, n int, multiline bool) string {
	if d.Construct != OrderedList {
		return d.Prefix
	}
	if !multiline {
		n = 1
	}
	return strconv.Itoa(n) + d.Prefix
}

// Draw inserts the link or image placeholder around the selection. When the
// caret already sits in link markup, the enclosing markup is unwrapped to
// its label instead.
func (e *Engine) Draw(c Construct) error {
	d, ok := Describe(c)
	if !ok || d.Kind != KindDraw {
		return unsupportedConstructError("draw", c)
	}

	sel := e.doc.Selection()
	active := Inspect(e.doc, sel.Start).Active(c)
	e.logger.Debug("draw", "construct", c.String(), "active", active)

	if active && e.unwrapLink(sel) {
		e.doc.Focus()
		return nil
	}
	e.wrap(sel, d.Prefix, d.Suffix)
	e.doc.Focus()
	return nil
}

func (e *Engine) unwrapLink(sel buffer.Range) bool {
	row := sel.Start.Row
	line := e.doc.Line(row)
	m, ok := enclosingMatch(linkMarkupRE, line, sel.Start.GraphemeCol)
	if !ok {
		return false
	}

	label := line[m[4]:m[5]]
	linkStart := grapheme.Count(line[:m[0]])
	labelStart := grapheme.Count(line[:m[4]])
	labelEnd := grapheme.Count(line[:m[5]])
	linkEnd := grapheme.Count(line[:m[1]])
	removed := func(col int) int {
		return collapsed(col, linkStart, labelStart) + collapsed(col, labelEnd, linkEnd)
	}

	next := sel
	next.Start.GraphemeCol -= removed(sel.Start.GraphemeCol)
	if sel.End.Row == row {
		next.End.GraphemeCol -= removed(sel.End.GraphemeCol)
	}
	transact(e.doc, func() {
		e.doc.SetLine(row, line[:m[0]]+label+line[m[1]:])
		e.doc.SetSelection(next)
	})
	return true
}

// collapsed returns how many columns of [from, to) lie before col.
func collapsed(col, from, to int) int {
	if col <= from {
		return 0
	}
	return min(col, to) - from
}

// Inject wraps the selection in texts[0] and texts[1]. With a single text
// it is appended after the selection. The original text stays selected.
func (e *Engine) Inject(texts ...string) {
	sel := e.doc.Selection()
	switch len(texts) {
	case 0:
		return
	case 1:
		text := e.doc.TextInRange(sel)
		transact(e.doc, func() {
			e.doc.ReplaceRange(sel, text+texts[0])
			e.doc.SetSelection(sel)
		})
	default:
		e.wrap(sel, texts[0], texts[1])
	}
	e.doc.Focus()
}

var placeholderImageRE = regexp.MustCompile(`!\[([^\]]*)\]\((` + regexp.QuoteMeta(PlaceholderTarget) + `)\)`)

// InsertUploadedImage places url as an image target. When the caret sits in
// image markup whose target is still the placeholder, only the target is
// replaced; otherwise image markup wrapping the selection is drawn with url.
func (e *Engine) InsertUploadedImage(url string) {
	sel := e.doc.Selection()
	row := sel.Start.Row
	line := e.doc.Line(row)

	if m, ok := enclosingMatch(placeholderImageRE, line, sel.Start.GraphemeCol); ok {
		target := buffer.Range{
			Start: buffer.Pos{Row: row, GraphemeCol: grapheme.Count(line[:m[4]])},
			End:   buffer.Pos{Row: row, GraphemeCol: grapheme.Count(line[:m[5]])},
		}
		e.logger.Debug("fill image placeholder", "row", row, "url", url)
		transact(e.doc, func() {
			e.doc.ReplaceRange(target, url)
			e.doc.SetSelection(sel)
		})
		e.doc.Focus()
		return
	}

	e.logger.Debug("draw uploaded image", "row", row, "url", url)
	e.Inject("![", "]("+url+")")
}

var listContinuationRE = regexp.MustCompile(`^(\s*)(>\s+|[*\-+]\s+|(\d+)\.\s+)`)

// ContinueList splits the line at the selection. Inside a list item or a
// quote the new line repeats the marker (ordered items count up); on an item
// with no content the marker is removed instead.
func (e *Engine) ContinueList() {
	sel := e.doc.Selection()
	row := sel.Start.Row
	line := e.doc.Line(row)

	m := listContinuationRE.FindStringSubmatchIndex(line)
	if m == nil || sel.End.Row != row {
		e.splitLine(sel, "")
		return
	}

	indent := line[m[2]:m[3]]
	if strings.TrimSpace(line[m[1]:]) == "" {
		transact(e.doc, func() {
			e.doc.SetLine(row, indent)
			e.doc.SetSelection(buffer.Range{
				Start: buffer.Pos{Row: row, GraphemeCol: grapheme.Count(indent)},
				End:   buffer.Pos{Row: row, GraphemeCol: grapheme.Count(indent)},
			})
		})
		return
	}

	marker := line[m[4]:m[5]]
	if m[6] >= 0 {
		n, err := strconv.Atoi(line[m[6]:m[7]])
		if err == nil {
			marker = strconv.Itoa(n+1) + line[m[7]:m[5]]
		}
	}
	e.splitLine(sel, indent+marker)
}

func (e *Engine) splitLine(sel buffer.Range, lead string) {
	next := buffer.Pos{Row: sel.Start.Row + 1, GraphemeCol: grapheme.Count(lead)}
	transact(e.doc, func() {
		e.doc.ReplaceRange(sel, "\n"+lead)
		e.doc.SetSelection(buffer.Range{Start: next, End: next})
	})
}

// enclosingMatch returns the submatch indexes of the first match of re in
// line that contains grapheme column col (inclusive of both ends).
func enclosingMatch(re *regexp.Regexp, line string, col int) ([]int, bool) {
	head, _ := grapheme.Cut(line, col)
	at := len(head)
	for _, m := range re.FindAllStringSubmatchIndex(line, -1) {
		if m[0] <= at && at <= m[1] {
			return m, true
		}
	}
	return nil, false
}
