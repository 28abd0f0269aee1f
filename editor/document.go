package editor

import (
	"github.com/iw2rmb/ninja/buffer"
	"github.com/iw2rmb/ninja/markdown"
	"github.com/iw2rmb/ninja/mdstyle"
)

// document adapts the buffer and its classifier to markdown.Document.
// Focus requests are recorded and picked up by the Model after each command.
type document struct {
	buf *buffer.Buffer
	cls *mdstyle.Classifier

	focusRequested bool
}

var (
	_ markdown.Document   = (*document)(nil)
	_ markdown.Transactor = (*document)(nil)
)

func newDocument(buf *buffer.Buffer) *document {
	return &document{buf: buf, cls: mdstyle.New(buf)}
}

func (d *document) LineCount() int                           { return d.buf.LineCount() }
func (d *document) Line(row int) string                      { return d.buf.Line(row) }
func (d *document) SetLine(row int, text string)             { d.buf.SetLine(row, text) }
func (d *document) ReplaceRange(r buffer.Range, text string) { d.buf.ReplaceRange(r, text) }
func (d *document) TextInRange(r buffer.Range) string        { return d.buf.TextInRange(r) }
func (d *document) Selection() buffer.Range                  { return d.buf.SelectionOrCursor() }
func (d *document) SetSelection(r buffer.Range)              { d.buf.SetSelection(r) }
func (d *document) StyleAt(p buffer.Pos) string              { return d.cls.StyleAt(p) }
func (d *document) Transact(fn func())                       { d.buf.Transact(fn) }
func (d *document) Focus()                                   { d.focusRequested = true }

func (d *document) takeFocusRequest() bool {
	req := d.focusRequested
	d.focusRequested = false
	return req
}
