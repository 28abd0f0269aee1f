package markdown

import (
	"github.com/iw2rmb/ninja/buffer"
	"github.com/iw2rmb/ninja/mdstyle"
)

// bufferDoc is a Document over a real buffer and classifier.
type bufferDoc struct {
	*buffer.Buffer
	styles  *mdstyle.Classifier
	focused int
}

func newDoc(text string) *bufferDoc {
	b := buffer.New(text, buffer.Options{})
	return &bufferDoc{Buffer: b, styles: mdstyle.New(b)}
}

func (d *bufferDoc) Selection() buffer.Range     { return d.Buffer.SelectionOrCursor() }
func (d *bufferDoc) StyleAt(p buffer.Pos) string { return d.styles.StyleAt(p) }
func (d *bufferDoc) Focus()                      { d.focused++ }

// styleDoc reports a fixed style everywhere.
type styleDoc struct {
	*bufferDoc
	style string
}

func (d *styleDoc) StyleAt(buffer.Pos) string { return d.style }

func pos(row, col int) buffer.Pos { return buffer.Pos{Row: row, GraphemeCol: col} }

func rng(r0, c0, r1, c1 int) buffer.Range {
	return buffer.Range{Start: pos(r0, c0), End: pos(r1, c1)}
}
