package markdown

import "github.com/iw2rmb/ninja/buffer"

// Document is the text model the engine edits. Columns are grapheme
// columns; ranges are half-open.
type Document interface {
	LineCount() int
	Line(row int) string
	SetLine(row int, text string)
	ReplaceRange(r buffer.Range, text string)
	TextInRange(r buffer.Range) string

	// Selection returns the normalized selection, or an empty range at the
	// caret.
	Selection() buffer.Range
	SetSelection(r buffer.Range)

	// StyleAt returns the space-separated style tags at p, or "".
	StyleAt(p buffer.Pos) string

	Focus()
}

// Transactor is implemented by documents that can group several edits into
// one undo step.
type Transactor interface {
	Transact(fn func())
}

func transact(doc Document, fn func()) {
	if t, ok := doc.(Transactor); ok {
		t.Transact(fn)
		return
	}
	fn()
}
