package buffer

import (
	"slices"
	"strings"

	"github.com/iw2rmb/ninja/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.edit(b.SelectionOrCursor(), s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	default:
		// Join with previous line.
		prev := Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		b.edit(Range{Start: prev, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	default:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

// edit runs one local replacement as its own undoable change. The cursor ends
// up after the inserted text and the selection is cleared.
func (b *Buffer) edit(r Range, text string) bool {
	return b.applyEdit(r, text, true)
}

// editNoHistory is edit folded into the current undo step.
func (b *Buffer) editNoHistory(r Range, text string) bool {
	return b.applyEdit(r, text, false)
}

func (b *Buffer) applyEdit(r Range, text string, record bool) bool {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	if record {
		b.recordUndo(prev)
	}
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

// replaceRange splices text over r. It reports the cursor position after the
// inserted text and the edit as applied; changed is false when r already
// holds text.
func (b *Buffer) replaceRange(r Range, text string) (next Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	start, end := r.Start, r.End
	ins := splitLines(text)
	last := len(ins) - 1

	next = Pos{Row: start.Row + last, GraphemeCol: len(ins[last])}
	if last == 0 {
		next.GraphemeCol += start.GraphemeCol
	}

	ins[0] = slices.Concat(b.lines[start.Row][:start.GraphemeCol], ins[0])
	ins[last] = slices.Concat(ins[last], b.lines[end.Row][end.GraphemeCol:])
	b.lines = slices.Concat(b.lines[:start.Row], ins, b.lines[end.Row+1:])

	return next, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: start, End: next},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

// textForLinesRange joins the clusters covered by r with newlines.
func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	parts := make([]string, 0, r.Rows())
	for row := r.Start.Row; row <= r.End.Row; row++ {
		line := lines[row]
		from, to := 0, len(line)
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		parts = append(parts, grapheme.Join(line[from:to]))
	}
	return strings.Join(parts, "\n")
}
