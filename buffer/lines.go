package buffer

import "github.com/iw2rmb/ninja/internal/grapheme"

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of bounds.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineLen returns the grapheme length of row.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

// EachLine calls fn for every line in order until fn returns false.
func (b *Buffer) EachLine(fn func(row int, text string) bool) {
	for row, line := range b.lines {
		if !fn(row, grapheme.Join(line)) {
			return
		}
	}
}

// TextInRange returns the text covered by r, clamped to the document.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

// ReplaceRange replaces r with text without moving the cursor or selection
// explicitly; both are clamped to the new document bounds.
func (b *Buffer) ReplaceRange(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	_, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}

	b.cursor = b.clampPos(b.cursor)
	if b.sel.active {
		b.sel.anchor = b.clampPos(b.sel.anchor)
		b.sel.end = b.clampPos(b.sel.end)
		if b.sel.anchor == b.sel.end {
			b.sel = selectionState{}
		}
	}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

// SetLine replaces the whole text of row.
func (b *Buffer) SetLine(row int, text string) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.ReplaceRange(Range{
		Start: Pos{Row: row},
		End:   Pos{Row: row, GraphemeCol: len(b.lines[row])},
	}, text)
}

// Transact runs fn and records every text mutation it performs as a single
// undo step.
func (b *Buffer) Transact(fn func()) {
	if b.hist.depth > 0 {
		fn()
		return
	}

	prev := b.snapshot()
	before := b.textVersion
	tx := b.beginChange(ChangeSourceMarkup)
	b.hist.tx = &tx
	b.hist.depth++
	fn()
	b.hist.depth--
	b.hist.tx = nil

	if b.textVersion != before {
		b.pushUndo(prev)
		b.commitChange(tx)
	}
}
