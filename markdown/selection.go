package markdown

import "github.com/iw2rmb/ninja/buffer"

// Shift moves a selection to compensate for markup inserted or removed at
// the head of its start line. Both endpoints move by inserted-removed
// columns when they share a row; an end on a later row is unaffected.
// Columns never go below zero.
func Shift(sel buffer.Range, inserted, removed int) buffer.Range {
	sel = buffer.NormalizeRange(sel)
	delta := inserted - removed

	out := sel
	out.Start.GraphemeCol = max(0, sel.Start.GraphemeCol+delta)
	if sel.End.Row == sel.Start.Row {
		out.End.GraphemeCol = max(0, sel.End.GraphemeCol+delta)
	}
	return out
}
