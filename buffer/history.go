package buffer

import "github.com/iw2rmb/ninja/internal/grapheme"

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot

	// depth > 0 while inside Transact; nested edits don't record.
	depth int
	// tx collects the edits of the running Transact.
	tx *changeBuilder

	// run is the typing run Type may extend. It is only valid while the
	// buffer version still equals run.version.
	run struct {
		active  bool
		version uint64
	}
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.hist.depth > 0 {
		return
	}
	b.pushUndo(prev)
}

// pushUndo records prev and drops the redo stack. A HistoryLimit of zero or
// less disables history.
func (b *Buffer) pushUndo(prev bufferSnapshot) {
	b.hist.run.active = false
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

// Type inserts s like InsertText. Typing that continues at the cursor left by
// the previous Type call extends that undo step, so one undo removes a whole
// word. Whitespace, newlines, selections and any other edit or move in
// between start a new step.
func (b *Buffer) Type(s string) {
	_, hasSel := b.Selection()
	joinable := s != "" && !hasSel && b.hist.depth == 0 && !hasSpace(s)
	extend := joinable && b.hist.run.active && b.hist.run.version == b.version

	if !extend {
		b.InsertText(s)
	} else {
		b.editNoHistory(b.SelectionOrCursor(), s)
	}
	if joinable {
		b.hist.run.active = true
		b.hist.run.version = b.version
	}
}

func hasSpace(s string) bool {
	for _, g := range grapheme.Split(s) {
		if grapheme.IsSpace(g) {
			return true
		}
	}
	return false
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the state before the last undo step.
func (b *Buffer) Undo() bool {
	return b.step(&b.hist.undo, &b.hist.redo, false)
}

// Redo reapplies the last undone step.
func (b *Buffer) Redo() bool {
	return b.step(&b.hist.redo, &b.hist.undo, b.opt.HistoryLimit > 0)
}

// step pops a snapshot from from, pushes the current state onto to and
// restores the popped snapshot as one change.
func (b *Buffer) step(from, to *[]bufferSnapshot, bounded bool) bool {
	if len(*from) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	i := len(*from) - 1
	target := (*from)[i]
	*from = (*from)[:i]
	if bounded {
		*to = pushBounded(*to, cur, b.opt.HistoryLimit)
	} else {
		*to = append(*to, cur)
	}

	b.restore(target)
	b.version++
	b.textVersion++
	b.hist.run.active = false
	if applied, ok := replacementAppliedEdit(cur.text, target.text); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
	return true
}
