package buffer

import "github.com/iw2rmb/ninja/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // grow the selection instead of clearing it
	// Count repeats the step; zero moves once.
	Count int
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := from
	for range max(m.Count, 1) {
		next := b.clampPos(b.target(to, m))
		if next == to {
			break
		}
		to = next
	}

	next := selectionState{}
	if m.Extend {
		anchor := from
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != to {
			next = selectionState{active: true, anchor: anchor, end: to}
		}
	}

	if from == to && selectionStateEqual(b.sel, next) {
		return
	}
	b.cursor = to
	b.sel = next
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a == b
}

func (b *Buffer) target(p Pos, m Move) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1
	line := b.lines[row]

	switch m.Dir {
	case DirHome:
		if m.Unit == MoveDoc {
			return Pos{}
		}
		return Pos{Row: row}
	case DirEnd:
		if m.Unit == MoveDoc {
			return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
		}
		return Pos{Row: row, GraphemeCol: len(line)}
	case DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: min(col, len(b.lines[row-1]))}
	case DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, GraphemeCol: min(col, len(b.lines[row+1]))}
	}

	if m.Unit == MoveWord {
		if m.Dir == DirLeft {
			return Pos{Row: row, GraphemeCol: prevWordBoundary(line, col)}
		}
		return Pos{Row: row, GraphemeCol: nextWordBoundary(line, col)}
	}

	switch {
	case m.Dir == DirLeft && col > 0:
		return Pos{Row: row, GraphemeCol: col - 1}
	case m.Dir == DirLeft && row > 0:
		return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
	case m.Dir == DirRight && col < len(line):
		return Pos{Row: row, GraphemeCol: col + 1}
	case m.Dir == DirRight && row < lastRow:
		return Pos{Row: row + 1}
	}
	return p
}

// Word boundaries skip whitespace, then non-whitespace, within one line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
