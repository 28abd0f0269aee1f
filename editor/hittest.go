package editor

import "github.com/iw2rmb/ninja/buffer"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the content region: (0,0) is
// the top-left of the visible text area, gutter included. Gutter clicks map to
// column 0 and x/y are clamped into document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}

	n := m.buf.LineCount()
	row := clampInt(m.viewport.YOffset+y, 0, n-1)
	gw := m.gutterWidth(n)
	if x < gw {
		return buffer.Pos{Row: row}
	}

	cells, _ := layoutLine(m.buf.Line(row), m.cfg.TabWidth)
	return buffer.Pos{Row: row, GraphemeCol: colForCell(cells, x-gw+max(m.xOffset, 0))}
}
