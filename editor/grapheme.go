package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/ninja/internal/grapheme"
)

// cell is one grapheme of a line laid out in terminal cells.
type cell struct {
	text  string
	start int
	width int
}

// layoutLine returns the clusters of line with their cell offsets and the
// total cell width.
func layoutLine(line string, tabWidth int) ([]cell, int) {
	clusters := grapheme.Split(line)
	out := make([]cell, 0, len(clusters))
	x := 0
	for _, c := range clusters {
		w := graphemeCellWidth(c, x, tabWidth)
		out = append(out, cell{text: c, start: x, width: w})
		x += w
	}
	return out, x
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w <= 0 {
		w = max(uniseg.StringWidth(text), 0)
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return max(tabWidth-visualCol%tabWidth, 1)
}

// colForCell returns the grapheme column whose cell span contains x. Cells
// past the end map to the line length.
func colForCell(cells []cell, x int) int {
	for i, c := range cells {
		if x < c.start+c.width {
			return i
		}
	}
	return len(cells)
}

// cellForCol returns the cell offset of grapheme column col.
func cellForCol(cells []cell, col int) int {
	if col <= 0 || len(cells) == 0 {
		return 0
	}
	if col >= len(cells) {
		last := cells[len(cells)-1]
		return last.start + last.width
	}
	return cells[col].start
}
