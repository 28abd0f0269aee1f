package editor

import (
	"fmt"
	"math"
	"strings"

	"github.com/iw2rmb/ninja/buffer"
	"github.com/iw2rmb/ninja/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	showNums := m.showLineNums()
	digits := gutterDigits(n)

	first, last := m.visibleRows(n)
	left := max(m.xOffset, 0)
	right := math.MaxInt
	if w := m.textWidth(n); w > 0 {
		right = left + w
	}

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		line := m.buf.Line(row)

		var sb strings.Builder
		if showNums {
			numStyle := m.cfg.Style.LineNumber
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.CurrentLineNumber
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		var highlights []HighlightSpan
		if row >= first && row < last {
			highlights = m.highlightForLine(row, line, cursor)
		}
		sb.WriteString(renderLine(m.cfg.Style, lineView{
			text:       line,
			row:        row,
			cursor:     cursor,
			focused:    m.focused,
			sel:        sel,
			selOK:      selOK,
			highlights: highlights,
			left:       left,
			right:      right,
			tabWidth:   m.cfg.TabWidth,
		}))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) highlightForLine(row int, line string, cursor buffer.Pos) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}

	n := grapheme.Count(line)
	ctx := LineContext{
		Row:               row,
		Text:              line,
		Tags:              m.doc.cls.LineTags(row),
		Language:          m.doc.cls.CodeLanguage(row),
		CursorGraphemeCol: -1,
	}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorGraphemeCol = clampInt(cursor.GraphemeCol, 0, n)
	}

	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, n)
}

type lineView struct {
	text       string
	row        int
	cursor     buffer.Pos
	focused    bool
	sel        buffer.Range
	selOK      bool
	highlights []HighlightSpan

	// left and right bound the visible cells, half-open.
	left, right int
	tabWidth    int
}

func renderLine(st Style, lv lineView) string {
	cells, total := layoutLine(lv.text, lv.tabWidth)

	cursorCol := -1
	if lv.focused && lv.row == lv.cursor.Row {
		cursorCol = clampInt(lv.cursor.GraphemeCol, 0, len(cells))
	}
	selStart, selEnd, hasSel := selectionColsForRow(lv.sel, lv.selOK, lv.row, len(cells))

	var sb strings.Builder
	for i, c := range cells {
		l := max(c.start, lv.left)
		r := min(c.start+c.width, lv.right)
		if l >= r {
			continue
		}

		text := c.text
		if text == "\t" {
			text = strings.Repeat(" ", c.width)
		}
		partial := r-l != c.width
		if partial {
			text = strings.Repeat(" ", r-l)
		}

		style := st.Text
		switch {
		case i == cursorCol:
			style = st.Cursor
			if grapheme.IsSpace(c.text) && trailingSpace(cells[i:]) {
				// Terminals may elide trailing spaces; keep the cursor cell visible.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
		case hasSel && i >= selStart && i < selEnd:
			style = st.Selection
		case partial && !grapheme.IsSpace(c.text):
			// Partial wide grapheme: preserve alignment with blanks.
		default:
			for _, sp := range lv.highlights {
				if i >= sp.StartGraphemeCol && i < sp.EndGraphemeCol {
					style = sp.Style.Inherit(st.Text)
					break
				}
			}
		}
		sb.WriteString(style.Render(text))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == len(cells) && total >= lv.left && total < lv.right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func trailingSpace(cells []cell) bool {
	for _, c := range cells {
		if !grapheme.IsSpace(c.text) {
			return false
		}
	}
	return true
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.GraphemeCol, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.GraphemeCol, 0, lineLen)
	}
	return start, end, start < end
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprintf("%d", max(lineCount, 1)))
}
