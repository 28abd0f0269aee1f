package editor

func (m *Model) showLineNums() bool {
	return m.cfg.ShowLineNums && !m.fullscreen
}

func (m *Model) gutterWidth(lineCount int) int {
	if !m.showLineNums() {
		return 0
	}
	return gutterDigits(lineCount) + 1
}

// textWidth is the number of cells available for line text, or 0 when the
// viewport has no width yet.
func (m *Model) textWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth(lineCount)
	return max(w, 0)
}

func (m *Model) viewportHeight() int {
	return m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
}

// visibleRows returns the half-open row range inside the viewport.
func (m *Model) visibleRows(lineCount int) (first, last int) {
	h := m.viewportHeight()
	if h <= 0 {
		return 0, 0
	}
	first = clampInt(m.viewport.YOffset, 0, lineCount)
	return first, min(first+h, lineCount)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// refresh re-renders the content. With follow set, the viewport is scrolled
// to keep the cursor visible first.
func (m *Model) refresh(follow bool) {
	m.rebuildContent()
	if !follow {
		return
	}
	y, x := m.viewport.YOffset, m.xOffset
	m.followCursor()
	if y != m.viewport.YOffset || x != m.xOffset {
		m.rebuildContent()
	}
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	if h := m.viewportHeight(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.textWidth(m.buf.LineCount())
	if w <= 0 {
		m.xOffset = 0
		return
	}
	cells, _ := layoutLine(m.buf.Line(cur.Row), m.cfg.TabWidth)
	x := cellForCol(cells, cur.GraphemeCol)
	switch {
	case x < m.xOffset:
		m.xOffset = x
	case x >= m.xOffset+w:
		m.xOffset = x - w + 1
	}
}
