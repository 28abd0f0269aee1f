package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/ninja/buffer"
	"github.com/iw2rmb/ninja/internal/logging"
	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/markdown"
	"github.com/iw2rmb/ninja/toolbar"
)

// Model is a Bubble Tea component that edits a Markdown buffer with a
// formatting toolbar and a status bar.
type Model struct {
	cfg    Config
	buf    *buffer.Buffer
	doc    *document
	engine *markdown.Engine
	keys   keymap.Map
	logger logging.Logger

	toolbar *toolbar.Toolbar
	status  *toolbar.Statusbar

	focused    bool
	fullscreen bool
	message    string

	width, height int
	viewport      viewport.Model
	xOffset       int

	picker  filepicker.Model
	picking bool

	mouseDragging bool
	mouseAnchor   buffer.Pos

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NoOp()
	}
	keys := keymap.New(false, nil)
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}
	items := cfg.Toolbar
	if items == nil {
		items = toolbar.Default()
	}
	status := cfg.Status
	if status == nil {
		status = toolbar.DefaultStatus()
	}

	buf := buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit})
	doc := newDocument(buf)
	// The document is never nil, so the engine always builds.
	engine, _ := markdown.NewEngine(doc, markdown.WithLogger(cfg.Logger))

	m := Model{
		cfg:      cfg,
		buf:      buf,
		doc:      doc,
		engine:   engine,
		keys:     keys,
		logger:   cfg.Logger,
		toolbar:  toolbar.New(items, keys, cfg.ToolbarStyles),
		status:   toolbar.NewStatusbar(status, cfg.StatusStyles),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Engine returns the Markdown engine bound to the buffer.
func (m Model) Engine() *markdown.Engine { return m.engine }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.layout()
	m.refresh(true)
	return m
}

// layout splits the height between the toolbar, the content and the status
// bar.
func (m *Model) layout() {
	h := m.height - m.toolbarHeight() - m.statusHeight()
	m.viewport.Width = m.width
	m.viewport.Height = max(h, 0)
	m.picker.Height = max(m.viewport.Height-1, 1)
}

func (m Model) toolbarHeight() int {
	if m.cfg.ShowToolbar {
		return 1
	}
	return 0
}

func (m Model) statusHeight() int {
	if m.cfg.ShowStatusbar && !m.fullscreen {
		return 1
	}
	return 0
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Fullscreen reports whether the status bar and line numbers are hidden.
func (m Model) Fullscreen() bool { return m.fullscreen }

// Message returns the status bar message.
func (m Model) Message() string { return m.message }

// Picking reports whether the upload file picker is open.
func (m Model) Picking() bool { return m.picking }

func (m Model) View() string {
	parts := make([]string, 0, 3)
	if m.cfg.ShowToolbar {
		parts = append(parts, m.toolbar.View(m.engine.State(), m.width))
	}
	if m.picking {
		title := pickerTitle + " " + m.picker.CurrentDirectory
		if m.width > 0 {
			title = runewidth.Truncate(title, m.width, "…")
		}
		parts = append(parts, m.cfg.Style.PickerTitle.Render(title), m.picker.View())
	} else {
		parts = append(parts, m.viewport.View())
	}
	if m.statusHeight() > 0 {
		parts = append(parts, m.status.View(m.stats(), m.message, m.width))
	}
	return strings.Join(parts, "\n")
}

func (m Model) stats() toolbar.Stats {
	words := 0
	m.buf.EachLine(func(_ int, line string) bool {
		words += toolbar.WordCount(line)
		return true
	})
	return toolbar.Stats{
		Words:  words,
		Lines:  m.buf.LineCount(),
		Cursor: m.buf.Cursor(),
	}
}

// syncFromBuffer re-renders after buffer changes, made here or by the host,
// and reports them through OnChange.
func (m *Model) syncFromBuffer() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.refresh(true)

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.changeEvent())
	}
}
