package editor

import (
	"github.com/iw2rmb/ninja/buffer"
	"github.com/iw2rmb/ninja/markdown"
)

// ChangeEvent describes the document after an edit or a cursor move.
type ChangeEvent struct {
	Text    string
	Version uint64
	Cursor  buffer.Pos

	// Selection is meaningful only when HasSelection is set.
	Selection    buffer.Range
	HasSelection bool

	// State holds the constructs active at the selection start, as the
	// toolbar highlights them.
	State markdown.State

	// Edits lists the text edits of the change that produced this version.
	// It is empty for cursor and selection moves. Markup is set when a
	// toolbar or keymap command made them as one group.
	Edits  []buffer.AppliedEdit
	Markup bool
}

func (m *Model) changeEvent() ChangeEvent {
	ev := ChangeEvent{
		Text:    m.buf.Text(),
		Version: m.buf.Version(),
		Cursor:  m.buf.Cursor(),
		State:   m.engine.State(),
	}
	ev.Selection, ev.HasSelection = m.buf.Selection()
	if c, ok := m.buf.LastChange(); ok && c.VersionAfter == ev.Version {
		ev.Edits = c.AppliedEdits
		ev.Markup = c.Source == buffer.ChangeSourceMarkup
	}
	return ev
}
