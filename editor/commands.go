package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/markdown"
	"github.com/iw2rmb/ninja/toolbar"
)

// runCommand executes a keymap command. Builtins act on the editor; actions
// name toolbar tools, Markdown constructs, or host actions.
func (m Model) runCommand(c keymap.Command) (Model, tea.Cmd) {
	m.logger.Debug("run command", "command", c.String())
	if c.Kind == keymap.KindBuiltin {
		return m.runBuiltin(c.Name), nil
	}
	return m.runAction(c.Name)
}

func (m Model) runBuiltin(name string) Model {
	if name == toolbar.ActionFullscreen {
		return m.toggleFullscreen()
	}
	if m.cfg.ReadOnly {
		return m
	}

	switch name {
	case keymap.BuiltinUndo:
		_ = m.buf.Undo()
		m.doc.Focus()
	case keymap.BuiltinRedo:
		_ = m.buf.Redo()
		m.doc.Focus()
	case keymap.BuiltinContinueList:
		m.engine.ContinueList()
	default:
		m.logger.Warn("unknown builtin", "name", name)
		m.message = "unknown command: " + name
	}
	return m
}

// RunAction executes the named action as if its toolbar item was clicked.
func (m Model) RunAction(name string) (Model, tea.Cmd) {
	m, cmd := m.runAction(name)
	m.settle()
	return m, cmd
}

func (m Model) runAction(name string) (Model, tea.Cmd) {
	if name == toolbar.ActionFullscreen {
		return m.toggleFullscreen(), nil
	}
	if m.cfg.ReadOnly {
		return m, nil
	}
	if name == keymap.ActionUpload {
		return m.openPicker()
	}

	if fn, ok := m.cfg.Actions[name]; ok {
		if err := fn(m.engine); err != nil {
			m.fail("action failed", err)
		}
		return m, nil
	}

	c, ok := markdown.ParseConstruct(name)
	if !ok {
		m.logger.Warn("unknown action", "name", name)
		m.message = "unknown action: " + name
		return m, nil
	}
	if err := m.engine.Toggle(c); err != nil {
		m.fail("toggle failed", err)
	}
	return m, nil
}

func (m Model) toggleFullscreen() Model {
	m.fullscreen = !m.fullscreen
	m.layout()
	m.refresh(true)
	return m
}

func (m *Model) fail(msg string, err error) {
	m.logger.Error(msg, "error", err)
	m.message = err.Error()
}
