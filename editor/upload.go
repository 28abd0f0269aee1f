package editor

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ninja/upload"
)

const pickerTitle = "Upload image (esc to cancel):"

// openPicker shows the file picker for the upload action.
func (m Model) openPicker() (Model, tea.Cmd) {
	switch {
	case m.cfg.Uploader == nil:
		m.message = "upload is not configured"
		return m, nil
	case m.cfg.Uploader.Uploading():
		m.message = "an upload is already in progress"
		return m, nil
	}

	fp := filepicker.New()
	fp.AutoHeight = false
	fp.Height = max(m.viewport.Height-1, 1)
	if m.cfg.UploadDir != "" {
		fp.CurrentDirectory = m.cfg.UploadDir
	}
	fp.AllowedTypes = m.cfg.ImageTypes
	if fp.AllowedTypes == nil {
		fp.AllowedTypes = DefaultImageTypes()
	}

	m.picker = fp
	m.picking = true
	return m, m.picker.Init()
}

func (m Model) updatePicker(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.picking = false
		m.refresh(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.refresh(false)
		return m, tea.Batch(cmd, m.startUpload(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.message = filepath.Base(path) + " is not an image"
	}
	return m, cmd
}

func (m *Model) startUpload(path string) tea.Cmd {
	cmd := m.cfg.Uploader.Trigger(upload.Request{Path: path})
	if cmd == nil {
		return nil
	}
	m.message = "uploading " + filepath.Base(path) + "…"
	return cmd
}

// finishUpload releases the upload lock and places the image. A failure
// leaves the buffer untouched and shows an alert in the status bar.
func (m Model) finishUpload(msg upload.DoneMsg) Model {
	if m.cfg.Uploader == nil {
		return m
	}
	url, err := m.cfg.Uploader.Complete(msg)
	if err != nil {
		m.message = uploadAlert(msg)
		return m
	}

	m.message = ""
	if !m.cfg.ReadOnly {
		m.engine.InsertUploadedImage(url)
	}
	return m
}

func uploadAlert(msg upload.DoneMsg) string {
	if msg.Err != nil {
		return "upload failed: " + msg.Err.Error()
	}
	return "upload failed: " + msg.Result.Message
}
