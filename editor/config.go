package editor

import (
	"github.com/iw2rmb/ninja/internal/logging"
	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/markdown"
	"github.com/iw2rmb/ninja/toolbar"
	"github.com/iw2rmb/ninja/upload"
)

// ActionFunc runs a host-defined toolbar or keymap action.
type ActionFunc func(e *markdown.Engine) error

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int
	Highlighter  Highlighter

	// LockScroll keeps the viewport on the cursor; the mouse wheel is
	// ignored.
	LockScroll bool

	// Forwarded to buffer.Options.
	HistoryLimit int
	ReadOnly     bool

	// KeyMap holds the editing keys. Keys holds the command chords and
	// defaults to keymap.New(false, nil) when nil.
	KeyMap KeyMap
	Keys   *keymap.Map

	// Toolbar defaults to toolbar.Default() when nil.
	Toolbar       []toolbar.Item
	ShowToolbar   bool
	ToolbarStyles toolbar.Styles

	// Status defaults to toolbar.DefaultStatus() when nil.
	Status        []toolbar.StatusItem
	ShowStatusbar bool
	StatusStyles  toolbar.StatusStyles

	// Uploader enables the upload action. UploadDir is where the file picker
	// starts; ImageTypes restricts the selectable extensions.
	Uploader   *upload.Uploader
	UploadDir  string
	ImageTypes []string

	Clipboard Clipboard
	Actions   map[string]ActionFunc
	OnChange  func(ChangeEvent)
	Logger    logging.Logger
}

// DefaultImageTypes are the extensions the upload picker offers.
func DefaultImageTypes() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}
}
