package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ninja"
	"github.com/iw2rmb/ninja/config"
	"github.com/iw2rmb/ninja/editor"
	"github.com/iw2rmb/ninja/internal/logging"
	"github.com/iw2rmb/ninja/internal/logging/gologger"
	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/toolbar"
	"github.com/iw2rmb/ninja/upload"
)

const quitKey = "ctrl+q"

type appOptions struct {
	Config    config.Config
	Path      string
	Text      string
	ReadOnly  bool
	Logs      *gologger.Provider
	Clipboard editor.Clipboard
}

// app wraps the editor with a quit key.
type app struct {
	editor editor.Model
	logger logging.Logger
}

func newApp(opts appOptions) (app, error) {
	cfg := opts.Config
	a := app{logger: opts.Logs.GetLogger("ninja")}

	items, err := toolbar.Resolve(cfg.Toolbar, nil)
	if err != nil {
		return app{}, err
	}

	keys := keymap.New(cfg.Mac(), cfg.KeyOverrides())

	var uploader *upload.Uploader
	if cfg.Upload.Enabled {
		httpCfg := cfg.HTTPUpload()
		httpCfg.UserAgent = ninja.UserAgent()
		client, err := upload.NewHTTPClient(httpCfg)
		if err != nil {
			return app{}, err
		}
		uploader, err = upload.New(client, upload.WithLogger(opts.Logs.GetLogger("ninja.upload")))
		if err != nil {
			return app{}, err
		}
	}

	uploadDir := "."
	if opts.Path != "" {
		uploadDir = filepath.Dir(opts.Path)
	}

	a.editor = editor.New(editor.Config{
		Text:          opts.Text,
		ShowLineNums:  cfg.ShowLineNumbers,
		Style:         editor.DefaultStyle(),
		Highlighter:   editor.NewMarkdownHighlighter(editor.DefaultMarkdownStyles()),
		HistoryLimit:  cfg.History.Limit,
		ReadOnly:      opts.ReadOnly,
		Keys:          &keys,
		Toolbar:       items,
		ShowToolbar:   cfg.ShowToolbar,
		ToolbarStyles: toolbar.DefaultStyles(),
		Status:        cfg.StatusItems(),
		ShowStatusbar: cfg.ShowStatusbar,
		StatusStyles:  toolbar.DefaultStatusStyles(),
		Uploader:      uploader,
		UploadDir:     uploadDir,
		ImageTypes:    editor.DefaultImageTypes(),
		Clipboard:     opts.Clipboard,
		Logger:        opts.Logs.GetLogger("ninja.editor"),
	}).Focus()
	return a, nil
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == quitKey {
		a.logger.Debug("quit", "lines", a.editor.Buffer().LineCount())
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

// Text returns the edited document.
func (a app) Text() string { return a.editor.Buffer().Text() }
