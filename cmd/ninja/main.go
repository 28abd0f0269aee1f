// Command ninja edits a Markdown file in the terminal.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ninja"
	"github.com/iw2rmb/ninja/config"
	"github.com/iw2rmb/ninja/editor"
	"github.com/iw2rmb/ninja/internal/logging/gologger"
)

type cli struct {
	File     string           `arg:"" optional:"" type:"path" help:"Markdown file to load into the editor."`
	Config   string           `short:"c" type:"path" default:"${config}" help:"TOML configuration file."`
	ReadOnly bool             `help:"Open the document without allowing edits."`
	Quiet    bool             `short:"q" help:"Do not print the document on exit."`
	Version  kong.VersionFlag `short:"v" help:"Print the version and exit."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("ninja"),
		kong.Description("Markdown editor with a formatting toolbar."),
		kong.UsageOnError(),
		kong.Vars{
			"version": "ninja " + ninja.Describe(),
			"config":  defaultConfigPath(),
		},
	)
	ctx.FatalIfErrorf(c.run())
}

func (c *cli) run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	text, err := readDocument(c.File)
	if err != nil {
		return err
	}

	if cfg.Logging.File != "" {
		f, err := tea.LogToFile(cfg.Logging.File, "ninja")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	}

	var logs *gologger.Provider
	if cfg.Logging.Level != "" {
		logs, err = gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return err
		}
	}

	m, err := newApp(appOptions{
		Config:    cfg,
		Path:      c.File,
		Text:      text,
		ReadOnly:  c.ReadOnly,
		Logs:      logs,
		Clipboard: editor.SystemClipboard{},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if !c.Quiet {
		if done, ok := final.(app); ok {
			fmt.Fprintln(os.Stdout, done.Text())
		}
	}
	return nil
}

// readDocument returns the file contents, or "" when path is empty or does
// not exist.
func readDocument(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ninja.toml"
	}
	return filepath.Join(dir, "ninja", "config.toml")
}
