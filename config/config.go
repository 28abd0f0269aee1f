// Package config loads ninja's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/toolbar"
	"github.com/iw2rmb/ninja/upload"
)

const (
	PlatformAuto  = "auto"
	PlatformMac   = "mac"
	PlatformOther = "other"

	TextCodeParseFailed = "CONFIG_PARSE_FAILED"
	TextCodeInvalid     = "CONFIG_INVALID"
)

// Config is the editor configuration.
type Config struct {
	// Platform selects chord formatting: "auto", "mac" or "other".
	Platform string `toml:"platform"`

	Toolbar         []string          `toml:"toolbar"`
	ShowToolbar     bool              `toml:"show_toolbar"`
	Statusbar       []string          `toml:"statusbar"`
	ShowStatusbar   bool              `toml:"show_statusbar"`
	ShowLineNumbers bool              `toml:"line_numbers"`
	Keys            map[string]string `toml:"keys"`

	History HistoryConfig `toml:"history"`
	Upload  UploadConfig  `toml:"upload"`
	Logging LoggingConfig `toml:"logging"`
}

type HistoryConfig struct {
	Limit int `toml:"limit"`
}

type UploadConfig struct {
	Enabled           bool   `toml:"enabled"`
	Endpoint          string `toml:"endpoint"`
	Bucket            string `toml:"bucket"`
	Secret            string `toml:"secret"`
	Host              string `toml:"host"`
	Dir               string `toml:"dir"`
	ExpirationSeconds int    `toml:"expiration_seconds"`
}

// LoggingConfig is empty-level by default, which keeps logging off so the
// terminal UI is not disturbed.
type LoggingConfig struct {
	Level     string   `toml:"level"`
	Format    string   `toml:"format"`
	File      string   `toml:"file"`
	AddSource bool     `toml:"add_source"`
	Focus     []string `toml:"focus"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Platform:      PlatformAuto,
		Toolbar:       toolbar.DefaultNames(),
		ShowToolbar:   true,
		Statusbar:     []string{"lines", "words", "cursor"},
		ShowStatusbar: true,
		History:       HistoryConfig{Limit: 1000},
		Upload: UploadConfig{
			Endpoint:          "https://v0.api.upyun.com",
			Dir:               "/ninja",
			ExpirationSeconds: 600,
		},
		Logging: LoggingConfig{Format: "console"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, goerrors.Wrap(err, goerrors.CategoryValidation, "config parse failed").
			WithTextCode(TextCodeParseFailed)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Platform, validation.Required, validation.In(PlatformAuto, PlatformMac, PlatformOther)),
		validation.Field(&c.Toolbar, validation.Each(validation.By(knownToolbarItem))),
		validation.Field(&c.Statusbar, validation.Each(validation.In("words", "lines", "cursor"))),
		validation.Field(&c.Keys, validation.By(validKeys)),
		validation.Field(&c.History),
		validation.Field(&c.Upload),
		validation.Field(&c.Logging),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid config").
			WithTextCode(TextCodeInvalid)
	}
	return nil
}

func (h HistoryConfig) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Limit, validation.Min(0)),
	)
}

func (u UploadConfig) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Endpoint, validation.When(u.Enabled, validation.Required, validation.By(absoluteURL))),
		validation.Field(&u.Bucket, validation.When(u.Enabled, validation.Required)),
		validation.Field(&u.Secret, validation.When(u.Enabled, validation.Required)),
		validation.Field(&u.Host, validation.By(absoluteURL)),
		validation.Field(&u.ExpirationSeconds, validation.Min(0)),
	)
}

func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("trace", "debug", "info", "warn", "error", "fatal")),
		validation.Field(&l.Format, validation.In("json", "console", "pretty")),
	)
}

func knownToolbarItem(value any) error {
	name, _ := value.(string)
	if !toolbar.Known(strings.TrimSpace(name)) {
		return validation.NewError("ninja.config.toolbar.unknown", fmt.Sprintf("unknown toolbar item %q", name))
	}
	return nil
}

var builtins = map[string]bool{
	keymap.BuiltinContinueList: true,
	keymap.BuiltinUndo:         true,
	keymap.BuiltinRedo:         true,
	toolbar.ActionFullscreen:   true,
}

func validKeys(value any) error {
	keys, _ := value.(map[string]string)
	for chord, raw := range keys {
		if strings.TrimSpace(chord) == "" {
			return validation.NewError("ninja.config.keys.empty_chord", "key chord must not be empty")
		}
		cmd := keymap.ParseCommand(raw)
		switch {
		case cmd.IsZero():
		case cmd.Kind == keymap.KindBuiltin && !builtins[cmd.Name]:
			return validation.NewError("ninja.config.keys.unknown_builtin", fmt.Sprintf("%s: unknown builtin %q", chord, cmd.Name))
		case cmd.Kind == keymap.KindAction && !toolbar.Known(cmd.Name):
			return validation.NewError("ninja.config.keys.unknown_action", fmt.Sprintf("%s: unknown action %q", chord, cmd.Name))
		}
	}
	return nil
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return validation.NewError("ninja.config.url.invalid", fmt.Sprintf("%q is not an absolute URL", s))
	}
	return nil
}

// Mac resolves the platform setting.
func (c Config) Mac() bool {
	switch c.Platform {
	case PlatformMac:
		return true
	case PlatformOther:
		return false
	}
	return runtime.GOOS == "darwin"
}

// KeyOverrides returns the [keys] table as keymap commands.
func (c Config) KeyOverrides() map[string]keymap.Command {
	if len(c.Keys) == 0 {
		return nil
	}
	out := make(map[string]keymap.Command, len(c.Keys))
	for chord, raw := range c.Keys {
		out[chord] = keymap.ParseCommand(raw)
	}
	return out
}

// StatusItems returns the status bar layout.
func (c Config) StatusItems() []toolbar.StatusItem {
	labels := map[string]string{"lines": "lines: ", "words": "words: "}
	out := make([]toolbar.StatusItem, 0, len(c.Statusbar))
	for _, name := range c.Statusbar {
		out = append(out, toolbar.StatusItem{Field: toolbar.Field(name), Text: labels[name]})
	}
	return out
}

// HTTPUpload returns the upload client configuration.
func (c Config) HTTPUpload() upload.HTTPConfig {
	return upload.HTTPConfig{
		Endpoint:   c.Upload.Endpoint,
		Bucket:     c.Upload.Bucket,
		Secret:     c.Upload.Secret,
		Host:       c.Upload.Host,
		Dir:        c.Upload.Dir,
		Expiration: time.Duration(c.Upload.ExpirationSeconds) * time.Second,
	}
}
