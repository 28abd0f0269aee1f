package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/toolbar"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
platform = "mac"
toolbar = ["bold", "|", "upload"]
line_numbers = true

[keys]
"Cmd-E" = "builtin:undo"
"Ctrl-K" = "none"
"Cmd-U" = "upload"

[history]
limit = 50

[upload]
enabled = true
bucket = "assets"
secret = "s3cret"
host = "https://cdn.example.com"
expiration_seconds = 60

[logging]
level = "debug"
format = "json"
focus = ["ninja.upload"]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !cfg.Mac() {
		t.Fatalf("platform mac should resolve to Mac()")
	}
	if diff := cmp.Diff([]string{"bold", "|", "upload"}, cfg.Toolbar); diff != "" {
		t.Fatalf("toolbar mismatch (-want +got):\n%s", diff)
	}
	if !cfg.ShowToolbar || !cfg.ShowStatusbar || !cfg.ShowLineNumbers {
		t.Fatalf("flags=%v/%v/%v", cfg.ShowToolbar, cfg.ShowStatusbar, cfg.ShowLineNumbers)
	}
	if cfg.History.Limit != 50 {
		t.Fatalf("history limit=%d, want 50", cfg.History.Limit)
	}
	if cfg.Upload.Endpoint != "https://v0.api.upyun.com" {
		t.Fatalf("endpoint default lost: %q", cfg.Upload.Endpoint)
	}
	if got := cfg.HTTPUpload().Expiration; got != time.Minute {
		t.Fatalf("expiration=%v, want 1m", got)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging=%+v", cfg.Logging)
	}

	wantKeys := map[string]keymap.Command{
		"Cmd-E":  keymap.Builtin(keymap.BuiltinUndo),
		"Ctrl-K": {},
		"Cmd-U":  keymap.Action(keymap.ActionUpload),
	}
	if diff := cmp.Diff(wantKeys, cfg.KeyOverrides()); diff != "" {
		t.Fatalf("key overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad toml":        `platform = `,
		"platform":        `platform = "amiga"`,
		"toolbar":         `toolbar = ["bold", "strike"]`,
		"statusbar":       `statusbar = ["mood"]`,
		"history":         "[history]\nlimit = -1",
		"upload missing":  "[upload]\nenabled = true",
		"upload endpoint": "[upload]\nenabled = true\nbucket = \"b\"\nsecret = \"s\"\nendpoint = \"not a url\"",
		"logging level":   "[logging]\nlevel = \"loud\"",
		"key action":      "[keys]\n\"Cmd-E\" = \"strike\"",
		"key builtin":     "[keys]\n\"Cmd-E\" = \"builtin:explode\"",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("err=%v, want validation category", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load(missing): %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("missing file should yield defaults (-want +got):\n%s", diff)
	}

	path := filepath.Join(dir, "ninja.toml")
	if err := os.WriteFile(path, []byte("show_statusbar = false\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ShowStatusbar {
		t.Fatalf("show_statusbar should be false")
	}

	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "reading config file") {
		t.Fatalf("Load(dir) err=%v, want read error", err)
	}
}

func TestConfig_Platform(t *testing.T) {
	cfg := Default()
	cfg.Platform = PlatformOther
	if cfg.Mac() {
		t.Fatalf("other should not be Mac")
	}
}

func TestConfig_StatusItems(t *testing.T) {
	cfg := Default()
	cfg.Statusbar = []string{"cursor", "words"}
	want := []toolbar.StatusItem{
		{Field: toolbar.FieldCursor},
		{Field: toolbar.FieldWords, Text: "words: "},
	}
	if diff := cmp.Diff(want, cfg.StatusItems()); diff != "" {
		t.Fatalf("status items mismatch (-want +got):\n%s", diff)
	}
	if Default().KeyOverrides() != nil {
		t.Fatalf("no [keys] table should yield nil overrides")
	}
}
