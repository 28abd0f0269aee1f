package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ninja/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Platform = config.PlatformOther
	return cfg
}

func TestApp_CtrlQQuits(t *testing.T) {
	a, err := newApp(appOptions{Config: testConfig()})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd did not yield tea.QuitMsg")
	}
}

func TestApp_ForwardsKeysToEditor(t *testing.T) {
	a, err := newApp(appOptions{Config: testConfig(), Text: "word"})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}

	next, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	a = next.(app)
	if got, want := a.Text(), "****word"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestApp_KeyOverridesFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Keys = map[string]string{"Cmd-B": "italic"}
	a, err := newApp(appOptions{Config: cfg, Text: "x"})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}

	next, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	a = next.(app)
	if got, want := a.Text(), "**x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestNewApp_RejectsUnknownToolbarItem(t *testing.T) {
	cfg := testConfig()
	cfg.Toolbar = []string{"bold", "sparkles"}
	if _, err := newApp(appOptions{Config: cfg}); err == nil {
		t.Fatalf("expected toolbar error")
	}
}

func TestNewApp_UploadRequiresEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.Enabled = true
	if _, err := newApp(appOptions{Config: cfg}); err == nil {
		t.Fatalf("expected upload client error")
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("# title\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		path string
		want string
	}{
		{path: "", want: ""},
		{path: filepath.Join(dir, "missing.md"), want: ""},
		{path: path, want: "# title\n"},
	}
	for _, tc := range cases {
		got, err := readDocument(tc.path)
		if err != nil || got != tc.want {
			t.Fatalf("readDocument(%q)=%q,%v, want %q", tc.path, got, err, tc.want)
		}
	}
}
