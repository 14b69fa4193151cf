package theme

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const colors = "bg = \"#1e1e2e\"\n"

func writeTheme(t *testing.T, dataDir, name string, files map[string]string) string {
	t.Helper()
	root := filepath.Join(dataDir, name)
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}

func TestLoad(t *testing.T) {
	dataDir := t.TempDir()
	root := writeTheme(t, dataDir, "nord", map[string]string{
		"colors.toml":       colors,
		"icons.theme":       "  Papirus-Dark \n",
		"backgrounds/.keep": "",
	})

	th, err := Load(dataDir, "nord")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if th.Name != "nord" || th.Root != root {
		t.Errorf("name/root = %q/%q", th.Name, th.Root)
	}
	if th.IsLight {
		t.Error("theme without light.mode must be dark")
	}
	if th.IconTheme != "Papirus-Dark" {
		t.Errorf("IconTheme = %q, want trimmed Papirus-Dark", th.IconTheme)
	}
	if th.BackgroundsDir != filepath.Join(root, "backgrounds") {
		t.Errorf("BackgroundsDir = %q", th.BackgroundsDir)
	}
	if th.Vars["bg"] != "#1e1e2e" || th.Vars["bg_strip"] != "1e1e2e" {
		t.Errorf("vars = %#v", th.Vars)
	}
}

func TestLoadDefaults(t *testing.T) {
	dataDir := t.TempDir()
	writeTheme(t, dataDir, "plain", map[string]string{"colors.toml": colors})

	th, err := Load(dataDir, "plain")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.IsLight {
		t.Error("light flag must default to false")
	}
	if th.IconTheme != "" {
		t.Errorf("IconTheme = %q, want empty", th.IconTheme)
	}
	if th.BackgroundsDir != "" {
		t.Errorf("BackgroundsDir = %q, want empty", th.BackgroundsDir)
	}
}

func TestLoadLightMarker(t *testing.T) {
	dataDir := t.TempDir()
	writeTheme(t, dataDir, "latte", map[string]string{
		"colors.toml": colors,
		"light.mode":  "",
	})

	th, err := Load(dataDir, "latte")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !th.IsLight {
		t.Error("presence of light.mode must select the light variant")
	}
}

func TestLoadBlankIconThemeIsAbsent(t *testing.T) {
	dataDir := t.TempDir()
	writeTheme(t, dataDir, "blank", map[string]string{
		"colors.toml": colors,
		"icons.theme": "   \n",
	})

	th, err := Load(dataDir, "blank")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.IconTheme != "" {
		t.Errorf("IconTheme = %q, blank marker must mean absent", th.IconTheme)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMissingVariables(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dataDir, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := Load(dataDir, "empty")
	if !errors.Is(err, ErrMissingVariables) {
		t.Fatalf("expected ErrMissingVariables, got %v", err)
	}
}

func TestList(t *testing.T) {
	dataDir := t.TempDir()
	for _, name := range []string{"zelda", "alpha", "mid"} {
		if err := os.MkdirAll(filepath.Join(dataDir, name), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dataDir, "stray.txt"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	names, err := List(dataDir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []string{"alpha", "mid", "zelda"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
}

func TestListMissingDataDir(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil || names != nil {
		t.Fatalf("List on a missing dir = %v, %v; want nil, nil", names, err)
	}
}
