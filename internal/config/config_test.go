package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"backdrop/internal/theme"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backdrop.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 540 || cfg.Window.TPS != 60 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Scheduler.Debounce() != 250*time.Millisecond {
		t.Fatalf("debounce = %v", cfg.Scheduler.Debounce())
	}
	if cfg.Params("life")["text"] != "Hello!" {
		t.Fatalf("life params = %v", cfg.Params("life"))
	}
	if lvl, err := cfg.Log.SlogLevel(); err != nil || lvl != slog.LevelInfo {
		t.Fatalf("level = %v, %v", lvl, err)
	}
}

func TestOverlayKeepsUnsetKeys(t *testing.T) {
	path := writeFile(t, `
window:
  width: 320
theme:
  mode: dark
variants:
  topography:
    noise: simplex
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 320 || cfg.Window.Height != 540 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Params("topography")["noise"] != "simplex" || cfg.Params("life")["text"] != "Hello!" {
		t.Fatalf("variants = %v", cfg.Variants)
	}
	th := cfg.NewTheme()
	if th.Mode() != theme.Dark || th.Lookup(theme.Background) != "#111216" {
		t.Fatalf("theme mode=%s background=%s", th.Mode(), th.Lookup(theme.Background))
	}
	if lvl, _ := cfg.Log.SlogLevel(); lvl != slog.LevelDebug {
		t.Fatalf("level = %v", lvl)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []string{
		"window:\n  width: 0\n",
		"window:\n  tps: -1\n",
		"scheduler:\n  resize_debounce_ms: -5\n",
		"theme:\n  mode: sepia\n",
		"log:\n  format: xml\n",
		"log:\n  level: loud\n",
	}
	for _, body := range cases {
		if _, err := Load(writeFile(t, body)); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%q: err = %v, want ErrInvalid", body, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestZeroDebounceDisables(t *testing.T) {
	cfg, err := Load(writeFile(t, "scheduler:\n  resize_debounce_ms: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scheduler.Debounce() >= 0 {
		t.Fatalf("debounce = %v, want negative", cfg.Scheduler.Debounce())
	}
}

func TestSetParamAndWriteYAML(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.SetParam("bubbles", "octaves", "3")
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Params("bubbles")["octaves"] != "3" {
		t.Fatalf("written params = %v", back.Variants)
	}
}
