package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := `shell: /bin/zsh
cols: 120
rows: 40
scrollback: 5000
keymap:
  app_cursor_keys_default: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Shell != "/bin/zsh" {
		t.Errorf("Shell = %q, want /bin/zsh", cfg.Shell)
	}
	if cfg.Cols != 120 || cfg.Rows != 40 {
		t.Errorf("Cols/Rows = %d/%d, want 120/40", cfg.Cols, cfg.Rows)
	}
	if cfg.Scrollback != 5000 {
		t.Errorf("Scrollback = %d, want 5000", cfg.Scrollback)
	}
	if !cfg.Keymap.AppCursorKeysDefault {
		t.Error("expected AppCursorKeysDefault = true")
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Shell != "" || cfg.Cols != 0 {
		t.Errorf("expected zero Config, got %+v", cfg)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("{{invalid yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadFrom_NegativeCols(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("cols: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for negative cols")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults(80, 24, 10000)
	if cfg.Cols != 80 || cfg.Rows != 24 || cfg.Scrollback != 10000 {
		t.Errorf("ApplyDefaults left %+v", cfg)
	}

	cfg2 := &Config{Cols: 100}
	cfg2.ApplyDefaults(80, 24, 10000)
	if cfg2.Cols != 100 {
		t.Errorf("ApplyDefaults overwrote an explicit value: Cols = %d", cfg2.Cols)
	}
}
