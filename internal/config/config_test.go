package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rewind-demo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title.Capacity != DefaultTitleCapacity {
		t.Errorf("Title.Capacity = %d, want %d", cfg.Title.Capacity, DefaultTitleCapacity)
	}
	if cfg.Body.Capacity != DefaultBodyCapacity {
		t.Errorf("Body.Capacity = %d, want %d", cfg.Body.Capacity, DefaultBodyCapacity)
	}
	if !cfg.ShowTags {
		t.Error("ShowTags should default to true")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
show_tags = false

[title]
capacity = 4

[body]
capacity = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title.Capacity != 4 {
		t.Errorf("Title.Capacity = %d, want 4", cfg.Title.Capacity)
	}
	if cfg.Body.Capacity != 0 {
		t.Errorf("Body.Capacity = %d, want 0 (unbounded)", cfg.Body.Capacity)
	}
	if cfg.ShowTags {
		t.Error("ShowTags should be false")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[title]
capacity = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title.Capacity != 2 {
		t.Errorf("Title.Capacity = %d, want 2", cfg.Title.Capacity)
	}
	if cfg.Body.Capacity != DefaultBodyCapacity {
		t.Errorf("Body.Capacity = %d, want default %d", cfg.Body.Capacity, DefaultBodyCapacity)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, `title = [broken`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("Path = %q, want %q", parseErr.Path, path)
	}
}

func TestLoadRejectsNegativeCapacity(t *testing.T) {
	path := writeConfig(t, `
[body]
capacity = -3
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error")
	}
}
