package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsErrNotConfiguredWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Load()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{WorkspaceDir: "~/my-workspace"}
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	exists, err := Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	expected := filepath.Join(home, "my-workspace")
	if loaded.WorkspaceDir != expected {
		t.Fatalf("expected workspace dir %q, got %q", expected, loaded.WorkspaceDir)
	}
	if loaded.LayoutMode != LayoutHorizontal {
		t.Fatalf("expected default layout mode %q, got %q", LayoutHorizontal, loaded.LayoutMode)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat config path: %v", err)
	}
}

func TestSaveAndLoadWithVerticalLayout(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{
		WorkspaceDir: "~/my-workspace",
		LayoutMode:   "VERTICAL",
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if loaded.LayoutMode != LayoutVertical {
		t.Fatalf("expected layout mode %q, got %q", LayoutVertical, loaded.LayoutMode)
	}
}

func TestLoadNormalizesUnknownLayoutMode(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(home, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := `{"workspace_dir":"~/ws","layout_mode":"diagonal"}`
	if err := os.WriteFile(configPath, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.LayoutMode != LayoutHorizontal {
		t.Fatalf("expected fallback layout mode %q, got %q", LayoutHorizontal, loaded.LayoutMode)
	}
}

func TestNormalizeWorkspaceDirRejectsEmpty(t *testing.T) {
	if _, err := NormalizeWorkspaceDir("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
