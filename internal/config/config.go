// Package config persists user-level dockyard settings as JSON under the
// user's home directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avharris/dockyard/internal/logging"
)

const (
	configDirName  = ".dockyard"
	configFileName = "config.json"

	// Layout modes accepted in layout_mode. Anything else normalizes to
	// horizontal.
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
)

var log = logging.New("config")

var ErrNotConfigured = errors.New("dockyard is not configured")

// Config stores user-defined dockyard settings.
type Config struct {
	// WorkspaceDir is the directory tree shown in the workspace browser and
	// the root all editor panes resolve paths against.
	WorkspaceDir string `json:"workspace_dir"`

	// LayoutMode is the persisted outer-split orientation, "horizontal" or
	// "vertical".
	LayoutMode string `json:"layout_mode,omitempty"`
}

// DefaultWorkspaceDir returns the default workspace directory used by the
// configurator.
func DefaultWorkspaceDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, "workspace"), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path: %w", err)
}

// Load reads and validates the saved configuration. Missing optional fields
// are filled with their defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	workspaceDir, err := NormalizeWorkspaceDir(cfg.WorkspaceDir)
	if err != nil {
		return Config{}, fmt.Errorf("invalid workspace_dir: %w", err)
	}
	cfg.WorkspaceDir = workspaceDir
	cfg.LayoutMode = normalizeLayoutMode(cfg.LayoutMode)

	log.Debug("loaded config", "path", path, "workspace_dir", cfg.WorkspaceDir, "layout_mode", cfg.LayoutMode)
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	workspaceDir, err := NormalizeWorkspaceDir(cfg.WorkspaceDir)
	if err != nil {
		return fmt.Errorf("invalid workspace_dir: %w", err)
	}
	cfg.WorkspaceDir = workspaceDir
	cfg.LayoutMode = normalizeLayoutMode(cfg.LayoutMode)

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// NormalizeWorkspaceDir expands and normalizes a workspace directory path.
func NormalizeWorkspaceDir(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

// normalizeLayoutMode lowercases the persisted mode and falls back to
// horizontal for empty or unrecognized values.
func normalizeLayoutMode(mode string) string {
	if strings.EqualFold(strings.TrimSpace(mode), LayoutVertical) {
		return LayoutVertical
	}
	return LayoutHorizontal
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
