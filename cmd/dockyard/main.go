package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/app"
	"github.com/avharris/dockyard/internal/config"
	"github.com/avharris/dockyard/internal/logging"
)

var log = logging.New("main")

func main() {
	configure := flag.Bool("configure", false, "write the configuration file and exit")
	workspace := flag.String("workspace", "", "workspace directory (overrides the configured one)")
	layout := flag.String("layout", "", "layout mode: horizontal or vertical")
	flag.Parse()

	if *configure {
		if err := runConfigure(*workspace, *layout); err != nil {
			fail(err)
		}
		return
	}

	cfg, err := loadConfig(*workspace, *layout)
	if err != nil {
		fail(err)
	}

	m, err := app.New(cfg)
	if err != nil {
		fail(err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

// loadConfig reads the saved configuration, creating it with defaults on
// first run, then applies any command-line overrides for this session only.
func loadConfig(workspace, layout string) (config.Config, error) {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		dir := workspace
		if dir == "" {
			dir, err = config.DefaultWorkspaceDir()
			if err != nil {
				return config.Config{}, err
			}
		}
		cfg = config.Config{WorkspaceDir: dir, LayoutMode: layout}
		if err := config.Save(cfg); err != nil {
			return config.Config{}, err
		}
		log.Info("created initial config", "workspace", dir)
		return config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}

	if workspace != "" {
		dir, err := config.NormalizeWorkspaceDir(workspace)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --workspace: %w", err)
		}
		cfg.WorkspaceDir = dir
	}
	if layout != "" {
		cfg.LayoutMode = layout
	}
	return cfg, nil
}

// runConfigure persists the given settings without starting the UI.
func runConfigure(workspace, layout string) error {
	if workspace == "" {
		dir, err := config.DefaultWorkspaceDir()
		if err != nil {
			return err
		}
		workspace = dir
	}
	cfg := config.Config{WorkspaceDir: workspace, LayoutMode: layout}
	if err := config.Save(cfg); err != nil {
		return err
	}
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}

func fail(err error) {
	log.Error("fatal", "error", err)
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
