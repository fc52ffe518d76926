package app

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/config"
	"github.com/avharris/dockyard/internal/dock"
)

// settingRow is one display row in the settings panel. Only rows with an
// action respond to enter/space.
type settingRow struct {
	label      string
	value      string
	actionable bool
}

// settingsPanel is the settings tool window: current configuration with an
// inline toggle for the layout mode.
type settingsPanel struct {
	cursor int
}

func newSettingsPanel() *settingsPanel {
	return &settingsPanel{}
}

func (s *settingsPanel) move(delta, rowCount int) {
	s.cursor = clamp(s.cursor+delta, 0, max(0, rowCount-1))
}

// settingsRows assembles the panel rows from live model state.
func (m *Model) settingsRows() []settingRow {
	configPath, err := config.ConfigPath()
	if err != nil {
		configPath = "(unavailable)"
	}
	logLevel := os.Getenv("DOCKYARD_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info (default)"
	}
	return []settingRow{
		{label: "layout mode", value: m.layoutMode.String(), actionable: true},
		{label: "workspace", value: m.workspaceDir},
		{label: "config file", value: configPath},
		{label: "log level", value: logLevel},
	}
}

// activateSetting applies the action of the cursor row, if it has one.
func (m *Model) activateSetting() tea.Cmd {
	rows := m.settingsRows()
	if m.settings.cursor >= len(rows) || !rows[m.settings.cursor].actionable {
		return nil
	}
	return m.toggleLayoutMode()
}

// toggleLayoutMode flips the outer split orientation and persists it. A
// persistence failure leaves the in-memory mode flipped; only the save is
// reported.
func (m *Model) toggleLayoutMode() tea.Cmd {
	if m.layoutMode == dock.ModeHorizontal {
		m.layoutMode = dock.ModeVertical
	} else {
		m.layoutMode = dock.ModeHorizontal
	}
	m.status = "Layout: " + m.layoutMode.String()

	m.cfg.LayoutMode = m.layoutMode.String()
	if err := config.Save(m.cfg); err != nil {
		m.setStatusError("Layout changed, but saving config failed", err)
	}
	return m.syncPaneSizes()
}

func (s *settingsPanel) renderBody(width, height int, focused bool, rows []settingRow) string {
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		// Long path values are elided in the middle so their tails stay
		// readable in a narrow dock.
		value := shortenPath(row.value, max(0, width-len(row.label)-2))
		line := row.label + ": " + value
		if row.actionable {
			line += "  " + mutedStyle.Render("(enter to toggle)")
		}
		if focused && i == s.cursor {
			lines = append(lines, selectedStyle.Width(width).Render(truncate(row.label+": "+value, width)))
			continue
		}
		lines = append(lines, truncate(line, width))
	}
	return padBlock(strings.Join(lines, "\n"), width, height)
}
