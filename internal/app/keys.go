package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/dock"
)

// handleKey processes browse-mode key presses.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	// Dock visibility toggles.
	case "b":
		return m, m.toggleWindow(dock.KindWorkspace)
	case "g":
		return m, m.toggleWindow(dock.KindGit)
	case "s":
		return m, m.toggleWindow(dock.KindSettings)

	// Dock side toggles.
	case "B":
		return m, m.moveWindow(dock.KindWorkspace)
	case "G":
		return m, m.moveWindow(dock.KindGit)
	case "S":
		return m, m.moveWindow(dock.KindSettings)

	case "v":
		return m, m.toggleLayoutMode()

	case "a":
		m.uiMode = modeNewTask
		m.input.Reset()
		m.input.Focus()
		m.status = "New task: type a shell command, Enter to run, Esc to cancel"
		return m, nil

	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil

	case "up", "k":
		m.scrollPane(m.focus, -1)
		return m, nil
	case "down", "j":
		m.scrollPane(m.focus, 1)
		return m, nil

	case "enter", " ":
		return m.activateFocused()

	case "e":
		if e := m.editorByID(m.focus); e != nil {
			m.startEdit(e)
		}
		return m, nil

	case "w":
		return m, m.closeFocused()

	case "r":
		m.browser.refresh()
		m.git.refresh()
		m.status = "Refreshed"
		return m, nil

	// Dock resizing.
	case "[":
		return m, m.resizeSide(dock.SideLeft, -SideResizeStep)
	case "]":
		return m, m.resizeSide(dock.SideLeft, +SideResizeStep)
	case "{":
		return m, m.resizeSide(dock.SideRight, -SideResizeStep)
	case "}":
		return m, m.resizeSide(dock.SideRight, +SideResizeStep)
	case "-":
		return m, m.resizeStack(-SideResizeStep)
	case "+", "=":
		return m, m.resizeStack(+SideResizeStep)
	}

	return m, nil
}

// toggleWindow flips a dock window's visibility and refocuses sensibly.
func (m *Model) toggleWindow(kind dock.Kind) tea.Cmd {
	m.registry.ToggleVisible(kind)
	if m.registry.Visible(kind) {
		if kind == dock.KindGit {
			m.git.refresh()
		}
		m.focus = kind.PaneID()
		m.status = "Showing " + kind.String()
	} else {
		m.status = "Hid " + kind.String()
	}
	return m.syncPaneSizes()
}

// moveWindow flips a dock window's edge. Moving a hidden window is legal and
// only affects placement once it is shown again.
func (m *Model) moveWindow(kind dock.Kind) tea.Cmd {
	m.windowHooks(kind).OnToggleSide()
	return m.syncPaneSizes()
}

// activateFocused runs the focused pane's primary action: expanding or
// opening in the browser, toggling the selected setting, nothing elsewhere.
func (m *Model) activateFocused() (tea.Model, tea.Cmd) {
	switch dock.Classify(m.focus) {
	case dock.PaneWorkspace:
		item := m.browser.selectedItem()
		if item == nil {
			return m, nil
		}
		if item.isDir {
			m.browser.toggleExpand()
			return m, nil
		}
		return m, m.openEditor(item.path)
	case dock.PaneSettings:
		return m, m.activateSetting()
	}
	return m, nil
}

// closeFocused closes the focused pane: tiled panes are removed, dock
// windows are hidden.
func (m *Model) closeFocused() tea.Cmd {
	switch dock.Classify(m.focus) {
	case dock.PaneEditor:
		return m.closeEditor(m.focus)
	case dock.PaneAgent:
		return m.closeAgent(m.focus)
	case dock.PaneWorkspace, dock.PaneGit, dock.PaneSettings:
		kind, _ := dockKindForID(m.focus)
		m.windowHooks(kind).OnClose()
		return m.syncPaneSizes()
	}
	return nil
}

// resizeSide grows or shrinks the dock container on the given edge.
func (m *Model) resizeSide(side dock.Side, delta float64) tea.Cmd {
	m.composer.AdjustSide(side, delta, m.plan())
	return m.syncPaneSizes()
}

// resizeStack grows or shrinks the focused dock window within its side
// stack. A no-op unless a visible dock window holds focus.
func (m *Model) resizeStack(delta float64) tea.Cmd {
	kind, ok := dockKindForID(m.focus)
	if !ok || !m.registry.Visible(kind) {
		return nil
	}
	plan := m.plan()
	side := m.registry.SideOf(kind)
	ids := plan.LeftStack
	if side == dock.SideRight {
		ids = plan.RightStack
	}
	for i, id := range ids {
		if id == m.focus {
			m.composer.AdjustStack(side, i, delta, plan)
			break
		}
	}
	return m.syncPaneSizes()
}
