// mouse.go implements pointer support: focus-on-click, header affordance
// buttons, wheel scrolling, and the press-drag-release flow that re-docks the
// workspace window.
//
// All hit-testing runs against the pane regions recorded during the last
// composition, so clicks always land on what the user saw. Dock re-docking is
// driven entirely through the window's drag hooks: pressing the workspace
// header arms the drag, moving near a vertical screen edge marks that edge as
// the drop target, and releasing commits the move through OnDrop. Releasing
// anywhere else cancels through OnDragEnd without touching the registry.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/dock"
)

// dragState tracks an in-flight drag of a dockable window header.
type dragState struct {
	active   bool
	paneID   string
	overSide dock.Side
	hasOver  bool
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.uiMode == modeEditPane || m.uiMode == modeNewTask {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollPaneAt(msg.X, msg.Y, -1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollPaneAt(msg.X, msg.Y, 1)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleMousePress(msg.X, msg.Y)
	case tea.MouseActionMotion:
		m.handleMouseMotion(msg.X)
		return m, nil
	case tea.MouseActionRelease:
		return m.handleMouseRelease(msg.X)
	}
	return m, nil
}

func (m *Model) handleMousePress(x, y int) (tea.Model, tea.Cmd) {
	region := m.regionAt(x, y)
	if region == nil {
		return m, nil
	}
	m.focus = region.id

	if y != region.headerRow() {
		return m, nil
	}

	kind, isDock := dockKindForID(region.id)
	switch {
	case isDock && m.inCloseButton(*region, x):
		m.windowHooks(kind).OnClose()
		return m, m.syncPaneSizes()
	case isDock && m.inSideToggleButton(*region, x):
		m.windowHooks(kind).OnToggleSide()
		return m, m.syncPaneSizes()
	case isDock:
		if hooks := m.dragHooksFor(kind); hooks.Enabled() {
			hooks.OnDragStart()
		}
		return m, nil
	case m.inCloseButton(*region, x):
		switch dock.Classify(region.id) {
		case dock.PaneEditor:
			return m, m.closeEditor(region.id)
		case dock.PaneAgent:
			return m, m.closeAgent(region.id)
		}
	}
	return m, nil
}

func (m *Model) handleMouseMotion(x int) {
	if !m.drag.active {
		return
	}
	hooks := m.dragHooksFor(dock.KindWorkspace)
	if side, ok := m.dropSideForX(x); ok {
		hooks.OnDragOver(side)
	} else {
		m.drag.hasOver = false
	}
}

func (m *Model) handleMouseRelease(x int) (tea.Model, tea.Cmd) {
	if !m.drag.active {
		return m, nil
	}
	hooks := m.dragHooksFor(dock.KindWorkspace)
	if side, ok := m.dropSideForX(x); ok {
		hooks.OnDrop(side)
		return m, m.syncPaneSizes()
	}
	hooks.OnDragEnd()
	return m, nil
}

// dropSideForX maps a pointer column to a docking edge. Only the outer
// quarter on each side counts as a drop target; the middle of the screen is
// neutral so an accidental release does not move the window.
func (m *Model) dropSideForX(x int) (dock.Side, bool) {
	if m.width <= 0 {
		return dock.SideLeft, false
	}
	switch {
	case x < m.width/4:
		return dock.SideLeft, true
	case x >= m.width-m.width/4:
		return dock.SideRight, true
	default:
		return dock.SideLeft, false
	}
}

func (m *Model) regionAt(x, y int) *paneRegion {
	for i := range m.regions {
		if m.regions[i].contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Button hit zones. Buttons are right-aligned in the header: the close
// button's last cell sits against the inner right border, with the side
// toggle one gap to its left on dockable tiles.
func (m *Model) inCloseButton(r paneRegion, x int) bool {
	end := r.x + r.w - 1 // right border column
	start := end - len(closeLabel)
	return x >= start && x < end
}

func (m *Model) inSideToggleButton(r paneRegion, x int) bool {
	end := r.x + r.w - 1 - len(closeLabel) - 1
	start := end - len(sideToggleLabel)
	return x >= start && x < end
}

// scrollPaneAt wheel-scrolls whichever pane is under the pointer.
func (m *Model) scrollPaneAt(x, y, delta int) {
	region := m.regionAt(x, y)
	if region == nil {
		return
	}
	m.scrollPane(region.id, delta)
}

// scrollPane moves the given pane's cursor or viewport by delta rows.
func (m *Model) scrollPane(id string, delta int) {
	switch dock.Classify(id) {
	case dock.PaneWorkspace:
		m.browser.moveCursor(delta)
	case dock.PaneGit:
		m.git.scroll(delta)
	case dock.PaneSettings:
		m.settings.move(delta, len(m.settingsRows()))
	case dock.PaneEditor:
		if e := m.editorByID(id); e != nil && !e.editing {
			if delta < 0 {
				e.view.LineUp(-delta)
			} else {
				e.view.LineDown(delta)
			}
		}
	case dock.PaneAgent:
		if a := m.agentByID(id); a != nil {
			a.scroll(delta)
		}
	}
}

// dockKindForID maps a reserved dock pane id back to its window kind.
func dockKindForID(id string) (dock.Kind, bool) {
	switch dock.Classify(id) {
	case dock.PaneWorkspace:
		return dock.KindWorkspace, true
	case dock.PaneGit:
		return dock.KindGit, true
	case dock.PaneSettings:
		return dock.KindSettings, true
	default:
		return dock.KindWorkspace, false
	}
}
