package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/dock"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func TestDragWorkspaceHeaderToRightEdgeDocksRight(t *testing.T) {
	m := newTestModel(t)
	region := m.regionFor(t, dock.KindWorkspace.PaneID())

	_, _ = m.handleMouse(press(region.x+2, region.headerRow()))
	if !m.drag.active {
		t.Fatal("pressing the workspace header must arm the drag")
	}

	_, _ = m.handleMouse(motion(m.width-2, region.headerRow()))
	if !m.drag.hasOver || m.drag.overSide != dock.SideRight {
		t.Fatalf("drag over state = %+v, want right edge", m.drag)
	}

	_, _ = m.handleMouse(release(m.width-2, region.headerRow()))
	if m.registry.SideOf(dock.KindWorkspace) != dock.SideRight {
		t.Fatal("drop on the right edge must dock the workspace right")
	}
	if m.drag.active {
		t.Fatal("drag state must clear after the drop")
	}
}

func TestDragOverEdgeShowsTargetInFrame(t *testing.T) {
	m := newTestModel(t)
	region := m.regionFor(t, dock.KindWorkspace.PaneID())
	_, _ = m.handleMouse(press(region.x+2, region.headerRow()))

	_, _ = m.handleMouse(motion(m.width-2, region.headerRow()))
	overRight := m.View()
	if !strings.Contains(overRight, "release to dock on the right edge") {
		t.Fatal("frame must show the right edge as the drop target")
	}

	_, _ = m.handleMouse(motion(2, region.headerRow()))
	overLeft := m.View()
	if !strings.Contains(overLeft, "release to dock on the left edge") {
		t.Fatal("frame must show the left edge as the drop target")
	}
	if overLeft == overRight {
		t.Fatal("frames for different target edges must differ")
	}

	// Back to the neutral middle: no edge is highlighted.
	_, _ = m.handleMouse(motion(m.width/2, region.headerRow()))
	if strings.Contains(m.View(), "release to dock on the") {
		t.Fatal("neutral hover must not highlight an edge")
	}
}

func TestDragReleaseInNeutralZoneCancelsWithoutMutation(t *testing.T) {
	m := newTestModel(t)
	region := m.regionFor(t, dock.KindWorkspace.PaneID())

	_, _ = m.handleMouse(press(region.x+2, region.headerRow()))
	_, _ = m.handleMouse(motion(m.width/2, 10))
	_, _ = m.handleMouse(release(m.width/2, 10))

	if m.registry.SideOf(dock.KindWorkspace) != dock.SideLeft {
		t.Fatal("cancelled drag must not move the window")
	}
	if m.drag.active {
		t.Fatal("drag state must clear after a cancel")
	}
}

func TestGitPanelDoesNotArmDrag(t *testing.T) {
	m := newTestModel(t)
	_ = m.toggleWindow(dock.KindGit)
	region := m.regionFor(t, dock.KindGit.PaneID())

	_, _ = m.handleMouse(press(region.x+2, region.headerRow()))
	if m.drag.active {
		t.Fatal("git panel must not expose drag-to-dock")
	}
}

func TestHeaderCloseButtonHidesDockWindow(t *testing.T) {
	m := newTestModel(t)
	region := m.regionFor(t, dock.KindWorkspace.PaneID())

	closeX := region.x + region.w - 2 // inside the [x] label
	_, _ = m.handleMouse(press(closeX, region.headerRow()))

	if m.registry.Visible(dock.KindWorkspace) {
		t.Fatal("close button must hide the window")
	}
}

func TestHeaderSideToggleButtonMovesDockWindow(t *testing.T) {
	m := newTestModel(t)
	region := m.regionFor(t, dock.KindWorkspace.PaneID())

	toggleX := region.x + region.w - 1 - len(closeLabel) - 2 // inside the [~] label
	_, _ = m.handleMouse(press(toggleX, region.headerRow()))

	if m.registry.SideOf(dock.KindWorkspace) != dock.SideRight {
		t.Fatal("side toggle button must move the window to the other edge")
	}
	if m.registry.Visible(dock.KindWorkspace) != true {
		t.Fatal("side toggle must not change visibility")
	}
}

func TestClickFocusesPaneUnderPointer(t *testing.T) {
	m := newTestModel(t)
	_ = m.toggleWindow(dock.KindGit)
	m.focus = dock.KindWorkspace.PaneID()

	region := m.regionFor(t, dock.KindGit.PaneID())
	_, _ = m.handleMouse(press(region.x+1, region.y+3))

	if m.focus != dock.KindGit.PaneID() {
		t.Fatalf("focus = %q, want the clicked git pane", m.focus)
	}
}

func TestWheelScrollsPaneUnderPointer(t *testing.T) {
	m := newTestModel(t)
	region := m.regionFor(t, dock.KindWorkspace.PaneID())

	before := m.browser.cursor
	_, _ = m.handleMouse(tea.MouseMsg{
		X: region.x + 1, Y: region.y + 3,
		Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown,
	})
	if m.browser.cursor != before+1 {
		t.Fatalf("cursor = %d, want %d after wheel down", m.browser.cursor, before+1)
	}
}
