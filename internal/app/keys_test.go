package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/config"
	"github.com/avharris/dockyard/internal/dock"
)

func TestVisibilityKeysToggleDockWindows(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(keyMsg("g"))
	if !m.registry.Visible(dock.KindGit) {
		t.Fatal("g must show the git panel")
	}
	_, _ = m.Update(keyMsg("g"))
	if m.registry.Visible(dock.KindGit) {
		t.Fatal("g again must hide the git panel")
	}

	_, _ = m.Update(keyMsg("s"))
	if !m.registry.Visible(dock.KindSettings) {
		t.Fatal("s must show the settings panel")
	}
	_, _ = m.Update(keyMsg("b"))
	if m.registry.Visible(dock.KindWorkspace) {
		t.Fatal("b must hide the workspace browser")
	}
}

func TestSideKeysMoveWindowsEvenWhileHidden(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(keyMsg("G")) // git is hidden; moving it is still legal
	if m.registry.SideOf(dock.KindGit) != dock.SideRight {
		t.Fatal("G must move the git panel to the right edge")
	}
	if m.registry.Visible(dock.KindGit) {
		t.Fatal("moving a hidden window must not show it")
	}

	_, _ = m.Update(keyMsg("g"))
	plan := m.plan()
	if len(plan.RightStack) != 1 || plan.RightStack[0] != dock.KindGit.PaneID() {
		t.Fatalf("right stack = %v, want the git panel", plan.RightStack)
	}
}

func TestLayoutModeKeyFlipsAndPersists(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(keyMsg("v"))
	if m.layoutMode != dock.ModeVertical {
		t.Fatalf("layout mode = %v, want vertical", m.layoutMode)
	}

	saved, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if saved.LayoutMode != config.LayoutVertical {
		t.Fatalf("persisted layout mode = %q, want vertical", saved.LayoutMode)
	}
}

func TestFocusCycleFollowsPlanOrder(t *testing.T) {
	m := newTestModel(t)
	_, _ = m.Update(keyMsg("g")) // focus jumps to git when shown
	_ = m.openEditor(filepath.Join(m.workspaceDir, "readme.md"))

	// Order: workspace, git (left stack), editor (tiled).
	m.focus = dock.KindWorkspace.PaneID()
	m.cycleFocus(1)
	if m.focus != dock.KindGit.PaneID() {
		t.Fatalf("focus = %q, want git", m.focus)
	}
	m.cycleFocus(1)
	if dock.Classify(m.focus) != dock.PaneEditor {
		t.Fatalf("focus = %q, want the editor pane", m.focus)
	}
	m.cycleFocus(1)
	if m.focus != dock.KindWorkspace.PaneID() {
		t.Fatalf("focus = %q, want wrap back to workspace", m.focus)
	}
	m.cycleFocus(-1)
	if dock.Classify(m.focus) != dock.PaneEditor {
		t.Fatalf("focus = %q, want the editor pane going backward", m.focus)
	}
}

func TestNewTaskPromptEscCancels(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(keyMsg("a"))
	if m.uiMode != modeNewTask {
		t.Fatal("a must open the task prompt")
	}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.uiMode != modeBrowse {
		t.Fatal("esc must leave the task prompt")
	}
	if len(m.agents) != 0 {
		t.Fatal("cancelled prompt must not start a task")
	}
}

func TestResizeKeysClampAtSideBounds(t *testing.T) {
	m := newTestModel(t)
	_ = m.openEditor(filepath.Join(m.workspaceDir, "readme.md"))

	for i := 0; i < 50; i++ {
		_, _ = m.Update(keyMsg("]"))
	}
	if got := m.composer.OuterFractions()[0]; got > dock.MaxSideFraction+1e-9 {
		t.Fatalf("left side fraction = %v, want clamped at %v", got, dock.MaxSideFraction)
	}

	for i := 0; i < 50; i++ {
		_, _ = m.Update(keyMsg("["))
	}
	if got := m.composer.OuterFractions()[0]; got < dock.MinSideFraction-1e-9 {
		t.Fatalf("left side fraction = %v, want clamped at %v", got, dock.MinSideFraction)
	}
}

func TestResizeSurvivesFocusAndContentChanges(t *testing.T) {
	m := newTestModel(t)
	_ = m.openEditor(filepath.Join(m.workspaceDir, "readme.md"))

	_, _ = m.Update(keyMsg("]"))
	adjusted := m.composer.OuterFractions()[0]

	m.cycleFocus(1)
	m.browser.moveCursor(1)
	_ = m.syncPaneSizes()

	if got := m.composer.OuterFractions()[0]; got != adjusted {
		t.Fatalf("fraction = %v after content-only changes, want retained %v", got, adjusted)
	}

	// A structural change resets to defaults.
	_, _ = m.Update(keyMsg("s"))
	if got := m.composer.OuterFractions()[0]; got != dock.DefaultSideFraction {
		t.Fatalf("fraction = %v after structural change, want default %v", got, dock.DefaultSideFraction)
	}
}

func TestStackResizeKeysAdjustFocusedDockWindow(t *testing.T) {
	m := newTestModel(t)
	_, _ = m.Update(keyMsg("g")) // git joins the left stack and takes focus

	_, _ = m.Update(keyMsg("+"))
	fracs := m.composer.StackFractions(dock.SideLeft)
	if len(fracs) != 2 {
		t.Fatalf("stack fractions = %v, want explicit pair after resize", fracs)
	}
	if fracs[1] <= fracs[0] {
		t.Fatalf("focused git member did not grow: %v", fracs)
	}

	// Resizing while a tiled pane holds focus changes nothing.
	_ = m.openEditor(filepath.Join(m.workspaceDir, "readme.md"))
	before := m.composer.StackFractions(dock.SideLeft)
	_, _ = m.Update(keyMsg("+"))
	after := m.composer.StackFractions(dock.SideLeft)
	if len(before) != len(after) {
		t.Fatalf("stack fractions changed without dock focus: %v vs %v", before, after)
	}
}

func TestCloseFocusedHidesDockAndRemovesTiled(t *testing.T) {
	m := newTestModel(t)
	_ = m.openEditor(filepath.Join(m.workspaceDir, "readme.md"))

	_, _ = m.Update(keyMsg("w")) // focused editor closes
	if len(m.editors) != 0 {
		t.Fatal("w must close the focused editor pane")
	}

	m.focus = dock.KindWorkspace.PaneID()
	_, _ = m.Update(keyMsg("w"))
	if m.registry.Visible(dock.KindWorkspace) {
		t.Fatal("w on a dock window must hide it")
	}
}

func TestQuitKeyEmitsQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q must produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q must quit")
	}
}

func TestEnterOnBrowserDirectoryExpands(t *testing.T) {
	m := newTestModel(t)
	m.focus = dock.KindWorkspace.PaneID()
	// Cursor starts on the src directory (dirs sort first).
	before := len(m.browser.items)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.browser.items) <= before {
		t.Fatal("enter on a directory must expand it")
	}
}

func TestEnterOnBrowserFileOpensEditor(t *testing.T) {
	m := newTestModel(t)
	m.focus = dock.KindWorkspace.PaneID()
	m.browser.moveCursor(1) // readme.md, after the src directory

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.editors) != 1 {
		t.Fatalf("editors = %d, want 1 after enter on a file", len(m.editors))
	}
	if m.editors[0].relPath != "readme.md" {
		t.Fatalf("opened %q, want readme.md", m.editors[0].relPath)
	}
}
