package app

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/avharris/dockyard/internal/dock"
)

func TestResolveDockWindows(t *testing.T) {
	m := newTestModel(t)
	res := m.Resolver()

	if res.Resolve(dock.KindWorkspace.PaneID()) == nil {
		t.Fatal("visible workspace must resolve")
	}
	if res.Resolve(dock.KindGit.PaneID()) != nil {
		t.Fatal("hidden git panel must resolve to nil")
	}

	m.registry.SetVisible(dock.KindWorkspace, false)
	if res.Resolve(dock.KindWorkspace.PaneID()) != nil {
		t.Fatal("hidden workspace must resolve to nil")
	}
}

func TestResolveClosedAndUnknownIDsYieldNil(t *testing.T) {
	m := newTestModel(t)
	res := m.Resolver()

	if res.Resolve("edit:never-opened.md") != nil {
		t.Fatal("unopened editor id must resolve to nil")
	}
	if res.Resolve("agent:no-such-task") != nil {
		t.Fatal("unknown task id must resolve to nil")
	}
	if res.Resolve("garbage") != nil {
		t.Fatal("unknown namespace must resolve to nil")
	}
	if res.Resolve("") != nil {
		t.Fatal("empty id must resolve to nil")
	}
}

func TestResolveEditorPaneRendersTileChrome(t *testing.T) {
	m := newTestModel(t)
	_ = m.openEditor(filepath.Join(m.workspaceDir, "readme.md"))
	id := m.editors[0].paneID()

	r := m.Resolver().Resolve(id)
	if r == nil {
		t.Fatal("open editor must resolve")
	}
	out := r.Render(40, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("rendered %d rows, want 10", len(lines))
	}
	if !strings.Contains(out, "readme.md") {
		t.Fatal("tile header must show the file path")
	}
	if !strings.Contains(out, closeLabel) {
		t.Fatal("tiled pane header must show the close button")
	}

	_ = m.closeEditor(id)
	if m.Resolver().Resolve(id) != nil {
		t.Fatal("closed editor must resolve to nil")
	}
}

func TestResolveDockTileShowsAffordanceButtons(t *testing.T) {
	m := newTestModel(t)
	out := m.Resolver().Resolve(dock.KindWorkspace.PaneID()).Render(50, 12)

	if !strings.Contains(out, sideToggleLabel) || !strings.Contains(out, closeLabel) {
		t.Fatal("dock tile header must show side-toggle and close buttons")
	}
}

func TestWindowHooksWriteThroughToRegistry(t *testing.T) {
	m := newTestModel(t)
	hooks := m.windowHooks(dock.KindSettings)

	hooks.OnToggleSide()
	if m.registry.SideOf(dock.KindSettings) != dock.SideLeft {
		t.Fatal("toggle hook must flip the side (settings starts right)")
	}

	m.registry.SetVisible(dock.KindSettings, true)
	hooks.OnClose()
	if m.registry.Visible(dock.KindSettings) {
		t.Fatal("close hook must hide the window")
	}
}

func TestDragHooksOnlyLiveForWorkspace(t *testing.T) {
	m := newTestModel(t)

	if !m.dragHooksFor(dock.KindWorkspace).Enabled() {
		t.Fatal("workspace must expose live drag hooks")
	}
	if m.dragHooksFor(dock.KindGit).Enabled() || m.dragHooksFor(dock.KindSettings).Enabled() {
		t.Fatal("git and settings must carry the inert hook set")
	}
}

func TestViewRendersFullFrame(t *testing.T) {
	m := newTestModel(t)
	_ = m.startAgent("echo hi")

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != m.height {
		t.Fatalf("view has %d rows, want %d", len(lines), m.height)
	}
}

func TestViewWithEverythingHiddenShowsEmptyCenterHint(t *testing.T) {
	m := newTestModel(t)
	m.registry.SetVisible(dock.KindWorkspace, false)
	_ = m.syncPaneSizes()

	out := m.View()
	if !strings.Contains(out, "no panes open") {
		t.Fatal("empty workspace must render the hint text")
	}
}
