package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/config"
	"github.com/avharris/dockyard/internal/dock"
)

// newTestModel builds a model over a throwaway workspace at a fixed terminal
// size, with HOME redirected so config writes stay inside the test.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "readme.md"), "# readme\n\nhello\n")
	mustWriteFile(t, filepath.Join(root, "src", "main.go"), "package main\n")

	m, err := New(config.Config{WorkspaceDir: root, LayoutMode: config.LayoutHorizontal})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	t.Cleanup(func() {
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
	})

	m.width = 120
	m.height = 40
	_ = m.syncPaneSizes()
	return m
}

func (m *Model) regionFor(t *testing.T, id string) paneRegion {
	t.Helper()
	for _, region := range m.regions {
		if region.id == id {
			return region
		}
	}
	t.Fatalf("no region for pane %q (have %+v)", id, m.regions)
	return paneRegion{}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartupShowsWorkspaceOnly(t *testing.T) {
	m := newTestModel(t)

	if !m.registry.Visible(dock.KindWorkspace) {
		t.Fatal("workspace must be visible at startup")
	}
	if m.registry.Visible(dock.KindGit) || m.registry.Visible(dock.KindSettings) {
		t.Fatal("git and settings must start hidden")
	}
	if m.focus != dock.KindWorkspace.PaneID() {
		t.Fatalf("focus = %q, want the workspace pane", m.focus)
	}
}

func TestOpenAndCloseEditorPane(t *testing.T) {
	m := newTestModel(t)
	abs := filepath.Join(m.workspaceDir, "readme.md")

	_ = m.openEditor(abs)
	if len(m.editors) != 1 {
		t.Fatalf("editors = %d, want 1", len(m.editors))
	}
	id := m.editors[0].paneID()
	if m.focus != id {
		t.Fatalf("focus = %q, want the new editor %q", m.focus, id)
	}

	// Opening the same file again refocuses rather than duplicating.
	_ = m.openEditor(abs)
	if len(m.editors) != 1 {
		t.Fatalf("duplicate open created %d editors", len(m.editors))
	}

	_ = m.closeEditor(id)
	if len(m.editors) != 0 {
		t.Fatal("editor pane not removed")
	}
	if m.focus != dock.KindWorkspace.PaneID() {
		t.Fatalf("focus after close = %q, want workspace", m.focus)
	}
}

func TestOpenEditorRejectsPathOutsideWorkspace(t *testing.T) {
	m := newTestModel(t)
	outside := filepath.Join(t.TempDir(), "elsewhere.md")
	mustWriteFile(t, outside, "x\n")

	_ = m.openEditor(outside)
	if len(m.editors) != 0 {
		t.Fatal("editor opened for a path outside the workspace")
	}
}

func TestStartAgentCreatesTiledPane(t *testing.T) {
	m := newTestModel(t)

	cmd := m.startAgent("echo hi")
	if cmd == nil {
		t.Fatal("expected a run command")
	}
	if len(m.agents) != 1 {
		t.Fatalf("agents = %d, want 1", len(m.agents))
	}
	if m.focus != m.agents[0].paneID() {
		t.Fatalf("focus = %q, want the new task pane", m.focus)
	}

	plan := m.plan()
	if len(plan.Tiled) != 1 || plan.Tiled[0] != m.agents[0].paneID() {
		t.Fatalf("tiled = %v, want the task pane", plan.Tiled)
	}
}

func TestStartAgentIgnoresBlankCommand(t *testing.T) {
	m := newTestModel(t)
	_ = m.startAgent("   ")
	if len(m.agents) != 0 {
		t.Fatal("blank command must not create a pane")
	}
}

func TestAgentDoneForClosedPaneIsDropped(t *testing.T) {
	m := newTestModel(t)
	_ = m.startAgent("echo hi")
	id := m.agents[0].id
	_ = m.closeAgent(m.agents[0].paneID())

	// Must not panic or resurrect the pane.
	m.handleAgentDone(agentDoneMsg{id: id, output: "hi\n"})
	if len(m.agents) != 0 {
		t.Fatal("completed message resurrected a closed pane")
	}
}

func TestTiledOrderIsAgentsThenEditors(t *testing.T) {
	m := newTestModel(t)
	_ = m.openEditor(filepath.Join(m.workspaceDir, "readme.md"))
	_ = m.startAgent("echo hi")

	plan := m.plan()
	if len(plan.Tiled) != 2 {
		t.Fatalf("tiled = %v, want 2 panes", plan.Tiled)
	}
	if dock.Classify(plan.Tiled[0]) != dock.PaneAgent || dock.Classify(plan.Tiled[1]) != dock.PaneEditor {
		t.Fatalf("tiled order = %v, want agent before editor", plan.Tiled)
	}
}
