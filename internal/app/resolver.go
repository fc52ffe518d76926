package app

import (
	"github.com/avharris/dockyard/internal/dock"
)

// renderFunc adapts a closure to the dock.Renderable interface.
type renderFunc func(width, height int) string

func (f renderFunc) Render(width, height int) string {
	return f(width, height)
}

// paneResolver maps pane ids from the composed split tree to live panel
// content. Ids that no longer resolve (a pane closed between plan computation
// and render, or an unknown id) yield nil, which the view draws as empty
// space.
type paneResolver struct {
	m *Model
}

// Resolver returns the model's pane resolver.
func (m *Model) Resolver() dock.Resolver {
	return paneResolver{m: m}
}

func (p paneResolver) Resolve(id string) dock.Renderable {
	m := p.m
	switch dock.Classify(id) {
	case dock.PaneWorkspace:
		if !m.registry.Visible(dock.KindWorkspace) {
			return nil
		}
		return renderFunc(func(w, h int) string {
			focused := m.focus == id
			body := m.browser.renderBody(tileBodyWidth(w), tileBodyHeight(h), focused)
			return m.renderTile(id, "workspace", dockButtons(), body, w, h)
		})
	case dock.PaneGit:
		if !m.registry.Visible(dock.KindGit) {
			return nil
		}
		return renderFunc(func(w, h int) string {
			focused := m.focus == id
			body := m.git.renderBody(tileBodyWidth(w), tileBodyHeight(h), focused)
			return m.renderTile(id, "git", dockButtons(), body, w, h)
		})
	case dock.PaneSettings:
		if !m.registry.Visible(dock.KindSettings) {
			return nil
		}
		return renderFunc(func(w, h int) string {
			focused := m.focus == id
			body := m.settings.renderBody(tileBodyWidth(w), tileBodyHeight(h), focused, m.settingsRows())
			return m.renderTile(id, "settings", dockButtons(), body, w, h)
		})
	case dock.PaneEditor:
		e := m.editorByID(id)
		if e == nil {
			return nil
		}
		return renderFunc(func(w, h int) string {
			focused := m.focus == id
			body := e.renderBody(tileBodyWidth(w), tileBodyHeight(h), focused)
			return m.renderTile(id, e.title(), closeButton(), body, w, h)
		})
	case dock.PaneAgent:
		a := m.agentByID(id)
		if a == nil {
			return nil
		}
		return renderFunc(func(w, h int) string {
			focused := m.focus == id
			body := a.renderBody(tileBodyWidth(w), tileBodyHeight(h), focused, m.spinner.View())
			return m.renderTile(id, a.title(), closeButton(), body, w, h)
		})
	default:
		return nil
	}
}

// windowHooks wires a dockable window's header affordances back into the
// registry.
func (m *Model) windowHooks(kind dock.Kind) dock.WindowHooks {
	return dock.WindowHooks{
		OnClose: func() {
			m.registry.SetVisible(kind, false)
			m.status = "Hid " + kind.String()
		},
		OnToggleSide: func() {
			m.registry.ToggleSide(kind)
			m.status = "Moved " + kind.String() + " to the " + m.registry.SideOf(kind).String()
		},
	}
}

// dragHooksFor exposes drag-to-dock only for the workspace window; the other
// windows move by keyboard or the header toggle button.
func (m *Model) dragHooksFor(kind dock.Kind) dock.DragHooks {
	if kind != dock.KindWorkspace {
		return dock.NoDrag
	}
	return dock.DragHooks{
		OnDragStart: func() {
			m.drag = dragState{active: true, paneID: kind.PaneID()}
		},
		OnDragOver: func(side dock.Side) {
			m.drag.overSide = side
			m.drag.hasOver = true
		},
		OnDrop: func(side dock.Side) {
			m.registry.SetSide(kind, side)
			m.drag = dragState{}
			m.status = "Docked " + kind.String() + " on the " + side.String()
		},
		OnDragEnd: func() {
			m.drag = dragState{}
			m.status = "Drag cancelled"
		},
	}
}

// Header button labels. Fixed-width ASCII so mouse hit zones are stable.
const (
	sideToggleLabel = "[~]"
	closeLabel      = "[x]"
)

func dockButtons() string {
	return headerButton.Render(sideToggleLabel) + " " + headerButton.Render(closeLabel)
}

func closeButton() string {
	return headerButton.Render(closeLabel)
}

func tileBodyWidth(w int) int {
	return max(0, w-2)
}

func tileBodyHeight(h int) int {
	return max(0, h-3)
}
