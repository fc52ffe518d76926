package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/dock"
)

// editorPanel is one tiled editor pane over a single workspace file. Markdown
// files display through the Glamour render pipeline; everything else shows
// raw. Pressing e switches the pane into an in-place textarea.
type editorPanel struct {
	relPath string
	absPath string

	view   viewport.Model
	editor textarea.Model

	editing   bool
	rendering bool

	// renderSeq invalidates in-flight debounced renders; renderedWidth is
	// the width bucket of the content currently in the viewport.
	renderSeq     int
	renderedWidth int
}

func newEditorPanel(relPath, absPath string) *editorPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")

	editor := textarea.New()
	editor.CharLimit = 0
	applyEditorTheme(&editor)

	return &editorPanel{
		relPath: relPath,
		absPath: absPath,
		view:    vp,
		editor:  editor,
	}
}

func (e *editorPanel) paneID() string {
	return dock.EditorID(e.relPath)
}

func (e *editorPanel) isMarkdown() bool {
	return strings.EqualFold(filepath.Ext(e.relPath), ".md")
}

func (e *editorPanel) title() string {
	if e.editing {
		return e.relPath + " [editing]"
	}
	return e.relPath
}

// renderBody draws the pane content. The viewport and textarea are kept at
// the body size by syncPaneSizes; sizing here is a fallback for the first
// frame after a structural change.
func (e *editorPanel) renderBody(width, height int, focused bool) string {
	if e.editing {
		e.editor.SetWidth(width)
		e.editor.SetHeight(height)
		return padBlock(e.editor.View(), width, height)
	}
	e.view.Width = width
	e.view.Height = height
	if e.rendering {
		return padBlock(mutedStyle.Render("Rendering..."), width, height)
	}
	return padBlock(e.view.View(), width, height)
}

// editorsByPath returns the open editor panes showing the given absolute path.
func (m *Model) editorsByPath(absPath string) []*editorPanel {
	var out []*editorPanel
	for _, e := range m.editors {
		if e.absPath == absPath {
			out = append(out, e)
		}
	}
	return out
}

func (m *Model) editorByID(id string) *editorPanel {
	for _, e := range m.editors {
		if e.paneID() == id {
			return e
		}
	}
	return nil
}

// openEditor opens (or refocuses) an editor pane for the given file.
func (m *Model) openEditor(absPath string) tea.Cmd {
	rel, err := filepath.Rel(m.workspaceDir, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		m.setStatusError("File is outside the workspace", err, "path", absPath)
		return nil
	}
	rel = filepath.ToSlash(rel)

	id := dock.EditorID(rel)
	if existing := m.editorByID(id); existing != nil {
		m.focus = id
		return nil
	}

	e := newEditorPanel(rel, absPath)
	m.editors = append(m.editors, e)
	m.focus = id
	m.status = "Opened " + rel
	appLog.Info("opened editor pane", "path", rel)

	cmds := []tea.Cmd{m.syncPaneSizes()}
	cmds = append(cmds, m.requestEditorRender(e))
	return tea.Batch(cmds...)
}

// closeEditor removes the pane with the given id from the tiled sequence.
func (m *Model) closeEditor(id string) tea.Cmd {
	for i, e := range m.editors {
		if e.paneID() != id {
			continue
		}
		m.editors = append(m.editors[:i], m.editors[i+1:]...)
		m.status = "Closed " + e.relPath
		if m.focus == id {
			m.focus = ""
			m.focusFirst()
		}
		return m.syncPaneSizes()
	}
	return nil
}

// requestEditorRender loads the pane's content: instantly from the render
// cache when path, mtime, and width bucket match, otherwise via the debounced
// async Glamour pipeline. Non-markdown files are read directly.
func (m *Model) requestEditorRender(e *editorPanel) tea.Cmd {
	width := roundWidthToNearestBucket(e.view.Width)

	if !e.isMarkdown() {
		content, err := os.ReadFile(e.absPath)
		if err != nil {
			m.setStatusError("Error reading file", err, "path", e.absPath)
			e.view.SetContent("Error reading file")
			return nil
		}
		e.view.SetContent(string(content))
		e.renderedWidth = width
		return nil
	}

	if info, err := os.Stat(e.absPath); err == nil {
		if entry, ok := m.renderCache[e.absPath]; ok && entry.width == width && entry.mtime.Equal(info.ModTime()) {
			e.view.SetContent(entry.content)
			e.rendering = false
			e.renderedWidth = width
			return nil
		}
	}

	e.rendering = true
	e.renderSeq++
	seq := e.renderSeq
	path := e.absPath
	return tea.Tick(RenderDebounce, func(time.Time) tea.Msg {
		return renderRequestMsg{path: path, width: width, seq: seq}
	})
}

// handleRenderRequest fires the actual render for a debounced request, unless
// a newer request for the same pane superseded it.
func (m *Model) handleRenderRequest(msg renderRequestMsg) tea.Cmd {
	for _, e := range m.editorsByPath(msg.path) {
		if e.renderSeq == msg.seq {
			return renderMarkdownCmd(msg.path, msg.width, msg.seq)
		}
	}
	return nil
}

// handleRenderResult stores the completed render in the cache and pushes it
// into every pane still showing the file at that width.
func (m *Model) handleRenderResult(msg renderResultMsg) {
	if msg.err != nil {
		for _, e := range m.editorsByPath(msg.path) {
			if e.renderSeq == msg.seq {
				e.rendering = false
				e.view.SetContent("Error reading file")
			}
		}
		m.setStatusError("Error rendering file", msg.err, "path", msg.path)
		return
	}

	if entry, ok := m.renderCache[msg.path]; !ok || !entry.mtime.After(msg.mtime) {
		m.renderCache[msg.path] = renderCacheEntry{
			mtime:   msg.mtime,
			width:   msg.width,
			content: msg.content,
			raw:     msg.raw,
		}
	}

	for _, e := range m.editorsByPath(msg.path) {
		if e.renderSeq != msg.seq {
			continue
		}
		if msg.width == roundWidthToNearestBucket(e.view.Width) {
			e.view.SetContent(msg.content)
			e.rendering = false
			e.renderedWidth = msg.width
		}
	}
}

// startEdit switches the focused editor pane into the in-place textarea.
func (m *Model) startEdit(e *editorPanel) {
	raw := ""
	if entry, ok := m.renderCache[e.absPath]; ok && entry.raw != "" {
		raw = entry.raw
	} else if content, err := os.ReadFile(e.absPath); err == nil {
		raw = string(content)
	}
	e.editor.SetValue(raw)
	e.editor.Focus()
	e.editing = true
	m.uiMode = modeEditPane
	m.status = "Editing " + e.relPath + " (Ctrl+S save, Esc cancel)"
}

// saveEdit writes the textarea buffer back to disk and re-renders the pane.
func (m *Model) saveEdit(e *editorPanel) tea.Cmd {
	content := e.editor.Value()
	if err := os.WriteFile(e.absPath, []byte(content), FilePermission); err != nil {
		m.setStatusError("Error saving file", err, "path", e.absPath)
		return nil
	}
	delete(m.renderCache, e.absPath)
	e.editing = false
	e.editor.Blur()
	m.uiMode = modeBrowse
	m.status = "Saved " + e.relPath
	appLog.Info("saved file", "path", e.relPath, "bytes", len(content))
	return m.requestEditorRender(e)
}

// cancelEdit leaves edit mode without writing.
func (m *Model) cancelEdit(e *editorPanel) {
	e.editing = false
	e.editor.Blur()
	m.uiMode = modeBrowse
	m.status = "Edit cancelled"
}

// editingPane returns the pane currently in edit mode, if any.
func (m *Model) editingPane() *editorPanel {
	for _, e := range m.editors {
		if e.editing {
			return e
		}
	}
	return nil
}
