// render.go implements debounced, cached markdown rendering for editor panes.
//
// Rendering markdown through Glamour is relatively expensive, so two
// optimizations keep the UI responsive:
//
// # Debouncing
//
// Opening panes and resizing docks can trigger several renders in quick
// succession. requestEditorRender increments a per-pane sequence number and
// schedules the render after a short delay; if another request for the same
// pane arrives first, the stale request is discarded when its timer fires.
//
// # Caching
//
// Completed renders are cached per file path with the file's modification
// time and the width bucket used. A cache hit displays instantly without
// re-reading the file or invoking Glamour. Width bucketing (multiples of
// RenderWidthBucket columns) means small dock resizes reuse cached renders.
//
// Glamour TermRenderer instances are themselves cached per width bucket in a
// global LRU protected by a mutex, since renders run on background
// goroutines. The rendering style comes from DOCKYARD_GLAMOUR_STYLE or
// GLAMOUR_STYLE, defaulting to "dark".
package app

import (
	"container/list"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// renderCacheEntry stores a completed render alongside the inputs that
// produced it. The mtime and width fields act as cache keys.
type renderCacheEntry struct {
	mtime   time.Time
	width   int
	content string
	raw     string
}

// renderRequestMsg is emitted by the debounce timer to trigger the actual
// render. The seq field is compared to the pane's current sequence to discard
// requests superseded by newer activity.
type renderRequestMsg struct {
	path  string
	width int
	seq   int
}

// renderResultMsg carries the completed render output (or error) back from
// the async render Cmd to the Update loop.
type renderResultMsg struct {
	path    string
	width   int
	seq     int
	content string
	raw     string
	mtime   time.Time
	err     error
}

var (
	// maxRendererCacheEntries bounds the number of width-specific Glamour
	// renderers retained in memory.
	maxRendererCacheEntries = 8

	rendererCacheMu sync.Mutex

	// rendererCache maps width buckets to reusable Glamour TermRenderer
	// instances. Creating a renderer involves parsing style JSON, so reuse
	// avoids repeated setup when the width hasn't changed.
	rendererCache = map[int]*glamour.TermRenderer{}

	// rendererCacheOrder tracks width buckets in LRU order (front = least
	// recent, back = most recent).
	rendererCacheOrder = list.New()

	rendererCacheNodes = map[int]*list.Element{}
)

// renderMarkdownCmd returns a Cmd that reads and renders a markdown file on a
// background goroutine, keeping the UI loop free while Glamour runs.
func renderMarkdownCmd(path string, width int, seq int) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return renderResultMsg{path: path, width: width, seq: seq, err: err}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return renderResultMsg{path: path, width: width, seq: seq, err: err}
		}
		rendered := renderMarkdown(string(content), width)
		return renderResultMsg{
			path:    path,
			width:   width,
			seq:     seq,
			content: rendered,
			raw:     string(content),
			mtime:   info.ModTime(),
		}
	}
}

// renderMarkdown converts raw markdown to ANSI output for a viewport. On any
// failure the raw markdown is returned so the user still sees content.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(width)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "error", err)
		return content
	}
	return out
}

// getRenderer returns a cached Glamour TermRenderer for the given width,
// creating one if needed. Access is serialized via rendererCacheMu since
// renders may run concurrently on background goroutines.
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[width]; ok {
		if node, ok := rendererCacheNodes[width]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = renderer
	rendererCacheNodes[width] = rendererCacheOrder.PushBack(width)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		width, _ := oldest.Value.(int)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, width)
		delete(rendererCacheNodes, width)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[int]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[int]*list.Element{}
}

// glamourStyleOption resolves the Glamour rendering style from environment
// variables: DOCKYARD_GLAMOUR_STYLE, then GLAMOUR_STYLE, then "dark". The
// hardcoded default avoids OSC background queries that can leak escape
// sequences into the UI. The special value "auto" delegates to Glamour's
// terminal detection.
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("DOCKYARD_GLAMOUR_STYLE")))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	if style == "" {
		style = "dark"
	}
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	switch style {
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}
