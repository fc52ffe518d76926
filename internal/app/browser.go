package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// treeItem represents a single row in the workspace browser.
type treeItem struct {
	path  string
	name  string
	depth int
	isDir bool
}

// browserPanel is the workspace browser window: a collapsible file tree
// rooted at the workspace directory.
type browserPanel struct {
	root     string
	items    []treeItem
	expanded map[string]bool
	cursor   int
	offset   int

	// lastHeight is the body height from the most recent render, used to
	// keep the cursor visible when scrolling between frames.
	lastHeight int
}

func newBrowserPanel(root string) *browserPanel {
	expanded := map[string]bool{root: true}
	return &browserPanel{
		root:     root,
		items:    buildTree(root, expanded),
		expanded: expanded,
	}
}

// moveCursor changes the selection and keeps it within bounds.
func (b *browserPanel) moveCursor(delta int) {
	if len(b.items) == 0 {
		return
	}
	b.cursor = clamp(b.cursor+delta, 0, len(b.items)-1)
	b.adjustOffset()
}

// adjustOffset scrolls the tree so the cursor remains visible.
func (b *browserPanel) adjustOffset() {
	visible := max(0, b.lastHeight)
	if visible == 0 {
		b.offset = 0
		return
	}
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+visible {
		b.offset = b.cursor - visible + 1
	}
}

func (b *browserPanel) selectedItem() *treeItem {
	if b.cursor < 0 || b.cursor >= len(b.items) {
		return nil
	}
	return &b.items[b.cursor]
}

// toggleExpand expands or collapses the selected directory row.
func (b *browserPanel) toggleExpand() {
	item := b.selectedItem()
	if item == nil || !item.isDir {
		return
	}
	b.expanded[item.path] = !b.expanded[item.path]
	b.rebuildKeep(item.path)
}

// refresh rebuilds the tree while preserving selection.
func (b *browserPanel) refresh() {
	selected := ""
	if item := b.selectedItem(); item != nil {
		selected = item.path
	}
	b.rebuildKeep(selected)
}

// rebuildKeep rebuilds the tree and keeps the cursor near the given path.
func (b *browserPanel) rebuildKeep(path string) {
	b.items = buildTree(b.root, b.expanded)
	if len(b.items) == 0 {
		b.cursor = 0
		b.offset = 0
		return
	}
	b.cursor = 0
	for i, item := range b.items {
		if item.path == path {
			b.cursor = i
			break
		}
	}
	b.adjustOffset()
}

// renderBody draws the tree rows into the given rectangle. The cursor row is
// highlighted only when the browser window holds focus.
func (b *browserPanel) renderBody(width, height int, focused bool) string {
	b.lastHeight = height
	b.adjustOffset()

	lines := make([]string, 0, height)
	start := min(b.offset, max(0, len(b.items)-1))
	end := min(len(b.items), start+height)

	for i := start; i < end; i++ {
		item := b.items[i]
		line := b.formatItem(item)
		if i == b.cursor && focused {
			line = truncate(b.formatItemPlain(item), width)
			line = selectedStyle.Width(width).Render(line)
			lines = append(lines, line)
			continue
		}
		lines = append(lines, truncate(line, width))
	}
	if len(b.items) == 0 {
		lines = append(lines, truncate(mutedStyle.Render("(empty workspace)"), width))
	}

	return padBlock(strings.Join(lines, "\n"), width, height)
}

func (b *browserPanel) formatItem(item treeItem) string {
	indent := strings.Repeat("  ", item.depth)
	if item.isDir {
		marker := "[+]"
		if b.expanded[item.path] {
			marker = "[-]"
		}
		return fmt.Sprintf("%s%s %s", indent, mutedStyle.Render(marker), tileHeaderStyle.Render(item.name))
	}
	return fmt.Sprintf("%s    %s", indent, item.name)
}

// formatItemPlain renders the row without nested styles so the selection
// reverse-video covers the whole line cleanly.
func (b *browserPanel) formatItemPlain(item treeItem) string {
	indent := strings.Repeat("  ", item.depth)
	if item.isDir {
		marker := "[+]"
		if b.expanded[item.path] {
			marker = "[-]"
		}
		return fmt.Sprintf("%s%s %s", indent, marker, item.name)
	}
	return fmt.Sprintf("%s    %s", indent, item.name)
}

// buildTree builds a flat list of items for rendering the tree view.
//
// The tree is built by recursively walking the directory structure, respecting
// the expanded map to determine which folders to traverse. The result is a flat
// slice of treeItems that can be rendered with proper indentation.
func buildTree(root string, expanded map[string]bool) []treeItem {
	items := []treeItem{}
	walkTree(root, 0, expanded, &items)
	return items
}

// walkTree recursively appends directory contents in sorted order.
//
// Each directory is sorted with folders first, then alphabetically
// (case-insensitive). Only expanded folders have their children added.
// Dotfiles are skipped so VCS metadata does not clutter the browser.
func walkTree(dir string, depth int, expanded map[string]bool, items *[]treeItem) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		appLog.Warn("read tree directory", "path", dir, "error", err)
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		item := treeItem{
			path:  path,
			name:  entry.Name(),
			depth: depth,
			isDir: entry.IsDir(),
		}
		*items = append(*items, item)
		if entry.IsDir() && expanded[path] {
			walkTree(path, depth+1, expanded, items)
		}
	}
}
