package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avharris/dockyard/internal/dock"
)

// paneRegion is the absolute cell rectangle one pane leaf occupied in the
// last composition. Regions drive mouse hit-testing.
type paneRegion struct {
	id         string
	x, y, w, h int
}

func (r paneRegion) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// headerRow is the terminal row of the tile's header line (inside the top
// border).
func (r paneRegion) headerRow() int {
	return r.y + 1
}

// bodySize is the usable content rectangle inside the tile chrome: one cell
// of border on each edge plus the header line.
func (r paneRegion) bodySize() (int, int) {
	return max(0, r.w-2), max(0, r.h-3)
}

// collectRegions walks the composed split tree and returns the absolute
// rectangle of every pane leaf. Extents come from the same splitExtents the
// renderer uses, so hit-testing and drawing always agree.
func collectRegions(n dock.Node, x, y, w, h int) []paneRegion {
	if n.IsLeaf() {
		return []paneRegion{{id: n.PaneID, x: x, y: y, w: w, h: h}}
	}
	var out []paneRegion
	if len(n.Children) == 0 {
		return out
	}

	if n.Axis == dock.AxisHorizontal {
		extents := splitExtents(w, len(n.Children), n.Fractions, n.Dividers)
		cx := x
		for i, child := range n.Children {
			out = append(out, collectRegions(child, cx, y, extents[i], h)...)
			cx += extents[i]
			if n.Dividers {
				cx += DividerRows
			}
		}
		return out
	}

	extents := splitExtents(h, len(n.Children), n.Fractions, n.Dividers)
	cy := y
	for i, child := range n.Children {
		out = append(out, collectRegions(child, x, cy, w, extents[i])...)
		cy += extents[i]
		if n.Dividers {
			cy += DividerRows
		}
	}
	return out
}

// View draws the full UI: the composed pane tree plus the status footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentHeight := max(0, m.height-FooterRows)
	plan := m.plan()
	tree := m.composer.Compose(plan)
	m.regions = collectRegions(tree.Root, 0, 0, m.width, contentHeight)

	body := m.renderNode(tree.Root, m.width, contentHeight)
	body = padBlock(body, m.width, contentHeight)

	view := body + "\n" + m.renderFooter(m.width)
	return padBlock(view, m.width, m.height)
}

// renderNode recursively draws a split-tree node into the given rectangle.
func (m *Model) renderNode(n dock.Node, w, h int) string {
	if w < MinPaneCells || h < MinPaneCells {
		return padBlock(mutedStyle.Render("·"), w, h)
	}
	if n.IsLeaf() {
		return m.renderPane(n.PaneID, w, h)
	}
	if len(n.Children) == 0 {
		empty := mutedStyle.Render("no panes open · a starts a task · enter opens a file")
		return padBlock(empty, w, h)
	}

	if n.Axis == dock.AxisHorizontal {
		extents := splitExtents(w, len(n.Children), n.Fractions, n.Dividers)
		blocks := make([]string, 0, len(n.Children)*2)
		for i, child := range n.Children {
			if i > 0 && n.Dividers {
				blocks = append(blocks, verticalDivider(h))
			}
			blocks = append(blocks, padBlock(m.renderNode(child, extents[i], h), extents[i], h))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}

	extents := splitExtents(h, len(n.Children), n.Fractions, n.Dividers)
	blocks := make([]string, 0, len(n.Children)*2)
	for i, child := range n.Children {
		if i > 0 && n.Dividers {
			blocks = append(blocks, horizontalDivider(w))
		}
		blocks = append(blocks, padBlock(m.renderNode(child, w, extents[i]), w, extents[i]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderPane resolves a leaf id to its content. A nil resolution (closed or
// unknown pane) renders as empty space rather than faulting.
func (m *Model) renderPane(id string, w, h int) string {
	r := m.Resolver().Resolve(id)
	if r == nil {
		return padBlock("", w, h)
	}
	return r.Render(w, h)
}

func verticalDivider(h int) string {
	if h <= 0 {
		return ""
	}
	return dividerStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
}

func horizontalDivider(w int) string {
	if w <= 0 {
		return ""
	}
	return dividerStyle.Render(strings.Repeat("─", w))
}

// renderTile wraps pane body content in the shared tile chrome: a border and
// a header line with right-aligned affordance buttons.
func (m *Model) renderTile(id, title, buttons, body string, w, h int) string {
	innerW := max(0, w-2)
	innerH := max(0, h-2)
	bodyH := max(0, innerH-1)

	style := tileStyle
	editor := m.editorByID(id)
	switch {
	case m.drag.active && m.drag.paneID == id && m.drag.hasOver:
		style = dropReadyTile
	case m.drag.active && m.drag.paneID == id:
		style = dragSourceTile
	case editor != nil && editor.editing:
		style = editTile
	case m.focus == id:
		style = focusedTile
	}

	header := headerLine(title, buttons, innerW)
	content := header + "\n" + padBlock(body, innerW, bodyH)
	return style.Width(innerW).Height(innerH).Render(padBlock(content, innerW, innerH))
}

// headerLine lays out the title on the left and the buttons right-aligned.
func headerLine(title, buttons string, width int) string {
	buttonWidth := lipgloss.Width(buttons)
	titleWidth := max(0, width-buttonWidth-1)
	left := truncate(tileHeaderStyle.Render(title), titleWidth)
	gap := max(0, width-lipgloss.Width(left)-buttonWidth)
	return left + strings.Repeat(" ", gap) + buttons
}

// renderFooter draws the two status rows: the status/input line and the key
// hint line.
func (m *Model) renderFooter(width int) string {
	var first string
	switch {
	case m.uiMode == modeNewTask:
		first = "task> " + m.input.View()
	case m.uiMode == modeEditPane:
		first = editStatus.Render(m.status)
	default:
		first = statusStyle.Render(m.status)
	}

	var second string
	switch {
	case m.drag.active && m.drag.hasOver:
		second = dropTargetStyle.Render(" dock "+m.drag.overSide.String()+" ") + " " +
			statusStyle.Render("release to dock on the "+m.drag.overSide.String()+" edge")
	case m.drag.active:
		second = dropTargetStyle.Render(" drag ") + " " +
			statusStyle.Render("release near the left or right edge to dock, elsewhere to cancel")
	case m.showHelp:
		second = statusStyle.Render("b/g/s show·hide docks · B/G/S move dock · v flip layout · a new task · tab focus · enter open/toggle · e edit · w close pane · [ ] { } resize dock · + - resize in stack · r refresh · q quit")
	default:
		second = statusStyle.Render("? help · tab focus · q quit")
	}

	return truncate(first, width) + "\n" + truncate(second, width)
}
