package dock

import "strings"

// PaneKind classifies a pane id into one of the five renderable kinds the
// engine knows about. The set is closed: adding a new dockable kind means
// extending this enum and every switch over it, which the compiler checks.
type PaneKind int

const (
	PaneUnknown PaneKind = iota
	PaneWorkspace
	PaneGit
	PaneSettings
	PaneEditor
	PaneAgent
)

// Id namespaces for the tiled content panes. Editor ids are derived from
// workspace-relative paths; agent ids from uuids. Both namespaces keep ids
// within the printable character set the structural key separators rely on.
const (
	EditorIDPrefix = "edit:"
	AgentIDPrefix  = "agent:"
)

// EditorID returns the pane id for an editor over the given
// workspace-relative path.
func EditorID(relPath string) string {
	return EditorIDPrefix + relPath
}

// AgentID returns the pane id for the agent panel with the given token.
func AgentID(token string) string {
	return AgentIDPrefix + token
}

// Classify maps a pane id to its kind. Unrecognized ids classify as
// PaneUnknown; resolving them yields nil rather than a fault.
func Classify(id string) PaneKind {
	switch {
	case id == KindWorkspace.PaneID():
		return PaneWorkspace
	case id == KindGit.PaneID():
		return PaneGit
	case id == KindSettings.PaneID():
		return PaneSettings
	case strings.HasPrefix(id, EditorIDPrefix):
		return PaneEditor
	case strings.HasPrefix(id, AgentIDPrefix):
		return PaneAgent
	default:
		return PaneUnknown
	}
}

// Renderable is a leaf pane's drawable content, fitted to a cell rectangle.
type Renderable interface {
	Render(width, height int) string
}

// Resolver maps a pane id to its renderable content. Resolve returns nil
// for ids that no longer exist (a panel closed between plan computation and
// render) and for unknown ids; both are benign, never errors.
type Resolver interface {
	Resolve(id string) Renderable
}

// WindowHooks are the callbacks every dockable tile receives so its own
// affordances can write back into the registry: close hides the window,
// toggle flips its edge.
type WindowHooks struct {
	OnClose      func()
	OnToggleSide func()
}

// DragHooks are the optional drag-to-dock callbacks a dockable tile may
// expose. Drag support is an explicit per-kind capability: tiles without it
// carry NoDrag, and the host skips drag handling for them entirely.
type DragHooks struct {
	OnDragStart func()
	OnDragOver  func(Side)
	OnDrop      func(Side)
	OnDragEnd   func()
}

// NoDrag is the inert hook set for windows that do not (yet) support
// drag-to-dock.
var NoDrag = DragHooks{}

// Enabled reports whether this hook set carries live drag callbacks.
func (d DragHooks) Enabled() bool {
	return d.OnDragStart != nil && d.OnDrop != nil
}
