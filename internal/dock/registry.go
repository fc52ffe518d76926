// Package dock implements the docking layout engine: which auxiliary tool
// windows are shown, on which edge they sit, how the resulting split tree is
// sized, and when retained split proportions must be discarded.
//
// The engine is deliberately pure: it holds no I/O, no rendering, and no
// knowledge of what any pane displays. State enters through the Registry and
// the tiled pane-id sequences, flows through BuildPlan into an immutable
// Plan, and leaves through the Composer as a split tree whose leaves are
// opaque pane ids. The host resolves each leaf to renderable content.
package dock

// Kind identifies one of the three dockable tool windows. Exactly one window
// of each kind exists for the lifetime of the host; windows are hidden, never
// destroyed.
type Kind int

const (
	KindWorkspace Kind = iota
	KindGit
	KindSettings

	kindCount
)

// Kinds lists every dockable kind in fixed precedence order. Side stacks are
// always ordered by this precedence, regardless of the order in which windows
// were toggled, so layouts are reproducible.
var Kinds = [kindCount]Kind{KindWorkspace, KindGit, KindSettings}

// String returns the kind's stable name.
func (k Kind) String() string {
	switch k {
	case KindWorkspace:
		return "workspace"
	case KindGit:
		return "git"
	case KindSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// PaneID returns the reserved pane id for this window kind. These tokens are
// what the planner emits into side stacks and what the resolver matches
// against.
func (k Kind) PaneID() string {
	return "dock:" + k.String()
}

// Side is a docking edge. Only two edges are modeled, so an invalid side is
// unrepresentable: ToggleSide can only ever flip between the two values.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Opposite returns the other edge.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// String returns the side's stable name.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// WindowState is the visibility and placement of one dockable window.
type WindowState struct {
	Visible bool
	Side    Side
}

// Snapshot is a point-in-time copy of every window's state, safe to hold
// across later registry mutations.
type Snapshot [kindCount]WindowState

// State returns the captured state for the given kind.
func (s Snapshot) State(k Kind) WindowState {
	return s[k]
}

// Registry holds the visibility flag and current side for each dockable
// window. It is the single mutation point of the engine: everything
// downstream of it is a pure recomputation.
//
// The registry is an explicit, injectable object rather than ambient global
// state so it can be unit-tested without a UI host. All operations are
// synchronous, idempotent when given the already-current value, and never
// fail. The caller is responsible for confining mutation to a single
// goroutine (the UI event loop).
type Registry struct {
	windows [kindCount]WindowState
}

// NewRegistry returns a registry with the startup defaults: the workspace
// browser visible on the left, the git panel hidden (left), and the settings
// panel hidden (right).
func NewRegistry() *Registry {
	r := &Registry{}
	r.windows[KindWorkspace] = WindowState{Visible: true, Side: SideLeft}
	r.windows[KindGit] = WindowState{Visible: false, Side: SideLeft}
	r.windows[KindSettings] = WindowState{Visible: false, Side: SideRight}
	return r
}

// SetVisible shows or hides the window of the given kind.
func (r *Registry) SetVisible(k Kind, visible bool) {
	r.windows[k].Visible = visible
}

// SetSide moves the window of the given kind to the given edge.
func (r *Registry) SetSide(k Kind, side Side) {
	r.windows[k].Side = side
}

// ToggleSide flips the window between the left and right edge. Toggling a
// hidden window is legal: it only affects placement once the window is later
// made visible. Applying ToggleSide twice restores the original side.
func (r *Registry) ToggleSide(k Kind) {
	r.windows[k].Side = r.windows[k].Side.Opposite()
}

// ToggleVisible flips the window's visibility.
func (r *Registry) ToggleVisible(k Kind) {
	r.windows[k].Visible = !r.windows[k].Visible
}

// Visible reports whether the window of the given kind is shown.
func (r *Registry) Visible(k Kind) bool {
	return r.windows[k].Visible
}

// SideOf returns the edge the window of the given kind is docked to.
func (r *Registry) SideOf(k Kind) Side {
	return r.windows[k].Side
}

// Snapshot returns a copy of the current state of every window.
func (r *Registry) Snapshot() Snapshot {
	return r.windows
}
