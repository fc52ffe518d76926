package dock

import "strings"

// Mode controls the orientation of the outer split. In horizontal mode the
// side stacks flank the center left-to-right and stack their members
// vertically; in vertical mode the outer split runs top-to-bottom and stack
// members sit side by side.
type Mode int

const (
	ModeHorizontal Mode = iota
	ModeVertical
)

// String returns the mode's stable name.
func (m Mode) String() string {
	if m == ModeVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseMode converts a config value to a Mode. Anything other than
// "vertical" falls back to horizontal.
func ParseMode(value string) Mode {
	if strings.EqualFold(strings.TrimSpace(value), "vertical") {
		return ModeVertical
	}
	return ModeHorizontal
}

// Plan is the derived layout: the two side stacks, the tiled center list,
// and a structural key fingerprinting the pane set/order. A Plan is
// immutable; callers recompute it after any state change that could affect
// an input (panel open/close, visibility toggle, side toggle, mode change).
type Plan struct {
	Mode       Mode
	LeftStack  []string
	RightStack []string
	Tiled      []string

	// StructuralKey changes if and only if the set or order of panes (or
	// the mode) changes, never on content- or size-only events. The host
	// compares keys between renders to decide when retained split
	// proportions are stale and must reset to defaults.
	StructuralKey string
}

// Structural key separators. Pane ids are restricted to printable tokens
// (dock:* constants, path-derived editor ids, uuid-derived agent ids), so
// the two ASCII control separators can never collide with id content.
// recordSep divides the key's four sections; unitSep divides ids within a
// section, keeping ["a","b"] distinct from ["ab"].
const (
	recordSep = "\x1e"
	unitSep   = "\x1f"
)

// BuildPlan derives the layout plan from a registry snapshot, the current
// agent-panel and editor-panel id sequences, and the layout mode.
//
// The tiled list is the concatenation agents-then-editors, each in its own
// stable order. Each side stack lists the visible windows docked to that
// side in fixed kind precedence (workspace < git < settings), independent of
// toggle order. The function is total over well-formed input; a dockable
// token appearing in a tiled sequence, or a separator byte inside an id, is
// a programming error and panics.
func BuildPlan(snap Snapshot, agentIDs, editorIDs []string, mode Mode) Plan {
	tiled := make([]string, 0, len(agentIDs)+len(editorIDs))
	tiled = append(tiled, agentIDs...)
	tiled = append(tiled, editorIDs...)

	var left, right []string
	for _, kind := range Kinds {
		state := snap.State(kind)
		if !state.Visible {
			continue
		}
		if state.Side == SideLeft {
			left = append(left, kind.PaneID())
		} else {
			right = append(right, kind.PaneID())
		}
	}

	assertWellFormed(tiled)

	return Plan{
		Mode:          mode,
		LeftStack:     left,
		RightStack:    right,
		Tiled:         tiled,
		StructuralKey: structuralKey(mode, left, right, tiled),
	}
}

// structuralKey encodes the layout mode and the three id sequences into a
// single deterministic string.
func structuralKey(mode Mode, left, right, tiled []string) string {
	sections := []string{
		mode.String(),
		strings.Join(left, unitSep),
		strings.Join(right, unitSep),
		strings.Join(tiled, unitSep),
	}
	return strings.Join(sections, recordSep)
}

// assertWellFormed panics on input that violates the engine's invariants:
// tiled ids must not collide with the reserved dockable tokens, and no id
// may contain a key separator byte. Both indicate a defect in the caller,
// not a recoverable condition.
func assertWellFormed(tiled []string) {
	for _, id := range tiled {
		switch Classify(id) {
		case PaneWorkspace, PaneGit, PaneSettings:
			panic("dock: reserved window id " + id + " in tiled sequence")
		}
		if strings.ContainsAny(id, recordSep+unitSep) {
			panic("dock: pane id contains key separator byte")
		}
	}
}
