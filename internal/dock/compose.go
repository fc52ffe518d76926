// compose.go turns a Plan into a nested split tree with concrete sizing.
//
// The outer split holds up to three children in fixed order: the left stack
// container (when non-empty), the center container (always), and the right
// stack container (when non-empty). Inside a side container the member
// windows stack along the orthogonal axis with one divider between each
// adjacent pair.
//
// Sizing policy lives here and nowhere else. Side containers default to 32%
// of the outer axis, clamped to [15%, 55%]. The center defaults to 100%,
// 68%, or 36% depending on whether zero, one, or two side containers are
// present (the three defaults sum to 1 in every case), and never drops below
// 20%. Stack members carry no explicit extents: equal distribution is the
// implicit default of the split mechanism.
//
// The Composer retains user-adjusted proportions only for as long as the
// plan's structural key is unchanged. A key change means the pane set or
// order moved underneath the retained proportions, so they are discarded
// wholesale and the defaults above are reinstated. Content-only changes
// leave the key, and therefore the proportions, alone.
package dock

// Axis is a split direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Orthogonal returns the perpendicular axis.
func (a Axis) Orthogonal() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// Node is one node of the composed split tree. A leaf carries a pane id and
// nothing else. A branch carries a split axis, ordered children, optional
// per-child fractions (nil means equal distribution), and whether dividers
// separate adjacent children.
type Node struct {
	PaneID    string
	Axis      Axis
	Children  []Node
	Fractions []float64
	Dividers  bool
}

// IsLeaf reports whether the node is a pane leaf.
func (n Node) IsLeaf() bool {
	return n.PaneID != ""
}

// Tree is the composed split tree for one structural key.
type Tree struct {
	Root Node
	Key  string
}

// Sizing policy constants. The side defaults and the center defaults are
// chosen so that every outer configuration sums to exactly 1.0 while the
// center remains the dominant focus area even with both docks visible.
const (
	DefaultSideFraction = 0.32
	MinSideFraction     = 0.15
	MaxSideFraction     = 0.55
	MinCenterFraction   = 0.20
	MinStackFraction    = 0.10

	centerAloneFraction    = 1.00
	centerOneDockFraction  = 0.68
	centerTwoDocksFraction = 0.36
)

// Composer builds split trees from plans and retains user-adjusted
// proportions (outer containers and side-stack members) across
// recomputations of the same structure.
type Composer struct {
	key   string
	outer []float64
	left  []float64
	right []float64
}

// NewComposer returns a composer with no retained sizing.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose maps the plan to a split tree. When the plan's structural key
// differs from the previous call's, all retained proportions are discarded
// and the defaults are reinstated; otherwise the retained outer proportions
// are reused so user resizes survive content-only re-renders.
func (c *Composer) Compose(p Plan) Tree {
	if p.StructuralKey != c.key {
		c.key = p.StructuralKey
		c.outer = defaultOuterFractions(len(p.LeftStack) > 0, len(p.RightStack) > 0)
		c.left = nil
		c.right = nil
	}

	outerAxis := AxisHorizontal
	if p.Mode == ModeVertical {
		outerAxis = AxisVertical
	}
	stackAxis := outerAxis.Orthogonal()

	children := make([]Node, 0, 3)
	if len(p.LeftStack) > 0 {
		children = append(children, stackNode(p.LeftStack, stackAxis, c.left))
	}
	children = append(children, centerNode(p.Tiled, stackAxis))
	if len(p.RightStack) > 0 {
		children = append(children, stackNode(p.RightStack, stackAxis, c.right))
	}

	root := Node{
		Axis:      outerAxis,
		Children:  children,
		Fractions: append([]float64(nil), c.outer...),
	}
	return Tree{Root: root, Key: p.StructuralKey}
}

// AdjustSide resizes the dock container on the given edge by delta
// (fraction of the outer axis), clamped to the side bounds; the center
// absorbs the difference down to its own minimum. The adjustment is a no-op
// when that edge has no container in the current structure.
func (c *Composer) AdjustSide(side Side, delta float64, p Plan) {
	if p.StructuralKey != c.key {
		// Stale plan; recompose first.
		c.Compose(p)
	}
	idx := -1
	center := centerIndex(len(p.LeftStack) > 0)
	switch {
	case side == SideLeft && len(p.LeftStack) > 0:
		idx = 0
	case side == SideRight && len(p.RightStack) > 0:
		idx = len(c.outer) - 1
	}
	if idx < 0 || idx == center {
		return
	}

	want := clampFraction(c.outer[idx]+delta, MinSideFraction, MaxSideFraction)
	shift := want - c.outer[idx]
	if c.outer[center]-shift < MinCenterFraction {
		shift = c.outer[center] - MinCenterFraction
		want = c.outer[idx] + shift
	}
	c.outer[idx] = want
	c.outer[center] -= shift
}

// AdjustStack resizes one member of a side stack by delta (fraction of the
// stack axis), absorbed by an adjacent member so the stack total is
// preserved. A no-op for stacks with fewer than two members or an
// out-of-range index.
func (c *Composer) AdjustStack(side Side, index int, delta float64, p Plan) {
	if p.StructuralKey != c.key {
		// Stale plan; recompose first.
		c.Compose(p)
	}
	ids := p.LeftStack
	if side == SideRight {
		ids = p.RightStack
	}
	if len(ids) < 2 || index < 0 || index >= len(ids) {
		return
	}
	fracs := c.stackFor(side)
	if len(*fracs) != len(ids) {
		*fracs = equalFractions(len(ids))
	}

	neighbor := index + 1
	if neighbor >= len(ids) {
		neighbor = index - 1
	}
	maxMember := 1.0 - MinStackFraction*float64(len(ids)-1)
	want := clampFraction((*fracs)[index]+delta, MinStackFraction, maxMember)
	shift := want - (*fracs)[index]
	if (*fracs)[neighbor]-shift < MinStackFraction {
		shift = (*fracs)[neighbor] - MinStackFraction
		want = (*fracs)[index] + shift
	}
	(*fracs)[index] = want
	(*fracs)[neighbor] -= shift
}

// OuterFractions exposes the retained outer proportions (for tests and for
// hosts that surface sizing state).
func (c *Composer) OuterFractions() []float64 {
	return append([]float64(nil), c.outer...)
}

// StackFractions exposes the retained member proportions of one side stack.
// Empty means the members use the implicit equal distribution.
func (c *Composer) StackFractions(side Side) []float64 {
	return append([]float64(nil), *c.stackFor(side)...)
}

func (c *Composer) stackFor(side Side) *[]float64 {
	if side == SideLeft {
		return &c.left
	}
	return &c.right
}

func equalFractions(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0 / float64(n)
	}
	return out
}

// defaultOuterFractions returns the default outer proportions for the given
// side-container presence: side containers at the clamped side default, the
// center at 100%/68%/36% for zero/one/two docks.
func defaultOuterFractions(left, right bool) []float64 {
	side := clampFraction(DefaultSideFraction, MinSideFraction, MaxSideFraction)
	switch {
	case left && right:
		return []float64{side, centerTwoDocksFraction, side}
	case left || right:
		if left {
			return []float64{side, centerOneDockFraction}
		}
		return []float64{centerOneDockFraction, side}
	default:
		return []float64{centerAloneFraction}
	}
}

// centerIndex returns the center container's position among the outer
// children given whether a left container precedes it.
func centerIndex(hasLeft bool) int {
	if hasLeft {
		return 1
	}
	return 0
}

// stackNode builds a side container: member windows stacked along the
// orthogonal axis with one divider between each adjacent pair. Members use
// the retained fractions when present, implicit equal extents otherwise.
func stackNode(ids []string, axis Axis, fractions []float64) Node {
	children := make([]Node, len(ids))
	for i, id := range ids {
		children[i] = Node{PaneID: id}
	}
	n := Node{Axis: axis, Children: children, Dividers: true}
	if len(fractions) == len(ids) {
		n.Fractions = append([]float64(nil), fractions...)
	}
	return n
}

// centerNode builds the center container tiling the content panes along the
// flow axis. The container exists even when no content panes are open; the
// host renders an empty region for a childless center.
func centerNode(tiled []string, axis Axis) Node {
	children := make([]Node, len(tiled))
	for i, id := range tiled {
		children[i] = Node{PaneID: id}
	}
	return Node{Axis: axis, Children: children, Dividers: true}
}

// clampFraction bounds a fraction between lo and hi.
func clampFraction(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
