package app

import "time"

// Layout constants define the default dimensions and spacing for the UI
const (
	// DividerRows is the number of rows (or columns, in vertical mode)
	// consumed by one divider between stacked panes
	DividerRows = 1

	// FooterRows is the number of rows reserved for the bottom status bar
	// and key hints
	FooterRows = 2

	// MinPaneCells is the smallest extent a pane is ever given along the
	// split axis; panes below this render as a collapsed marker
	MinPaneCells = 3

	// SideResizeStep is how much one resize keypress moves a dock edge,
	// as a fraction of the outer axis
	SideResizeStep = 0.03
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in text inputs
	InputCharLimit = 200
)

// Rendering constants control render timing and optimization
const (
	// RenderDebounce is the delay before triggering a markdown render after
	// a pane opens or resizes
	RenderDebounce = 300 * time.Millisecond

	// RenderWidthBucket is the granularity for width-based render caching
	// Widths are rounded to nearest multiple of this value
	RenderWidthBucket = 20
)

// File system permissions
const (
	// DirPermission is the permission mode for newly created directories
	DirPermission = 0o755

	// FilePermission is the permission mode for newly created files
	FilePermission = 0o644
)

// Background refresh constants
const (
	// GitRefreshInterval is how often the git panel re-reads repository status
	GitRefreshInterval = 5 * time.Second

	// WatchDebounce coalesces bursts of filesystem events into one refresh
	WatchDebounce = 250 * time.Millisecond
)
