package app

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avharris/dockyard/internal/config"
	"github.com/avharris/dockyard/internal/dock"
)

// mode controls the UI state and which input widget is active.
type mode int

const (
	modeBrowse mode = iota
	modeEditPane
	modeNewTask
)

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	cfg          config.Config
	workspaceDir string

	// Docking engine state
	registry   *dock.Registry
	composer   *dock.Composer
	layoutMode dock.Mode

	// Panels
	browser  *browserPanel
	git      *gitPanel
	settings *settingsPanel
	agents   []*agentPanel
	editors  []*editorPanel

	// focus is the pane id of the focused pane, or "" when nothing is open.
	focus string

	// UI widgets
	input    textinput.Model
	spinner  spinner.Model
	uiMode   mode
	status   string
	showHelp bool

	// Layout sizing
	width  int
	height int

	// regions are the pane rectangles of the last composition, used for
	// mouse hit-testing.
	regions []paneRegion
	drag    dragState

	watcher *workspaceWatcher

	renderCache map[string]renderCacheEntry
}

// New prepares the initial UI model and ensures the workspace directory
// exists.
func New(cfg config.Config) (*Model, error) {
	if err := os.MkdirAll(cfg.WorkspaceDir, DirPermission); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "shell command"
	input.CharLimit = InputCharLimit

	spin := spinner.New()
	spin.Spinner = spinner.Line

	watcher, err := newWorkspaceWatcher(cfg.WorkspaceDir)
	if err != nil {
		appLog.Warn("workspace watcher unavailable", "root", cfg.WorkspaceDir, "error", err)
		watcher = nil
	}

	m := &Model{
		cfg:          cfg,
		workspaceDir: cfg.WorkspaceDir,
		registry:     dock.NewRegistry(),
		composer:     dock.NewComposer(),
		layoutMode:   dock.ParseMode(cfg.LayoutMode),
		browser:      newBrowserPanel(cfg.WorkspaceDir),
		git:          newGitPanel(cfg.WorkspaceDir),
		settings:     newSettingsPanel(),
		input:        input,
		spinner:      spin,
		status:       "Ready",
		watcher:      watcher,
		renderCache:  map[string]renderCacheEntry{},
	}
	m.focusFirst()
	return m, nil
}

// Init starts the background timers: spinner frames, git refresh, and the
// filesystem watcher wait loop.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, scheduleGitRefresh()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.waitForChange())
	}
	return tea.Batch(cmds...)
}

// plan derives the current layout plan from the registry and the open tiled
// panes.
func (m *Model) plan() dock.Plan {
	agentIDs := make([]string, len(m.agents))
	for i, a := range m.agents {
		agentIDs[i] = a.paneID()
	}
	editorIDs := make([]string, len(m.editors))
	for i, e := range m.editors {
		editorIDs[i] = e.paneID()
	}
	return dock.BuildPlan(m.registry.Snapshot(), agentIDs, editorIDs, m.layoutMode)
}

// paneOrder lists every visible pane id in traversal order: left stack,
// tiled center, right stack. Focus cycling follows this order.
func paneOrder(p dock.Plan) []string {
	order := make([]string, 0, len(p.LeftStack)+len(p.Tiled)+len(p.RightStack))
	order = append(order, p.LeftStack...)
	order = append(order, p.Tiled...)
	order = append(order, p.RightStack...)
	return order
}

// focusFirst points focus at the first visible pane when the current focus
// is gone or was never set.
func (m *Model) focusFirst() {
	order := paneOrder(m.plan())
	for _, id := range order {
		if id == m.focus {
			return
		}
	}
	if len(order) > 0 {
		m.focus = order[0]
	} else {
		m.focus = ""
	}
}

// cycleFocus moves focus forward or backward through the pane order.
func (m *Model) cycleFocus(delta int) {
	order := paneOrder(m.plan())
	if len(order) == 0 {
		m.focus = ""
		return
	}
	current := -1
	for i, id := range order {
		if id == m.focus {
			current = i
			break
		}
	}
	if current < 0 {
		m.focus = order[0]
		return
	}
	m.focus = order[(current+delta+len(order))%len(order)]
}

// syncPaneSizes recomposes the split tree for the current structure and
// pushes the resulting body sizes into every pane widget. Editors whose width
// bucket changed get a re-render. Called after every structural change and
// resize.
func (m *Model) syncPaneSizes() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	plan := m.plan()
	tree := m.composer.Compose(plan)
	m.regions = collectRegions(tree.Root, 0, 0, m.width, max(0, m.height-FooterRows))
	m.focusFirst()

	var cmds []tea.Cmd
	for _, region := range m.regions {
		bodyW, bodyH := region.bodySize()
		switch dock.Classify(region.id) {
		case dock.PaneWorkspace:
			m.browser.lastHeight = bodyH
			m.browser.adjustOffset()
		case dock.PaneEditor:
			e := m.editorByID(region.id)
			if e == nil {
				continue
			}
			e.view.Width = bodyW
			e.view.Height = bodyH
			e.editor.SetWidth(bodyW)
			e.editor.SetHeight(bodyH)
			if !e.editing && e.isMarkdown() && roundWidthToNearestBucket(bodyW) != e.renderedWidth {
				cmds = append(cmds, m.requestEditorRender(e))
			}
		case dock.PaneAgent:
			if a := m.agentByID(region.id); a != nil {
				a.view.Width = bodyW
				a.view.Height = max(0, bodyH-1)
			}
		}
	}
	return tea.Batch(cmds...)
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.syncPaneSizes()

	case workspaceChangedMsg:
		return m, m.handleWorkspaceChanged()

	case gitTickMsg:
		if m.registry.Visible(dock.KindGit) {
			m.git.refresh()
		}
		return m, scheduleGitRefresh()

	case renderRequestMsg:
		return m, m.handleRenderRequest(msg)

	case renderResultMsg:
		m.handleRenderResult(msg)
		return m, nil

	case agentDoneMsg:
		m.handleAgentDone(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg routes key presses to the active input widget, falling back to
// the browse-mode bindings.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiMode {
	case modeEditPane:
		e := m.editingPane()
		if e == nil {
			m.uiMode = modeBrowse
			return m, nil
		}
		switch msg.String() {
		case "ctrl+s":
			return m, m.saveEdit(e)
		case "esc":
			m.cancelEdit(e)
			return m, nil
		default:
			var cmd tea.Cmd
			e.editor, cmd = e.editor.Update(msg)
			return m, cmd
		}
	case modeNewTask:
		switch msg.String() {
		case "enter", "ctrl+s":
			command := m.input.Value()
			m.input.Blur()
			m.uiMode = modeBrowse
			return m, m.startAgent(command)
		case "esc":
			m.input.Blur()
			m.uiMode = modeBrowse
			m.status = "Task cancelled"
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	default:
		return m.handleKey(msg)
	}
}

// handleWorkspaceChanged refreshes everything that mirrors the filesystem
// after external changes: the browser tree, git status, and any editor pane
// whose file changed or disappeared. Editors in edit mode keep their buffer.
func (m *Model) handleWorkspaceChanged() tea.Cmd {
	m.browser.refresh()
	if m.registry.Visible(dock.KindGit) {
		m.git.refresh()
	}

	var cmds []tea.Cmd
	var gone []string
	for _, e := range m.editors {
		if e.editing {
			continue
		}
		if _, err := os.Stat(e.absPath); err != nil {
			gone = append(gone, e.paneID())
			continue
		}
		cmds = append(cmds, m.requestEditorRender(e))
	}
	for _, id := range gone {
		cmds = append(cmds, m.closeEditor(id))
	}

	m.status = "Auto-refreshed (external filesystem changes detected)"
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.waitForChange())
	}
	return tea.Batch(cmds...)
}
