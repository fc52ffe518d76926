package app

import (
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/avharris/dockyard/internal/dock"
)

// agentDoneMsg carries a finished task's combined output back to Update.
type agentDoneMsg struct {
	id     string
	output string
	err    error
}

// agentPanel is one tiled task pane: a shell command launched from the
// workspace root with its combined output captured into a scrollback.
type agentPanel struct {
	id      string
	command string
	view    viewport.Model

	running  bool
	failed   bool
	started  time.Time
	finished time.Time
}

func newAgentPanel(command string) *agentPanel {
	vp := viewport.New(0, 0)
	return &agentPanel{
		id:      uuid.NewString(),
		command: command,
		view:    vp,
		running: true,
		started: time.Now(),
	}
}

func (a *agentPanel) paneID() string {
	return dock.AgentID(a.id)
}

func (a *agentPanel) title() string {
	return "task: " + a.command
}

// runAgentCmd executes the task on a background goroutine and reports the
// result as an agentDoneMsg. Output is collected in one piece; tasks are
// short-lived tooling commands, not interactive shells.
func runAgentCmd(id, command, dir string) tea.Cmd {
	return func() tea.Msg {
		cmd := exec.Command("sh", "-c", command)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		return agentDoneMsg{id: id, output: string(out), err: err}
	}
}

// scroll moves the transcript viewport.
func (a *agentPanel) scroll(delta int) {
	if delta < 0 {
		a.view.LineUp(-delta)
	} else {
		a.view.LineDown(delta)
	}
}

// renderBody draws the transcript plus a one-line result footer. spin is the
// shared spinner frame shown while the task runs.
func (a *agentPanel) renderBody(width, height int, focused bool, spin string) string {
	a.view.Width = width
	a.view.Height = max(0, height-1)

	var footer string
	switch {
	case a.running:
		footer = mutedStyle.Render(spin + " running " + time.Since(a.started).Truncate(time.Second).String())
	case a.failed:
		footer = agentFailedStyle.Render("failed after " + a.finished.Sub(a.started).Truncate(time.Millisecond).String())
	default:
		footer = agentDoneStyle.Render("done in " + a.finished.Sub(a.started).Truncate(time.Millisecond).String())
	}

	body := a.view.View()
	if strings.TrimSpace(a.view.View()) == "" && a.running {
		body = mutedStyle.Render("(waiting for output)")
	}
	return padBlock(body+"\n"+truncate(footer, width), width, height)
}

func (m *Model) agentByID(id string) *agentPanel {
	for _, a := range m.agents {
		if a.paneID() == id {
			return a
		}
	}
	return nil
}

// startAgent opens a new task pane and launches its command.
func (m *Model) startAgent(command string) tea.Cmd {
	command = strings.TrimSpace(command)
	if command == "" {
		m.status = "Task cancelled"
		return nil
	}
	a := newAgentPanel(command)
	m.agents = append(m.agents, a)
	m.focus = a.paneID()
	m.status = "Started task: " + command
	appLog.Info("started task", "id", a.id, "command", command)
	return tea.Batch(m.syncPaneSizes(), runAgentCmd(a.id, command, m.workspaceDir))
}

// closeAgent removes the pane with the given id from the tiled sequence. A
// running task keeps executing in the background; its completion message is
// dropped because the pane no longer resolves.
func (m *Model) closeAgent(id string) tea.Cmd {
	for i, a := range m.agents {
		if a.paneID() != id {
			continue
		}
		m.agents = append(m.agents[:i], m.agents[i+1:]...)
		m.status = "Closed task pane"
		if m.focus == id {
			m.focus = ""
			m.focusFirst()
		}
		return m.syncPaneSizes()
	}
	return nil
}

// handleAgentDone records the task result in its pane, if still open.
func (m *Model) handleAgentDone(msg agentDoneMsg) {
	a := m.agentByID(dock.AgentID(msg.id))
	if a == nil {
		return
	}
	a.running = false
	a.finished = time.Now()
	a.failed = msg.err != nil

	output := msg.output
	if msg.err != nil && strings.TrimSpace(output) == "" {
		output = msg.err.Error()
	}
	a.view.SetContent(output)
	a.view.GotoBottom()
	if a.failed {
		appLog.Warn("task failed", "id", msg.id, "error", msg.err)
	} else {
		appLog.Info("task finished", "id", msg.id)
	}
}
