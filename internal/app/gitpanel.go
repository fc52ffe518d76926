package app

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// gitTickMsg is the periodic timer that drives git status refreshes while the
// panel is visible.
type gitTickMsg struct{}

type gitRepoStatus struct {
	isRepo      bool
	branch      string
	hasUpstream bool
	ahead       int
	behind      int
	dirty       bool
	lastError   string
}

// gitFileStatus is one changed path from porcelain output.
type gitFileStatus struct {
	code string
	path string
}

// gitPanel is the git tool window: branch, upstream divergence, and the list
// of changed files for the workspace repository.
type gitPanel struct {
	root   string
	status gitRepoStatus
	files  []gitFileStatus
	offset int
}

func newGitPanel(root string) *gitPanel {
	g := &gitPanel{root: root}
	g.refresh()
	return g
}

func scheduleGitRefresh() tea.Cmd {
	return tea.Tick(GitRefreshInterval, func(time.Time) tea.Msg {
		return gitTickMsg{}
	})
}

// refresh re-reads repository status synchronously. Porcelain status on a
// local repository is fast enough to run on the UI loop.
func (g *gitPanel) refresh() {
	g.status = gitRepoStatus{}
	g.files = nil

	out, err := g.runGit("rev-parse", "--is-inside-work-tree")
	if err != nil || strings.TrimSpace(out) != "true" {
		return
	}

	g.status.isRepo = true
	if branch, err := g.runGit("rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		g.status.branch = strings.TrimSpace(branch)
	}

	statusOut, statusErr := g.runGit("status", "--porcelain=1", "--branch")
	if statusErr != nil {
		g.status.lastError = firstLine(statusOut)
		if g.status.lastError == "" {
			g.status.lastError = statusErr.Error()
		}
		appLog.Warn("read git status", "error", statusErr, "output", statusOut)
		return
	}

	lines := strings.Split(strings.TrimSpace(statusOut), "\n")
	if len(lines) > 0 {
		g.status.hasUpstream, g.status.ahead, g.status.behind = parseGitPorcelainBranchLine(lines[0])
	}
	for _, line := range lines[1:] {
		if file, ok := parseGitPorcelainFileLine(line); ok {
			g.files = append(g.files, file)
		}
	}
	g.status.dirty = len(g.files) > 0
	if g.offset > max(0, len(g.files)-1) {
		g.offset = 0
	}
}

func parseGitPorcelainBranchLine(line string) (bool, int, int) {
	line = strings.TrimSpace(strings.TrimPrefix(line, "##"))
	if line == "" {
		return false, 0, 0
	}

	hasUpstream := strings.Contains(line, "...")
	ahead := parseGitCount(line, "ahead ")
	behind := parseGitCount(line, "behind ")
	return hasUpstream, ahead, behind
}

// parseGitPorcelainFileLine splits one "XY path" porcelain entry. Rename
// entries keep only the new path.
func parseGitPorcelainFileLine(line string) (gitFileStatus, bool) {
	if len(line) < 4 {
		return gitFileStatus{}, false
	}
	code := strings.TrimSpace(line[:2])
	path := strings.TrimSpace(line[3:])
	if idx := strings.Index(path, " -> "); idx >= 0 {
		path = path[idx+len(" -> "):]
	}
	if path == "" {
		return gitFileStatus{}, false
	}
	if code == "" {
		code = "??"
	}
	return gitFileStatus{code: code, path: path}, true
}

func parseGitCount(line, token string) int {
	idx := strings.Index(line, token)
	if idx < 0 {
		return 0
	}
	start := idx + len(token)
	end := start
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(line[start:end])
	if err != nil {
		return 0
	}
	return n
}

// scroll moves the changed-file list viewport.
func (g *gitPanel) scroll(delta int) {
	g.offset = clamp(g.offset+delta, 0, max(0, len(g.files)-1))
}

// renderBody draws the panel into the given rectangle.
func (g *gitPanel) renderBody(width, height int, focused bool) string {
	if !g.status.isRepo {
		return padBlock(mutedStyle.Render("(not a git repository)"), width, height)
	}

	lines := []string{truncate(g.summaryLine(), width)}
	if g.status.lastError != "" {
		lines = append(lines, truncate(editStatus.Render("status: "+g.status.lastError), width))
	}

	if len(g.files) == 0 {
		lines = append(lines, truncate(gitCleanStyle.Render("working tree clean"), width))
		return padBlock(strings.Join(lines, "\n"), width, height)
	}

	visible := max(0, height-len(lines))
	start := min(g.offset, max(0, len(g.files)-1))
	end := min(len(g.files), start+visible)
	for i := start; i < end; i++ {
		file := g.files[i]
		row := fmt.Sprintf("%2s %s", file.code, file.path)
		lines = append(lines, truncate(gitDirtyStyle.Render(row), width))
	}

	return padBlock(strings.Join(lines, "\n"), width, height)
}

func (g *gitPanel) summaryLine() string {
	branch := g.status.branch
	if branch == "" {
		branch = "(detached)"
	}
	parts := []string{branch}
	if g.status.hasUpstream {
		parts = append(parts, fmt.Sprintf("↑%d ↓%d", g.status.ahead, g.status.behind))
	} else {
		parts = append(parts, "no-upstream")
	}
	if g.status.dirty {
		parts = append(parts, fmt.Sprintf("%d changed", len(g.files)))
	}
	return strings.Join(parts, "  ")
}

func (g *gitPanel) runGit(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", g.root}, args...)...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())
	switch {
	case out != "" && errOut != "":
		out = out + "\n" + errOut
	case out == "":
		out = errOut
	}
	return out, err
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	return strings.TrimSpace(lines[0])
}
