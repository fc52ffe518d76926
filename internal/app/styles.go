package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

var (
	tileStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	focusedTile      = tileStyle.Copy().BorderForeground(lipgloss.Color("62"))
	editTile         = tileStyle.Copy().BorderForeground(lipgloss.Color("204"))
	dragSourceTile   = tileStyle.Copy().BorderForeground(lipgloss.Color("220"))
	dropReadyTile    = tileStyle.Copy().BorderForeground(lipgloss.Color("57"))
	dropTargetStyle  = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("255"))
	tileHeaderStyle  = lipgloss.NewStyle().Bold(true)
	headerButton     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle    = lipgloss.NewStyle().Reverse(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	editStatus       = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	dividerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	gitCleanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	gitDirtyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	agentDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	agentFailedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func applyEditorTheme(editor *textarea.Model) {
	focused, blurred := textarea.DefaultStyles()

	base := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorLine := lipgloss.NewStyle().Background(lipgloss.Color("53")).Foreground(lipgloss.Color("252"))
	lineNumber := lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	prompt := lipgloss.NewStyle().Foreground(lipgloss.Color("204"))

	focused.Base = base
	focused.Text = base
	focused.CursorLine = cursorLine
	focused.CursorLineNumber = lineNumber.Bold(true)
	focused.LineNumber = lineNumber
	focused.Prompt = prompt
	focused.Placeholder = mutedStyle

	blurred.Base = base
	blurred.Text = mutedStyle
	blurred.CursorLine = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	blurred.CursorLineNumber = lineNumber
	blurred.LineNumber = lineNumber
	blurred.Prompt = prompt
	blurred.Placeholder = mutedStyle

	editor.FocusedStyle = focused
	editor.BlurredStyle = blurred
	editor.Prompt = "│ "
	editor.EndOfBufferCharacter = ' '
	editor.ShowLineNumbers = true
}
