package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	subtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	danger = lipgloss.AdaptiveColor{Light: "#E0245E", Dark: "#F25D94"}
	done   = lipgloss.AdaptiveColor{Light: "#2E9E5B", Dark: "#43BF6D"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtitleStyle = lipgloss.NewStyle().Foreground(subtle)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(subtle)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(accent).Underline(true)

	rowStyle       = lipgloss.NewStyle()
	cursorRowStyle = lipgloss.NewStyle().Foreground(accent)
	completedStyle = lipgloss.NewStyle().Foreground(subtle).Strikethrough(true)
	checkStyle     = lipgloss.NewStyle().Foreground(done)
	grabStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent).Reverse(true)
	dropStyle      = lipgloss.NewStyle().Foreground(accent).Underline(true)
	handleStyle    = lipgloss.NewStyle().Foreground(subtle)

	emptyStyle  = lipgloss.NewStyle().Foreground(subtle).Italic(true).PaddingLeft(2)
	footerStyle = lipgloss.NewStyle().Foreground(subtle)
	clearStyle  = lipgloss.NewStyle().Foreground(danger)
	errorStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(subtle)
)
