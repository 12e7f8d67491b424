package report

import "github.com/charmbracelet/lipgloss"

var (
	sellColor    = lipgloss.Color("#EF4444")
	holdColor    = lipgloss.Color("#10B981")
	accentColor  = lipgloss.Color("#F59E0B")
	neutralColor = lipgloss.Color("#6B7280")
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true)

	sellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(sellColor)

	holdStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(holdColor)

	watchStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(neutralColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neutralColor).
			Padding(0, 1)
)
