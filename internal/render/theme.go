package render

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable on dark terminals
var (
	primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	success = lipgloss.Color("#22C55E") // Green
	warning = lipgloss.Color("#F97316") // Orange
	danger  = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	passStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)
