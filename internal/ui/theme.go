package ui

import "charm.land/lipgloss/v2"

// Color palette — kid-friendly, bright but not garish
var (
	primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	accent  = lipgloss.Color("#F97316") // Orange
	success = lipgloss.Color("#22C55E") // Green
	errRose = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	bgCard  = lipgloss.Color("#1E293B") // Dark Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	questionStyle = lipgloss.NewStyle().
			Foreground(text).
			Background(bgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	correctStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(errRose).
			Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(textDim)
)
