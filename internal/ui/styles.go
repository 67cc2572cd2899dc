package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorAccent  = lipgloss.Color("#6BCF7F") // Green, good fishing
	colorWarning = lipgloss.Color("#FFD93D") // Yellow
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)

	activePaneStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Index quality styles
	indexGoodStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	indexFairStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	indexPoorStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Chart styles
	chartAxisStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	chartLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)
)

// indexStyle picks a style for a fishing index value.
func indexStyle(index float64) lipgloss.Style {
	switch {
	case index >= 60:
		return indexGoodStyle
	case index >= 30:
		return indexFairStyle
	}
	return indexPoorStyle
}
