package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Future-Glass Palette
	colorNeonGreen  = lipgloss.Color("#00FF99") // Main Action / Success
	colorNeonPurple = lipgloss.Color("#874BFD") // Header / Border
	colorTextMain   = lipgloss.Color("#E2E8F0") // Main Text
	colorTextSub    = lipgloss.Color("#64748B") // Subtext
	colorDanger     = lipgloss.Color("#FF0055") // Critical
	colorHubGold    = lipgloss.Color("#FFD700") // Hub highlight, matches the figure

	// Shared Styles
	subtle    = lipgloss.NewStyle().Foreground(colorTextSub)
	highlight = lipgloss.NewStyle().Foreground(colorNeonPurple).Bold(true)
	special   = lipgloss.NewStyle().Foreground(colorNeonGreen).Bold(true)
	danger    = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	hubStyle  = lipgloss.NewStyle().Foreground(colorHubGold).Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorNeonPurple).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTextSub).
			Padding(1, 2).
			Margin(0, 1)

	focusedLabel = lipgloss.NewStyle().Foreground(colorNeonGreen).Bold(true)
	blurredLabel = lipgloss.NewStyle().Foreground(colorTextSub).Bold(true)

	// Icon Styles (Text Based - No Emojis)
	iconErr  = lipgloss.NewStyle().Foreground(colorDanger).SetString("[ERROR]")
	iconOK   = lipgloss.NewStyle().Foreground(colorNeonGreen).SetString("[OK]")
	iconInfo = lipgloss.NewStyle().Foreground(colorNeonPurple).SetString("[INFO]")

	// Narrative Pane
	narrativeBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(colorNeonGreen).
				Padding(1, 2).
				MarginTop(1).
				Foreground(colorTextMain)

	narrativeHeaderStyle = lipgloss.NewStyle().
				Foreground(colorNeonPurple).
				Bold(true).
				Underline(true).
				MarginBottom(1)
)
