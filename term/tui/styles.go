package tui

import "github.com/charmbracelet/lipgloss"

const (
	logFrameWidth   = 2
	logFrameHeight  = 2
	inputFrameWidth = 4
	sendButtonWidth = 10
)

var (
	neon   = lipgloss.AdaptiveColor{Light: "#1B5E20", Dark: "#39FF14"}
	dim    = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#5F6B5F"}
	alert  = lipgloss.Color("#FF3B3B")
	accent = lipgloss.AdaptiveColor{Light: "#006064", Dark: "#00E5FF"}

	titleStyle = lipgloss.NewStyle().Foreground(neon).Bold(true)
	clockStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1)

	logFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(neon)

	fieldNameStyle  = lipgloss.NewStyle().Foreground(dim)
	fieldValueStyle = lipgloss.NewStyle().Foreground(neon).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(neon).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(neon).
			Padding(0, 1)
	buttonFocusedStyle  = buttonStyle.Reverse(true)
	buttonDisabledStyle = buttonStyle.Foreground(dim).BorderForeground(dim)

	globeSpinStyle = lipgloss.NewStyle().Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(alert).Bold(true)
)
