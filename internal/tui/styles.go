package tui

import (
	"github.com/charmbracelet/lipgloss"

	"quakemap/internal/quake"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	landCol   = lipgloss.Color("#3B4A5C")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	borderStyle = lipgloss.NewStyle().Foreground(landCol)

	// markers
	cityStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")).Bold(true)
	shallowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15"))
	intermediateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	deepStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	hoverStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true).Reverse(true)
	hoverLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

func depthStyle(c quake.DepthClass) lipgloss.Style {
	switch c {
	case quake.Shallow:
		return shallowStyle
	case quake.Intermediate:
		return intermediateStyle
	}
	return deepStyle
}
