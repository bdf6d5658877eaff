package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases
const (
	colorAccent  = colorTeal
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorAccent).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	pinnedStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	tabActiveSt   = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorAccent).Padding(0, 1)
	tabInactiveSt = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)
	ownMsgStyle   = lipgloss.NewStyle().Foreground(colorSky)
	adminBadge    = lipgloss.NewStyle().Foreground(colorBase).Background(colorRed).Padding(0, 1)
)

// categoryStyle colors an announcement/event category label.
func categoryStyle(category string) lipgloss.Style {
	switch category {
	case "urgent":
		return lipgloss.NewStyle().Foreground(colorRed)
	case "event", "social":
		return lipgloss.NewStyle().Foreground(colorBlue)
	case "academic":
		return lipgloss.NewStyle().Foreground(colorGreen)
	case "club", "sports":
		return lipgloss.NewStyle().Foreground(colorPeach)
	case "workshop", "hackathon":
		return lipgloss.NewStyle().Foreground(colorMauve)
	case "cultural":
		return lipgloss.NewStyle().Foreground(colorPink)
	default:
		return lipgloss.NewStyle().Foreground(colorSubtext0)
	}
}

// statusColor colors a channel status marker.
func statusColor(status string) lipgloss.Style {
	switch status {
	case "ongoing":
		return lipgloss.NewStyle().Foreground(colorGreen)
	case "completed":
		return lipgloss.NewStyle().Foreground(colorOverlay0)
	default: // upcoming
		return lipgloss.NewStyle().Foreground(colorSky)
	}
}
