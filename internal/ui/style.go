package ui

import "github.com/charmbracelet/lipgloss"

// Colors is the application color scheme.
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
}

// Style collects the styles used by the animation view.
type Style struct {
	Help  lipgloss.Style
	Title lipgloss.Style
}

// DefaultStyle returns the default style configuration.
func DefaultStyle() Style {
	return Style{
		Help: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Highlight),
	}
}

// Current is the active style set.
var Current = DefaultStyle()
