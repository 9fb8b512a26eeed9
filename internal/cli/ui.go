package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - up to date
	colorYellow = lipgloss.Color("220") // Amber - somewhat behind
	colorRed    = lipgloss.Color("167") // Soft red - far behind
	colorGray   = lipgloss.Color("245") // Gray - headers
	colorDim    = lipgloss.Color("240") // Dim gray - borders, muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder      = lipgloss.NewStyle().Foreground(colorDim)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
	styleFresh       = lipgloss.NewStyle().Foreground(colorGreen)
	styleStale       = lipgloss.NewStyle().Foreground(colorYellow)
	styleOutdated    = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// Thresholds, in libyears, for coloring the age column.
const (
	staleAfter    = 0.5
	outdatedAfter = 2.0
)

// ageStyle picks the color of a libyears value.
func ageStyle(libyears float64) lipgloss.Style {
	switch {
	case libyears >= outdatedAfter:
		return styleOutdated
	case libyears >= staleAfter:
		return styleStale
	default:
		return styleFresh
	}
}
