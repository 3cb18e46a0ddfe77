package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Accent lipgloss.Color
	Red    lipgloss.Color
	Yellow lipgloss.Color
	Green  lipgloss.Color
	Teal   lipgloss.Color
	Blue   lipgloss.Color

	// Semantic
	Handle          lipgloss.Color
	HandleActive    lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color

	// ChromaStyle names the syntax highlighting style for panel content.
	ChromaStyle string
	// GlamourStyle names the markdown rendering style for panel content.
	GlamourStyle string
}

// HandleColor returns the drag handle color.
func (t Theme) HandleColor(dragging bool) lipgloss.Color {
	if dragging {
		return t.HandleActive
	}
	return t.Handle
}

// WidthColor colors a panel width by where it sits within its bounds:
// pinned to the minimum or maximum, or free.
func (t Theme) WidthColor(width, min, max int) lipgloss.Color {
	switch {
	case width <= min:
		return t.Yellow
	case width >= max:
		return t.Teal
	default:
		return t.Green
	}
}
