package theme

import "github.com/charmbracelet/lipgloss"

var Dracula = Theme{
	Name:    "Dracula",
	Base:    lipgloss.Color("#282a36"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#d0d0d0"),
	Muted:   lipgloss.Color("#6272a4"),

	Accent: lipgloss.Color("#bd93f9"),
	Red:    lipgloss.Color("#ff5555"),
	Yellow: lipgloss.Color("#f1fa8c"),
	Green:  lipgloss.Color("#50fa7b"),
	Teal:   lipgloss.Color("#8be9fd"),
	Blue:   lipgloss.Color("#6272a4"),

	Handle:          lipgloss.Color("#6272a4"),
	HandleActive:    lipgloss.Color("#bd93f9"),
	BorderFocused:   lipgloss.Color("#bd93f9"),
	BorderUnfocused: lipgloss.Color("#6272a4"),

	ChromaStyle:  "dracula",
	GlamourStyle: "dark",
}
