package theme

import "github.com/charmbracelet/lipgloss"

var CatppuccinMacchiato = Theme{
	Name:    "Catppuccin Macchiato",
	Base:    lipgloss.Color("#24273a"),
	Surface: lipgloss.Color("#363a4f"),
	Overlay: lipgloss.Color("#494d64"),

	Text:    lipgloss.Color("#cad3f5"),
	Subtext: lipgloss.Color("#a5adcb"),
	Muted:   lipgloss.Color("#5b6078"),

	Accent: lipgloss.Color("#c6a0f6"),
	Red:    lipgloss.Color("#ed8796"),
	Yellow: lipgloss.Color("#eed49f"),
	Green:  lipgloss.Color("#a6da95"),
	Teal:   lipgloss.Color("#8bd5ca"),
	Blue:   lipgloss.Color("#8aadf4"),

	Handle:          lipgloss.Color("#494d64"),
	HandleActive:    lipgloss.Color("#b7bdf8"),
	BorderFocused:   lipgloss.Color("#c6a0f6"),
	BorderUnfocused: lipgloss.Color("#5b6078"),

	ChromaStyle:  "catppuccin-macchiato",
	GlamourStyle: "dark",
}
