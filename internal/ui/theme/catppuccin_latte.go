package theme

import "github.com/charmbracelet/lipgloss"

var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#8c8fa1"),

	Accent: lipgloss.Color("#8839ef"),
	Red:    lipgloss.Color("#d20f39"),
	Yellow: lipgloss.Color("#df8e1d"),
	Green:  lipgloss.Color("#40a02b"),
	Teal:   lipgloss.Color("#179299"),
	Blue:   lipgloss.Color("#1e66f5"),

	Handle:          lipgloss.Color("#9ca0b0"),
	HandleActive:    lipgloss.Color("#7287fd"),
	BorderFocused:   lipgloss.Color("#8839ef"),
	BorderUnfocused: lipgloss.Color("#8c8fa1"),

	ChromaStyle:  "catppuccin-latte",
	GlamourStyle: "light",
}
