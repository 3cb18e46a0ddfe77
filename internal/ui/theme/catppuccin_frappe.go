package theme

import "github.com/charmbracelet/lipgloss"

var CatppuccinFrappe = Theme{
	Name:    "Catppuccin Frapp\u00e9",
	Base:    lipgloss.Color("#303446"),
	Surface: lipgloss.Color("#414559"),
	Overlay: lipgloss.Color("#51576d"),

	Text:    lipgloss.Color("#c6d0f5"),
	Subtext: lipgloss.Color("#a5adce"),
	Muted:   lipgloss.Color("#626880"),

	Accent: lipgloss.Color("#ca9ee6"),
	Red:    lipgloss.Color("#e78284"),
	Yellow: lipgloss.Color("#e5c890"),
	Green:  lipgloss.Color("#a6d189"),
	Teal:   lipgloss.Color("#81c8be"),
	Blue:   lipgloss.Color("#8caaee"),

	Handle:          lipgloss.Color("#51576d"),
	HandleActive:    lipgloss.Color("#babbf1"),
	BorderFocused:   lipgloss.Color("#ca9ee6"),
	BorderUnfocused: lipgloss.Color("#626880"),

	ChromaStyle:  "catppuccin-frappe",
	GlamourStyle: "dark",
}
