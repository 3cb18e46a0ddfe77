package theme

import "github.com/charmbracelet/lipgloss"

var GruvboxDark = Theme{
	Name:    "Gruvbox Dark",
	Base:    lipgloss.Color("#282828"),
	Surface: lipgloss.Color("#3c3836"),
	Overlay: lipgloss.Color("#504945"),

	Text:    lipgloss.Color("#ebdbb2"),
	Subtext: lipgloss.Color("#d5c4a1"),
	Muted:   lipgloss.Color("#665c54"),

	Accent: lipgloss.Color("#b16286"),
	Red:    lipgloss.Color("#cc241d"),
	Yellow: lipgloss.Color("#d79921"),
	Green:  lipgloss.Color("#98971a"),
	Teal:   lipgloss.Color("#689d6a"),
	Blue:   lipgloss.Color("#458588"),

	Handle:          lipgloss.Color("#504945"),
	HandleActive:    lipgloss.Color("#b16286"),
	BorderFocused:   lipgloss.Color("#d79921"),
	BorderUnfocused: lipgloss.Color("#665c54"),

	ChromaStyle:  "gruvbox",
	GlamourStyle: "dark",
}
