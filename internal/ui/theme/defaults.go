package theme

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Auto picks Catppuccin Latte or Mocha from the terminal background.
const Auto = "auto"

// detectDarkBackground queries the terminal. Tests replace it.
var detectDarkBackground = func() bool {
	return termenv.NewOutput(os.Stdout).HasDarkBackground()
}

var (
	autoTheme     Theme
	autoThemeOnce sync.Once
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Accent: lipgloss.Color("#cba6f7"),
	Red:    lipgloss.Color("#f38ba8"),
	Yellow: lipgloss.Color("#f9e2af"),
	Green:  lipgloss.Color("#a6e3a1"),
	Teal:   lipgloss.Color("#94e2d5"),
	Blue:   lipgloss.Color("#89b4fa"),

	Handle:          lipgloss.Color("#45475a"),
	HandleActive:    lipgloss.Color("#b4befe"),
	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),

	ChromaStyle:  "catppuccin-mocha",
	GlamourStyle: "dark",
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), Auto) {
		return resolveAuto()
	}
	if t, ok := Get(name); ok {
		return t
	}

	// ~/.config/gopanel/themes/
	home, err := os.UserHomeDir()
	if err == nil {
		customDir := filepath.Join(home, ".config", "gopanel", "themes")
		customs := LoadCustomThemes(customDir)
		if t, ok := customs[normalizeKey(name)]; ok {
			return t
		}
	}

	return CatppuccinMocha
}

// resolveAuto asks the terminal once per process; the answer does not
// change while the program runs.
func resolveAuto() Theme {
	autoThemeOnce.Do(func() {
		autoTheme = CatppuccinMocha
		if !detectDarkBackground() {
			autoTheme = CatppuccinLatte
		}
	})
	return autoTheme
}
