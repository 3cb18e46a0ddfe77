package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Surface string `yaml:"surface"`
	Overlay string `yaml:"overlay"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Accent string `yaml:"accent"`
	Red    string `yaml:"red"`
	Yellow string `yaml:"yellow"`
	Green  string `yaml:"green"`
	Teal   string `yaml:"teal"`
	Blue   string `yaml:"blue"`

	Handle          string `yaml:"handle"`
	HandleActive    string `yaml:"handle_active"`
	BorderFocused   string `yaml:"border_focused"`
	BorderUnfocused string `yaml:"border_unfocused"`

	ChromaStyle  string `yaml:"chroma_style"`
	GlamourStyle string `yaml:"glamour_style"`
}

// LoadCustomTheme loads a theme from a YAML file. Colors left out of the
// file fall back to the default theme's.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	d := Default()
	return Theme{
		Name:            yt.Name,
		Base:            color(yt.Base, d.Base),
		Surface:         color(yt.Surface, d.Surface),
		Overlay:         color(yt.Overlay, d.Overlay),
		Text:            color(yt.Text, d.Text),
		Subtext:         color(yt.Subtext, d.Subtext),
		Muted:           color(yt.Muted, d.Muted),
		Accent:          color(yt.Accent, d.Accent),
		Red:             color(yt.Red, d.Red),
		Yellow:          color(yt.Yellow, d.Yellow),
		Green:           color(yt.Green, d.Green),
		Teal:            color(yt.Teal, d.Teal),
		Blue:            color(yt.Blue, d.Blue),
		Handle:          color(yt.Handle, d.Handle),
		HandleActive:    color(yt.HandleActive, d.HandleActive),
		BorderFocused:   color(yt.BorderFocused, d.BorderFocused),
		BorderUnfocused: color(yt.BorderUnfocused, d.BorderUnfocused),
		ChromaStyle:     fallback(yt.ChromaStyle, d.ChromaStyle),
		GlamourStyle:    fallback(yt.GlamourStyle, d.GlamourStyle),
	}, nil
}

func color(v string, def lipgloss.Color) lipgloss.Color {
	if v == "" {
		return def
	}
	return lipgloss.Color(v)
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
