package config

import (
	"errors"
	"fmt"
)

// Config holds the application configuration.
type Config struct {
	Theme   string      `yaml:"theme" toml:"theme"`
	LogFile string      `yaml:"log_file" toml:"log_file"`
	Wrap    bool        `yaml:"wrap" toml:"wrap"`
	Watch   bool        `yaml:"watch" toml:"watch"`
	History bool        `yaml:"history" toml:"history"`
	Panel   PanelConfig `yaml:"panel" toml:"panel"`
}

// PanelConfig holds the resizable panel options. Widths are in cells.
type PanelConfig struct {
	Title               string `yaml:"title" toml:"title"`
	MinWidth            int    `yaml:"min_width" toml:"min_width"`
	InitialWidth        int    `yaml:"initial_width" toml:"initial_width"`
	MaxWidth            int    `yaml:"max_width" toml:"max_width"`
	HandleWidth         int    `yaml:"handle_width" toml:"handle_width"`
	DefaultToMaxWidth   bool   `yaml:"default_to_max_width" toml:"default_to_max_width"`
	ContainerOwnsHandle bool   `yaml:"container_owns_handle" toml:"container_owns_handle"`

	// ContainerWidth and ContainerHeight fix the container size outside
	// fullscreen; zero fills the terminal.
	ContainerWidth  int `yaml:"container_width" toml:"container_width"`
	ContainerHeight int `yaml:"container_height" toml:"container_height"`

	ShowTitleBar         bool   `yaml:"show_title_bar" toml:"show_title_bar"`
	HideOptions          bool   `yaml:"hide_options" toml:"hide_options"`
	ShowFullscreenOption bool   `yaml:"show_fullscreen_option" toml:"show_fullscreen_option"`
	Background           string `yaml:"background" toml:"background"`
	FullscreenBackground string `yaml:"fullscreen_background" toml:"fullscreen_background"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:   "catppuccin-mocha",
		LogFile: "",
		Wrap:    true,
		Watch:   true,
		History: true,
		Panel: PanelConfig{
			Title:                "",
			MinWidth:             20,
			InitialWidth:         20,
			HandleWidth:          2,
			DefaultToMaxWidth:    true,
			ShowTitleBar:         true,
			ShowFullscreenOption: true,
		},
	}
}

// Validate reports configuration values the panel cannot work with.
func (c Config) Validate() error {
	p := c.Panel
	var errs []error
	if p.MinWidth < 0 {
		errs = append(errs, fmt.Errorf("panel.min_width must not be negative, got %d", p.MinWidth))
	}
	if p.InitialWidth < 0 {
		errs = append(errs, fmt.Errorf("panel.initial_width must not be negative, got %d", p.InitialWidth))
	}
	if p.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("panel.max_width must not be negative, got %d", p.MaxWidth))
	}
	if p.HandleWidth < 0 {
		errs = append(errs, fmt.Errorf("panel.handle_width must not be negative, got %d", p.HandleWidth))
	}
	if p.InitialWidth > 0 && p.InitialWidth < p.MinWidth {
		errs = append(errs, fmt.Errorf("panel.initial_width %d is below panel.min_width %d", p.InitialWidth, p.MinWidth))
	}
	if p.MaxWidth > 0 && p.MaxWidth < p.MinWidth {
		errs = append(errs, fmt.Errorf("panel.max_width %d is below panel.min_width %d", p.MaxWidth, p.MinWidth))
	}
	return errors.Join(errs...)
}
