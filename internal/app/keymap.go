package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/sadopc/gopanel/internal/ui/components"
)

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit           key.Binding
	CommandPalette key.Binding
	Help           key.Binding
	SwitchTheme    key.Binding

	// Panel
	Fullscreen     key.Binding
	ExitFullscreen key.Binding
	Grow           key.Binding
	Shrink         key.Binding
	GrowMore       key.Binding
	ShrinkMore     key.Binding
	ResetWidth     key.Binding
	MinWidth       key.Binding
	MaxWidth       key.Binding

	// Content
	Wrap   key.Binding
	Search key.Binding
	Copy   key.Binding
	Reload key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k", ":"),
			key.WithHelp("ctrl+k", "commands"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		SwitchTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		ExitFullscreen: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave fullscreen"),
		),
		Grow: key.NewBinding(
			key.WithKeys(">", "right"),
			key.WithHelp(">", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("<", "left"),
			key.WithHelp("<", "shrink"),
		),
		GrowMore: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "grow 10"),
		),
		ShrinkMore: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "shrink 10"),
		),
		ResetWidth: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset width"),
		),
		MinWidth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "min width"),
		),
		MaxWidth: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "max width"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wrap"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fullscreen, k.Shrink, k.Grow, k.Search, k.CommandPalette, k.Help, k.Quit}
}

// HelpGroups returns the bindings listed in the help overlay. Mouse and
// viewport keys handled below the app are described with help-only
// bindings.
func (k KeyMap) HelpGroups() []components.HelpGroup {
	describe := func(keys, desc string) key.Binding {
		return key.NewBinding(key.WithHelp(keys, desc))
	}
	return []components.HelpGroup{
		{Title: "General", Bindings: []key.Binding{
			describe("q / ctrl+c", "quit"),
			describe("ctrl+k / :", "command palette"),
			k.Help,
			k.SwitchTheme,
			k.Reload,
			describe("y", "copy file to clipboard"),
		}},
		{Title: "Panel", Bindings: []key.Binding{
			describe("drag handle", "resize with the mouse"),
			k.Fullscreen,
			k.ExitFullscreen,
			describe("< / >  ← / →", "shrink / grow by one column"),
			describe("H / L", "shrink / grow by ten columns"),
			describe("0", "reset to the initial width"),
			describe("m / M", "minimum / maximum width"),
		}},
		{Title: "Content", Bindings: []key.Binding{
			describe("j / k", "scroll down / up"),
			describe("g / G", "top / bottom"),
			k.Search,
			describe("n / N", "next / previous match"),
			k.Wrap,
		}},
	}
}
