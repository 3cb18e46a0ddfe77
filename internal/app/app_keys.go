package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gopanel/internal/ui/msgs"
)

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.CommandPalette):
		return func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.SwitchTheme):
		return func() tea.Msg { return msgs.SwitchThemeMsg{} }
	case key.Matches(msg, a.keys.Fullscreen):
		return func() tea.Msg { return msgs.ToggleFullscreenMsg{} }
	case key.Matches(msg, a.keys.Copy):
		return func() tea.Msg { return msgs.CopyContentMsg{} }
	case key.Matches(msg, a.keys.Reload):
		return func() tea.Msg { return msgs.ReloadContentMsg{} }
	}
	return nil
}

func (a App) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Grow):
		return a, nudge(1)
	case key.Matches(msg, a.keys.Shrink):
		return a, nudge(-1)
	case key.Matches(msg, a.keys.GrowMore):
		return a, nudge(10)
	case key.Matches(msg, a.keys.ShrinkMore):
		return a, nudge(-10)
	case key.Matches(msg, a.keys.ResetWidth):
		return a, setWidth(msgs.WidthReset)
	case key.Matches(msg, a.keys.MinWidth):
		return a, setWidth(msgs.WidthMin)
	case key.Matches(msg, a.keys.MaxWidth):
		return a, setWidth(msgs.WidthMax)
	case key.Matches(msg, a.keys.Wrap):
		return a, func() tea.Msg { return msgs.ToggleWrapMsg{} }
	case key.Matches(msg, a.keys.Search):
		return a, func() tea.Msg { return msgs.OpenSearchMsg{} }
	}

	// esc closes the search results first, then leaves fullscreen.
	if key.Matches(msg, a.keys.ExitFullscreen) && !a.panel.Content().Searching() && a.panel.Fullscreen() {
		return a, func() tea.Msg { return msgs.ToggleFullscreenMsg{} }
	}

	var cmd tea.Cmd
	a.panel, cmd = a.panel.Update(msg)
	return a, cmd
}

// updateSearch sends keys to the search bar until it stops editing.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.panel, cmd = a.panel.Update(msg)

	if a.panel.EditingSearch() {
		a.setMode(msgs.ModeSearch)
	} else {
		a.setMode(msgs.ModeNormal)
	}
	return a, cmd
}

func nudge(delta int) tea.Cmd {
	return func() tea.Msg { return msgs.NudgeWidthMsg{Delta: delta} }
}

func setWidth(p msgs.WidthPreset) tea.Cmd {
	return func() tea.Msg { return msgs.SetWidthMsg{Preset: p} }
}
