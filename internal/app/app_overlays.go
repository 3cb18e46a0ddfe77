package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gopanel/internal/ui/msgs"
	"github.com/sadopc/gopanel/internal/ui/theme"
)

func (a App) handleSwitchTheme(msg msgs.SwitchThemeMsg) (tea.Model, tea.Cmd) {
	if msg.Name == "" {
		a.commandPalette.OpenThemePicker(theme.Names(), a.theme.Name)
		a.setMode(msgs.ModeCommandPalette)
		return a, nil
	}

	t, ok := theme.Get(msg.Name)
	if !ok {
		cmd := a.toast.Show("Unknown theme: "+msg.Name, true, 2*time.Second)
		return a, cmd
	}
	a.setTheme(t)
	a.cfg.Theme = msg.Name

	cmd := a.toast.Show("Theme: "+t.Name, false, 2*time.Second)
	return a, cmd
}

// setTheme restyles every component in place, keeping their state.
func (a *App) setTheme(t theme.Theme) {
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s

	a.panel.SetTheme(t, s)
	a.statusBar.SetTheme(t, s)
	a.commandPalette.SetTheme(t, s)
	a.help.SetTheme(t, s)
	a.toast.SetTheme(t, s)
}
