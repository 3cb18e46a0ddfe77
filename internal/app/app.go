// Package app wires the resizable panel, its content viewer and the
// surrounding chrome into the root Bubble Tea model.
package app

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/sadopc/gopanel/internal/config"
	"github.com/sadopc/gopanel/internal/history"
	"github.com/sadopc/gopanel/internal/resize"
	"github.com/sadopc/gopanel/internal/ui/components"
	"github.com/sadopc/gopanel/internal/ui/layout"
	"github.com/sadopc/gopanel/internal/ui/msgs"
	"github.com/sadopc/gopanel/internal/ui/panel"
	"github.com/sadopc/gopanel/internal/ui/theme"
	"github.com/sadopc/gopanel/internal/watcher"
)

// Options are the runtime collaborators of the App.
type Options struct {
	// File is shown in the panel. Empty starts with an empty panel.
	File string
	// ConfigPath is reloaded when it changes on disk.
	ConfigPath string
	// Watcher reports changes to File and ConfigPath. Nil disables live
	// reload.
	Watcher *watcher.Watcher
	// History records opened files and lists them back. Nil disables both.
	History History
	Zones   *zone.Manager
	Logger  *log.Logger
}

// History remembers opened files.
type History interface {
	Record(path, kind string, size int64, at time.Time) error
	Recent(limit int) ([]history.Entry, error)
}

// App is the root Bubble Tea model.
type App struct {
	panel panel.Model

	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast

	cfg        config.Config
	file       string
	fileAbs    string
	configPath string
	configAbs  string
	watcher    *watcher.Watcher
	history    History
	zones      *zone.Manager
	logger     *log.Logger

	mode   msgs.AppMode
	layout layout.PanelLayout
	keys   KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model.
func New(cfg config.Config, opts Options) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	a := App{
		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t, s),
		help:           components.NewHelp(t, s),
		toast:          components.NewToast(t, s),

		cfg:        cfg,
		file:       opts.File,
		fileAbs:    absPath(opts.File),
		configPath: opts.ConfigPath,
		configAbs:  absPath(opts.ConfigPath),
		watcher:    opts.Watcher,
		history:    opts.History,
		zones:      opts.Zones,
		logger:     logger,

		mode: msgs.ModeNormal,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}
	a.panel = panel.New(panelConfig(cfg, opts.Zones, logger), t, s)
	a.panel.SetWrap(cfg.Wrap)
	a.statusBar.SetHints(a.keys.ShortHelp())
	a.help.SetGroups(a.keys.HelpGroups())
	a.watch()
	a.syncStatus()
	return a
}

func panelConfig(cfg config.Config, zones *zone.Manager, logger *log.Logger) panel.Config {
	p := cfg.Panel
	return panel.Config{
		Title:                p.Title,
		Resize:               resizeOptions(p),
		ShowTitleBar:         p.ShowTitleBar,
		HideOptions:          p.HideOptions,
		ShowFullscreenOption: p.ShowFullscreenOption,
		Background:           p.Background,
		FullscreenBackground: p.FullscreenBackground,
		Zones:                zones,
		Logger:               logger,
	}
}

func resizeOptions(p config.PanelConfig) resize.Options {
	return resize.Options{
		MinWidth:            p.MinWidth,
		InitialWidth:        p.InitialWidth,
		MaxWidth:            p.MaxWidth,
		HandleWidth:         p.HandleWidth,
		DefaultToMaxWidth:   p.DefaultToMaxWidth,
		ContainerOwnsHandle: p.ContainerOwnsHandle,
	}
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (a App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.file != "" {
		cmds = append(cmds, loadFile(a.file))
	}
	cmds = append(cmds, a.waitForChange())
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.applyLayout(layout.HandleResize(msg, a.layoutOptions()))
		return a, nil

	case tea.KeyMsg:
		if a.commandPalette.Visible {
			var cmd tea.Cmd
			a.commandPalette, cmd = a.commandPalette.Update(msg)
			return a, cmd
		}
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}
		if a.panel.EditingSearch() {
			return a.updateSearch(msg)
		}

		if cmd := a.handleGlobalKey(msg); cmd != nil {
			return a, cmd
		}
		return a.handlePanelKey(msg)

	case tea.MouseMsg:
		if a.commandPalette.Visible || a.help.Visible {
			return a, nil
		}
		var cmd tea.Cmd
		a.panel, cmd = a.panel.HandleMouse(msg)
		a.syncStatus()
		return a, cmd

	case msgs.ToggleFullscreenMsg:
		return a.toggleFullscreen()

	case msgs.FullscreenChangedMsg:
		a.logger.Printf("fullscreen active=%t", msg.Active)
		return a, nil

	case msgs.SetWidthMsg:
		b := a.panel.Bounds()
		switch msg.Preset {
		case msgs.WidthMin:
			a.panel.Resize(b.Min)
		case msgs.WidthMax:
			a.panel.Resize(b.Max)
		default:
			a.panel.ResetWidth()
		}
		a.syncStatus()
		return a, nil

	case msgs.NudgeWidthMsg:
		a.panel.Nudge(msg.Delta)
		a.syncStatus()
		return a, nil

	case msgs.PanelResizedMsg:
		a.logger.Printf("panel resized from %d to %d", msg.From, msg.To)
		a.syncStatus()
		return a, func() tea.Msg {
			return msgs.StatusMsg{
				Text:     fmt.Sprintf("Resized %d → %d cols", msg.From, msg.To),
				Duration: 2 * time.Second,
			}
		}

	case msgs.ToggleWrapMsg:
		a.panel.ToggleWrap()
		state := "off"
		if a.panel.Content().Wrap() {
			state = "on"
		}
		cmd := a.toast.Show("Word wrap "+state, false, 2*time.Second)
		return a, cmd

	case msgs.OpenSearchMsg:
		a.panel.OpenSearch()
		a.setMode(msgs.ModeSearch)
		return a, nil

	case msgs.OpenCommandPaletteMsg:
		a.setMode(msgs.ModeCommandPalette)
		a.commandPalette.Open()
		return a, nil

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		if a.help.Visible {
			a.setMode(msgs.ModeHelp)
		} else {
			a.setMode(msgs.ModeNormal)
		}
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.SwitchThemeMsg:
		return a.handleSwitchTheme(msg)

	case msgs.CopyContentMsg:
		return a.copyContent()

	case msgs.ReloadContentMsg:
		if a.file == "" {
			cmd := a.toast.Show("No file to reload", true, 2*time.Second)
			return a, cmd
		}
		return a, loadFile(a.file)

	case msgs.ContentLoadedMsg:
		return a.handleContentLoaded(msg)

	case msgs.OpenRecentMsg:
		if a.history == nil {
			cmd := a.toast.Show("History is disabled", true, 2*time.Second)
			return a, cmd
		}
		return a, listRecent(a.history)

	case msgs.RecentFilesMsg:
		return a.handleRecentFiles(msg)

	case msgs.OpenFileMsg:
		return a.openFile(msg.Path)

	case msgs.FileChangedMsg:
		return a.handleFileChanged(msg)

	case msgs.WatchErrorMsg:
		a.logger.Printf("watch error: %v", msg.Err)
		cmd := a.toast.Show("Watch error: "+msg.Err.Error(), true, 3*time.Second)
		return a, tea.Batch(cmd, a.waitForChange())

	case msgs.ConfigReloadedMsg:
		if msg.Err != nil {
			a.logger.Printf("config reload: %v", msg.Err)
			cmd := a.toast.Show("Config error: "+msg.Err.Error(), true, 5*time.Second)
			return a, cmd
		}
		a.applyConfig(msg.Config)
		cmd := a.toast.Show("Config reloaded", false, 2*time.Second)
		return a, cmd

	case msgs.StatusMsg:
		a.statusBar.SetMessage(msg.Text)
		if msg.Duration > 0 {
			cmds = append(cmds, tea.Tick(msg.Duration, func(time.Time) tea.Msg {
				return msgs.StatusMsg{Text: ""}
			}))
		}
		return a, tea.Batch(cmds...)

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.IsError, msg.Duration)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.panel, cmd = a.panel.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a App) layoutOptions() layout.Options {
	p := a.cfg.Panel
	return layout.Options{
		ContainerWidth:  p.ContainerWidth,
		ContainerHeight: p.ContainerHeight,
		ShowTitleBar:    true,
		Fullscreen:      a.panel.Fullscreen(),
	}
}

// relayout recomputes the screen layout after a fullscreen or config
// change.
func (a *App) relayout() {
	if !a.ready {
		return
	}
	a.applyLayout(layout.Calculate(a.width, a.height, a.layoutOptions()))
}

// applyLayout hands a layout to the panel, which re-reads its bounds.
func (a *App) applyLayout(l layout.PanelLayout) {
	a.layout = l
	a.panel.SetLayout(l)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
	a.syncStatus()
}

func (a *App) syncStatus() {
	b := a.panel.Bounds()
	a.statusBar.SetPanel(components.PanelStatus{
		Width:      a.panel.Width(),
		Min:        b.Min,
		Max:        b.Max,
		Dragging:   a.panel.IsDragging(),
		Fullscreen: a.panel.Fullscreen(),
	})
}

func (a *App) setMode(mode msgs.AppMode) {
	a.mode = mode
	a.statusBar.SetMode(mode)
}

func (a App) toggleFullscreen() (tea.Model, tea.Cmd) {
	if err := a.panel.ToggleFullscreen(); err != nil {
		a.logger.Printf("toggle fullscreen: %v", err)
		cmd := a.toast.Show("Fullscreen failed: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}
	a.relayout()

	active := a.panel.Fullscreen()
	text := "Fullscreen (esc to exit)"
	if !active {
		text = "Left fullscreen"
	}
	cmd := a.toast.Show(text, false, 2*time.Second)
	return a, tea.Batch(cmd, func() tea.Msg { return msgs.FullscreenChangedMsg{Active: active} })
}

// applyConfig swaps in a reloaded configuration.
func (a *App) applyConfig(cfg config.Config) {
	prev := a.cfg
	a.cfg = cfg
	p := cfg.Panel
	a.panel.SetOptions(resizeOptions(p))
	a.panel.SetChrome(p.Title, p.ShowTitleBar, p.HideOptions, p.ShowFullscreenOption, p.Background, p.FullscreenBackground)
	if cfg.Wrap != prev.Wrap {
		a.panel.SetWrap(cfg.Wrap)
	}
	if cfg.Theme != prev.Theme {
		a.setTheme(theme.Resolve(cfg.Theme))
	}
	a.relayout()
	a.syncStatus()
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var main string
	if a.layout.Fullscreen {
		main = a.panel.View()
	} else {
		var rows []string
		if a.layout.TitleBarVisible {
			rows = append(rows, a.header())
		}
		c := a.layout.Container
		bodyHeight := a.height - c.Y - 1
		if bodyHeight < c.Height {
			bodyHeight = c.Height
		}
		body := lipgloss.NewStyle().
			MarginLeft(c.X).
			Height(bodyHeight).
			Render(a.panel.View())
		rows = append(rows, body, a.statusBar.View())
		main = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	if a.commandPalette.Visible {
		main = overlayCenter(main, a.commandPalette.View(), a.width, a.height)
	}
	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	if a.zones != nil {
		return a.zones.Scan(main)
	}
	return main
}

func (a App) header() string {
	name := a.styles.Title.Render("gopanel")
	file := a.file
	if file == "" {
		file = "no file"
	}
	avail := a.width - lipgloss.Width(name) - 3
	if avail < 0 {
		avail = 0
	}
	file = runewidth.Truncate(file, avail, "…")
	line := name + "  " + a.styles.Muted.Render(file)
	return a.styles.TitleBar.Width(a.width).MaxWidth(a.width).Render(line)
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
	)
}

// overlayTopRight draws overlay over the top right corner of bg, keeping
// the height of bg.
func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	lines := strings.Split(bg, "\n")
	for i, ol := range strings.Split(overlay, "\n") {
		if i >= len(lines) {
			break
		}
		lines[i] = strings.Repeat(" ", gap) + ol
	}
	return strings.Join(lines, "\n")
}
