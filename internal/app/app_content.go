package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/gopanel/internal/config"
	"github.com/sadopc/gopanel/internal/diff"
	"github.com/sadopc/gopanel/internal/ui/msgs"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return msgs.ContentLoadedMsg{Path: path, Data: data, Err: err}
	}
}

func loadConfig(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.LoadFile(path)
		return msgs.ConfigReloadedMsg{Config: cfg, Err: err}
	}
}

// watch registers the content and config files with the watcher.
func (a *App) watch() {
	if a.watcher == nil || !a.cfg.Watch {
		return
	}
	for _, path := range []string{a.file, a.configPath} {
		if path == "" {
			continue
		}
		if err := a.watcher.Add(path); err != nil {
			a.logger.Printf("watch %s: %v", path, err)
		}
	}
}

// waitForChange listens for the next watcher event.
func (a App) waitForChange() tea.Cmd {
	if a.watcher == nil || !a.cfg.Watch {
		return nil
	}
	return a.watcher.Wait()
}

func (a App) handleContentLoaded(msg msgs.ContentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.logger.Printf("load %s: %v", msg.Path, msg.Err)
		a.panel.SetContentError(msg.Path, msg.Err)
		a.statusBar.SetFile(msg.Path, 0)
		cmd := a.toast.Show("Cannot load "+msg.Path, true, 3*time.Second)
		return a, cmd
	}

	prev := a.panel.Content()
	reload := prev.HasContent() && prev.Path() == msg.Path
	old := string(prev.Raw())

	a.panel.SetContent(msg.Path, msg.Data)
	a.statusBar.SetFile(msg.Path, int64(len(msg.Data)))
	a.logger.Printf("loaded %s (%s, %s)", msg.Path, humanize.IBytes(uint64(len(msg.Data))), a.panel.Content().Kind())

	if !reload {
		return a, a.recordOpen(msg.Path, int64(len(msg.Data)))
	}
	stats := diff.Lines(old, string(msg.Data))
	if !stats.Changed() {
		return a, nil
	}
	cmd := a.toast.Show(fmt.Sprintf("Reloaded %s: %s", filepath.Base(msg.Path), stats), false, 2*time.Second)
	return a, cmd
}

func (a App) handleFileChanged(msg msgs.FileChangedMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{a.waitForChange()}
	for _, path := range msg.Paths {
		switch path {
		case a.fileAbs:
			cmds = append(cmds, loadFile(a.file))
		case a.configAbs:
			cmds = append(cmds, loadConfig(a.configPath))
		}
	}
	return a, tea.Batch(cmds...)
}

func (a App) copyContent() (tea.Model, tea.Cmd) {
	raw := a.panel.Content().Raw()
	if len(raw) == 0 {
		cmd := a.toast.Show("Nothing to copy", true, 2*time.Second)
		return a, cmd
	}
	if err := writeClipboard(string(raw)); err != nil {
		cmd := a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}
	cmd := a.toast.Show(fmt.Sprintf("Copied %s", humanize.IBytes(uint64(len(raw)))), false, 2*time.Second)
	return a, cmd
}

// recordOpen adds the file to the recent files list.
func (a App) recordOpen(path string, size int64) tea.Cmd {
	if a.history == nil {
		return nil
	}
	h := a.history
	logger := a.logger
	kind := a.panel.Content().Kind().String()
	abs := absPath(path)
	return func() tea.Msg {
		if err := h.Record(abs, kind, size, time.Now()); err != nil {
			logger.Printf("history: %v", err)
		}
		return nil
	}
}

func listRecent(h History) tea.Cmd {
	return func() tea.Msg {
		entries, err := h.Recent(50)
		if err != nil {
			return msgs.RecentFilesMsg{Err: err}
		}
		paths := make([]string, len(entries))
		for i, e := range entries {
			paths[i] = e.Path
		}
		return msgs.RecentFilesMsg{Paths: paths}
	}
}

func (a App) handleRecentFiles(msg msgs.RecentFilesMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.logger.Printf("history: %v", msg.Err)
		cmd := a.toast.Show("History error: "+msg.Err.Error(), true, 3*time.Second)
		return a, cmd
	}
	if len(msg.Paths) == 0 {
		cmd := a.toast.Show("No recent files", false, 2*time.Second)
		return a, cmd
	}
	a.commandPalette.OpenRecentPicker(msg.Paths)
	a.setMode(msgs.ModeCommandPalette)
	return a, nil
}

// openFile swaps the watched content file and loads the new one.
func (a App) openFile(path string) (tea.Model, tea.Cmd) {
	abs := absPath(path)
	if abs == a.fileAbs {
		return a, loadFile(a.file)
	}
	if a.watcher != nil && a.cfg.Watch {
		if a.fileAbs != "" && a.fileAbs != a.configAbs {
			if err := a.watcher.Remove(a.fileAbs); err != nil {
				a.logger.Printf("unwatch %s: %v", a.fileAbs, err)
			}
		}
		if err := a.watcher.Add(abs); err != nil {
			a.logger.Printf("watch %s: %v", abs, err)
		}
	}
	a.file = path
	a.fileAbs = abs
	return a, loadFile(path)
}
