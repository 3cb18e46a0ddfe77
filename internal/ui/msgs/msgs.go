package msgs

import (
	"time"

	"github.com/sadopc/gopanel/internal/config"
)

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeDragging
	ModeCommandPalette
	ModeSearch
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDragging:
		return "RESIZE"
	case ModeCommandPalette:
		return "COMMAND"
	case ModeSearch:
		return "SEARCH"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// ToggleFullscreenMsg requests entering or leaving fullscreen.
type ToggleFullscreenMsg struct{}

// FullscreenChangedMsg is emitted after the fullscreen element changed.
type FullscreenChangedMsg struct {
	Active bool
}

// WidthPreset names a panel width the user can jump to.
type WidthPreset int

const (
	WidthReset WidthPreset = iota
	WidthMin
	WidthMax
)

// SetWidthMsg moves the panel width to a preset.
type SetWidthMsg struct {
	Preset WidthPreset
}

// NudgeWidthMsg grows or shrinks the panel by Delta cells.
type NudgeWidthMsg struct {
	Delta int
}

// PanelResizedMsg is emitted when a drag ends with a new width.
type PanelResizedMsg struct {
	From int
	To   int
}

// ToggleWrapMsg toggles soft wrapping of panel content.
type ToggleWrapMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// OpenSearchMsg opens the content search bar.
type OpenSearchMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// CopyContentMsg copies the panel content to the clipboard.
type CopyContentMsg struct{}

// ReloadContentMsg re-reads the content file from disk.
type ReloadContentMsg struct{}

// ContentLoadedMsg carries the content file after it was read.
type ContentLoadedMsg struct {
	Path string
	Data []byte
	Err  error
}

// ConfigReloadedMsg carries the config file after it changed on disk.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

// FileChangedMsg is emitted by the watcher when watched files change.
type FileChangedMsg struct {
	Paths []string
}

// WatchErrorMsg is emitted when the watcher reports an error.
type WatchErrorMsg struct {
	Err error
}

// SwitchThemeMsg requests switching to a named theme.
type SwitchThemeMsg struct {
	Name string
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// OpenRecentMsg opens the recent files picker.
type OpenRecentMsg struct{}

// RecentFilesMsg carries the recent files list read from history.
type RecentFilesMsg struct {
	Paths []string
	Err   error
}

// OpenFileMsg replaces the panel content with the file at Path.
type OpenFileMsg struct {
	Path string
}
