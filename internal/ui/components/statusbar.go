package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/sadopc/gopanel/internal/ui/msgs"
	"github.com/sadopc/gopanel/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// PanelStatus is the panel state shown on the left of the status bar.
type PanelStatus struct {
	Width      int
	Min        int
	Max        int
	Dragging   bool
	Fullscreen bool
}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	panel   PanelStatus
	file    string
	size    int64
	mode    msgs.AppMode
	message string
	hints   []key.Binding
	help    help.Model
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	m := StatusBar{
		mode: msgs.ModeNormal,
		help: help.New(),
	}
	m.SetTheme(t, s)
	return m
}

// SetTheme restyles the bar.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Subtext).Background(t.Surface)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.Overlay).Background(t.Surface)
}

// SetPanel sets the panel width, bounds and state.
func (m *StatusBar) SetPanel(p PanelStatus) {
	m.panel = p
}

// SetFile sets the displayed file name and size.
func (m *StatusBar) SetFile(path string, size int64) {
	m.file = path
	m.size = size
}

// SetHints sets the key bindings listed on the right.
func (m *StatusBar) SetHints(bindings []key.Binding) {
	m.hints = bindings
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)
	on := func(fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(fg).Background(m.theme.Surface)
	}

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, on(m.theme.Text).Render(m.message))
	} else {
		leftParts = append(leftParts, on(m.theme.WidthColor(m.panel.Width, m.panel.Min, m.panel.Max)).
			Bold(true).
			Render(fmt.Sprintf("%d cols", m.panel.Width)))
		leftParts = append(leftParts, on(m.theme.Subtext).
			Render(fmt.Sprintf("[%d, %d]", m.panel.Min, m.panel.Max)))
		if m.panel.Dragging {
			leftParts = append(leftParts, on(m.theme.HandleActive).Bold(true).Render("resizing"))
		}
		if m.panel.Fullscreen {
			leftParts = append(leftParts, on(m.theme.Accent).Bold(true).Render("fullscreen"))
		}
		if m.file != "" {
			name := truncate(filepath.Base(m.file), 32)
			if m.size > 0 {
				name += " " + humanize.IBytes(uint64(m.size))
			}
			leftParts = append(leftParts, on(m.theme.Muted).Render(name))
		}
	}
	left := strings.Join(leftParts, on(m.theme.Overlay).Render(" │ "))

	modeStr := on(m.theme.Accent).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	hint := m.help.ShortHelpView(m.hints)

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		// Tight: drop the hints
		return barStyle.Render(" " + left + " " + modeStr)
	}

	remaining := m.width - totalContent - 2 // padding
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

// truncate shortens s to at most maxW cells.
func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW > 3 {
		return runewidth.Truncate(s, maxW, "...")
	}
	return runewidth.Truncate(s, maxW, "")
}
