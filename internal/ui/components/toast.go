package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sadopc/gopanel/internal/ui/theme"
)

const (
	defaultToastDuration = 3 * time.Second
	toastMaxWidth        = 60
)

// toastExpiredMsg hides the toast shown with the same seq. A newer toast
// outlives the timers of the ones it replaced.
type toastExpiredMsg struct {
	seq int
}

// Toast is a short notice in the top right corner that hides itself.
type Toast struct {
	Visible bool

	text     string
	isError  bool
	duration time.Duration
	seq      int
	theme    theme.Theme
	styles   theme.Styles
}

func NewToast(t theme.Theme, s theme.Styles) Toast {
	return Toast{theme: t, styles: s, duration: defaultToastDuration}
}

func (m *Toast) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Text is the message on screen, empty when hidden.
func (m Toast) Text() string { return m.text }

// Show replaces the current notice. The returned cmd expires it after d,
// or after three seconds when d is not positive.
func (m *Toast) Show(text string, isError bool, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = defaultToastDuration
	}
	m.seq++
	m.Visible = true
	m.text = text
	m.isError = isError
	m.duration = d

	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m Toast) Init() tea.Cmd { return nil }

func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if exp, ok := msg.(toastExpiredMsg); ok && exp.seq == m.seq {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}
	fg := m.theme.Green
	if m.isError {
		fg = m.theme.Red
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Render(runewidth.Truncate(m.text, toastMaxWidth, "…"))
}
