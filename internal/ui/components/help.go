package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gopanel/internal/ui/msgs"
	"github.com/sadopc/gopanel/internal/ui/theme"
)

const (
	helpWidth    = 70
	helpKeyWidth = 16
)

// HelpGroup is a titled block of bindings in the help overlay.
type HelpGroup struct {
	Title    string
	Bindings []key.Binding
}

// Help lists key bindings in a scrollable box.
type Help struct {
	Visible bool

	groups []HelpGroup
	vp     viewport.Model
	theme  theme.Theme
	styles theme.Styles
	width  int
	height int
}

func NewHelp(t theme.Theme, s theme.Styles) Help {
	return Help{theme: t, styles: s}
}

// SetGroups replaces the listed bindings.
func (m *Help) SetGroups(groups []HelpGroup) {
	m.groups = groups
	m.refresh()
}

// SetSize keeps the box inside a w x h terminal.
func (m *Help) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.refresh()
}

func (m *Help) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
	m.refresh()
}

func (m *Help) Toggle() {
	m.Visible = !m.Visible
	if m.Visible {
		m.refresh()
		m.vp.GotoTop()
	}
}

// refresh re-renders the listing into the viewport, keeping the scroll
// position where it still fits.
func (m *Help) refresh() {
	inner := helpWidth - 6
	height := m.height - 8
	if height < 6 {
		height = 6
	}
	offset := m.vp.YOffset
	m.vp = viewport.New(inner, height)
	m.vp.SetContent(m.listing(inner))
	m.vp.SetYOffset(offset)
}

func (m Help) listing(width int) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Bold(true).
		Width(helpKeyWidth).
		Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Blue).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var b strings.Builder
	for i, g := range m.groups {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Render(g.Title))
		b.WriteString("\n")
		b.WriteString(ruleStyle.Render(strings.Repeat("─", width)))
		for _, kb := range g.Bindings {
			h := kb.Help()
			b.WriteString("\n")
			b.WriteString(keyStyle.Render(h.Key) + ruleStyle.Render(" │ ") + descStyle.Render(h.Desc))
		}
	}
	return b.String()
}

func (m Help) Init() tea.Cmd { return nil }

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "?", "q":
			m.Visible = false
			return m, setMode(msgs.ModeNormal)
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Help) View() string {
	if !m.Visible {
		return ""
	}
	heading := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(helpWidth - 6).
		Align(lipgloss.Center).
		Render("Keyboard Shortcuts")

	body := heading + "\n\n" + m.vp.View()
	if !m.vp.AtBottom() {
		body += "\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("↓ more")
	}

	return lipgloss.NewStyle().
		Width(helpWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(body)
}
