package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
	"github.com/sadopc/gopanel/internal/ui/msgs"
	"github.com/sadopc/gopanel/internal/ui/theme"
)

const (
	paletteWidth   = 60
	paletteVisible = 12
)

// PaletteItem is one selectable row. Msg is emitted when it is chosen.
type PaletteItem struct {
	Title string
	Hint  string
	Msg   tea.Msg
}

// paletteTitles adapts a list of items to fuzzy.Source.
type paletteTitles []PaletteItem

func (p paletteTitles) String(i int) string { return p[i].Title }
func (p paletteTitles) Len() int            { return len(p) }

var panelCommands = []PaletteItem{
	{Title: "Toggle Fullscreen", Hint: "f", Msg: msgs.ToggleFullscreenMsg{}},
	{Title: "Maximize Width", Hint: "M", Msg: msgs.SetWidthMsg{Preset: msgs.WidthMax}},
	{Title: "Minimize Width", Hint: "m", Msg: msgs.SetWidthMsg{Preset: msgs.WidthMin}},
	{Title: "Reset Width", Hint: "0", Msg: msgs.SetWidthMsg{Preset: msgs.WidthReset}},
	{Title: "Grow Panel", Hint: ">", Msg: msgs.NudgeWidthMsg{Delta: 1}},
	{Title: "Shrink Panel", Hint: "<", Msg: msgs.NudgeWidthMsg{Delta: -1}},
	{Title: "Toggle Word Wrap", Hint: "w", Msg: msgs.ToggleWrapMsg{}},
	{Title: "Search Content", Hint: "/", Msg: msgs.OpenSearchMsg{}},
	{Title: "Copy Content", Hint: "y", Msg: msgs.CopyContentMsg{}},
	{Title: "Reload File", Hint: "r", Msg: msgs.ReloadContentMsg{}},
	{Title: "Open Recent File", Msg: msgs.OpenRecentMsg{}},
	{Title: "Switch Theme", Hint: "t", Msg: msgs.SwitchThemeMsg{}},
	{Title: "Help", Hint: "?", Msg: msgs.ShowHelpMsg{}},
	{Title: "Quit", Hint: "Ctrl+C", Msg: tea.Quit()},
}

// CommandPalette is a fuzzy picker overlay. It lists panel commands by
// default and is reused for themes and recent files.
type CommandPalette struct {
	Visible bool

	input   textinput.Model
	heading string
	items   []PaletteItem
	matches []PaletteItem
	cursor  int
	offset  int
	theme   theme.Theme
	styles  theme.Styles
}

// NewCommandPalette returns a hidden palette holding the panel commands.
func NewCommandPalette(t theme.Theme, s theme.Styles) CommandPalette {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = paletteWidth - 6

	m := CommandPalette{input: ti, theme: t, styles: s}
	m.load("Command Palette", "Type a command...", panelCommands)
	return m
}

// Open shows the panel commands.
func (m *CommandPalette) Open() {
	m.Pick("Command Palette", "Type a command...", panelCommands)
}

// Pick shows an arbitrary list under heading.
func (m *CommandPalette) Pick(heading, placeholder string, items []PaletteItem) {
	m.load(heading, placeholder, items)
	m.Visible = true
	m.input.Focus()
}

// OpenThemePicker lists themes, marking the current one.
func (m *CommandPalette) OpenThemePicker(names []string, current string) {
	items := make([]PaletteItem, len(names))
	for i, name := range names {
		items[i] = PaletteItem{Title: name, Msg: msgs.SwitchThemeMsg{Name: name}}
		if strings.EqualFold(name, current) {
			items[i].Hint = "current"
		}
	}
	m.Pick("Theme", "Select theme...", items)
}

// OpenRecentPicker lists recently opened files.
func (m *CommandPalette) OpenRecentPicker(paths []string) {
	items := make([]PaletteItem, len(paths))
	for i, p := range paths {
		items[i] = PaletteItem{Title: p, Msg: msgs.OpenFileMsg{Path: p}}
	}
	m.Pick("Recent Files", "Filter files...", items)
}

// Close hides the palette and puts the panel commands back.
func (m *CommandPalette) Close() {
	m.Visible = false
	m.input.Blur()
	m.load("Command Palette", "Type a command...", panelCommands)
}

// Heading is the title of the list currently loaded.
func (m CommandPalette) Heading() string { return m.heading }

// SetTheme restyles the palette.
func (m *CommandPalette) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

func (m *CommandPalette) load(heading, placeholder string, items []PaletteItem) {
	m.heading = heading
	m.items = items
	m.matches = items
	m.cursor = 0
	m.offset = 0
	m.input.Placeholder = placeholder
	m.input.SetValue("")
}

func (m CommandPalette) Init() tea.Cmd { return nil }

func (m CommandPalette) Update(msg tea.Msg) (CommandPalette, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Close()
			return m, setMode(msgs.ModeNormal)
		case "enter":
			if m.cursor >= len(m.matches) {
				return m, nil
			}
			chosen := m.matches[m.cursor].Msg
			m.Close()
			return m, tea.Batch(setMode(msgs.ModeNormal), func() tea.Msg { return chosen })
		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter(m.input.Value())
	return m, cmd
}

func setMode(mode msgs.AppMode) tea.Cmd {
	return func() tea.Msg { return msgs.SetModeMsg{Mode: mode} }
}

// move shifts the cursor and scrolls the visible window to keep it shown.
func (m *CommandPalette) move(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+paletteVisible {
		m.offset = m.cursor - paletteVisible + 1
	}
}

func (m *CommandPalette) filter(query string) {
	if query == "" {
		m.matches = m.items
	} else {
		found := fuzzy.FindFrom(query, paletteTitles(m.items))
		m.matches = make([]PaletteItem, len(found))
		for i, f := range found {
			m.matches[i] = m.items[f.Index]
		}
	}
	m.cursor = 0
	m.offset = 0
}

func (m CommandPalette) View() string {
	if !m.Visible {
		return ""
	}
	inner := paletteWidth - 4

	heading := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(inner).
		Align(lipgloss.Center).
		Render(m.heading)

	end := m.offset + paletteVisible
	if end > len(m.matches) {
		end = len(m.matches)
	}
	rows := make([]string, 0, end-m.offset+1)
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderItem(m.matches[i], i == m.cursor, inner))
	}
	if len(m.matches) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No matches"))
	} else if len(m.matches) > paletteVisible {
		more := lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render(runewidth.FillLeft(fmt.Sprintf("%d/%d", m.cursor+1, len(m.matches)), inner))
		rows = append(rows, more)
	}

	body := heading + "\n\n" + m.input.View() + "\n\n" + strings.Join(rows, "\n")

	return lipgloss.NewStyle().
		Width(paletteWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(body)
}

func (m CommandPalette) renderItem(item PaletteItem, selected bool, width int) string {
	hintWidth := runewidth.StringWidth(item.Hint)
	titleWidth := width - 2
	if hintWidth > 0 {
		titleWidth -= hintWidth + 1
	}
	// Paths lose their head, command names their tail.
	title := runewidth.Truncate(item.Title, titleWidth, "…")
	if strings.ContainsRune(item.Title, '/') && runewidth.StringWidth(item.Title) > titleWidth {
		title = truncateLeft(item.Title, titleWidth)
	}
	gap := width - 2 - runewidth.StringWidth(title) - hintWidth
	if gap < 1 {
		gap = 1
	}

	if selected {
		return lipgloss.NewStyle().
			Background(m.theme.Overlay).
			Foreground(m.theme.Text).
			Width(width).
			Render("› " + title + strings.Repeat(" ", gap) + item.Hint)
	}
	return "  " + lipgloss.NewStyle().Foreground(m.theme.Text).Render(title) +
		strings.Repeat(" ", gap) +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(item.Hint)
}

// truncateLeft keeps the last cells of s, prefixed with an ellipsis.
func truncateLeft(s string, maxW int) string {
	if maxW <= 1 {
		return runewidth.Truncate(s, maxW, "")
	}
	r := []rune(s)
	w := 0
	i := len(r)
	for i > 0 {
		cw := runewidth.RuneWidth(r[i-1])
		if w+cw > maxW-1 {
			break
		}
		w += cw
		i--
	}
	return "…" + string(r[i:])
}
