// Package content is the viewer embedded in the panel. It renders a file
// at the panel's current width and has its own mouse handling, which the
// panel suppresses while a resize drag owns the pointer.
package content

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gopanel/internal/ui/theme"
)

// Frame is the geometry handed to the content on every layout.
type Frame struct {
	Width           int
	Height          int
	ContainerWidth  int
	ContainerHeight int
	Fullscreen      bool
}

// Model displays a file with syntax highlighting or markdown rendering.
type Model struct {
	viewport viewport.Model
	search   SearchBar
	theme    theme.Theme
	styles   theme.Styles
	frame    Frame
	wrap     bool

	path  string
	raw   []byte
	kind  Kind
	lexer string
	err   error

	hovers int
	clicks int
}

// New creates an empty viewer.
func New(t theme.Theme, s theme.Styles) Model {
	return Model{
		viewport: viewport.New(0, 0),
		search:   NewSearchBar(t, s),
		theme:    t,
		styles:   s,
		wrap:     true,
	}
}

// SetContent replaces the displayed file.
func (m *Model) SetContent(path string, data []byte) {
	m.path = path
	m.raw = data
	m.err = nil
	m.kind, m.lexer = detectKind(path, data)
	m.render()
}

// SetError shows a load failure in place of the content.
func (m *Model) SetError(path string, err error) {
	m.path = path
	m.err = err
}

// SetFrame resizes the viewer to the panel and reflows the content.
func (m *Model) SetFrame(f Frame) {
	reflow := f.Width != m.frame.Width
	m.frame = f
	m.search.SetWidth(f.Width)
	m.viewport.Width = f.Width
	m.viewport.Height = m.viewportHeight()
	if reflow {
		m.render()
	}
}

// Frame returns the last geometry passed to SetFrame.
func (m Model) Frame() Frame {
	return m.frame
}

// SetTheme restyles the viewer.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
	m.search.SetTheme(t, s)
	m.render()
}

// SetWrap enables or disables soft wrapping.
func (m *Model) SetWrap(wrap bool) {
	m.wrap = wrap
	m.render()
}

// ToggleWrap flips soft wrapping.
func (m *Model) ToggleWrap() {
	m.SetWrap(!m.wrap)
}

// Wrap reports whether soft wrapping is on.
func (m Model) Wrap() bool { return m.wrap }

// Path returns the displayed file path.
func (m Model) Path() string { return m.path }

// Raw returns the unrendered file contents.
func (m Model) Raw() []byte { return m.raw }

// Kind returns the rendering mode of the current file.
func (m Model) Kind() Kind { return m.kind }

// HasContent reports whether a file is loaded.
func (m Model) HasContent() bool {
	return len(m.raw) > 0 && m.err == nil
}

// OpenSearch shows the search bar.
func (m *Model) OpenSearch() {
	m.search.Open()
	m.viewport.Height = m.viewportHeight()
}

// Searching returns whether search is active.
func (m Model) Searching() bool {
	return m.search.Active()
}

// EditingSearch reports whether key input belongs to the search bar.
func (m Model) EditingSearch() bool {
	return m.search.Editing()
}

// MouseStats returns how often the viewer's hover and click handlers ran.
func (m Model) MouseStats() (hovers, clicks int) {
	return m.hovers, m.clicks
}

// ScrollOffset is the index of the first visible line.
func (m Model) ScrollOffset() int { return m.viewport.YOffset }

// HandleMouse runs the viewer's own mouse handlers. Coordinates are
// relative to the viewer's top-left cell.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hovers++
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.clicks++
	case tea.MouseEvent(msg).IsWheel():
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewportHeight() int {
	h := m.frame.Height
	if m.search.Active() {
		h-- // search bar
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (m *Model) render() {
	if !m.HasContent() {
		return
	}

	if m.search.Active() && m.search.Query() != "" {
		m.renderWithSearch()
		return
	}

	var out string
	switch m.kind {
	case KindMarkdown:
		s, err := renderMarkdown(string(m.raw), m.theme.GlamourStyle, m.frame.Width)
		if err != nil {
			s = string(m.raw)
		}
		out = s
	case KindJSON:
		out = highlight(string(prettyJSON(m.raw)), "json", m.theme.ChromaStyle)
	case KindCode:
		out = highlight(string(m.raw), m.lexer, m.theme.ChromaStyle)
	default:
		out = string(m.raw)
	}

	if m.wrap && m.kind != KindMarkdown {
		out = wrapText(out, m.frame.Width)
	}
	m.viewport.SetContent(out)
}

func (m *Model) renderWithSearch() {
	src := m.raw
	if m.kind == KindJSON {
		src = prettyJSON(src)
	}

	// Plain text keeps ANSI sequences out of the match positions.
	text := string(src)
	if m.wrap {
		text = wrapText(text, m.frame.Width)
	}

	highlighted, lines := highlightMatches(text, m.search.Query(), m.search.mark)
	m.search.SetMatches(lines)
	m.viewport.SetContent(highlighted)
	if len(lines) > 0 {
		m.viewport.SetYOffset(lines[0])
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.search.Editing() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if !m.search.Active() {
			m.viewport.Height = m.viewportHeight()
		}
		m.render()
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "/":
			m.OpenSearch()
			return m, nil
		case "w":
			m.ToggleWrap()
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "n":
			if m.search.Active() && m.search.Query() != "" {
				m.search.NextMatch()
				if line := m.search.CurrentMatchLine(); line >= 0 {
					m.viewport.SetYOffset(line)
				}
				return m, nil
			}
		case "N":
			if m.search.Active() && m.search.Query() != "" {
				m.search.PrevMatch()
				if line := m.search.CurrentMatchLine(); line >= 0 {
					m.viewport.SetYOffset(line)
				}
				return m, nil
			}
		case "esc":
			if m.search.Active() {
				m.search.Close()
				m.viewport.Height = m.viewportHeight()
				m.render()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return m.styles.Error.Render("Cannot load " + m.path + ": " + m.err.Error())
	}
	if !m.HasContent() {
		return m.styles.Muted.Render("Nothing to show. Open a file with: gopanel <file>")
	}
	if m.search.Active() {
		return m.viewport.View() + "\n" + m.search.View()
	}
	return m.viewport.View()
}
