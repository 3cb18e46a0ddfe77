package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sadopc/gopanel/internal/resize"
)

const (
	handleGlyph       = "┆"
	handleActiveGlyph = "┃"
)

// Active reports whether the handle is drawn in its dragging state, which
// follows the container's resizing class.
func (m Model) Active() bool {
	return m.containerEl.HasClass(resize.ResizingClass)
}

// View renders the container: the title bar, then the panel with its
// handle. The result is exactly as large as the container rect.
func (m Model) View() string {
	if !m.mounted {
		return ""
	}
	g := m.geometry()
	if g.Container.Width <= 0 || g.Container.Height <= 0 {
		return ""
	}
	bg := m.background()

	var rows []string
	if g.TitleBar.Height > 0 {
		rows = append(rows, m.titleBar(g))
	}
	if g.Panel.Height > 0 {
		rows = append(rows, m.body(g))
	}

	return lipgloss.NewStyle().
		Width(g.Container.Width).
		MaxWidth(g.Container.Width).
		Height(g.Container.Height).
		MaxHeight(g.Container.Height).
		Background(bg).
		Render(strings.Join(rows, "\n"))
}

func (m Model) titleBar(g geometry) string {
	bg := m.background()
	avail := g.TitleBar.Width

	var button string
	if g.Button.Width > 0 {
		label := "⤢ full"
		if m.Fullscreen() {
			label = "⤡ exit"
		}
		style := m.styles.Button
		if m.Fullscreen() {
			style = m.styles.ButtonActive
		}
		button = style.Width(g.Button.Width).MaxWidth(g.Button.Width).Render(label)
		if m.zones != nil {
			button = m.zones.Mark(m.buttonZone(), button)
		}
		avail -= g.Button.Width
	}

	title := m.cfg.Title
	if title == "" {
		title = m.content.Path()
	}
	title = runewidth.Truncate(" "+title, max(avail, 0), "…")

	left := m.styles.TitleBar.
		Background(bg).
		Width(max(avail, 0)).
		Render(title)
	return left + button
}

func (m Model) body(g geometry) string {
	bg := m.background()
	h := g.Panel.Height

	view := lipgloss.NewStyle().
		Width(g.Content.Width).
		MaxWidth(g.Content.Width).
		Height(h).
		MaxHeight(h).
		Render(m.content.View())
	if g.Content.Width == 0 {
		view = strings.TrimSuffix(strings.Repeat("\n", h), "\n")
	}

	var handle string
	if g.Handle.Width > 0 {
		glyph := handleGlyph
		if m.Active() {
			glyph = handleActiveGlyph
		}
		line := m.styles.HandleStyle(m.Active()).
			Background(bg).
			Render(strings.Repeat(glyph, g.Handle.Width))
		handle = strings.TrimSuffix(strings.Repeat(line+"\n", h), "\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, view, handle)
}
