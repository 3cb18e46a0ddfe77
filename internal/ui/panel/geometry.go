package panel

import (
	"github.com/sadopc/gopanel/internal/element"
	"github.com/sadopc/gopanel/internal/ui/content"
)

const (
	titleBarHeight = 1
	buttonWidth    = 9
)

// geometry is the screen placement of the panel's parts.
type geometry struct {
	Container element.Rect
	TitleBar  element.Rect
	Button    element.Rect
	Panel     element.Rect
	Content   element.Rect
	Handle    element.Rect
}

// handleInside reports whether the handle is drawn inside the panel's own
// width. When the container owns the handle, or while fullscreen, the handle
// sits just past the panel's right edge instead.
func (m Model) handleInside() bool {
	return !m.cfg.Resize.ContainerOwnsHandle && !m.Fullscreen()
}

func (m Model) showButton() bool {
	return m.cfg.ShowTitleBar && !m.cfg.HideOptions && m.cfg.ShowFullscreenOption
}

func (m Model) geometry() geometry {
	c := m.containerEl.Rect
	g := geometry{Container: c}

	top := c.Y
	if m.cfg.ShowTitleBar && c.Height > 1 {
		g.TitleBar = element.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: titleBarHeight}
		if m.showButton() {
			bw := min(buttonWidth, c.Width)
			g.Button = element.Rect{X: c.X + c.Width - bw, Y: c.Y, Width: bw, Height: titleBarHeight}
		}
		top += titleBarHeight
	}
	bodyH := max(c.Y+c.Height-top, 0)

	width := max(m.engine.Width(), 0)
	hw := max(m.cfg.Resize.HandleWidth, 0)
	g.Panel = element.Rect{X: c.X, Y: top, Width: width, Height: bodyH}

	contentW := width
	handleX := c.X + width
	if m.handleInside() {
		contentW = max(width-hw, 0)
		handleX = c.X + contentW
	}
	g.Content = element.Rect{X: c.X, Y: top, Width: contentW, Height: bodyH}
	g.Handle = element.Rect{X: handleX, Y: top, Width: hw, Height: bodyH}
	return g
}

// syncGeometry writes the panel rect into the element tree and hands the
// content its frame.
func (m *Model) syncGeometry() {
	if !m.mounted {
		return
	}
	g := m.geometry()
	m.panelEl.Rect = g.Panel
	m.content.SetFrame(content.Frame{
		Width:           g.Content.Width,
		Height:          g.Content.Height,
		ContainerWidth:  g.Container.Width,
		ContainerHeight: g.Container.Height,
		Fullscreen:      m.Fullscreen(),
	})
}

// HandleRect returns the drag handle's screen rect.
func (m Model) HandleRect() element.Rect { return m.geometry().Handle }

// ContentRect returns the embedded content's screen rect.
func (m Model) ContentRect() element.Rect { return m.geometry().Content }

// ButtonRect returns the fullscreen button's screen rect; it is empty when
// the button is hidden.
func (m Model) ButtonRect() element.Rect { return m.geometry().Button }
