package panel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gopanel/internal/input"
	"github.com/sadopc/gopanel/internal/ui/msgs"
)

func (m Model) buttonZone() string {
	return m.id + ":fullscreen"
}

// onButton hit-tests the fullscreen button. The zone reflects the last
// rendered frame; before the first scan the computed rect is used.
func (m Model) onButton(msg tea.MouseMsg) bool {
	if !m.showButton() {
		return false
	}
	if m.zones != nil {
		if z := m.zones.Get(m.buttonZone()); !z.IsZero() {
			return z.InBounds(msg)
		}
	}
	return m.geometry().Button.Contains(msg.X, msg.Y)
}

// HandleMouse routes a Bubble Tea mouse message.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	ev, ok := input.FromMouse(msg)
	if !ok {
		// Wheel and other buttons only ever reach the content.
		if blocked, _ := m.registry.Intercepts(msg.X, msg.Y); blocked {
			return m, nil
		}
		return m.forward(msg)
	}
	if ev.Type == input.PointerDown && !m.engine.IsDragging() && m.onButton(msg) {
		return m, func() tea.Msg { return msgs.ToggleFullscreenMsg{} }
	}
	return m.HandleInput(ev)
}

// HandleInput routes a pointer or touch event: a press on the handle starts
// a drag, global listeners see every event, and the content only receives
// events no captured surface covers.
func (m Model) HandleInput(ev input.Event) (Model, tea.Cmd) {
	if !m.mounted {
		return m, nil
	}
	x, okX := ev.ClientX()
	y, okY := ev.ClientY()
	if !okX || !okY {
		// A touch without points can still end a drag.
		m.bus.Dispatch(ev)
		m.syncGeometry()
		return m, nil
	}

	if (ev.Type == input.PointerDown || ev.Type == input.TouchStart) &&
		!m.engine.IsDragging() && m.geometry().Handle.Contains(x, y) {
		m.engine.OnResizeStart(ev)
		m.syncGeometry()
		return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeDragging} }
	}

	// The surfaces in place when the event arrives decide who receives it,
	// so the release that ends a drag is still swallowed.
	blocked, _ := m.registry.Intercepts(x, y)

	wasDragging := m.engine.IsDragging()
	from := m.engine.State().Drag.StartWidth
	m.bus.Dispatch(ev)
	m.syncGeometry()

	var cmd tea.Cmd
	if wasDragging && !m.engine.IsDragging() {
		to := m.engine.Width()
		cmd = tea.Batch(
			func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} },
			func() tea.Msg { return msgs.PanelResizedMsg{From: from, To: to} },
		)
	}
	if blocked {
		return m, cmd
	}

	m, fwd := m.forward(input.ToMouse(ev))
	return m, tea.Batch(cmd, fwd)
}

// forward delivers msg to the content when it falls inside it, translated
// to content-relative coordinates.
func (m Model) forward(msg tea.MouseMsg) (Model, tea.Cmd) {
	r := m.geometry().Content
	if !r.Contains(msg.X, msg.Y) {
		return m, nil
	}
	msg.X -= r.X
	msg.Y -= r.Y
	var cmd tea.Cmd
	m.content, cmd = m.content.HandleMouse(msg)
	return m, cmd
}

// Update handles key input for the embedded content.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.HandleMouse(msg)
	default:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
}

// EditingSearch reports whether key input belongs to the content search bar.
func (m Model) EditingSearch() bool {
	return m.content.EditingSearch()
}
