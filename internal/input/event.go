// Package input unifies pointer and touch input and provides the global
// listener bus used during drag gestures.
package input

import tea "github.com/charmbracelet/bubbletea"

// Type names an input event kind.
type Type string

const (
	PointerDown Type = "pointerdown"
	PointerMove Type = "pointermove"
	PointerUp   Type = "pointerup"
	TouchStart  Type = "touchstart"
	TouchMove   Type = "touchmove"
	TouchEnd    Type = "touchend"
	TouchCancel Type = "touchcancel"
)

// Point is a cell position.
type Point struct {
	X int
	Y int
}

// Event is a pointer or touch event in terminal cell coordinates.
// Pointer events carry their position in X/Y; touch events carry the active
// touch points in Touches.
type Event struct {
	Type    Type
	X       int
	Y       int
	Touches []Point
}

// IsTouch reports whether e is a touch event.
func (e Event) IsTouch() bool {
	switch e.Type {
	case TouchStart, TouchMove, TouchEnd, TouchCancel:
		return true
	}
	return false
}

// ClientX returns the horizontal position driving a drag: the first active
// touch point for touch events, the pointer position otherwise. The second
// result is false for a touch event without active touches.
func (e Event) ClientX() (int, bool) {
	if e.IsTouch() {
		if len(e.Touches) == 0 {
			return 0, false
		}
		return e.Touches[0].X, true
	}
	return e.X, true
}

// ClientY mirrors ClientX for the vertical axis.
func (e Event) ClientY() (int, bool) {
	if e.IsTouch() {
		if len(e.Touches) == 0 {
			return 0, false
		}
		return e.Touches[0].Y, true
	}
	return e.Y, true
}

// FromMouse converts a Bubble Tea mouse message into a pointer event.
// Wheel events and presses of buttons other than the left one are not
// pointer events for resizing purposes and report false.
func FromMouse(msg tea.MouseMsg) (Event, bool) {
	ev := Event{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Event{}, false
		}
		ev.Type = PointerDown
	case tea.MouseActionMotion:
		ev.Type = PointerMove
	case tea.MouseActionRelease:
		// Many terminals report releases without a button.
		ev.Type = PointerUp
	default:
		return Event{}, false
	}
	return ev, true
}

// ToMouse converts a pointer event back into a mouse message, for forwarding
// to Bubble Tea components. Touch events map onto their first touch point.
func ToMouse(e Event) tea.MouseMsg {
	x, _ := e.ClientX()
	y, _ := e.ClientY()
	msg := tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft}
	switch e.Type {
	case PointerDown, TouchStart:
		msg.Action = tea.MouseActionPress
	case PointerUp, TouchEnd, TouchCancel:
		msg.Action = tea.MouseActionRelease
		msg.Button = tea.MouseButtonNone
	default:
		msg.Action = tea.MouseActionMotion
	}
	return msg
}
