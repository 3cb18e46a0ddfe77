// Package fullscreen exposes the host's fullscreen capability to panels.
package fullscreen

import (
	"errors"

	"github.com/sadopc/gopanel/internal/element"
	"github.com/sadopc/gopanel/internal/observe"
)

// ErrNoElement is returned when fullscreen is requested for a nil element.
var ErrNoElement = errors.New("fullscreen: no element")

// Host is the platform fullscreen capability.
type Host interface {
	// FullscreenElement returns the element shown fullscreen, or nil.
	FullscreenElement() *element.Element
	RequestFullscreen(el *element.Element) error
	ExitFullscreen() error
}

// Screen is the terminal Host: the fullscreen element takes over the whole
// terminal and everything else is hidden.
type Screen struct {
	doc *element.Document
}

// NewScreen returns a Host backed by doc.
func NewScreen(doc *element.Document) *Screen {
	return &Screen{doc: doc}
}

// FullscreenElement implements Host.
func (s *Screen) FullscreenElement() *element.Element {
	return s.doc.FullscreenElement()
}

// RequestFullscreen implements Host.
func (s *Screen) RequestFullscreen(el *element.Element) error {
	if el == nil {
		return ErrNoElement
	}
	s.doc.SetFullscreenElement(el)
	return nil
}

// ExitFullscreen implements Host. Exiting when nothing is fullscreen is a no-op.
func (s *Screen) ExitFullscreen() error {
	s.doc.SetFullscreenElement(nil)
	return nil
}

// Coordinator tracks whether fullscreen is active and toggles it for one
// element.
type Coordinator struct {
	host   Host
	ref    *element.Ref
	status *observe.Value[bool]
}

// NewCoordinator returns a coordinator toggling fullscreen on ref.
func NewCoordinator(host Host, ref *element.Ref) *Coordinator {
	return &Coordinator{
		host:   host,
		ref:    ref,
		status: observe.NewValue(host.FullscreenElement() != nil),
	}
}

// Active queries the host directly, so it is never stale.
func (c *Coordinator) Active() bool {
	return c.host.FullscreenElement() != nil
}

// Status is the observable fullscreen status. It changes on Sync.
func (c *Coordinator) Status() *observe.Value[bool] {
	return c.status
}

// Sync publishes the host's current status and reports whether it changed.
func (c *Coordinator) Sync() bool {
	return c.status.Set(c.Active())
}

// Toggle exits fullscreen when active, and otherwise requests it for the
// tracked element. A missing element makes it a no-op.
func (c *Coordinator) Toggle() error {
	if c.Active() {
		return c.host.ExitFullscreen()
	}
	el := c.ref.Current()
	if el == nil {
		return nil
	}
	return c.host.RequestFullscreen(el)
}
