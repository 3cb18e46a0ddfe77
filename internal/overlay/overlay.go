// Package overlay manages the transparent cover surfaces that swallow
// pointer input while a panel is being resized, so a drag passing over the
// embedded content never reaches that content's own handlers.
//
// There is one page-level surface for the whole document, keyed by a stable
// id and appended to the body, and one container-level surface per panel
// instance, appended to the panel's container and namespaced by the panel id.
// The container surface is what still covers the panel when its container is
// shown fullscreen. Surfaces are created lazily, never destroyed, and only
// toggled between captured and released.
package overlay

import (
	"errors"
	"io"
	"log"

	"github.com/sadopc/gopanel/internal/element"
)

const (
	// PageCoverID is the id of the page-level surface.
	PageCoverID = "resizeable-panel-body-cover"
	// ContainerAttr is the attribute naming a container surface's panel.
	ContainerAttr = "data-cover-div"

	coverZIndex = 99999
)

var (
	// ErrSurfaceNotFound means a capture or release targeted a surface that
	// was never mounted.
	ErrSurfaceNotFound = errors.New("overlay: surface not found")
	// ErrNoContainer means a container surface was addressed without a
	// container reference.
	ErrNoContainer = errors.New("overlay: container reference required for a container surface")
)

// Target addresses a surface.
type Target struct {
	// Page selects the page-level surface; PanelID and Container are ignored.
	Page bool
	// PanelID namespaces the container surface.
	PanelID string
	// Container is the panel's container reference.
	Container *element.Ref
}

// Registry owns every cover surface of a document. A single registry is
// shared by all panels on the page and injected into each resize engine.
type Registry struct {
	doc    *element.Document
	logger *log.Logger
}

// NewRegistry creates a registry for doc. A nil logger discards diagnostics.
func NewRegistry(doc *element.Document, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Registry{doc: doc, logger: logger}
}

// Document returns the document the registry manages.
func (r *Registry) Document() *element.Document {
	return r.doc
}

func newCover() *element.Element {
	c := element.New("")
	c.Style = element.Style{
		Cursor:        element.Auto,
		PointerEvents: element.None,
		UserSelect:    element.None,
		TouchAction:   element.None,
		ZIndex:        coverZIndex,
		Fixed:         true,
	}
	return c
}

// MountPage returns the page-level surface, creating it on first use.
func (r *Registry) MountPage() *element.Element {
	if s := r.doc.GetElementByID(PageCoverID); s != nil {
		return s
	}
	s := newCover()
	s.ID = PageCoverID
	r.doc.Body.Append(s)
	return s
}

// MountContainer returns the container-level surface of panelID inside
// container, creating it on first use. A nil container yields nil.
func (r *Registry) MountContainer(container *element.Element, panelID string) *element.Element {
	if container == nil {
		return nil
	}
	for _, c := range container.Children() {
		if v, ok := c.Attr(ContainerAttr); ok && v == panelID {
			return c
		}
	}
	s := newCover()
	s.SetAttr(ContainerAttr, panelID)
	container.Append(s)
	return s
}

func (r *Registry) lookup(op string, t Target) (*element.Element, error) {
	if t.Page {
		s := r.doc.GetElementByID(PageCoverID)
		if s == nil {
			r.logger.Printf("overlay: %s: page surface %q not mounted", op, PageCoverID)
			return nil, ErrSurfaceNotFound
		}
		return s, nil
	}
	if t.Container == nil {
		r.logger.Printf("overlay: %s: container reference must be provided for panel %q", op, t.PanelID)
		return nil, ErrNoContainer
	}
	container := t.Container.Current()
	if container == nil {
		// Not mounted yet.
		return nil, nil
	}
	s := container.QueryAttr(ContainerAttr, t.PanelID)
	if s == nil {
		r.logger.Printf("overlay: %s: container surface for panel %q not mounted", op, t.PanelID)
		return nil, ErrSurfaceNotFound
	}
	return s, nil
}

// Capture makes the target surface intercept all pointer and touch input
// and show the resize cursor.
func (r *Registry) Capture(t Target) error {
	s, err := r.lookup("capture", t)
	if s == nil {
		return err
	}
	s.Style.Cursor = element.EWResize
	s.Style.PointerEvents = element.Auto
	s.Style.UserSelect = element.Auto
	s.Style.TouchAction = element.Auto
	return nil
}

// Release makes the target surface transparent to input again.
func (r *Registry) Release(t Target) error {
	s, err := r.lookup("release", t)
	if s == nil {
		return err
	}
	s.Style.Cursor = element.Auto
	s.Style.PointerEvents = element.None
	s.Style.UserSelect = element.None
	s.Style.TouchAction = element.None
	return nil
}

// Captured reports whether s currently intercepts input.
func Captured(s *element.Element) bool {
	return s != nil && s.Style.PointerEvents != element.None
}

// Surfaces returns every mounted surface: the page surface first, then the
// container surfaces in tree order.
func (r *Registry) Surfaces() []*element.Element {
	var out []*element.Element
	if s := r.doc.GetElementByID(PageCoverID); s != nil {
		out = append(out, s)
	}
	var walk func(e *element.Element)
	walk = func(e *element.Element) {
		for _, c := range e.Children() {
			if _, ok := c.Attr(ContainerAttr); ok {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(r.doc.Body)
	return out
}

// Intercepts reports whether a captured surface covers the cell (x, y).
// The returned cursor is the cursor shown by the topmost such surface.
// While an element is fullscreen only surfaces inside it are visible.
func (r *Registry) Intercepts(x, y int) (bool, string) {
	fs := r.doc.FullscreenElement()
	for _, s := range r.Surfaces() {
		if !Captured(s) {
			continue
		}
		if fs != nil && !fs.Contains(s) {
			continue
		}
		if r.doc.Viewport(s).Contains(x, y) {
			return true, s.Style.Cursor
		}
	}
	return false, element.Auto
}
