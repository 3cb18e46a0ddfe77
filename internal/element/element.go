// Package element models the small retained tree the panel view lays out:
// the document body, panel containers, panels and overlay surfaces.
package element

// Common style values.
const (
	Auto     = "auto"
	None     = "none"
	EWResize = "ew-resize"
)

// Rect is a cell-based rectangle in terminal coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Style holds the interaction-related style properties of an element.
type Style struct {
	Cursor        string
	PointerEvents string
	UserSelect    string
	TouchAction   string
	ZIndex        int
	// Fixed elements cover the viewport of their nearest fullscreen
	// ancestor rather than their own parent rect.
	Fixed bool
}

// Element is a node in the tree.
type Element struct {
	ID    string
	Rect  Rect
	Style Style

	attrs    map[string]string
	classes  map[string]struct{}
	parent   *Element
	children []*Element
}

// New creates a detached element with the given id.
func New(id string) *Element {
	return &Element{
		ID: id,
		Style: Style{
			Cursor:        Auto,
			PointerEvents: Auto,
			UserSelect:    Auto,
			TouchAction:   Auto,
		},
	}
}

// Append adds child as the last child of e, detaching it from any previous parent.
func (e *Element) Append(child *Element) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// Remove detaches child from e. It is a no-op if child is not a child of e.
func (e *Element) Remove(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the parent element or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the direct children of e.
func (e *Element) Children() []*Element {
	return e.children
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns an attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AddClass adds a class name.
func (e *Element) AddClass(name string) {
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	e.classes[name] = struct{}{}
}

// RemoveClass removes a class name.
func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

// HasClass reports whether the class name is present.
func (e *Element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

// QueryAttr returns the first descendant (depth first) whose attribute name
// equals value, or nil.
func (e *Element) QueryAttr(name, value string) *Element {
	for _, c := range e.children {
		if v, ok := c.Attr(name); ok && v == value {
			return c
		}
		if found := c.QueryAttr(name, value); found != nil {
			return found
		}
	}
	return nil
}

// FindByID returns the first descendant with the given id, or nil.
func (e *Element) FindByID(id string) *Element {
	for _, c := range e.children {
		if c.ID == id {
			return c
		}
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}
