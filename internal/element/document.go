package element

// Document is the root of an element tree.
type Document struct {
	Body *Element

	fullscreen *Element
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	return &Document{Body: New("body")}
}

// GetElementByID looks up an element anywhere under the body.
func (d *Document) GetElementByID(id string) *Element {
	if d.Body.ID == id {
		return d.Body
	}
	return d.Body.FindByID(id)
}

// FullscreenElement returns the element currently shown fullscreen, or nil.
func (d *Document) FullscreenElement() *Element {
	return d.fullscreen
}

// SetFullscreenElement records el as the fullscreen element; nil clears it.
func (d *Document) SetFullscreenElement(el *Element) {
	d.fullscreen = el
}

// Viewport returns the rect a fixed-position child of el covers: the
// fullscreen element's rect when el is inside it, otherwise the body's.
func (d *Document) Viewport(el *Element) Rect {
	if d.fullscreen != nil && d.fullscreen.Contains(el) {
		return d.fullscreen.Rect
	}
	return d.Body.Rect
}
