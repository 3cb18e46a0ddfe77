package element

// Ref points at an element that may not be attached yet.
type Ref struct {
	el *Element
}

// Current returns the referenced element, or nil before Attach.
func (r *Ref) Current() *Element {
	if r == nil {
		return nil
	}
	return r.el
}

// Attach binds the ref to el.
func (r *Ref) Attach(el *Element) {
	r.el = el
}

// Detach clears the ref.
func (r *Ref) Detach() {
	r.el = nil
}
