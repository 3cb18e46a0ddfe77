// Package observe provides a minimal observable value for reactive UI state.
package observe

// Value holds a comparable value and notifies subscribers when it changes.
// It is not safe for concurrent use; all access happens on the UI loop.
type Value[T comparable] struct {
	v      T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T comparable] struct {
	id int
	fn func(old, new T)
}

// NewValue returns a Value initialised to v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	return o.v
}

// Set stores v and reports whether it differed from the previous value.
// Subscribers run synchronously, in subscription order, only on change.
func (o *Value[T]) Set(v T) bool {
	if o.v == v {
		return false
	}
	old := o.v
	o.v = v
	// Copy so a subscriber may unsubscribe itself.
	subs := append([]subscriber[T](nil), o.subs...)
	for _, s := range subs {
		s.fn(old, v)
	}
	return true
}

// Subscribe registers fn and returns a function that removes it.
func (o *Value[T]) Subscribe(fn func(old, new T)) (unsubscribe func()) {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered subscribers.
func (o *Value[T]) Subscribers() int {
	return len(o.subs)
}
