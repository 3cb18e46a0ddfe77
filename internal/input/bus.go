package input

// Listener handles an event delivered through the bus.
type Listener func(Event)

// ListenerID identifies a registration so it can be removed.
type ListenerID int

type registration struct {
	id ListenerID
	fn Listener
}

// Bus holds global listeners keyed by event type. It plays the role of the
// window-level event target: anything registered here sees every event of
// its type, wherever it lands on screen. The bus is not safe for concurrent
// use.
type Bus struct {
	nextID    ListenerID
	listeners map[Type][]registration
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[Type][]registration)}
}

// Add registers fn for events of type t.
func (b *Bus) Add(t Type, fn Listener) ListenerID {
	b.nextID++
	b.listeners[t] = append(b.listeners[t], registration{id: b.nextID, fn: fn})
	return b.nextID
}

// Remove deregisters the listener. Unknown ids are ignored.
func (b *Bus) Remove(t Type, id ListenerID) {
	regs := b.listeners[t]
	for i, r := range regs {
		if r.id == id {
			b.listeners[t] = append(regs[:i], regs[i+1:]...)
			break
		}
	}
	if len(b.listeners[t]) == 0 {
		delete(b.listeners, t)
	}
}

// Dispatch delivers ev to every listener of its type and reports whether any
// listener ran. Listeners may add or remove registrations while running.
func (b *Bus) Dispatch(ev Event) bool {
	regs := append([]registration(nil), b.listeners[ev.Type]...)
	for _, r := range regs {
		r.fn(ev)
	}
	return len(regs) > 0
}

// Len returns the number of registered listeners across all types.
func (b *Bus) Len() int {
	n := 0
	for _, regs := range b.listeners {
		n += len(regs)
	}
	return n
}

// Has reports whether any listener is registered for t.
func (b *Bus) Has(t Type) bool {
	return len(b.listeners[t]) > 0
}
