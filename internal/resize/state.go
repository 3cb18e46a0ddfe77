package resize

// Options configure a resize engine.
type Options struct {
	MinWidth int
	// InitialWidth defaults to MinWidth when zero.
	InitialWidth int
	// MaxWidth fixes the maximum width when positive.
	MaxWidth            int
	HandleWidth         int
	DefaultToMaxWidth   bool
	ContainerOwnsHandle bool
}

func (o Options) initialWidth() int {
	if o.InitialWidth != 0 {
		return o.InitialWidth
	}
	return o.MinWidth
}

// DragSession is the state of an active drag.
type DragSession struct {
	// Anchor is the pointer position relative to the container's left edge
	// when the drag started.
	Anchor     int
	StartWidth int
}

// State is everything the engine owns for one panel.
type State struct {
	Width int

	Remembered    int
	HasRemembered bool

	Dragging bool
	Drag     DragSession

	// DefaultPending is the one-shot default-to-max flag.
	DefaultPending bool
}

// Initial returns the state of a freshly mounted panel.
func Initial(o Options) State {
	return State{
		Width:          o.initialWidth(),
		DefaultPending: o.DefaultToMaxWidth,
	}
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// DragStart begins a drag. X is relative to the container's left edge.
type DragStart struct {
	X int
}

// DragMove continues a drag. X is relative to the container's current left
// edge and Bounds reflects the container as of this event.
type DragMove struct {
	X      int
	Bounds BoundsInput
}

// DragEnd finishes a drag.
type DragEnd struct{}

// BoundsChanged reports a container resize or a fullscreen change.
type BoundsChanged struct {
	Bounds BoundsInput
}

// SetWidth is a width change that does not come from a drag, such as a
// keyboard resize. It counts as a manual resize.
type SetWidth struct {
	Width  int
	Bounds BoundsInput
}

func (DragStart) event()     {}
func (DragMove) event()      {}
func (DragEnd) event()       {}
func (BoundsChanged) event() {}
func (SetWidth) event()      {}

// Reduce returns the state following ev.
func Reduce(o Options, s State, ev Event) State {
	switch ev := ev.(type) {
	case DragStart:
		if s.Dragging {
			return s
		}
		s.Dragging = true
		s.Drag = DragSession{Anchor: ev.X, StartWidth: s.Width}
		s.Remembered = 0
		s.HasRemembered = false

	case DragMove:
		if !s.Dragging {
			return s
		}
		candidate := s.Drag.StartWidth + (ev.X - s.Drag.Anchor)
		s.Width = Clamp(candidate, Bounds{Min: o.MinWidth, Max: MaxWidth(ev.Bounds)})

	case DragEnd:
		s.Dragging = false
		s.Drag = DragSession{}

	case SetWidth:
		if s.Dragging {
			return s
		}
		s.Width = Clamp(ev.Width, Bounds{Min: o.MinWidth, Max: MaxWidth(ev.Bounds)})
		s.Remembered = 0
		s.HasRemembered = false

	case BoundsChanged:
		if s.DefaultPending {
			s.DefaultPending = false
			// Entering fullscreen must not snap the panel to its maximum.
			if !ev.Bounds.Fullscreen {
				s.Width = MaxWidth(ev.Bounds)
			}
		}
		s = Reconcile(ev.Bounds, s)
	}
	return s
}

// Reconcile adjusts the width after the maximum changed, so toggling
// fullscreen back and forth without resizing in between returns the panel to
// the width it had instead of shrinking it for good.
func Reconcile(in BoundsInput, s State) State {
	max := MaxWidth(in)
	switch {
	case s.Width > max:
		s.Remembered = s.Width
		s.HasRemembered = true
		// While fullscreen the width set on entry stands for this pass.
		if !in.Fullscreen {
			s.Width = max
		}
	case s.HasRemembered && s.Remembered <= max && s.Remembered > s.Width:
		s.Width = s.Remembered
	}
	return s
}
