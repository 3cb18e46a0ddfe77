// Package resize implements the width engine of a drag-resizable panel:
// bounds computation, the drag state machine, and width reconciliation when
// the panel enters or leaves fullscreen.
//
// The logic lives in the pure functions MaxWidth, Clamp, Reduce and
// Reconcile. Engine is the imperative shell that feeds them events, drives
// the overlay surfaces and element styles, and owns the global listeners of
// an active drag.
package resize

import (
	"io"
	"log"

	"github.com/sadopc/gopanel/internal/element"
	"github.com/sadopc/gopanel/internal/input"
	"github.com/sadopc/gopanel/internal/observe"
	"github.com/sadopc/gopanel/internal/overlay"
	"github.com/sadopc/gopanel/internal/ui/layout"
)

// ResizingClass is added to the container while a drag is active.
const ResizingClass = "resizing"

// FullscreenStatus reports whether the panel's container is fullscreen.
type FullscreenStatus interface {
	Active() bool
	Status() *observe.Value[bool]
}

// Config wires an Engine to its collaborators.
type Config struct {
	// ID namespaces the container overlay surface of this panel.
	ID        string
	Options   Options
	Container *element.Ref
	Panel     *element.Ref
	Registry  *overlay.Registry
	Bus       *input.Bus
	// ContainerSize triggers a bounds recomputation when it changes.
	ContainerSize *observe.Value[layout.Size]
	Fullscreen    FullscreenStatus
	Logger        *log.Logger
}

type listener struct {
	typ input.Type
	id  input.ListenerID
}

// Engine owns the width state of one panel.
type Engine struct {
	cfg    Config
	state  State
	logger *log.Logger

	listeners   []listener
	unsubscribe []func()
}

// New creates an engine and subscribes it to container size and fullscreen
// changes. Call Mount once the container is attached.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Bus == nil {
		cfg.Bus = input.NewBus()
	}
	if cfg.Container == nil {
		cfg.Container = &element.Ref{}
	}
	if cfg.Panel == nil {
		cfg.Panel = &element.Ref{}
	}
	e := &Engine{
		cfg:    cfg,
		state:  Initial(cfg.Options),
		logger: logger,
	}
	if cfg.ContainerSize != nil {
		e.unsubscribe = append(e.unsubscribe, cfg.ContainerSize.Subscribe(func(_, _ layout.Size) {
			e.Recompute()
		}))
	}
	if cfg.Fullscreen != nil {
		e.unsubscribe = append(e.unsubscribe, cfg.Fullscreen.Status().Subscribe(func(_, _ bool) {
			e.Recompute()
		}))
	}
	return e
}

// Mount creates the overlay surfaces, prevents touch scrolling on the panel
// and runs the first bounds evaluation. It is safe to call more than once.
func (e *Engine) Mount() {
	if e.cfg.Registry != nil {
		e.cfg.Registry.MountPage()
		e.cfg.Registry.MountContainer(e.cfg.Container.Current(), e.cfg.ID)
	}
	if p := e.cfg.Panel.Current(); p != nil {
		p.Style.TouchAction = element.None
	}
	e.Recompute()
}

// Close ends any drag and detaches the engine from its observed values.
func (e *Engine) Close() {
	e.OnResizeEnd(input.Event{})
	for _, u := range e.unsubscribe {
		u()
	}
	e.unsubscribe = nil
}

// ID returns the panel instance id.
func (e *Engine) ID() string { return e.cfg.ID }

// Width returns the committed panel width.
func (e *Engine) Width() int { return e.state.Width }

// IsDragging reports whether a drag is in progress.
func (e *Engine) IsDragging() bool { return e.state.Dragging }

// State returns a copy of the engine state.
func (e *Engine) State() State { return e.state }

// SetOptions replaces the options and re-evaluates the bounds. The width is
// kept; reconciliation brings it back inside the new bounds.
func (e *Engine) SetOptions(o Options) {
	e.cfg.Options = o
	e.Recompute()
	if e.cfg.Container.Current() != nil && !e.state.Dragging {
		e.state.Width = Clamp(e.state.Width, e.Bounds())
	}
}

// BoundsInput returns the current inputs of the bounds function.
func (e *Engine) BoundsInput() BoundsInput {
	in := BoundsInput{
		HandleWidth:         e.cfg.Options.HandleWidth,
		FixedMax:            e.cfg.Options.MaxWidth,
		ContainerOwnsHandle: e.cfg.Options.ContainerOwnsHandle,
	}
	if c := e.cfg.Container.Current(); c != nil {
		in.ContainerWidth = c.Rect.Width
	}
	if e.cfg.Fullscreen != nil {
		in.Fullscreen = e.cfg.Fullscreen.Active()
	}
	return in
}

// Bounds returns the current width bounds.
func (e *Engine) Bounds() Bounds {
	return Bounds{Min: e.cfg.Options.MinWidth, Max: MaxWidth(e.BoundsInput())}
}

// Recompute re-evaluates the bounds and reconciles the width. It does
// nothing until the container is attached.
func (e *Engine) Recompute() {
	if e.cfg.Container.Current() == nil {
		return
	}
	before := e.state
	e.state = Reduce(e.cfg.Options, e.state, BoundsChanged{Bounds: e.BoundsInput()})
	if before.Width != e.state.Width {
		e.logger.Printf("resize: %s: width %d -> %d (max %d, fullscreen %v)",
			e.cfg.ID, before.Width, e.state.Width, e.Bounds().Max, e.BoundsInput().Fullscreen)
	}
}

// Resize sets the width outside of a drag, clamped to the current bounds.
// It reports whether the width changed.
func (e *Engine) Resize(width int) bool {
	if e.cfg.Container.Current() == nil || e.state.Dragging {
		return false
	}
	before := e.state.Width
	e.state = Reduce(e.cfg.Options, e.state, SetWidth{Width: width, Bounds: e.BoundsInput()})
	return before != e.state.Width
}

// ResetWidth returns the panel to its initial width.
func (e *Engine) ResetWidth() bool {
	return e.Resize(e.cfg.Options.initialWidth())
}

func (e *Engine) covers() []overlay.Target {
	return []overlay.Target{
		{Page: true},
		{PanelID: e.cfg.ID, Container: e.cfg.Container},
	}
}

// OnResizeStart begins a drag at ev. It is wired to the handle.
func (e *Engine) OnResizeStart(ev input.Event) {
	container := e.cfg.Container.Current()
	if container == nil || e.state.Dragging {
		return
	}
	x, ok := ev.ClientX()
	if !ok {
		return
	}

	if e.cfg.Registry != nil {
		for _, t := range e.covers() {
			_ = e.cfg.Registry.Capture(t)
		}
	}
	if p := e.cfg.Panel.Current(); p != nil {
		// Pointer events stay on: the handle lives inside the panel.
		p.Style.UserSelect = element.None
		p.Style.TouchAction = element.None
	}
	container.AddClass(ResizingClass)
	container.Style.Cursor = element.EWResize

	e.state = Reduce(e.cfg.Options, e.state, DragStart{X: x - container.Rect.X})

	e.listen(input.PointerMove, e.onResizeMove)
	e.listen(input.TouchMove, e.onResizeMove)
	e.listen(input.PointerUp, e.OnResizeEnd)
	e.listen(input.TouchEnd, e.OnResizeEnd)
	e.listen(input.TouchCancel, e.OnResizeEnd)

	e.logger.Printf("resize: %s: drag start anchor=%d width=%d", e.cfg.ID, e.state.Drag.Anchor, e.state.Width)
}

func (e *Engine) listen(t input.Type, fn input.Listener) {
	id := e.cfg.Bus.Add(t, fn)
	e.listeners = append(e.listeners, listener{typ: t, id: id})
}

func (e *Engine) onResizeMove(ev input.Event) {
	if !e.state.Dragging {
		return
	}
	container := e.cfg.Container.Current()
	if container == nil {
		return
	}
	x, ok := ev.ClientX()
	if !ok {
		return
	}
	e.state = Reduce(e.cfg.Options, e.state, DragMove{
		X:      x - container.Rect.X,
		Bounds: e.BoundsInput(),
	})
}

// OnResizeEnd finishes a drag. It is wired to the global release events and
// is idempotent. An idle engine leaves the overlays alone, since the page
// surface may be held by another panel's drag.
func (e *Engine) OnResizeEnd(input.Event) {
	if !e.state.Dragging {
		return
	}

	if e.cfg.Registry != nil {
		for _, t := range e.covers() {
			_ = e.cfg.Registry.Release(t)
		}
	}
	if p := e.cfg.Panel.Current(); p != nil {
		p.Style.PointerEvents = element.Auto
		p.Style.UserSelect = element.Auto
	}
	if c := e.cfg.Container.Current(); c != nil {
		c.RemoveClass(ResizingClass)
		c.Style.Cursor = element.Auto
	}
	for _, l := range e.listeners {
		e.cfg.Bus.Remove(l.typ, l.id)
	}
	e.listeners = nil

	e.state = Reduce(e.cfg.Options, e.state, DragEnd{})
	e.logger.Printf("resize: %s: drag end width=%d", e.cfg.ID, e.state.Width)
}
