// Package panel renders a drag-resizable panel inside its container and
// routes mouse and touch input between the drag handle, the resize engine
// and the embedded content.
package panel

import (
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sadopc/gopanel/internal/element"
	"github.com/sadopc/gopanel/internal/fullscreen"
	"github.com/sadopc/gopanel/internal/input"
	"github.com/sadopc/gopanel/internal/overlay"
	"github.com/sadopc/gopanel/internal/resize"
	"github.com/sadopc/gopanel/internal/ui/content"
	"github.com/sadopc/gopanel/internal/ui/layout"
	"github.com/sadopc/gopanel/internal/ui/theme"
)

// Config configures a panel.
type Config struct {
	// ID namespaces the panel's overlay surface and zones. Empty generates one.
	ID     string
	Title  string
	Resize resize.Options

	ShowTitleBar         bool
	HideOptions          bool
	ShowFullscreenOption bool

	// Background colors the container; FullscreenBackground replaces it
	// while fullscreen. Empty values use the theme.
	Background           string
	FullscreenBackground string

	// Document, Registry and Bus are shared by every panel on screen.
	// Nil values get private instances.
	Document *element.Document
	Registry *overlay.Registry
	Bus      *input.Bus
	Observer *layout.Observer
	Host     fullscreen.Host
	Zones    *zone.Manager
	Logger   *log.Logger
}

// Model is one resizable panel.
type Model struct {
	id  string
	cfg Config

	doc       *element.Document
	registry  *overlay.Registry
	bus       *input.Bus
	observer  *layout.Observer
	zones     *zone.Manager
	logger    *log.Logger
	container *element.Ref
	panel     *element.Ref

	containerEl *element.Element
	panelEl     *element.Element

	engine      *resize.Engine
	coordinator *fullscreen.Coordinator
	mounted     bool

	content content.Model
	theme   theme.Theme
	styles  theme.Styles
}

// New creates a panel. It is inert until the first SetLayout.
func New(cfg Config, t theme.Theme, s theme.Styles) Model {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	doc := cfg.Document
	if doc == nil {
		doc = element.NewDocument()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = overlay.NewRegistry(doc, logger)
	}
	bus := cfg.Bus
	if bus == nil {
		bus = input.NewBus()
	}
	observer := cfg.Observer
	if observer == nil {
		observer = layout.NewObserver()
	}
	host := cfg.Host
	if host == nil {
		host = fullscreen.NewScreen(doc)
	}

	m := Model{
		id:        cfg.ID,
		cfg:       cfg,
		doc:       doc,
		registry:  registry,
		bus:       bus,
		observer:  observer,
		zones:     cfg.Zones,
		logger:    logger,
		container: &element.Ref{},
		panel:     &element.Ref{},

		containerEl: element.New("panel-container-" + cfg.ID),
		panelEl:     element.New("panel-" + cfg.ID),

		content: content.New(t, s),
		theme:   t,
		styles:  s,
	}
	m.containerEl.Append(m.panelEl)
	doc.Body.Append(m.containerEl)

	m.coordinator = fullscreen.NewCoordinator(host, m.container)
	m.engine = resize.New(resize.Config{
		ID:            cfg.ID,
		Options:       cfg.Resize,
		Container:     m.container,
		Panel:         m.panel,
		Registry:      registry,
		Bus:           bus,
		ContainerSize: observer.Observe(m.container),
		Fullscreen:    m.coordinator,
		Logger:        logger,
	})
	return m
}

// SetLayout places the container, mounting the panel on the first call,
// and lets the observers publish the new geometry.
func (m *Model) SetLayout(l layout.PanelLayout) {
	l.Apply(m.doc, m.containerEl)
	if !m.mounted {
		m.container.Attach(m.containerEl)
		m.panel.Attach(m.panelEl)
		m.engine.Mount()
		m.mounted = true
	}
	m.observer.Refresh()
	m.coordinator.Sync()
	m.syncGeometry()
}

// ToggleFullscreen enters or leaves fullscreen. The caller re-lays out the
// screen afterwards and passes the result to SetLayout.
func (m *Model) ToggleFullscreen() error {
	return m.coordinator.Toggle()
}

// Close ends any drag and detaches the panel from shared state.
func (m *Model) Close() {
	m.engine.Close()
	m.doc.Body.Remove(m.containerEl)
	m.container.Detach()
	m.panel.Detach()
}

// ID returns the panel instance id.
func (m Model) ID() string { return m.id }

// Width returns the panel width.
func (m Model) Width() int { return m.engine.Width() }

// Bounds returns the panel's current width bounds.
func (m Model) Bounds() resize.Bounds { return m.engine.Bounds() }

// IsDragging reports whether a resize drag is active.
func (m Model) IsDragging() bool { return m.engine.IsDragging() }

// Fullscreen reports whether the panel's container is fullscreen.
func (m Model) Fullscreen() bool { return m.coordinator.Active() }

// Mounted reports whether the panel received a layout.
func (m Model) Mounted() bool { return m.mounted }

// Engine returns the panel's resize engine.
func (m Model) Engine() *resize.Engine { return m.engine }

// Registry returns the overlay registry the panel uses.
func (m Model) Registry() *overlay.Registry { return m.registry }

// Bus returns the listener bus the panel uses.
func (m Model) Bus() *input.Bus { return m.bus }

// Container returns the container element.
func (m Model) Container() *element.Element { return m.containerEl }

// Content returns the embedded content viewer.
func (m Model) Content() content.Model { return m.content }

// SetContent loads a file into the embedded viewer.
func (m *Model) SetContent(path string, data []byte) {
	m.content.SetContent(path, data)
}

// SetContentError shows a load failure in the embedded viewer.
func (m *Model) SetContentError(path string, err error) {
	m.content.SetError(path, err)
}

// SetWrap toggles soft wrapping in the embedded viewer.
func (m *Model) SetWrap(wrap bool) {
	m.content.SetWrap(wrap)
}

// ToggleWrap flips soft wrapping in the embedded viewer.
func (m *Model) ToggleWrap() {
	m.content.ToggleWrap()
}

// OpenSearch opens the content search bar.
func (m *Model) OpenSearch() {
	m.content.OpenSearch()
}

// SetTheme restyles the panel and its content.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
	m.content.SetTheme(t, s)
}

// SetOptions replaces the resize options, e.g. after a config reload.
func (m *Model) SetOptions(o resize.Options) {
	m.cfg.Resize = o
	m.engine.SetOptions(o)
	m.syncGeometry()
}

// SetChrome updates the title bar settings and colors.
func (m *Model) SetChrome(title string, showTitleBar, hideOptions, showFullscreen bool, bg, fsBg string) {
	m.cfg.Title = title
	m.cfg.ShowTitleBar = showTitleBar
	m.cfg.HideOptions = hideOptions
	m.cfg.ShowFullscreenOption = showFullscreen
	m.cfg.Background = bg
	m.cfg.FullscreenBackground = fsBg
	m.syncGeometry()
}

// Resize sets the panel width from the keyboard.
func (m *Model) Resize(width int) bool {
	changed := m.engine.Resize(width)
	m.syncGeometry()
	return changed
}

// Nudge grows or shrinks the panel by delta cells.
func (m *Model) Nudge(delta int) bool {
	return m.Resize(m.engine.Width() + delta)
}

// ResetWidth returns the panel to its initial width.
func (m *Model) ResetWidth() bool {
	changed := m.engine.ResetWidth()
	m.syncGeometry()
	return changed
}

func (m Model) background() lipgloss.TerminalColor {
	if m.Fullscreen() {
		if m.cfg.FullscreenBackground != "" {
			return lipgloss.Color(m.cfg.FullscreenBackground)
		}
		return m.theme.Base
	}
	if m.cfg.Background != "" {
		return lipgloss.Color(m.cfg.Background)
	}
	return lipgloss.NoColor{}
}
