package layout

import "github.com/sadopc/gopanel/internal/element"

// PanelLayout holds calculated dimensions for the panel screen.
type PanelLayout struct {
	Width  int
	Height int

	// Container is the rect of the panel container. In fullscreen mode it
	// covers the whole terminal.
	Container element.Rect

	TitleBarVisible  bool
	StatusBarVisible bool
	Fullscreen       bool
	Compact          bool
}

// Options drive Calculate.
type Options struct {
	// ContainerWidth fixes the container width in normal mode; zero fills
	// the available width.
	ContainerWidth int
	// ContainerHeight fixes the container height in normal mode; zero fills
	// the available height.
	ContainerHeight int
	ShowTitleBar    bool
	Fullscreen      bool
}

const (
	titleBarHeight  = 1
	statusBarHeight = 1
	sideMargin      = 2
	compactWidth    = 60
)

// Calculate computes the layout from terminal dimensions.
func Calculate(width, height int, opts Options) PanelLayout {
	l := PanelLayout{
		Width:      width,
		Height:     height,
		Fullscreen: opts.Fullscreen,
	}

	// Fullscreen: the container is the only thing on screen.
	if opts.Fullscreen {
		l.Container = element.Rect{Width: max(width, 0), Height: max(height, 1)}
		return l
	}

	l.TitleBarVisible = opts.ShowTitleBar
	l.StatusBarVisible = true

	top := 0
	if l.TitleBarVisible {
		top = titleBarHeight
	}
	avail := height - top - statusBarHeight
	if avail < 1 {
		avail = 1
	}
	if opts.ContainerHeight > 0 && opts.ContainerHeight < avail {
		avail = opts.ContainerHeight
	}

	margin := sideMargin
	if width < compactWidth {
		l.Compact = true
		margin = 0
	}
	cw := width - 2*margin
	if opts.ContainerWidth > 0 && opts.ContainerWidth < cw {
		cw = opts.ContainerWidth
	}
	l.Container = element.Rect{
		X:      margin,
		Y:      top,
		Width:  clamp(cw, 0, width),
		Height: avail,
	}
	return l
}

// Apply writes the layout into the document body and container element.
func (l PanelLayout) Apply(doc *element.Document, container *element.Element) {
	doc.Body.Rect = element.Rect{Width: l.Width, Height: l.Height}
	if container != nil {
		container.Rect = l.Container
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
