package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Panel borders
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Text styles
	Title   lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Key     lipgloss.Style
	Hint    lipgloss.Style

	// Components
	TitleBar     lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	StatusBar    lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Normal:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Bold:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Red),
		Success: lipgloss.NewStyle().Foreground(t.Green),
		Warning: lipgloss.NewStyle().Foreground(t.Yellow),
		Key:     lipgloss.NewStyle().Foreground(t.Accent),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),

		TitleBar: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Background(t.Surface).
			Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Accent).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		Handle: lipgloss.NewStyle().
			Foreground(t.Handle),
		HandleActive: lipgloss.NewStyle().
			Foreground(t.HandleActive).
			Bold(true),
	}
}

// HandleStyle returns the style for the drag handle.
func (s Styles) HandleStyle(dragging bool) lipgloss.Style {
	if dragging {
		return s.HandleActive
	}
	return s.Handle
}
