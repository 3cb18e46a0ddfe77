package history

import "time"

// Entry is a file that was opened in the panel.
type Entry struct {
	ID         int64
	Path       string
	Kind       string
	Size       int64
	Opens      int
	LastOpened time.Time
}
