// Package watcher reloads files on change. It watches the parent directory
// of every file, so editors that save by writing a new file and renaming it
// over the old one are seen too, and coalesces bursts of events into one
// notification per window.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/sadopc/gopanel/internal/ui/msgs"
)

// ErrClosed is returned when operations are called on a closed Watcher.
var ErrClosed = errors.New("watcher: watcher is closed")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounceDuration sets the window used to coalesce events.
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debouncer = NewDebouncer(d)
		}
	}
}

// Watcher watches individual files for changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	changes   chan []string
	errs      chan error
	done      chan struct{}

	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]int
	pending map[string]bool
	closed  bool
}

// New starts a watcher with nothing watched.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	w := &Watcher{
		fsWatcher: fsw,
		debouncer: NewDebouncer(DefaultDebounceDuration),
		changes:   make(chan []string, 8),
		errs:      make(chan error, 8),
		done:      make(chan struct{}),
		files:     make(map[string]bool),
		dirs:      make(map[string]int),
		pending:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w, nil
}

// Add starts watching the file at path.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if w.files[abs] {
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Remove stops watching the file at path.
func (w *Watcher) Remove(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if !w.files[abs] {
		return nil
	}
	delete(w.files, abs)

	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		if err := w.fsWatcher.Remove(dir); err != nil {
			return fmt.Errorf("unwatching %s: %w", dir, err)
		}
	}
	return nil
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Changes delivers the files changed within one debounce window.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Errors delivers watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Wait returns a command that blocks until the next change or error and
// reports it as a message. Re-issue it after every message it produces.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case paths := <-w.changes:
			return msgs.FileChangedMsg{Paths: paths}
		case err := <-w.errs:
			return msgs.WatchErrorMsg{Err: err}
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	w.debouncer.Cancel()
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			case <-w.done:
				return
			default:
				// Nobody is listening; drop it.
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	path := filepath.Clean(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || !w.files[path] {
		return
	}
	w.pending[path] = true
	w.debouncer.Trigger(w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed || len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	sort.Strings(paths)
	select {
	case w.changes <- paths:
	case <-w.done:
	}
}
