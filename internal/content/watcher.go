package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cristianoliveira/showcase/internal/logging"
)

// DefaultDebounce collapses the burst of events an editor or CMS save produces.
const DefaultDebounce = 250 * time.Millisecond

// Reload is delivered after a burst of changes settles.
type Reload struct {
	Catalog *Catalog
	Err     error
	// Paths are the content files that changed, sorted.
	Paths []string
}

// Watcher reloads a content directory whenever one of its files changes.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	logger   logging.Logger
	reloads  chan Reload
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for quiet before reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger; the global logger is used otherwise.
func WithWatcherLogger(l logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher creates a watcher for dir. Call Start to begin delivering reloads.
func NewWatcher(dir string, opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create content watcher: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		dir:      dir,
		debounce: DefaultDebounce,
		logger:   logging.GetGlobal(),
		reloads:  make(chan Reload, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "content_watcher", "dir", dir)
	return w, nil
}

// Reloads delivers reloaded catalogs. It is closed when the watcher stops.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Start begins watching. It is non-blocking and a no-op when already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true
	w.logger.Info("watching content directory")
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit. Safe to call twice.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		w.logger.Error("closing content watcher", "error", err)
	}
	w.logger.Info("content watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.reloads)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("content event", "op", event.Op.String(), "path", event.Name)
			pending[filepath.Base(event.Name)] = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("content watcher error", "error", err)
		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]bool)

			cat, err := LoadDir(w.dir)
			if err != nil {
				w.logger.Warn("content reload failed", "error", err, "paths", paths)
			} else {
				args := []any{"paths", paths,
					"projects", len(cat.Projects), "artworks", len(cat.Artworks), "posts", len(cat.Posts)}
				if cat.Profile != nil {
					args = append(args, "profile", cat.Profile.Name, "profile_email", cat.Profile.Email)
				}
				w.logger.Info("content reloaded", args...)
			}
			r := Reload{Catalog: cat, Err: err, Paths: paths}
			// keep only the newest reload if the consumer is behind
			select {
			case <-w.reloads:
			default:
			}
			select {
			case w.reloads <- r:
			case <-w.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}

// relevant keeps writes, creates, removes and renames of the known content files.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	for _, f := range Files {
		if base == f {
			return true
		}
	}
	return false
}
