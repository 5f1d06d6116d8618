// Package dirwatch reports changes to the single directory being listed.
package dirwatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/datatug/filenav/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher follows one directory at a time and calls onChange,
// at most once per debounce window, when its entries change.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	onChange  func()
	logger    *logrus.Entry
	debounce  time.Duration

	mu      sync.Mutex
	dir     string
	pending *time.Timer
	closed  bool
	done    chan struct{}
}

type Option func(w *Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

func New(onChange func(), options ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		onChange:  onChange,
		logger:    logging.Discard(),
		debounce:  defaultDebounce,
		done:      make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}
	go w.loop()
	return w, nil
}

// Watch switches the watcher to dir. Watching the same dir again is a no-op.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watcher is closed")
	}
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			w.logger.WithError(err).Debugf("failed to stop watching %s", w.dir)
		}
	}
	w.dir = ""
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	w.logger.Debugf("watching %s", dir)
	return nil
}

// Dir returns the directory currently watched.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0 {
				w.schedule()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.pending != nil {
		return
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		w.pending = nil
		closed := w.closed
		w.mu.Unlock()
		if !closed && w.onChange != nil {
			w.onChange()
		}
	})
}

// Close stops watching. It is safe to call Close more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()
	err := w.fsWatcher.Close()
	<-w.done
	return err
}
