// Package filenav runs the interactive navigator on the controlling terminal.
package filenav

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/datatug/filenav/pkg/dirsize"
	"github.com/datatug/filenav/pkg/dirwatch"
	"github.com/datatug/filenav/pkg/files/osfile"
	"github.com/datatug/filenav/pkg/logging"
	"github.com/datatug/filenav/pkg/navigator"
	"github.com/datatug/filenav/pkg/termsurface"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

const sizeWorkers = 2

var newScreen = tcell.NewScreen

var isTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type options struct {
	sortMode navigator.SortMode
	logger   *logrus.Logger
}

type Option func(o *options)

func WithSortMode(mode navigator.SortMode) Option {
	return func(o *options) {
		o.sortMode = mode
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (o options) entry(component string) *logrus.Entry {
	if o.logger == nil {
		return logging.Discard()
	}
	return logging.Component(o.logger, component)
}

// Navigate lets the user browse from initialPath and pick a file or directory.
// selected is false when the user quits or ctx is cancelled.
// The terminal is restored before Navigate returns, including on panic.
func Navigate(ctx context.Context, initialPath string, opts ...Option) (path string, selected bool, err error) {
	o := options{sortMode: navigator.SortByType}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.entry("filenav")

	if !isTerminal() {
		return "", false, ErrNotTerminal
	}

	store := osfile.NewStore()
	pool := dirsize.NewWorkerPool(sizeWorkers, store.FolderSize)
	defer pool.Close()

	var surface atomic.Pointer[termsurface.Surface]
	navOptions := []navigator.Option{
		navigator.WithFileSystem(store),
		navigator.WithLogger(o.entry("navigator")),
		navigator.WithSortMode(o.sortMode),
		navigator.WithFolderSizer(pool),
	}
	watcher, err := dirwatch.New(func() {
		if s := surface.Load(); s != nil {
			s.Wake()
		}
	}, dirwatch.WithLogger(o.entry("dirwatch")))
	if err != nil {
		log.WithError(err).Warn("auto-refresh disabled")
	} else {
		defer func() {
			_ = watcher.Close()
		}()
		navOptions = append(navOptions, navigator.WithDirWatcher(watcher))
	}

	nav, err := navigator.New(initialPath, navOptions...)
	if err != nil {
		return "", false, err
	}

	screen, err := newScreen()
	if err != nil {
		return "", false, fmt.Errorf("failed to open terminal: %w", err)
	}
	if err = screen.Init(); err != nil {
		return "", false, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	s := termsurface.New(screen)
	surface.Store(s)
	log.Infof("navigating from %s", nav.CurrentPath())
	result := nav.Run(ctx, s)
	return result.Path, result.Selected, nil
}
