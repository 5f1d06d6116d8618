package navigator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/datatug/filenav/pkg/dirsize"
	"github.com/datatug/filenav/pkg/files"
	"github.com/datatug/filenav/pkg/files/osfile"
	"github.com/datatug/filenav/pkg/logging"
	"github.com/sirupsen/logrus"
)

// ParentEntry is always the first entry and stands for the containing directory.
const ParentEntry = ".."

// Size markers stored in place of a byte count.
const (
	SizeUnreadable int64 = -1
	SizeDir        int64 = -2
)

type SortMode int

const (
	SortByType SortMode = iota
	SortAlphabetical
)

func (m SortMode) String() string {
	if m == SortAlphabetical {
		return "alphabetical"
	}
	return "type"
}

var ErrNotDirectory = errors.New("not a directory")

// Result of a finished Run. Selected is false when the user quit.
type Result struct {
	Path     string
	Selected bool
}

// FolderSizer computes directory sizes off the input loop.
type FolderSizer interface {
	Submit(ctx context.Context, path string, callback func(dirsize.Result)) bool
}

// DirWatcher is told which directory is listed so it can report changes.
type DirWatcher interface {
	Watch(dir string) error
}

type Option func(n *Navigator)

func WithFileSystem(fs files.FileSystem) Option {
	return func(n *Navigator) {
		n.fs = fs
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(n *Navigator) {
		n.log = logger
	}
}

func WithSortMode(mode SortMode) Option {
	return func(n *Navigator) {
		n.sortMode = mode
	}
}

func WithFolderSizer(sizer FolderSizer) Option {
	return func(n *Navigator) {
		n.sizer = sizer
	}
}

func WithDirWatcher(watcher DirWatcher) Option {
	return func(n *Navigator) {
		n.watcher = watcher
	}
}

var osGetwd = os.Getwd

const defaultVisibleRows = 20

// Navigator holds the browsing state of one interactive session.
// Everything except the fields under mu is owned by the goroutine running Run.
type Navigator struct {
	fs      files.FileSystem
	log     *logrus.Entry
	sizer   FolderSizer
	watcher DirWatcher

	currentPath string
	cursor      int
	scroll      int
	visibleRows int
	entries     []string
	sizes       map[string]int64
	sortMode    SortMode
	needsSync   bool

	sizeCtx    context.Context
	sizeCancel context.CancelFunc

	wake func()

	mu          sync.Mutex
	calculating int
	status      string
}

// New creates a navigator starting at initialPath,
// or at the process working directory when initialPath is empty.
func New(initialPath string, options ...Option) (*Navigator, error) {
	n := &Navigator{
		visibleRows: defaultVisibleRows,
		needsSync:   true,
	}
	for _, option := range options {
		option(n)
	}
	if n.fs == nil {
		n.fs = osfile.NewStore()
	}
	if n.log == nil {
		n.log = logging.Discard()
	}

	if initialPath == "" {
		wd, err := osGetwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		initialPath = wd
	}
	abs, err := n.fs.Abs(initialPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", initialPath, err)
	}
	if !n.fs.IsDir(abs) {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}
	n.currentPath = abs
	n.refresh(context.Background())
	return n, nil
}

func (n *Navigator) CurrentPath() string { return n.currentPath }
func (n *Navigator) Cursor() int         { return n.cursor }
func (n *Navigator) ScrollOffset() int   { return n.scroll }
func (n *Navigator) SortMode() SortMode  { return n.sortMode }

// Entries returns a copy of the current listing.
func (n *Navigator) Entries() []string {
	return append([]string(nil), n.entries...)
}

// EntrySize returns the size descriptor of a listed entry.
func (n *Navigator) EntrySize(name string) (int64, bool) {
	size, ok := n.sizes[name]
	return size, ok
}

// Selected returns the entry under the cursor.
func (n *Navigator) Selected() string {
	return n.entries[n.cursor]
}

// Status returns the message shown on the bottom row, if any.
func (n *Navigator) Status() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.calculating > 0 {
		return "Calculating size..."
	}
	return n.status
}

func (n *Navigator) setStatus(status string) {
	n.mu.Lock()
	n.status = status
	n.mu.Unlock()
}
