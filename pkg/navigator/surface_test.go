package navigator

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/datatug/filenav/pkg/files/memfile"
	"github.com/stretchr/testify/require"
)

type printed struct {
	text  string
	style Style
}

type scriptedLine struct {
	text string
	ok   bool
}

// fakeSurface replays scripted actions and records the last frame.
type fakeSurface struct {
	rows, cols int
	actions    []Action
	lines      []scriptedLine
	onRead     func(call int, f *fakeSurface)

	frame   map[int]printed
	reads   int
	syncs   int
	shows   int
	prompts []int
	wakes   atomic.Int32
}

func newFakeSurface(rows, cols int, actions ...Action) *fakeSurface {
	return &fakeSurface{
		rows:    rows,
		cols:    cols,
		actions: actions,
		frame:   map[int]printed{},
	}
}

func (f *fakeSurface) Size() (int, int) { return f.rows, f.cols }
func (f *fakeSurface) Clear()           { f.frame = map[int]printed{} }
func (f *fakeSurface) Sync()            { f.syncs++ }
func (f *fakeSurface) Show()            { f.shows++ }

func (f *fakeSurface) Print(row, col int, text string, style Style) {
	if row < 0 || row >= f.rows || col >= f.cols {
		return
	}
	if len(text) > f.cols-col {
		text = text[:f.cols-col]
	}
	f.frame[row] = printed{text: strings.Repeat(" ", col) + text, style: style}
}

// ReadAction quits once the script is exhausted so a test can never hang.
func (f *fakeSurface) ReadAction() Action {
	f.reads++
	if f.onRead != nil {
		f.onRead(f.reads, f)
	}
	if len(f.actions) == 0 {
		return ActionQuit
	}
	a := f.actions[0]
	f.actions = f.actions[1:]
	return a
}

func (f *fakeSurface) ReadLine(row int, prompt string) (string, bool) {
	f.prompts = append(f.prompts, row)
	if len(f.lines) == 0 {
		return "", false
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l.text, l.ok
}

func (f *fakeSurface) row(i int) string {
	return f.frame[i].text
}

type wakingSurface struct {
	*fakeSurface
}

func (w wakingSurface) Wake() { w.wakes.Add(1) }

// newTestStore builds:
//
//	/home/user/Music/
//	/home/user/docs/{b.txt,c.txt}
//	/home/user/{.hidden,Zed.md,a.txt,locked.bin}
func newTestStore() *memfile.Store {
	s := memfile.NewStore().
		AddDir("/home/user/Music").
		AddFile("/home/user/docs/b.txt", 20).
		AddFile("/home/user/docs/c.txt", 30).
		AddFile("/home/user/.hidden", 1).
		AddFile("/home/user/Zed.md", 2048).
		AddFile("/home/user/a.txt", 10).
		AddFile("/home/user/locked.bin", 5)
	s.FailSize("/home/user/locked.bin", errDenied)
	return s
}

type deniedError struct{}

func (deniedError) Error() string { return "permission denied" }

var errDenied = deniedError{}

func newTestNavigator(t *testing.T, options ...Option) (*Navigator, *memfile.Store) {
	t.Helper()
	store := newTestStore()
	options = append([]Option{WithFileSystem(store)}, options...)
	n, err := New("/home/user", options...)
	require.NoError(t, err)
	return n, store
}
