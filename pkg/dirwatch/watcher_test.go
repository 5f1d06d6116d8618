package dirwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) (*Watcher, chan struct{}) {
	t.Helper()
	changes := make(chan struct{}, 10)
	w, err := New(func() { changes <- struct{}{} }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, changes
}

func waitForChange(t *testing.T, changes chan struct{}) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, changes := newTestWatcher(t)
	require.NoError(t, w.Watch(dir))
	assert.Equal(t, dir, w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))
	waitForChange(t, changes)
}

func TestWatcher_SwitchesDirectories(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w, changes := newTestWatcher(t)

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, second, w.Dir())

	require.NoError(t, os.Mkdir(filepath.Join(second, "sub"), 0755))
	waitForChange(t, changes)
}

func TestWatcher_MissingDir(t *testing.T) {
	w, _ := newTestWatcher(t)
	err := w.Watch(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcher_Close(t *testing.T) {
	w, err := New(nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Error(t, w.Watch(t.TempDir()))
}
