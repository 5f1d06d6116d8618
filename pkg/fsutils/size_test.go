package fsutils

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0.0B"},
		{500, "500.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{2000, "2.0KB"},
		{1024 * 1024, "1.0MB"},
		{1024*1024 + 512*1024, "1.5MB"},
		{1024 * 1024 * 1024, "1.0GB"},
		{1024 * 1024 * 1024 * 1024, "1.0TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1024.0TB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := FormatSize(tt.size)
			if actual != tt.expected {
				t.Errorf("FormatSize(%d) = %s; want %s", tt.size, actual, tt.expected)
			}
		})
	}
}

func TestFolderSize(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), make([]byte, 10), 0644))
	assert.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deeper"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.bin"), make([]byte, 100), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "sub", "deeper", ".hidden"), make([]byte, 1000), 0644))

	t.Run("sums_all_files", func(t *testing.T) {
		total, err := FolderSize(context.Background(), root)
		assert.NoError(t, err)
		assert.Equal(t, int64(1110), total)
	})

	t.Run("empty_dir", func(t *testing.T) {
		total, err := FolderSize(context.Background(), t.TempDir())
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("missing_root", func(t *testing.T) {
		total, err := FolderSize(context.Background(), filepath.Join(root, "missing"))
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := FolderSize(ctx, root)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

type brokenEntry struct {
	fs.DirEntry
}

func (brokenEntry) Info() (fs.FileInfo, error) {
	return nil, errors.New("gone")
}

func TestFolderSize_SkipsUnreadable(t *testing.T) {
	origWalkDir := walkDir
	defer func() { walkDir = origWalkDir }()

	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "ok.txt"), make([]byte, 7), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "vanished.txt"), make([]byte, 9), 0644))

	walkDir = func(root string, fn fs.WalkDirFunc) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if d != nil && d.Name() == "vanished.txt" {
				return fn(path, brokenEntry{DirEntry: d}, err)
			}
			return fn(path, d, err)
		})
	}

	total, err := FolderSize(context.Background(), root)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), total)
}
