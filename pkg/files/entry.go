package files

import (
	"io/fs"
	"strings"
	"time"
)

var (
	_ fs.DirEntry = Entry{}
	_ fs.FileInfo = Entry{}
)

// Entry is a listing entry that is not backed by the OS.
// It is its own fs.FileInfo.
type Entry struct {
	name  string
	isDir bool
	size  int64
}

// NewEntry panics if name is a path rather than a base name.
func NewEntry(name string, isDir bool, size int64) Entry {
	if name == "" || strings.Contains(name, "/") {
		panic("entry name must be a base name: " + name)
	}
	if isDir {
		size = 0
	}
	return Entry{name: name, isDir: isDir, size: size}
}

func (e Entry) Name() string { return e.name }
func (e Entry) IsDir() bool  { return e.isDir }
func (e Entry) Size() int64  { return e.size }

func (e Entry) Type() fs.FileMode {
	return e.Mode().Type()
}

func (e Entry) Mode() fs.FileMode {
	if e.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}

func (e Entry) Info() (fs.FileInfo, error) { return e, nil }
func (e Entry) ModTime() time.Time         { return time.Time{} }
func (e Entry) Sys() any                   { return nil }
