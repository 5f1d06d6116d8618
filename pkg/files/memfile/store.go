// Package memfile keeps a directory tree in memory.
// It is used to drive the navigator without touching the disk.
package memfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/datatug/filenav/pkg/files"
)

var _ files.FileSystem = (*Store)(nil)

type node struct {
	isDir   bool
	size    int64
	sizeErr error
	readErr error
}

// Store is a slash separated in-memory tree rooted at "/".
type Store struct {
	mu    sync.RWMutex
	cwd   string
	nodes map[string]*node
}

func NewStore() *Store {
	return &Store{
		cwd:   "/",
		nodes: map[string]*node{"/": {isDir: true}},
	}
}

// SetWorkingDir sets the directory relative paths are resolved against.
func (s *Store) SetWorkingDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cwd = path.Clean(dir)
}

// AddDir creates dir and its missing parents.
func (s *Store) AddDir(dir string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addDir(path.Clean(dir))
	return s
}

func (s *Store) addDir(dir string) {
	for p := dir; ; p = path.Dir(p) {
		if _, ok := s.nodes[p]; !ok {
			s.nodes[p] = &node{isDir: true}
		}
		if p == "/" {
			return
		}
	}
}

// AddFile creates a regular file of the given size and its missing parents.
func (s *Store) AddFile(name string, size int64) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = path.Clean(name)
	s.addDir(path.Dir(name))
	s.nodes[name] = &node{size: size}
	return s
}

// Remove deletes name and everything below it.
func (s *Store) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = path.Clean(name)
	for p := range s.nodes {
		if p == name || strings.HasPrefix(p, name+"/") {
			delete(s.nodes, p)
		}
	}
}

// FailReadDir makes ReadDir of dir return err.
func (s *Store) FailReadDir(dir string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.nodes[path.Clean(dir)]; ok {
		n.readErr = err
	}
}

// FailSize makes FileSize of name return err.
func (s *Store) FailSize(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.nodes[path.Clean(name)]; ok {
		n.sizeErr = err
	}
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	name = path.Clean(name)
	n, ok := s.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	if !n.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}
	if n.readErr != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: n.readErr}
	}
	var entries []os.DirEntry
	for p, child := range s.nodes {
		if p == "/" || path.Dir(p) != name {
			continue
		}
		entries = append(entries, files.NewEntry(path.Base(p), child.isDir, child.size))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

func (s *Store) IsDir(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[path.Clean(name)]
	return ok && n.isDir
}

func (s *Store) FileSize(name string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[path.Clean(name)]
	if !ok {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	if n.sizeErr != nil {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: n.sizeErr}
	}
	return n.size, nil
}

func (s *Store) FolderSize(ctx context.Context, dir string) (total int64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dir = path.Clean(dir)
	prefix := strings.TrimSuffix(dir, "/") + "/"
	for p, n := range s.nodes {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		if n.isDir || n.sizeErr != nil || !strings.HasPrefix(p, prefix) {
			continue
		}
		total += n.size
	}
	return total, nil
}

func (s *Store) Parent(name string) string {
	return path.Dir(name)
}

func (s *Store) Join(base, name string) string {
	return path.Join(base, name)
}

func (s *Store) Abs(name string) (string, error) {
	if path.IsAbs(name) {
		return path.Clean(name), nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return path.Join(s.cwd, name), nil
}

func (s *Store) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[path.Clean(name)]
	return ok
}
