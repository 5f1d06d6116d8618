package osfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/datatug/filenav/pkg/files"
	"github.com/datatug/filenav/pkg/fsutils"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var filepathAbs = filepath.Abs
var folderSize = fsutils.FolderSize

var _ files.FileSystem = (*Store)(nil)

// Store is the local file system.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) IsDir(path string) bool {
	info, err := osStat(path)
	return err == nil && info.IsDir()
}

func (s Store) FileSize(path string) (int64, error) {
	info, err := osStat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (s Store) FolderSize(ctx context.Context, path string) (int64, error) {
	return folderSize(ctx, path)
}

func (s Store) Parent(path string) string {
	return filepath.Dir(path)
}

func (s Store) Join(base, name string) string {
	return filepath.Join(base, name)
}

func (s Store) Abs(path string) (string, error) {
	return filepathAbs(path)
}

func (s Store) Exists(path string) bool {
	_, err := osStat(path)
	return err == nil
}
