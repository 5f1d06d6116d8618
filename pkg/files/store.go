package files

import (
	"context"
	"os"
)

// FileSystem is the storage the navigator browses.
// Paths are absolute and use the separator of the implementation.
type FileSystem interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// IsDir follows symlinks; broken links report false.
	IsDir(path string) bool
	FileSize(path string) (int64, error)
	FolderSize(ctx context.Context, path string) (int64, error)
	Parent(path string) string
	Join(base, name string) string
	Abs(path string) (string, error)
	Exists(path string) bool
}
