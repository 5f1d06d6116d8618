package fsutils

import (
	"context"
	"io/fs"
	"path/filepath"
	"strconv"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize returns a human readable size with one decimal place,
// dividing by 1024 until the value is below 1024 or TB is reached.
func FormatSize(size int64) string {
	v := float64(size)
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + sizeUnits[unit]
}

var walkDir = filepath.WalkDir

// FolderSize sums byte sizes of all regular files under root.
// Entries that can not be read are skipped silently.
// Only a cancelled context aborts the walk.
func FolderSize(ctx context.Context, root string) (total int64, err error) {
	err = walkDir(root, func(_ string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total, err
}
