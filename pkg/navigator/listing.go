package navigator

import (
	"context"
	"slices"
	"strings"
)

// refresh lists currentPath from scratch.
// A directory that can not be read lists as the parent entry alone.
func (n *Navigator) refresh(ctx context.Context) {
	children, err := n.fs.ReadDir(ctx, n.currentPath)
	if err != nil {
		n.log.WithError(err).Debugf("failed to list %s", n.currentPath)
		children = nil
	}

	var dirs, regular []string
	for _, child := range children {
		name := child.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if n.fs.IsDir(n.fs.Join(n.currentPath, name)) {
			dirs = append(dirs, name)
		} else {
			regular = append(regular, name)
		}
	}

	entries := make([]string, 0, 1+len(dirs)+len(regular))
	entries = append(entries, ParentEntry)
	if n.sortMode == SortAlphabetical {
		all := append(append([]string(nil), dirs...), regular...)
		slices.Sort(all)
		entries = append(entries, all...)
	} else {
		slices.Sort(dirs)
		slices.Sort(regular)
		entries = append(entries, dirs...)
		entries = append(entries, regular...)
	}

	sizes := make(map[string]int64, len(entries))
	sizes[ParentEntry] = SizeDir
	for _, name := range dirs {
		sizes[name] = SizeDir
	}
	for _, name := range regular {
		size, err := n.fs.FileSize(n.fs.Join(n.currentPath, name))
		if err != nil {
			n.log.WithError(err).Debugf("failed to get size of %s", name)
			size = SizeUnreadable
		}
		sizes[name] = size
	}

	n.entries = entries
	n.sizes = sizes
	if n.cursor >= len(entries) {
		n.cursor = len(entries) - 1
	}
	n.clampScroll()
}
