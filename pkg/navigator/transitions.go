package navigator

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/datatug/filenav/pkg/fsutils"
)

var clipboardWriteAll = clipboard.WriteAll

// Apply performs one action. done is true when the session is over,
// in which case result holds the outcome.
// ActionGoToPath needs a prompt and is handled by Run through GoTo.
func (n *Navigator) Apply(ctx context.Context, action Action) (result Result, done bool) {
	switch action {
	case ActionQuit:
		return Result{}, true
	case ActionUp:
		if n.cursor > 0 {
			n.cursor--
		}
	case ActionDown:
		if n.cursor < len(n.entries)-1 {
			n.cursor++
		}
	case ActionActivate:
		selected := n.Selected()
		if selected == ParentEntry {
			n.changeDir(ctx, n.fs.Parent(n.currentPath))
			break
		}
		p := n.fs.Join(n.currentPath, selected)
		if n.fs.IsDir(p) {
			n.changeDir(ctx, p)
			break
		}
		return Result{Path: p, Selected: true}, true
	case ActionAltActivate:
		selected := n.Selected()
		if selected == ParentEntry {
			return Result{Path: n.fs.Parent(n.currentPath), Selected: true}, true
		}
		if p := n.fs.Join(n.currentPath, selected); n.fs.IsDir(p) {
			return Result{Path: p, Selected: true}, true
		}
	case ActionBack:
		if parent := n.fs.Parent(n.currentPath); parent != n.currentPath {
			n.changeDir(ctx, parent)
		}
	case ActionToggleSort:
		if n.sortMode == SortAlphabetical {
			n.sortMode = SortByType
		} else {
			n.sortMode = SortAlphabetical
		}
		n.refresh(ctx)
	case ActionCalcSize:
		n.calculateSelected(ctx)
	case ActionCopyPath:
		n.copySelectedPath()
	}
	n.clampScroll()
	return Result{}, false
}

// GoTo makes input the current directory. Relative input is resolved
// against the process working directory and a leading ~ means the home directory.
// On error the state is left unchanged.
func (n *Navigator) GoTo(ctx context.Context, input string) error {
	p := fsutils.ExpandHome(strings.TrimSpace(input))
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrNotDirectory)
	}
	abs, err := n.fs.Abs(p)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", input, err)
	}
	if !n.fs.Exists(abs) || !n.fs.IsDir(abs) {
		return fmt.Errorf("%w: %s", ErrNotDirectory, input)
	}
	n.changeDir(ctx, abs)
	return nil
}

func (n *Navigator) changeDir(ctx context.Context, dir string) {
	n.log.Debugf("changing directory to %s", dir)
	n.cancelSizes()
	n.currentPath = dir
	n.cursor = 0
	n.scroll = 0
	n.needsSync = true
	n.setStatus("")
	n.refresh(ctx)
}

func (n *Navigator) selectedPath() string {
	selected := n.Selected()
	if selected == ParentEntry {
		return n.fs.Parent(n.currentPath)
	}
	return n.fs.Join(n.currentPath, selected)
}

func (n *Navigator) copySelectedPath() {
	p := n.selectedPath()
	if err := clipboardWriteAll(p); err != nil {
		n.log.WithError(err).Warn("failed to copy path to clipboard")
		n.setStatus("Clipboard unavailable: " + err.Error())
		return
	}
	n.setStatus("Copied: " + p)
}

// clampScroll keeps the cursor row inside the visible window.
func (n *Navigator) clampScroll() {
	if n.cursor < n.scroll {
		n.scroll = n.cursor
	} else if n.cursor >= n.scroll+n.visibleRows {
		n.scroll = n.cursor - n.visibleRows + 1
	}
	if n.scroll < 0 {
		n.scroll = 0
	}
}

func (n *Navigator) setVisibleRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	n.visibleRows = rows
	n.clampScroll()
}
