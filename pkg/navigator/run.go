package navigator

import (
	"context"
	"errors"
	"fmt"
)

const (
	pathPrompt     = "Enter path: "
	invalidPathMsg = "Invalid path. Press any key to continue."
)

// Run drives the read-render-react loop until the user selects a path or quits.
// Entering and leaving the terminal's raw mode is up to the caller.
// A cancelled ctx ends the loop with no selection.
func (n *Navigator) Run(ctx context.Context, s Surface) Result {
	if w, ok := s.(Waker); ok {
		n.mu.Lock()
		n.wake = w.Wake
		n.mu.Unlock()
		stop := context.AfterFunc(ctx, w.Wake)
		defer stop()
	}
	defer func() {
		n.mu.Lock()
		n.wake = nil
		n.mu.Unlock()
		n.cancelSizes()
	}()

	n.needsSync = true
	for {
		if ctx.Err() != nil {
			return Result{}
		}
		rows, cols := s.Size()
		if tooSmall(rows, cols) {
			renderTooSmall(s)
			n.needsSync = true
			s.ReadAction()
			continue
		}

		n.refresh(ctx)
		n.watch()
		n.setVisibleRows(visibleRowsFor(rows))
		n.render(s, rows, cols)

		action := s.ReadAction()
		n.log.Debugf("action: %v", action)
		if action != ActionRefresh && action != ActionResize {
			n.setStatus("")
		}
		if action == ActionGoToPath {
			n.promptGoTo(ctx, s, rows, cols)
			continue
		}
		if result, done := n.Apply(ctx, action); done {
			if result.Selected {
				n.log.Infof("selected %s", result.Path)
			}
			return result
		}
	}
}

func (n *Navigator) promptGoTo(ctx context.Context, s Surface, rows, cols int) {
	input, ok := s.ReadLine(rows-1, pathPrompt)
	if !ok {
		return
	}
	if err := n.GoTo(ctx, input); err != nil {
		if !errors.Is(err, ErrNotDirectory) {
			n.log.WithError(err).Warn("go to path failed")
		}
		n.log.Debugf("rejected path %q: %v", input, err)
		s.Print(rows-1, 0, fmt.Sprintf("%-*s", cols, invalidPathMsg), Style{Emphasis: EmphasisBold})
		s.Show()
		// only a key press dismisses the message
		for s.ReadAction() == ActionRefresh {
		}
	}
}

func (n *Navigator) watch() {
	if n.watcher == nil {
		return
	}
	if err := n.watcher.Watch(n.currentPath); err != nil {
		n.log.WithError(err).Debug("failed to watch current directory")
	}
}
