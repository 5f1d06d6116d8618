package navigator

import (
	"context"
	"errors"

	"github.com/datatug/filenav/pkg/dirsize"
	"github.com/datatug/filenav/pkg/fsutils"
)

// calculateSelected starts a background size calculation for the selected
// directory. Results land in status under mu and wake the surface.
func (n *Navigator) calculateSelected(ctx context.Context) {
	if n.sizer == nil {
		return
	}
	selected := n.Selected()
	p := n.selectedPath()
	if selected != ParentEntry && !n.fs.IsDir(p) {
		return
	}
	if n.sizeCtx == nil {
		n.sizeCtx, n.sizeCancel = context.WithCancel(ctx)
	}
	reqCtx := n.sizeCtx
	label := selected + "/"

	n.mu.Lock()
	n.calculating++
	n.mu.Unlock()

	submitted := n.sizer.Submit(reqCtx, p, func(r dirsize.Result) {
		n.mu.Lock()
		n.calculating--
		switch {
		case reqCtx.Err() != nil || errors.Is(r.Err, context.Canceled):
			// the directory changed; nobody is waiting for this one
		case r.Err != nil:
			n.status = label + ": size unavailable"
		default:
			n.status = label + ": " + fsutils.FormatSize(r.Size)
		}
		wake := n.wake
		n.mu.Unlock()
		if r.Err != nil && !errors.Is(r.Err, context.Canceled) {
			n.log.WithError(r.Err).Warnf("failed to calculate size of %s", r.Path)
		}
		if wake != nil {
			wake()
		}
	})
	if !submitted {
		n.mu.Lock()
		n.calculating--
		n.status = "Busy, try again"
		n.mu.Unlock()
	}
}

// cancelSizes drops every calculation started for the current directory.
func (n *Navigator) cancelSizes() {
	if n.sizeCancel != nil {
		n.sizeCancel()
	}
	n.sizeCtx, n.sizeCancel = nil, nil
}

// Calculating reports whether folder sizes are being computed.
func (n *Navigator) Calculating() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calculating > 0
}
