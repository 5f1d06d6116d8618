package navigator

import "github.com/gdamore/tcell/v2"

type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisReverse
	EmphasisBold
)

// Style of a piece of text. A zero Color leaves the terminal default.
type Style struct {
	Emphasis Emphasis
	Color    tcell.Color
}

// Surface is the terminal the navigator draws on and reads keys from.
// Writes outside the surface bounds must be clipped, never fail.
type Surface interface {
	// Size reports the extent in character cells.
	Size() (rows, cols int)
	Clear()
	// Sync forces a full repaint on the next Show, dropping stale cells.
	Sync()
	Print(row, col int, text string, style Style)
	Show()
	// ReadAction blocks until the next input event and decodes it.
	ReadAction() Action
	// ReadLine collects a line typed on row. ok is false when the user cancels.
	ReadLine(row int, prompt string) (line string, ok bool)
}

// Waker is implemented by surfaces that can interrupt a blocked ReadAction
// from another goroutine. The interrupted read returns ActionRefresh.
type Waker interface {
	Wake()
}
