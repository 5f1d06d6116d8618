// Package termsurface renders the navigator onto a tcell screen.
package termsurface

import (
	"github.com/datatug/filenav/pkg/navigator"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	_ navigator.Surface = (*Surface)(nil)
	_ navigator.Waker   = (*Surface)(nil)
)

// Surface adapts a tcell.Screen. The caller owns Init and Fini of the screen.
type Surface struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) Size() (rows, cols int) {
	cols, rows = s.screen.Size()
	return rows, cols
}

func (s *Surface) Clear() {
	s.screen.Clear()
}

func (s *Surface) Sync() {
	s.screen.Sync()
}

func (s *Surface) Show() {
	s.screen.Show()
}

func (s *Surface) Print(row, col int, text string, style navigator.Style) {
	rows, cols := s.Size()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return
	}
	tview.Print(s.screen, styleTag(style)+tview.Escape(text), col, row, cols-col, tview.AlignLeft, style.Color)
}

// styleTag returns the tview attribute tag for the emphasis of style.
func styleTag(style navigator.Style) string {
	switch style.Emphasis {
	case navigator.EmphasisReverse:
		return "[::r]"
	case navigator.EmphasisBold:
		return "[::b]"
	}
	return ""
}

// ReadAction waits for a key, resize or wake-up. Other events are skipped.
// A finalized screen reads as quit.
func (s *Surface) ReadAction() navigator.Action {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return navigator.ActionQuit
		case *tcell.EventResize:
			return navigator.ActionResize
		case *tcell.EventInterrupt:
			return navigator.ActionRefresh
		case *tcell.EventKey:
			return DecodeKey(ev)
		}
	}
}

// Wake interrupts a pending ReadAction, which then reports ActionRefresh.
func (s *Surface) Wake() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// DecodeKey maps a key press to a navigator action.
func DecodeKey(event *tcell.EventKey) navigator.Action {
	switch event.Key() {
	case tcell.KeyUp:
		return navigator.ActionUp
	case tcell.KeyDown:
		return navigator.ActionDown
	case tcell.KeyEnter:
		if event.Modifiers()&(tcell.ModShift|tcell.ModAlt) != 0 {
			return navigator.ActionAltActivate
		}
		return navigator.ActionActivate
	case tcell.KeyRight:
		return navigator.ActionActivate
	case tcell.KeyBacktab:
		return navigator.ActionAltActivate
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return navigator.ActionBack
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return navigator.ActionQuit
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			return navigator.ActionOther
		}
		switch event.Rune() {
		case 's':
			return navigator.ActionToggleSort
		case 'f':
			return navigator.ActionGoToPath
		case 'c':
			return navigator.ActionCalcSize
		case 'y':
			return navigator.ActionCopyPath
		case 'q':
			return navigator.ActionQuit
		}
	}
	return navigator.ActionOther
}
