package termsurface

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func newPromptField(prompt string) *tview.InputField {
	field := tview.NewInputField().
		SetLabel(prompt).
		SetFieldWidth(0).
		SetLabelColor(tcell.ColorDefault).
		SetFieldBackgroundColor(tcell.ColorDefault).
		SetFieldTextColor(tcell.ColorDefault)
	field.SetBackgroundColor(tcell.ColorDefault)
	return field
}

// ReadLine edits a line of text on row until Enter (ok) or Esc/Ctrl-C (cancel).
func (s *Surface) ReadLine(row int, prompt string) (string, bool) {
	field := newPromptField(prompt)
	var finished, accepted bool
	field.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			finished, accepted = true, true
		case tcell.KeyEscape:
			finished = true
		}
	})
	field.Focus(func(p tview.Primitive) {})
	defer s.screen.HideCursor()

	handler := field.InputHandler()
	setFocus := func(p tview.Primitive) {}
	for {
		cols, _ := s.screen.Size()
		field.SetRect(0, row, cols, 1)
		field.Draw(s.screen)
		s.screen.Show()

		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return "", false
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return "", false
			}
			handler(ev, setFocus)
		}
		if finished {
			if !accepted {
				return "", false
			}
			return field.GetText(), true
		}
	}
}
