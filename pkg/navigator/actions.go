package navigator

// Action is a logical input event, decoded from raw keys by the surface.
type Action int

const (
	ActionOther Action = iota
	ActionUp
	ActionDown
	ActionActivate
	ActionAltActivate
	ActionBack
	ActionToggleSort
	ActionGoToPath
	ActionQuit
	ActionResize
	ActionCalcSize
	ActionCopyPath
	// ActionRefresh redraws after a background change; it never comes from a key.
	ActionRefresh
)

var actionNames = [...]string{
	ActionOther:       "other",
	ActionUp:          "up",
	ActionDown:        "down",
	ActionActivate:    "activate",
	ActionAltActivate: "alt-activate",
	ActionBack:        "back",
	ActionToggleSort:  "toggle-sort",
	ActionGoToPath:    "go-to-path",
	ActionQuit:        "quit",
	ActionResize:      "resize",
	ActionCalcSize:    "calc-size",
	ActionCopyPath:    "copy-path",
	ActionRefresh:     "refresh",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}
