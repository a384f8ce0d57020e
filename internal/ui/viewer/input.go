package viewer

import "fyne.io/fyne/v2"

// Action is a user command on the slideshow.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionTogglePause
	ActionFaster
	ActionSlower
	ActionFullscreen
	ActionQuit
)

func (action Action) String() string {
	switch action {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionTogglePause:
		return "toggle_pause"
	case ActionFaster:
		return "faster"
	case ActionSlower:
		return "slower"
	case ActionFullscreen:
		return "fullscreen"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Fractions of the window taken by the edge tap regions.
const (
	edgeHeightFraction = float32(0.2)
	edgeWidthFraction  = float32(0.2)
)

// ActionAt maps a tap position to an action. The top and bottom bands span
// the full width; the middle band is split into previous, pause and next.
func ActionAt(pos fyne.Position, size fyne.Size) Action {
	if size.Width <= 0 || size.Height <= 0 {
		return ActionNone
	}
	switch {
	case pos.Y < size.Height*edgeHeightFraction:
		return ActionFaster
	case pos.Y >= size.Height*(1-edgeHeightFraction):
		return ActionSlower
	case pos.X < size.Width*edgeWidthFraction:
		return ActionPrevious
	case pos.X >= size.Width*(1-edgeWidthFraction):
		return ActionNext
	default:
		return ActionTogglePause
	}
}

// ActionForKey maps named keys. Printable symbols are handled by
// ActionForRune so a key press never triggers twice.
func ActionForKey(key fyne.KeyName) Action {
	switch key {
	case fyne.KeyRight, fyne.KeyN, fyne.KeyPageDown:
		return ActionNext
	case fyne.KeyLeft, fyne.KeyP, fyne.KeyPageUp:
		return ActionPrevious
	case fyne.KeySpace:
		return ActionTogglePause
	case fyne.KeyUp:
		return ActionFaster
	case fyne.KeyDown:
		return ActionSlower
	case fyne.KeyF:
		return ActionFullscreen
	case fyne.KeyEscape, fyne.KeyQ:
		return ActionQuit
	default:
		return ActionNone
	}
}

// ActionForRune maps typed symbols.
func ActionForRune(r rune) Action {
	switch r {
	case '+', '=':
		return ActionFaster
	case '-', '_':
		return ActionSlower
	default:
		return ActionNone
	}
}
