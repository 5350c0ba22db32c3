package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-swipe/internal/gesture"
)

// syntheticSwipeLength is the distance, in cells, of a keyboard swipe.
const syntheticSwipeLength = 8

// MouseSurface is a gesture.Surface fed by terminal mouse events.
// A left-button press starts a touch and the following release ends it.
type MouseSurface struct {
	*gesture.EventTarget
	rowScale float64
	pressed  bool
}

// NewMouseSurface creates a surface. rowScale multiplies the row coordinate
// so vertical drags cover comparable distance to horizontal ones.
func NewMouseSurface(rowScale float64) *MouseSurface {
	if rowScale <= 0 {
		rowScale = 1
	}
	return &MouseSurface{
		EventTarget: gesture.NewEventTarget(),
		rowScale:    rowScale,
	}
}

// HandleMouse translates msg into a touch event.
// It reports whether an event was dispatched.
func (s *MouseSurface) HandleMouse(msg tea.MouseMsg) bool {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		s.pressed = true
		s.Dispatch(s.event(gesture.TouchStart, msg.X, msg.Y))
		return true

	case msg.Action == tea.MouseActionRelease && s.pressed:
		s.pressed = false
		s.Dispatch(s.event(gesture.TouchEnd, msg.X, msg.Y))
		return true
	}
	return false
}

// Swipe dispatches a complete synthetic gesture in direction d.
// Used for keyboard control.
func (s *MouseSurface) Swipe(d gesture.Direction) {
	dx, dy := 0, 0
	switch d {
	case gesture.Left:
		dx = -syntheticSwipeLength
	case gesture.Right:
		dx = syntheticSwipeLength
	case gesture.Up:
		dy = -syntheticSwipeLength
	case gesture.Down:
		dy = syntheticSwipeLength
	default:
		return
	}

	s.pressed = false
	s.Dispatch(gesture.Touch(gesture.TouchStart, 0, 0))
	s.Dispatch(gesture.Touch(gesture.TouchEnd, float64(dx), float64(dy)*s.rowScale))
}

func (s *MouseSurface) event(kind gesture.EventKind, x, y int) gesture.TouchEvent {
	return gesture.Touch(kind, float64(x), float64(y)*s.rowScale)
}
