// Package tui provides the Bubble Tea host for the swipe detector.
// It turns terminal mouse drags into touch events, mounts the detector on
// them and renders the board and the last swipe.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-swipe/internal/gesture"
)

// DirectionMsg carries a direction write from the detector into the
// update loop, including the reset to None.
type DirectionMsg gesture.Direction

// highlightDoneMsg ends the highlight of the swipe with the given sequence.
type highlightDoneMsg struct {
	seq int
}

// waitForDirection returns a command that blocks until the detector writes a
// direction or the model is torn down.
func waitForDirection(ch <-chan gesture.Direction, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case d := <-ch:
			return DirectionMsg(d)
		case <-done:
			return nil
		}
	}
}

// highlightCmd fires once after d to clear the highlight of swipe seq.
func highlightCmd(d time.Duration, seq int) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return highlightDoneMsg{seq: seq} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return highlightDoneMsg{seq: seq}
	})
}
