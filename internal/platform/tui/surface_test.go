package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-swipe/internal/gesture"
)

func recordEvents(s *MouseSurface) *[]gesture.TouchEvent {
	var events []gesture.TouchEvent
	s.AddListener(gesture.TouchStart, func(ev gesture.TouchEvent) { events = append(events, ev) })
	s.AddListener(gesture.TouchEnd, func(ev gesture.TouchEvent) { events = append(events, ev) })
	return &events
}

func TestMouseSurfacePressRelease(t *testing.T) {
	s := NewMouseSurface(2)
	events := recordEvents(s)

	press := tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 30, Y: 6, Action: tea.MouseActionRelease}

	if !s.HandleMouse(press) {
		t.Fatal("press not handled")
	}
	if !s.HandleMouse(release) {
		t.Fatal("release not handled")
	}

	if len(*events) != 2 {
		t.Fatalf("got %d events, want 2", len(*events))
	}
	start, end := (*events)[0], (*events)[1]
	if start.Kind != gesture.TouchStart || end.Kind != gesture.TouchEnd {
		t.Errorf("kinds = %v, %v", start.Kind, end.Kind)
	}
	if p := start.ChangedTouches[0]; p.ScreenX != 10 || p.ScreenY != 10 {
		t.Errorf("start point = (%v,%v), want (10,10)", p.ScreenX, p.ScreenY)
	}
	if p := end.ChangedTouches[0]; p.ScreenX != 30 || p.ScreenY != 12 {
		t.Errorf("end point = (%v,%v), want (30,12)", p.ScreenX, p.ScreenY)
	}
}

func TestMouseSurfaceIgnoresOtherInput(t *testing.T) {
	s := NewMouseSurface(1)
	events := recordEvents(s)

	ignored := []tea.MouseMsg{
		{X: 1, Y: 1, Action: tea.MouseActionRelease},                               // release without press
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, // wheel
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},   // right button
		{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},   // drag motion
	}
	for _, msg := range ignored {
		if s.HandleMouse(msg) {
			t.Errorf("HandleMouse(%v) dispatched an event", msg)
		}
	}
	if len(*events) != 0 {
		t.Errorf("got %d events, want 0", len(*events))
	}
}

func TestMouseSurfaceDrivesDetector(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		expected       gesture.Direction
	}{
		{"drag right", 10, 5, 30, 6, gesture.Right},
		{"drag left", 30, 5, 4, 7, gesture.Left},
		{"drag down", 10, 2, 12, 9, gesture.Down},
		{"drag up", 10, 9, 11, 2, gesture.Up},
		{"click in place", 10, 5, 10, 5, gesture.Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewMouseSurface(2)
			d := gesture.NewDetector(gesture.WithScheduler(holdScheduler{}))
			d.Attach(s)
			defer d.Close()

			s.HandleMouse(tea.MouseMsg{X: tc.x1, Y: tc.y1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			s.HandleMouse(tea.MouseMsg{X: tc.x2, Y: tc.y2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

			if got := d.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestMouseSurfaceSwipe(t *testing.T) {
	for _, dir := range []gesture.Direction{gesture.Left, gesture.Right, gesture.Up, gesture.Down} {
		s := NewMouseSurface(2)
		d := gesture.NewDetector(gesture.WithScheduler(holdScheduler{}))
		d.Attach(s)

		s.Swipe(dir)

		if got := d.Direction(); got != dir {
			t.Errorf("Swipe(%v) classified as %v", dir, got)
		}
		d.Close()
	}
}

// holdScheduler never fires, so the classified direction stays observable.
type holdScheduler struct{}

func (holdScheduler) AfterFunc(time.Duration, func()) gesture.Timer { return holdTimer{} }

type holdTimer struct{}

func (holdTimer) Stop() bool { return true }
