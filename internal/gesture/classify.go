package gesture

import "math"

// TouchSample is a screen coordinate captured at a touch lifecycle event.
type TouchSample struct {
	X, Y float64
}

// Delta returns end minus start on both axes.
func Delta(start, end TouchSample) (dx, dy float64) {
	return end.X - start.X, end.Y - start.Y
}

// Classify converts a start/end pair into a swipe direction.
//
// The dominant axis wins. A tie, including zero motion, is treated as
// vertical, so a tap in place classifies as Up.
func Classify(start, end TouchSample) Direction {
	dx, dy := Delta(start, end)

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}

	if dy > 0 {
		return Down
	}
	return Up
}

// sampleOf extracts the first changed contact point of an event.
// ok is false when the event carries no contact points or a non-finite
// coordinate.
func sampleOf(ev TouchEvent) (s TouchSample, ok bool) {
	if len(ev.ChangedTouches) == 0 {
		return TouchSample{}, false
	}
	p := ev.ChangedTouches[0]
	if !finite(p.ScreenX) || !finite(p.ScreenY) {
		return TouchSample{}, false
	}
	return TouchSample{X: p.ScreenX, Y: p.ScreenY}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
