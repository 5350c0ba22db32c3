package gesture

import (
	"fmt"
	"strings"
)

// Direction is the classification of a completed swipe.
// None is the idle value between pulses.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// String returns the lowercase name of the direction ("" for None).
func (d Direction) String() string {
	switch d {
	case None:
		return ""
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Arrow returns a single-rune glyph for display.
func (d Direction) Arrow() string {
	switch d {
	case Left:
		return "←"
	case Right:
		return "→"
	case Up:
		return "↑"
	case Down:
		return "↓"
	default:
		return "·"
	}
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// ParseDirection converts a name back into a Direction.
// The empty string and "none" parse as None.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return None, fmt.Errorf("gesture: unknown direction %q", s)
}
