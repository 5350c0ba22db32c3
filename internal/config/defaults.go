package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/swipe.yaml
var defaultSwipeYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It matches defaults/swipe.yaml.
func DefaultConfig() Config {
	return Config{
		Gesture: GestureConfig{
			ResetDelay:    0,
			CancelPending: true,
		},
		Mouse: MouseConfig{
			RowScale: 2.0,
		},
		UI: UIConfig{
			Highlight: 400 * time.Millisecond,
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSwipeYAML))
	copy(out, defaultSwipeYAML)
	return out
}
