// Package config provides YAML-based configuration loading for the swipe
// detector and its terminal host.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	Gesture GestureConfig `yaml:"gesture"`
	Mouse   MouseConfig   `yaml:"mouse"`
	UI      UIConfig      `yaml:"ui"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GestureConfig controls the swipe detector.
type GestureConfig struct {
	ResetDelay    time.Duration `yaml:"reset_delay"`    // Pulse length; 0 = next tick
	CancelPending bool          `yaml:"cancel_pending"` // New swipe stops the previous reset
}

// MouseConfig controls how terminal mouse input maps to touch coordinates.
type MouseConfig struct {
	RowScale float64 `yaml:"row_scale"` // Multiplier applied to the row coordinate
}

// UIConfig controls the terminal view.
type UIConfig struct {
	Highlight time.Duration `yaml:"highlight"` // How long the last swipe stays lit
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty = ~/.swipe/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate reports the first invalid value in cfg.
func (c Config) Validate() error {
	switch {
	case c.Gesture.ResetDelay < 0:
		return fmt.Errorf("%w: gesture.reset_delay must not be negative", ErrInvalidConfig)
	case c.Mouse.RowScale <= 0:
		return fmt.Errorf("%w: mouse.row_scale must be positive", ErrInvalidConfig)
	case c.UI.Highlight < 0:
		return fmt.Errorf("%w: ui.highlight must not be negative", ErrInvalidConfig)
	case c.SSH.Address == "":
		return fmt.Errorf("%w: ssh.address is required", ErrInvalidConfig)
	case c.SSH.IdleTimeout < 0:
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}
