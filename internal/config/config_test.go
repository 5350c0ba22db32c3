package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("gesture:\n  reset_delay: 150ms\n"))
	require.NoError(t, err)

	assert.Equal(t, 150*time.Millisecond, cfg.Gesture.ResetDelay)
	assert.True(t, cfg.Gesture.CancelPending)
	assert.Equal(t, 2.0, cfg.Mouse.RowScale)
	assert.Equal(t, ":23235", cfg.SSH.Address)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative reset delay", "gesture:\n  reset_delay: -1s\n"},
		{"zero row scale", "mouse:\n  row_scale: 0\n"},
		{"empty ssh address", "ssh:\n  address: \"\"\n"},
		{"negative highlight", "ui:\n  highlight: -5ms\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("gesture: [\n"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mouse:\n  row_scale: 1.5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Mouse.RowScale)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
