// swipe is a terminal playground for the swipe gesture detector.
//
// Usage:
//
//	swipe play                      - Swipe on the board with mouse drags or arrow keys
//	swipe serve                     - Serve the same view over SSH
//	swipe classify <x1> <y1> <x2> <y2> - Print the direction of a single gesture
//	swipe config                    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.swipe/configs/swipe.yaml, then embedded)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swipe/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swipe",
	Short: "Swipe detector playground for the terminal",
	Long: `swipe turns mouse drags in the terminal into swipe directions
(left, right, up, down) and shows them next to a 4x4 puzzle board.

Available commands:
  play      - Run the playground locally
  serve     - Start SSH server for remote play
  classify  - Classify a single start/end coordinate pair
  config    - Print the effective configuration

Examples:
  swipe play
  swipe serve --ssh :2222
  swipe classify 100 50 10 55
  swipe config --config ./swipe.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration selected by --config.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w *os.File, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
