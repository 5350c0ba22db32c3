package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-swipe/internal/platform/tui"
	"github.com/vovakirdan/tui-swipe/internal/store"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the swipe playground",
	Long: `Open the swipe playground in the current terminal.

Controls:
  Mouse drag   - Swipe (press, move, release)
  Arrows/hjkl  - Synthetic swipe in that direction
  t            - Detach/attach the detector
  ?            - Toggle full help
  q/Esc        - Quit

The terminal is in use by the view, so logs go to --log-file if given
and are discarded otherwise.

Examples:
  swipe play
  swipe play --log-file swipe.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("swipe play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logger *log.Logger
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()

		logger, err = newLogger(f, "swipe")
		if err != nil {
			return err
		}
	}

	if err := tui.Run(store.NewApp(), cfg, logger); err != nil {
		return fmt.Errorf("error running playground: %w", err)
	}
	return nil
}
