package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/gui"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the keyboard.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P                - Pause
  R                - Restart
  Esc/Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return gui.Run(shooter.New(cfg), rc, gui.Options{Scale: flagScale, Logger: logger})
}
