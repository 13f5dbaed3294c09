package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to "shooter".

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/K/Up   - Fire
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower enemies, longer spawn interval
  normal - Reference tuning
  hard   - Faster enemies, shorter spawn interval
  fixed  - Use the config file as is

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml --log-file play.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// configurable is implemented by games that accept a loaded config.
type configurable interface {
	SetConfig(config.ShooterConfig)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'shooter list' to see available games)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if c, ok := game.(configurable); ok {
		c.SetConfig(cfg)
	}

	// The terminal UI owns stdout.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
