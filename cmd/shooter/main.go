// shooter is a minimal vertical arcade shooter for the terminal and the desktop.
//
// Usage:
//
//	shooter list              - List available games
//	shooter play [game]       - Play in the terminal
//	shooter window            - Play in a desktop window
//	shooter simulate          - Run a headless scripted session
//	shooter config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a YAML or TOML config file
//	--difficulty <name>  - Apply a difficulty preset
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-shooter/internal/shooter"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Star Shooter - a tiny arcade shooter",
	Long: `Star Shooter is a minimal vertical shooter. Move the ship along the
bottom of the playfield and shoot down the enemies falling from the top.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a headless scripted session
  config    - Print the effective configuration

Examples:
  shooter play
  shooter play --difficulty hard
  shooter window --scale 1.5
  shooter simulate --ticks 1000 --fire-every 5 --seed 42
  shooter config --config ./my-shooter.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the game config from --config and applies --difficulty.
func loadConfig() (config.ShooterConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.ShooterConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	config.ApplyShooterPreset(&cfg, preset)
	return cfg, nil
}
