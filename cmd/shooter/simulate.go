package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/schedule"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var (
	flagTicks     uint64
	flagFireEvery int
	flagRealtime  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted session",
	Long: `Run the game without a display and print a summary.

The script fires once every --fire-every frames and never moves the ship.
Runs with the same --seed and flags produce the same result.

Examples:
  shooter simulate --ticks 1000 --seed 42
  shooter simulate --fire-every 3 --difficulty hard --log-level debug
  shooter simulate --realtime --ticks 300`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 600, "Number of simulation ticks to run")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 4, "Fire once every N frames (0 = never)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with the wall clock")
}

// session is a scripted headless run.
type session struct {
	game      *shooter.Game
	fireEvery int
	frames    int
	logger    *log.Logger
}

// frame runs one scripted platform frame.
func (s *session) frame() {
	in := core.NewInputFrame()
	if s.fireEvery > 0 && s.frames%s.fireEvery == 0 {
		in.Push(core.ActionFire)
	}
	s.frames++

	result := s.game.Step(in)
	for _, ev := range result.Events {
		s.logger.Debug(ev)
	}
}

func (s *session) ticks() uint64 {
	return s.game.Snapshot().Tick
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagFireEvery < 0 {
		return fmt.Errorf("--fire-every must be >= 0, got %d", flagFireEvery)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	s := &session{
		game:      shooter.New(cfg),
		fireEvery: flagFireEvery,
		logger:    logger,
	}
	s.game.Reset(rc)
	logger.Info("simulation started", "seed", rc.Seed, "ticks", flagTicks, "realtime", flagRealtime)

	if flagRealtime {
		if err := runRealtime(cmd.Context(), s, rc.FrameDuration(), flagTicks); err != nil {
			return err
		}
	} else {
		for s.ticks() < flagTicks {
			s.frame()
		}
	}

	printSummary(cmd.OutOrStdout(), s, rc.Seed)
	return nil
}

// runRealtime paces frames with a wall-clock scheduler until the target tick
// count is reached or the process is interrupted.
func runRealtime(parent context.Context, s *session, frame time.Duration, target uint64) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	pacer := schedule.New()
	if err := pacer.Every("frame", frame, s.frame); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	pacer.Run(ctx, frame, func() {
		if s.ticks() >= target {
			stop()
		}
	})
	return nil
}

func printSummary(w io.Writer, s *session, seed int64) {
	snap := s.game.Snapshot()
	fmt.Fprintf(w, "Seed:         %d\n", seed)
	fmt.Fprintf(w, "Frames:       %d\n", s.frames)
	fmt.Fprintf(w, "Ticks:        %d\n", snap.Tick)
	fmt.Fprintf(w, "Elapsed:      %s\n", s.game.Elapsed())
	fmt.Fprintf(w, "Kills:        %d\n", snap.Kills)
	fmt.Fprintf(w, "Escaped:      %d\n", snap.Escaped)
	fmt.Fprintf(w, "Enemies:      %d\n", len(snap.Enemies))
	fmt.Fprintf(w, "Projectiles:  %d\n", len(snap.Projectiles))
	fmt.Fprintf(w, "Ship:         (%.0f, %.0f)\n", snap.Player.X, snap.Player.Y)
}
