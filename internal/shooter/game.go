package shooter

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/schedule"
)

// GameID is the registry and command-line identifier.
const GameID = "shooter"

// Scheduler task names.
const (
	taskStep  = "step"
	taskSpawn = "spawn"
)

// Game adapts a World to the platform's registry.Game contract.
// Frame pacing comes from the platform; simulation ticks and spawns come
// from an internal fixed-timestep scheduler, so one frame may run zero,
// one or several ticks.
type Game struct {
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	world   *World
	spawner *Spawner
	sched   *schedule.Scheduler
	paused  bool
	events  []string // Collected during the current frame
}

// New creates a game with the given configuration. Reset must be called
// before the first Step.
func New(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg}
}

// SetConfig replaces the configuration used by the next Reset.
func (g *Game) SetConfig(cfg config.ShooterConfig) {
	g.cfg = cfg
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Shooter"
}

// Reset builds a new world, spawner and scheduler. An invalid config falls
// back to the reference defaults.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.cfg.Validate() != nil {
		g.cfg = config.DefaultShooterConfig()
	}

	g.runtime = rc
	g.paused = false
	g.events = nil
	g.world = NewWorld(g.cfg)
	g.spawner = NewSpawner(g.cfg.Playfield.Width, rand.New(rand.NewSource(rc.Seed)))

	g.sched = schedule.New()
	// Registration order matters: a tick due at the same instant as a spawn
	// runs first, so a fresh enemy is drawn at y = 0 before it moves.
	//nolint:errcheck // periods were validated above and names are unique
	g.sched.Every(taskStep, g.cfg.Timing.StepInterval, g.onStep)
	//nolint:errcheck // see above
	g.sched.Every(taskSpawn, g.cfg.Timing.SpawnInterval, g.onSpawn)
}

// Step applies the frame's actions in arrival order, then advances the
// scheduler by one platform frame unless the game is paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	for _, a := range in.Actions {
		if a == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused {
			continue
		}
		switch a {
		case core.ActionMoveLeft:
			g.world.MoveLeft()
		case core.ActionMoveRight:
			g.world.MoveRight()
		case core.ActionFire:
			if !g.world.Fire() {
				g.events = append(g.events, "shot rejected: projectile limit reached")
			}
		}
	}

	if !g.paused {
		g.sched.Advance(g.runtime.FrameDuration())
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) onStep() {
	ev := g.world.Step()
	for _, h := range ev.Hits {
		g.events = append(g.events, fmt.Sprintf("tick %d: enemy %d destroyed by projectile %d at (%.0f, %.0f)",
			ev.Tick, h.EnemyID, h.ProjectileID, h.At.X, h.At.Y))
	}
	for _, id := range ev.Escaped {
		g.events = append(g.events, fmt.Sprintf("tick %d: enemy %d escaped", ev.Tick, id))
	}
}

func (g *Game) onSpawn() {
	if id, ok := g.spawner.SpawnEnemy(g.world); ok {
		g.events = append(g.events, fmt.Sprintf("enemy %d spawned", id))
	} else {
		g.events = append(g.events, "spawn rejected: enemy limit reached")
	}
}

// Snapshot returns a copy of the world for presenters that draw in world
// coordinates.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Elapsed reports the virtual time simulated since the last Reset.
func (g *Game) Elapsed() time.Duration {
	return g.sched.Now()
}

// State returns the current game state. The game has no loss condition,
// so GameOver is never set.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Kills()
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New(config.DefaultShooterConfig())
	})
}
