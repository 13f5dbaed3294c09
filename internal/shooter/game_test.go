package shooter

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 600; i++ {
		input := core.NewInputFrame()
		if i%9 == 0 {
			input.Push(core.ActionFire)
		}
		if i%31 == 0 {
			input.Push(core.ActionMoveLeft)
		}
		if i%47 == 0 {
			input.Push(core.ActionMoveRight)
			input.Push(core.ActionMoveRight)
		}

		r1 := g1.Step(input)
		r2 := g2.Step(input)
		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("frame %d: results diverged: %+v vs %+v", i, r1, r2)
		}
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("Snapshots diverged for identical seed and input")
	}
}

func TestGameSchedulerCadence(t *testing.T) {
	g := newTestGame(1)

	// One second of frames at 60 fps is 62 ticks of 16ms and one spawn at 800ms.
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	snap := g.Snapshot()
	if snap.Tick != 62 {
		t.Errorf("Expected 62 ticks, got %d", snap.Tick)
	}
	if len(snap.Enemies) != 1 {
		t.Fatalf("Expected 1 enemy, got %d", len(snap.Enemies))
	}
	// The spawn shares its instant with tick 50, which runs first.
	if got := snap.Enemies[0].Pos.Y; got != 24 {
		t.Errorf("Expected enemy at y=24 after 12 ticks, got %v", got)
	}
	if g.Elapsed() != 60*(time.Second/60) {
		t.Errorf("Unexpected elapsed time %v", g.Elapsed())
	}
}

func TestGameAppliesActionsInOrder(t *testing.T) {
	g := newTestGame(1)

	g.Step(core.NewInputFrame(core.ActionFire, core.ActionMoveRight, core.ActionFire))

	snap := g.Snapshot()
	if len(snap.Projectiles) != 2 {
		t.Fatalf("Expected 2 projectiles, got %d", len(snap.Projectiles))
	}
	if snap.Projectiles[0].Pos.X != 415 || snap.Projectiles[1].Pos.X != 465 {
		t.Errorf("Expected shots at x=415 and x=465, got %v and %v",
			snap.Projectiles[0].Pos.X, snap.Projectiles[1].Pos.X)
	}
	if snap.Player.X != 450 {
		t.Errorf("Expected ship at x=450, got %v", snap.Player.X)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame())
	before := g.Snapshot()

	res := g.Step(core.NewInputFrame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Expected game to be paused")
	}

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(core.ActionFire, core.ActionMoveLeft))
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("World changed while paused")
	}

	res = g.Step(core.NewInputFrame(core.ActionPause, core.ActionFire))
	if res.State.Paused {
		t.Fatal("Expected game to resume")
	}
	if n := len(g.Snapshot().Projectiles); n != 1 {
		t.Errorf("Expected fire after resume in the same frame, got %d projectiles", n)
	}
}

func TestGameScoreCountsKills(t *testing.T) {
	g := newTestGame(1)
	g.world.player.Pos = core.V(85, 150)
	g.world.Fire()
	g.world.SpawnEnemyAt(105)
	g.world.enemies[0].Pos.Y = 101

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 1 {
		t.Errorf("Expected score 1, got %d", res.State.Score)
	}
	if res.State.GameOver {
		t.Error("Game must never end")
	}
	found := false
	for _, e := range res.Events {
		if strings.Contains(e, "destroyed") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a destroyed event, got %v", res.Events)
	}
}

func TestGameResetFallsBackOnInvalidConfig(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Timing.StepInterval = 0

	g := New(cfg)
	g.Reset(core.DefaultConfig())

	if g.cfg.Timing.StepInterval != 16*time.Millisecond {
		t.Errorf("Expected default step interval, got %v", g.cfg.Timing.StepInterval)
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 1 {
		t.Errorf("Expected one tick after first frame, got %d", g.Snapshot().Tick)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(core.ActionFire))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, ShipChar) {
		t.Error("Ship not drawn")
	}
	if !strings.ContainsRune(out, ProjectileChar) {
		t.Error("Projectile not drawn")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from top row: %q", screen.Row(0))
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Pause overlay not drawn")
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("Game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Star Shooter" {
		t.Errorf("Unexpected title %q", g.Title())
	}
}
