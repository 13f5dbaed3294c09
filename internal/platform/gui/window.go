// Package gui runs the shooter in a desktop window with Ebiten.
// The world is drawn at its native 800x600 resolution and scaled by the
// window manager.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// Entity colours match the terminal renderer.
var (
	colorBackground = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	colorShip       = core.ColorCyan.RGBA()
	colorProjectile = core.ColorBrightRed.RGBA()
	colorEnemy      = core.ColorBrightGreen.RGBA()
)

// keyBindings lists the keys polled each frame, in polling order.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyLeft, core.ActionMoveLeft},
	{ebiten.KeyA, core.ActionMoveLeft},
	{ebiten.KeyRight, core.ActionMoveRight},
	{ebiten.KeyD, core.ActionMoveRight},
	{ebiten.KeySpace, core.ActionFire},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

// Options configures a Window.
type Options struct {
	Scale  float64 // Window size multiplier over the playfield
	Logger *log.Logger
}

// Window adapts a shooter.Game to ebiten.Game.
type Window struct {
	game      *shooter.Game
	config    core.RuntimeConfig
	fixedSeed bool
	logger    *log.Logger
	width     int
	height    int
}

// NewWindow creates a window for the game. A zero seed is replaced by a
// time-based one.
func NewWindow(game *shooter.Game, cfg core.RuntimeConfig, opts Options) *Window {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	snap := game.Snapshot()

	return &Window{
		game:      game,
		config:    cfg,
		fixedSeed: fixed,
		logger:    logger,
		width:     int(snap.Playfield.X),
		height:    int(snap.Playfield.Y),
	}
}

// Update polls the keyboard and runs one platform frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.logger.Info("quit", "score", w.game.State().Score)
		return ebiten.Termination
	}

	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Push(b.action)
		}
	}

	if frame.Has(core.ActionRestart) {
		if !w.fixedSeed {
			w.config.Seed = time.Now().UnixNano()
		}
		w.game.Reset(w.config)
		w.logger.Info("game restarted", "seed", w.config.Seed)
		return nil
	}

	result := w.game.Step(frame)
	for _, ev := range result.Events {
		w.logger.Debug(ev)
	}
	return nil
}

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := w.game.Snapshot()

	for _, e := range snap.Enemies {
		vector.DrawFilledRect(screen, float32(e.Pos.X), float32(e.Pos.Y),
			float32(snap.EnemySize.X), float32(snap.EnemySize.Y), colorEnemy, false)
	}

	for _, p := range snap.Projectiles {
		drawCapsule(screen, p.Pos, snap.ProjectileSize, colorProjectile)
	}

	vector.DrawFilledRect(screen, float32(snap.Player.X), float32(snap.Player.Y),
		float32(snap.PlayerSize.X), float32(snap.PlayerSize.Y), colorShip, false)

	hud := fmt.Sprintf("Score: %d  Escaped: %d  Tick: %d  TPS: %.0f",
		snap.Kills, snap.Escaped, snap.Tick, ebiten.ActualTPS())
	if w.game.State().Paused {
		hud += "\nPAUSED (P to resume)"
	}
	ebitenutil.DebugPrint(screen, hud)
}

// drawCapsule approximates an upright ellipse inside the box at pos with
// two end circles joined by a rectangle.
func drawCapsule(dst *ebiten.Image, pos, size core.Vec2, clr color.Color) {
	r := float32(size.X / 2)
	x, y := float32(pos.X), float32(pos.Y)
	h := float32(size.Y)

	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
	if h > 2*r {
		vector.DrawFilledRect(dst, x, y+r, 2*r, h-2*r, clr, true)
	}
}

// Layout keeps the logical screen at playfield resolution.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(game *shooter.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	w := NewWindow(game, cfg, opts)

	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(float64(w.width)*opts.Scale), int(float64(w.height)*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.logger.Info("window opened", "seed", w.config.Seed, "tps", tps, "scale", opts.Scale)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
