// Package shooter implements a vertical arcade shooter.
// The ship moves along the bottom of the playfield and fires upward at
// enemies that spawn at the top and descend at constant speed.
package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the ship. It is never destroyed during a session.
type Player struct {
	Pos core.Vec2
}

// Projectile is a player shot travelling straight up.
type Projectile struct {
	ID    uint64
	Pos   core.Vec2
	spent bool // Registered a hit this tick; swept before the tick ends
}

// Enemy descends from the top of the playfield.
// Alive only ever goes from true to false.
type Enemy struct {
	ID    uint64
	Pos   core.Vec2
	Alive bool
}

// Hit records a projectile destroying an enemy.
type Hit struct {
	EnemyID      uint64
	ProjectileID uint64
	At           core.Vec2 // Enemy position when hit
}

// StepEvents describes what happened during one simulation tick.
type StepEvents struct {
	Tick    uint64
	Hits    []Hit
	Expired []uint64 // Projectiles that left through the top
	Escaped []uint64 // Enemies that left through the bottom alive
}

// World owns the player and every live projectile and enemy.
// All mutation goes through MoveLeft, MoveRight, Fire, SpawnEnemyAt and Step.
// A World is not safe for concurrent use; presenters read Snapshot copies.
type World struct {
	cfg         config.ShooterConfig
	player      Player
	projectiles []Projectile
	enemies     []Enemy
	nextID      uint64
	tick        uint64
	kills       int
	escaped     int
}

// NewWorld creates a world with the ship at its configured start position.
func NewWorld(cfg config.ShooterConfig) *World {
	return &World{
		cfg: cfg,
		player: Player{
			Pos: core.V(cfg.Player.StartX, cfg.Player.StartY),
		},
		projectiles: make([]Projectile, 0, 16),
		enemies:     make([]Enemy, 0, 16),
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.ShooterConfig {
	return w.cfg
}

// MoveLeft shifts the ship one step left. The ship is not clamped to the
// playfield and may leave the visible area.
func (w *World) MoveLeft() {
	w.player.Pos.X -= w.cfg.Player.Step
}

// MoveRight shifts the ship one step right. No clamping, see MoveLeft.
func (w *World) MoveRight() {
	w.player.Pos.X += w.cfg.Player.Step
}

// Fire launches a projectile from the ship's nose.
// Returns false only when a reject capacity policy refused the shot.
func (w *World) Fire() bool {
	limit := w.cfg.Limits.MaxProjectiles
	if limit > 0 && len(w.projectiles) >= limit {
		switch w.cfg.Limits.Policy {
		case config.PolicyReject:
			return false
		case config.PolicyDropOldest:
			w.projectiles = dropOldest(w.projectiles, limit)
		}
	}

	w.projectiles = append(w.projectiles, Projectile{
		ID:  w.newID(),
		Pos: w.player.Pos.Add(core.V(w.cfg.Projectile.OffsetX, 0)),
	})
	return true
}

// SpawnEnemyAt inserts a live enemy at the top edge at the given x.
// Returns the new enemy's ID, or false when a reject capacity policy refused it.
func (w *World) SpawnEnemyAt(x float64) (uint64, bool) {
	limit := w.cfg.Limits.MaxEnemies
	if limit > 0 && len(w.enemies) >= limit {
		switch w.cfg.Limits.Policy {
		case config.PolicyReject:
			return 0, false
		case config.PolicyDropOldest:
			w.enemies = dropOldest(w.enemies, limit)
		}
	}

	id := w.newID()
	w.enemies = append(w.enemies, Enemy{
		ID:    id,
		Pos:   core.V(x, 0),
		Alive: true,
	})
	return id, true
}

// Step advances the world by exactly one tick:
//  1. every projectile moves up by its speed
//  2. every living enemy moves down by its speed, then is tested against
//     the projectiles in insertion order; the first one closer than the
//     collision radius kills it and is spent
//  3. spent projectiles and those above the top edge are removed
//  4. dead enemies and those below the bottom edge are removed
//
// Resolution follows iteration order, not nearest distance: an enemy takes
// the first unspent projectile in range, and a projectile in range of
// several enemies is claimed by the earliest enemy.
func (w *World) Step() StepEvents {
	w.tick++
	ev := StepEvents{Tick: w.tick}

	for i := range w.projectiles {
		w.projectiles[i].Pos.Y -= w.cfg.Projectile.Speed
	}

	radius := w.cfg.Enemy.CollisionRadius
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive {
			continue
		}
		e.Pos.Y += w.cfg.Enemy.Speed

		for j := range w.projectiles {
			p := &w.projectiles[j]
			if p.spent {
				continue
			}
			if e.Pos.Dist(p.Pos) < radius {
				e.Alive = false
				p.spent = true
				ev.Hits = append(ev.Hits, Hit{EnemyID: e.ID, ProjectileID: p.ID, At: e.Pos})
				break
			}
		}
	}

	keptShots := w.projectiles[:0]
	for _, p := range w.projectiles {
		switch {
		case p.spent:
		case p.Pos.Y < 0:
			ev.Expired = append(ev.Expired, p.ID)
		default:
			keptShots = append(keptShots, p)
		}
	}
	w.projectiles = keptShots

	keptEnemies := w.enemies[:0]
	for _, e := range w.enemies {
		switch {
		case !e.Alive:
		case e.Pos.Y > w.cfg.Playfield.Height:
			ev.Escaped = append(ev.Escaped, e.ID)
		default:
			keptEnemies = append(keptEnemies, e)
		}
	}
	w.enemies = keptEnemies

	w.kills += len(ev.Hits)
	w.escaped += len(ev.Escaped)
	return ev
}

// Kills returns the number of enemies destroyed so far.
func (w *World) Kills() int {
	return w.kills
}

// Tick returns the number of Step calls so far.
func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) newID() uint64 {
	w.nextID++
	return w.nextID
}

// dropOldest removes leading elements until there is room for one more.
func dropOldest[T any](items []T, limit int) []T {
	excess := len(items) - limit + 1
	if excess <= 0 {
		return items
	}
	n := copy(items, items[excess:])
	return items[:n]
}
