package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// EntityView is the render-ready position of a projectile or enemy.
type EntityView struct {
	ID  uint64
	Pos core.Vec2
}

// Snapshot is a read-only copy of the world for presentation and for
// determinism checks. Holding a Snapshot never aliases World storage.
type Snapshot struct {
	Tick      uint64
	Playfield core.Vec2 // Width, height

	Player     core.Vec2
	PlayerSize core.Vec2

	Projectiles    []EntityView // Insertion order
	ProjectileSize core.Vec2

	Enemies   []EntityView // Live enemies only, insertion order
	EnemySize core.Vec2

	Kills   int
	Escaped int
}

// Snapshot returns a copy of the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           w.tick,
		Playfield:      core.V(w.cfg.Playfield.Width, w.cfg.Playfield.Height),
		Player:         w.player.Pos,
		PlayerSize:     core.V(w.cfg.Player.Width, w.cfg.Player.Height),
		Projectiles:    make([]EntityView, 0, len(w.projectiles)),
		ProjectileSize: core.V(w.cfg.Projectile.Width, w.cfg.Projectile.Height),
		Enemies:        make([]EntityView, 0, len(w.enemies)),
		EnemySize:      core.V(w.cfg.Enemy.Width, w.cfg.Enemy.Height),
		Kills:          w.kills,
		Escaped:        w.escaped,
	}

	for _, p := range w.projectiles {
		if p.spent {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, EntityView{ID: p.ID, Pos: p.Pos})
	}
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		snap.Enemies = append(snap.Enemies, EntityView{ID: e.ID, Pos: e.Pos})
	}
	return snap
}
