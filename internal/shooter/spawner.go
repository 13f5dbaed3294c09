package shooter

import "math"

// RandSource supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Spawner creates enemies at random horizontal positions along the top edge.
// Cadence is owned by the caller's scheduler, not by the spawner.
type Spawner struct {
	rng   RandSource
	width float64
}

// NewSpawner creates a spawner for a playfield of the given width.
func NewSpawner(width float64, rng RandSource) *Spawner {
	return &Spawner{rng: rng, width: width}
}

// SpawnEnemy inserts one live enemy at y = 0 with x uniform in [0, width).
func (s *Spawner) SpawnEnemy(w *World) (uint64, bool) {
	x := s.rng.Float64() * s.width
	if x >= s.width {
		// Float64 can round up to width for large playfields.
		x = math.Nextafter(s.width, 0)
	}
	return w.SpawnEnemyAt(x)
}
