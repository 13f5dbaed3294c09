// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the shooter.
package config

import "time"

// ShooterConfig contains all tunables of the shooter simulation.
type ShooterConfig struct {
	Playfield  Playfield  `yaml:"playfield" toml:"playfield"`
	Player     Player     `yaml:"player" toml:"player"`
	Projectile Projectile `yaml:"projectile" toml:"projectile"`
	Enemy      Enemy      `yaml:"enemy" toml:"enemy"`
	Timing     Timing     `yaml:"timing" toml:"timing"`
	Limits     Limits     `yaml:"limits" toml:"limits"`
}

// Playfield is the fixed world rectangle. Origin is top-left, Y grows downward.
type Playfield struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Player defines the ship.
type Player struct {
	StartX float64 `yaml:"start_x" toml:"start_x"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
	Step   float64 `yaml:"step" toml:"step"` // Horizontal distance per move command
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Projectile defines player shots.
type Projectile struct {
	Speed   float64 `yaml:"speed" toml:"speed"`       // Upward distance per tick
	OffsetX float64 `yaml:"offset_x" toml:"offset_x"` // Spawn offset from the ship's x
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
}

// Enemy defines descending enemies.
type Enemy struct {
	Speed           float64 `yaml:"speed" toml:"speed"` // Downward distance per tick
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	CollisionRadius float64 `yaml:"collision_radius" toml:"collision_radius"`
}

// Timing defines the two independent periodic triggers.
type Timing struct {
	StepInterval  time.Duration `yaml:"step_interval" toml:"step_interval"`
	SpawnInterval time.Duration `yaml:"spawn_interval" toml:"spawn_interval"`
}

// MarshalYAML writes durations in their string form ("16ms") so a dumped
// config reads like the embedded defaults.
func (t Timing) MarshalYAML() (interface{}, error) {
	return struct {
		StepInterval  string `yaml:"step_interval"`
		SpawnInterval string `yaml:"spawn_interval"`
	}{t.StepInterval.String(), t.SpawnInterval.String()}, nil
}

// CapacityPolicy selects what happens when an entity collection is full.
type CapacityPolicy string

const (
	// PolicyNone leaves collections uncapped.
	PolicyNone CapacityPolicy = "none"
	// PolicyReject drops the new entity when the collection is full.
	PolicyReject CapacityPolicy = "reject"
	// PolicyDropOldest evicts the oldest entity to make room.
	PolicyDropOldest CapacityPolicy = "drop_oldest"
)

// Limits caps live entity counts. Zero means unlimited.
type Limits struct {
	MaxProjectiles int            `yaml:"max_projectiles" toml:"max_projectiles"`
	MaxEnemies     int            `yaml:"max_enemies" toml:"max_enemies"`
	Policy         CapacityPolicy `yaml:"policy" toml:"policy"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyShooterPreset adjusts enemy pressure for a preset.
// Presets are static; nothing ramps up during a session. Normal and fixed
// leave the config untouched.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed *= 0.5
		cfg.Timing.SpawnInterval = cfg.Timing.SpawnInterval * 3 / 2
	case DifficultyHard:
		cfg.Enemy.Speed *= 2
		cfg.Timing.SpawnInterval /= 2
	}
}
