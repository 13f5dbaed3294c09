package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every speed, size and period is a positive finite
// number and that the capacity policy is known. All violations are reported
// together.
func (c ShooterConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}
	finite := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	finite("player.start_x", c.Player.StartX)
	finite("player.start_y", c.Player.StartY)
	positive("player.step", c.Player.Step)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("projectile.speed", c.Projectile.Speed)
	finite("projectile.offset_x", c.Projectile.OffsetX)
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.collision_radius", c.Enemy.CollisionRadius)

	if c.Timing.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: timing.step_interval must be positive, got %v", ErrInvalidConfig, c.Timing.StepInterval))
	}
	if c.Timing.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: timing.spawn_interval must be positive, got %v", ErrInvalidConfig, c.Timing.SpawnInterval))
	}

	if c.Limits.MaxProjectiles < 0 {
		errs = append(errs, fmt.Errorf("%w: limits.max_projectiles must not be negative", ErrInvalidConfig))
	}
	if c.Limits.MaxEnemies < 0 {
		errs = append(errs, fmt.Errorf("%w: limits.max_enemies must not be negative", ErrInvalidConfig))
	}
	switch c.Limits.Policy {
	case PolicyNone, PolicyReject, PolicyDropOldest:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown limits.policy %q", ErrInvalidConfig, c.Limits.Policy))
	}

	return errors.Join(errs...)
}
