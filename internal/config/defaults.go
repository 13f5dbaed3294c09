package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the reference configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Player: Player{
			StartX: 400,
			StartY: 500,
			Step:   50,
			Width:  40,
			Height: 40,
		},
		Projectile: Projectile{
			Speed:   50,
			OffsetX: 15,
			Width:   5,
			Height:  10,
		},
		Enemy: Enemy{
			Speed:           2,
			Width:           30,
			Height:          30,
			CollisionRadius: 20,
		},
		Timing: Timing{
			StepInterval:  16 * time.Millisecond,
			SpawnInterval: 800 * time.Millisecond,
		},
		Limits: Limits{
			Policy: PolicyNone,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
