package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, DefaultShooterConfig().Validate())
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse("shooter.yaml", GetDefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultShooterConfig(), cfg)
}

func TestLoadShooterCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("enemy:\n  speed: 4\ntiming:\n  spawn_interval: 1s\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadShooter(path)
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Enemy.Speed)
	assert.Equal(t, time.Second, cfg.Timing.SpawnInterval)
	// Untouched keys keep defaults
	assert.Equal(t, 16*time.Millisecond, cfg.Timing.StepInterval)
	assert.Equal(t, 20.0, cfg.Enemy.CollisionRadius)
	assert.Equal(t, PolicyNone, cfg.Limits.Policy)
}

func TestLoadShooterCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`
[playfield]
width = 1024.0

[timing]
step_interval = "20ms"

[limits]
max_enemies = 10
policy = "drop_oldest"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadShooter(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Playfield.Width)
	assert.Equal(t, 600.0, cfg.Playfield.Height)
	assert.Equal(t, 20*time.Millisecond, cfg.Timing.StepInterval)
	assert.Equal(t, 10, cfg.Limits.MaxEnemies)
	assert.Equal(t, PolicyDropOldest, cfg.Limits.Policy)
}

func TestLoadShooterMissingFile(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadShooterInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("enemy:\n  speed: -1\nlimits:\n  policy: sometimes\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := LoadShooter(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "enemy.speed")
	assert.Contains(t, err.Error(), "limits.policy")
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Projectile.Speed = 0
	cfg.Timing.StepInterval = 0
	cfg.Limits.MaxProjectiles = -3

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"projectile.speed", "timing.step_interval", "limits.max_projectiles"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestApplyShooterPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		enemySpeed    float64
		spawnInterval time.Duration
	}{
		{DifficultyEasy, 1, 1200 * time.Millisecond},
		{DifficultyNormal, 2, 800 * time.Millisecond},
		{DifficultyHard, 4, 400 * time.Millisecond},
		{DifficultyFixed, 2, 800 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShooterConfig()
			ApplyShooterPreset(&cfg, tc.preset)
			assert.Equal(t, tc.enemySpeed, cfg.Enemy.Speed)
			assert.Equal(t, tc.spawnInterval, cfg.Timing.SpawnInterval)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, ok := ParsePreset("")
	assert.True(t, ok)
	assert.Equal(t, DifficultyNormal, p)

	p, ok = ParsePreset("hard")
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, p)

	_, ok = ParsePreset("nightmare")
	assert.False(t, ok)
}

func TestMarshalYAMLRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Enemy.Speed = 3

	out, err := MarshalYAML(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o600))

	loaded, err := LoadShooter(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
