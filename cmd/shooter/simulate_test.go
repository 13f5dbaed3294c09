package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

func runSession(t *testing.T, seed int64, ticks uint64) string {
	t.Helper()
	s := &session{
		game:      shooter.New(config.DefaultShooterConfig()),
		fireEvery: 3,
		logger:    log.New(io.Discard),
	}
	s.game.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	for s.ticks() < ticks {
		s.frame()
	}

	var buf bytes.Buffer
	printSummary(&buf, s, seed)
	return buf.String()
}

func TestSessionIsDeterministic(t *testing.T) {
	a := runSession(t, 42, 2000)
	b := runSession(t, 42, 2000)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Seed:         42")
}

func TestSessionReachesTargetTicks(t *testing.T) {
	s := &session{
		game:   shooter.New(config.DefaultShooterConfig()),
		logger: log.New(io.Discard),
	}
	s.game.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	for s.ticks() < 100 {
		s.frame()
	}

	assert.GreaterOrEqual(t, s.ticks(), uint64(100))
	assert.Less(t, s.ticks(), uint64(102), "one frame runs at most two ticks at 60 fps")
	assert.Empty(t, s.game.Snapshot().Projectiles, "fire-every 0 never fires")
}

func TestListPrintsShooter(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	runList(cmd, nil)
	assert.Contains(t, buf.String(), "shooter")
	assert.Contains(t, buf.String(), "Star Shooter")
}

func TestConfigPrintsYAML(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	flagConfig = ""
	flagDifficulty = "normal"
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	require.NoError(t, runConfig(cmd, nil))
	assert.Contains(t, buf.String(), "spawn_interval: 800ms")
}
