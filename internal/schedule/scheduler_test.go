package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerTwoPeriods(t *testing.T) {
	s := New()
	var order []string
	steps, spawns := 0, 0

	require.NoError(t, s.Every("step", 16*time.Millisecond, func() {
		steps++
		order = append(order, "step")
	}))
	require.NoError(t, s.Every("spawn", 800*time.Millisecond, func() {
		spawns++
		order = append(order, "spawn")
	}))

	fired := s.Advance(800 * time.Millisecond)

	assert.Equal(t, 50, steps)
	assert.Equal(t, 1, spawns)
	assert.Equal(t, 51, fired)
	assert.Equal(t, 800*time.Millisecond, s.Now())

	// Both are due at 800ms; registration order breaks the tie.
	require.Len(t, order, 51)
	assert.Equal(t, "step", order[49])
	assert.Equal(t, "spawn", order[50])
}

func TestSchedulerChronologicalOrder(t *testing.T) {
	s := New()
	var order []string

	require.NoError(t, s.Every("slow", 30*time.Millisecond, func() { order = append(order, "slow") }))
	require.NoError(t, s.Every("fast", 20*time.Millisecond, func() { order = append(order, "fast") }))

	s.Advance(60 * time.Millisecond)

	// fast@20, slow@30, fast@40, slow@60 and fast@60 (slow registered first)
	assert.Equal(t, []string{"fast", "slow", "fast", "slow", "fast"}, order)
}

func TestSchedulerAccumulatesPartialFrames(t *testing.T) {
	s := New()
	count := 0
	require.NoError(t, s.Every("step", 16*time.Millisecond, func() { count++ }))

	frame := time.Second / 60
	for i := 0; i < 60; i++ {
		s.Advance(frame)
	}

	// 1s of 60Hz frames against a 16ms step: floor(1000/16) = 62 steps.
	assert.Equal(t, 62, count)
}

func TestSchedulerNonPositiveAdvance(t *testing.T) {
	s := New()
	count := 0
	require.NoError(t, s.Every("step", time.Millisecond, func() { count++ }))

	assert.Zero(t, s.Advance(0))
	assert.Zero(t, s.Advance(-time.Second))
	assert.Zero(t, count)
	assert.Zero(t, s.Now())
}

func TestSchedulerRegistrationErrors(t *testing.T) {
	s := New()

	err := s.Every("zero", 0, func() {})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	require.NoError(t, s.Every("step", time.Millisecond, func() {}))
	err = s.Every("step", time.Second, func() {})
	assert.ErrorIs(t, err, ErrDuplicateTask)
}

func TestSchedulerResetAndStats(t *testing.T) {
	s := New()
	require.NoError(t, s.Every("step", 10*time.Millisecond, func() {}))

	s.Advance(35 * time.Millisecond)
	stats := s.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, "step", stats[0].Name)
	assert.EqualValues(t, 3, stats[0].Fired)
	assert.Equal(t, 40*time.Millisecond, stats[0].NextAt)

	s.Reset()
	stats = s.Stats()
	assert.Zero(t, s.Now())
	assert.Zero(t, stats[0].Fired)
	assert.Equal(t, 10*time.Millisecond, stats[0].NextAt)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	s := New()
	require.NoError(t, s.Every("step", time.Millisecond, func() {}))

	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond, func() {
			frames++
			if frames == 5 {
				cancel()
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.GreaterOrEqual(t, frames, 5)
}
