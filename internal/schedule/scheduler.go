// Package schedule provides a deterministic fixed-timestep scheduler.
// Periodic tasks are registered with their own period and fired against a
// virtual clock that only moves when Advance is called, so simulations can be
// driven by real timers in the platform layer or by synthetic ticks in tests.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidPeriod is returned when a task is registered with a non-positive period.
	ErrInvalidPeriod = errors.New("schedule: period must be positive")

	// ErrDuplicateTask is returned when a task name is registered twice.
	ErrDuplicateTask = errors.New("schedule: duplicate task")
)

// TaskStats reports how often a registered task has fired.
type TaskStats struct {
	Name   string
	Period time.Duration
	Fired  int64
	NextAt time.Duration
}

type task struct {
	name   string
	period time.Duration
	next   time.Duration
	fired  int64
	fn     func()
}

// Scheduler fires registered periodic tasks against a virtual clock.
// It is not safe for concurrent use; callers serialise access the same way
// they serialise all other simulation mutation.
type Scheduler struct {
	now   time.Duration
	tasks []*task
}

// New creates an empty scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{
		tasks: make([]*task, 0, 2),
	}
}

// Every registers fn to run once per period. The first firing happens one
// full period after the current virtual time.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) error {
	if period <= 0 {
		return fmt.Errorf("%w: %s=%v", ErrInvalidPeriod, name, period)
	}
	for _, t := range s.tasks {
		if t.name == name {
			return fmt.Errorf("%w: %s", ErrDuplicateTask, name)
		}
	}

	s.tasks = append(s.tasks, &task{
		name:   name,
		period: period,
		next:   s.now + period,
		fn:     fn,
	})
	return nil
}

// Advance moves virtual time forward by dt and fires every task occurrence
// due in (now, now+dt]. Occurrences run in chronological order; occurrences
// due at the same instant run in registration order. Returns the number of
// firings.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}

	target := s.now + dt
	fired := 0
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.period
		t.fired++
		fired++
		t.fn()
	}
	s.now = target
	return fired
}

// nextDue returns the task with the earliest occurrence at or before target.
// Ties go to the task registered first.
func (s *Scheduler) nextDue(target time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if t.next > target {
			continue
		}
		if best == nil || t.next < best.next {
			best = t
		}
	}
	return best
}

// Now returns the elapsed virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Reset rewinds virtual time to zero and realigns every task to its first period.
// Firing counters are cleared.
func (s *Scheduler) Reset() {
	s.now = 0
	for _, t := range s.tasks {
		t.next = t.period
		t.fired = 0
	}
}

// Stats returns per-task statistics in registration order.
func (s *Scheduler) Stats() []TaskStats {
	stats := make([]TaskStats, len(s.tasks))
	for i, t := range s.tasks {
		stats[i] = TaskStats{
			Name:   t.name,
			Period: t.period,
			Fired:  t.fired,
			NextAt: t.next,
		}
	}
	return stats
}

// Run advances the scheduler by a fixed frame on every tick of a wall-clock
// ticker until ctx is cancelled. onFrame, if non-nil, runs after each Advance
// on the same goroutine.
func (s *Scheduler) Run(ctx context.Context, frame time.Duration, onFrame func()) {
	if frame <= 0 {
		return
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Advance(frame)
			if onFrame != nil {
				onFrame()
			}
		}
	}
}
