// Package timer provides a tick-driven scheduler for one-shot delayed tasks.
//
// The scheduler has no goroutines and no wall clock. The owner moves time
// forward with Advance and fires due tasks with RunDue, both from the same
// loop that drives the rest of the simulation.
package timer

import (
	"math"
	"sort"
	"time"
)

// TaskID identifies a scheduled task
type TaskID uint64

// Tolerance is how close the clock must get to a due time for the task to
// fire. Tick periods such as 1/120s are not exact in binary, so a clock built
// from them lands a hair short of round delays.
const Tolerance = 1e-9

type task struct {
	id  TaskID
	due float64
	fn  func()
}

// Scheduler runs one-shot tasks once their delay has elapsed.
// Tasks cannot be cancelled once scheduled.
type Scheduler struct {
	now    float64 // seconds
	nextID TaskID
	tasks  []task
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Seconds converts a duration in seconds to a time.Duration, rounded to the nanosecond
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Now returns the scheduler clock
func (s *Scheduler) Now() time.Duration {
	return Seconds(s.now)
}

// Pending returns the number of tasks not yet fired
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// After schedules fn to run once delay has elapsed from the current clock.
// A non-positive delay makes the task due on the next RunDue.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, due: s.now + delay.Seconds(), fn: fn})
	return s.nextID
}

// Advance moves the clock forward by dt without firing anything
func (s *Scheduler) Advance(dt time.Duration) {
	s.AdvanceSeconds(dt.Seconds())
}

// AdvanceSeconds is Advance for a frame delta in seconds. The delta is not
// rounded, so frame periods that are not whole nanoseconds do not drift.
func (s *Scheduler) AdvanceSeconds(dt float64) {
	if dt > 0 {
		s.now += dt
	}
}

// RunDue fires every task whose due time is at or before the clock (within
// Tolerance), earliest
// first and in scheduling order on ties. It returns the number of tasks fired.
// Tasks scheduled by a callback are not run in the same pass.
func (s *Scheduler) RunDue() int {
	if len(s.tasks) == 0 {
		return 0
	}

	var due, rest []task
	for _, t := range s.tasks {
		if t.due <= s.now+Tolerance {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.tasks = rest

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	for _, t := range due {
		t.fn()
	}
	return len(due)
}
