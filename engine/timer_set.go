package engine

import (
	"sort"
	"time"
)

// TimerSet holds named one-shot timers fired cooperatively from the main
// loop. Scheduling under an existing name replaces the previous timer.
// All methods must be called from the loop goroutine.
type TimerSet struct {
	clock  TimeProvider
	timers map[string]*timerEntry
}

type timerEntry struct {
	name     string
	deadline time.Time
	fn       func()
}

// NewTimerSet creates an empty timer set driven by the given clock.
func NewTimerSet(clock TimeProvider) *TimerSet {
	return &TimerSet{
		clock:  clock,
		timers: make(map[string]*timerEntry),
	}
}

// Schedule arms a named timer to fire after delay. An existing timer with
// the same name is replaced.
func (ts *TimerSet) Schedule(name string, delay time.Duration, fn func()) {
	ts.timers[name] = &timerEntry{
		name:     name,
		deadline: ts.clock.Now().Add(delay),
		fn:       fn,
	}
}

// Cancel disarms the named timer. Cancelling an absent name is a no-op.
func (ts *TimerSet) Cancel(name string) {
	delete(ts.timers, name)
}

// CancelAll disarms every timer.
func (ts *TimerSet) CancelAll() {
	clear(ts.timers)
}

// Pending reports whether the named timer is armed.
func (ts *TimerSet) Pending(name string) bool {
	_, ok := ts.timers[name]
	return ok
}

// Len returns the number of armed timers.
func (ts *TimerSet) Len() int {
	return len(ts.timers)
}

// Names returns the armed timer names in sorted order.
func (ts *TimerSet) Names() []string {
	if len(ts.timers) == 0 {
		return nil
	}
	names := make([]string, 0, len(ts.timers))
	for name := range ts.timers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fire runs every timer due at now, ordered by deadline then name.
// Due timers are collected before any callback runs, so a callback that
// schedules a new timer never sees it fire in the same batch, and a
// callback that cancels a later timer suppresses it.
func (ts *TimerSet) Fire(now time.Time) {
	if len(ts.timers) == 0 {
		return
	}

	due := make([]*timerEntry, 0, len(ts.timers))
	for _, e := range ts.timers {
		if !e.deadline.After(now) {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].deadline.Equal(due[j].deadline) {
			return due[i].deadline.Before(due[j].deadline)
		}
		return due[i].name < due[j].name
	})

	for _, e := range due {
		current, ok := ts.timers[e.name]
		if !ok || current != e {
			continue
		}
		delete(ts.timers, e.name)
		e.fn()
	}
}
