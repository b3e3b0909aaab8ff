package schedule

import "time"

// Tracker accumulates progress statistics over a single Search call, mirroring
// the periodic "total / cost / speed / queue size / map size" progress line a
// long-running scheduler needs for observability. The zero value is usable
// directly: Search treats a nil *Tracker as "don't track" and a non-nil,
// freshly zeroed one as "start counting from here".
type Tracker struct {
	// StatesExplored counts how many popped-from-the-open-set states were
	// expanded (i.e. not a stale queue entry and not the final state).
	StatesExplored int

	// Collisions counts expansions that produced a state hash already seen
	// at an equal-or-lower cost, and were therefore discarded rather than
	// re-queued.
	Collisions int

	finalQueueSize int
	start          time.Time
	elapsed        time.Duration
}

// Start marks the beginning of a tracked search. Calling it is optional;
// Elapsed is simply zero until Start is called.
func (t *Tracker) Start() {
	if t == nil {
		return
	}
	t.start = time.Now()
}

// Stop freezes Elapsed at the time since Start. Safe to call on a nil
// Tracker or one that was never Started.
func (t *Tracker) Stop() {
	if t == nil || t.start.IsZero() {
		return
	}
	t.elapsed = time.Since(t.start)
}

// statesExploredOrZero is a nil-safe accessor used by Search's cancellation
// error message; it never mutates t.
func (t *Tracker) statesExploredOrZero() int {
	if t == nil {
		return 0
	}
	return t.StatesExplored
}

// Snapshot is a point-in-time, dependency-free copy of a Tracker's counters,
// suitable for logging or returning from an API that shouldn't leak a
// pointer into the scheduler's internals.
type Snapshot struct {
	StatesExplored int
	Collisions     int
	QueueSize      int
	Elapsed        time.Duration
}

// Snapshot copies t's current counters. Safe to call on a nil Tracker,
// returning the zero Snapshot.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	return Snapshot{
		StatesExplored: t.StatesExplored,
		Collisions:     t.Collisions,
		QueueSize:      t.finalQueueSize,
		Elapsed:        t.elapsed,
	}
}
