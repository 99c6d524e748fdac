package fsm

import (
	"log/slog"
	"sync/atomic"
)

// LockFreeMachine keeps the state in an atomic cell and applies transitions
// with a compare-and-swap retry loop instead of a lock. It never blocks:
// losing a race costs a retry, not a wait.
//
// ABA is harmless here: State is a small closed value enum with no attached
// heap data, so a cell that has returned to an observed value is
// indistinguishable from one that never left it, and the swap remains
// correct without generation counters.
type LockFreeMachine struct {
	table *Table
	log   *slog.Logger

	current atomic.Uint32
}

var _ Machine = (*LockFreeMachine)(nil)

// NewLockFree creates a lock-free machine starting at StateIdle with the
// default table, unless overridden by options.
func NewLockFree(opts ...Option) *LockFreeMachine {
	o := newOptions(opts...)
	m := &LockFreeMachine{
		table: o.table,
		log:   o.log,
	}
	m.current.Store(uint32(o.initial))
	return m
}

// HandleEvent reads the current state, computes the candidate next state from
// the table, and installs it with a compare-and-swap. If another caller moved
// the state between the read and the swap, the whole read-lookup-swap
// sequence is retried against the freshly observed state; the candidate is
// recomputed every attempt, since the winning transition may have invalidated
// the rule that applied before. The loop ends when a swap succeeds or a
// lookup finds no rule.
//
// A lookup miss returns false immediately without touching the cell. Under
// sustained contention the retry loop has no backoff or fairness guarantee
// and can in principle spin unboundedly; callers needing latency bounds must
// impose them externally.
func (m *LockFreeMachine) HandleEvent(event Event) bool {
	for {
		observed := State(m.current.Load())
		next, ok := m.table.Lookup(observed, event)
		if !ok {
			return false
		}
		if m.current.CompareAndSwap(uint32(observed), uint32(next)) {
			logTransition(m.log, observed, event, next)
			return true
		}
		// Lost the race; loop recomputes the candidate from the new state.
	}
}

// CurrentState is a single atomic load; it never blocks.
func (m *LockFreeMachine) CurrentState() State {
	return State(m.current.Load())
}
