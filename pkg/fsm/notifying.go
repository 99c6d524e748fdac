package fsm

import (
	"log/slog"
	"sync"
)

// NotifyingMachine follows the same locked transition discipline as
// LockedMachine and additionally invokes a registered TransitionCallback
// once per successful transition, synchronously on the caller's goroutine.
//
// The (from, event, to) triple handed to the callback is captured inside the
// critical section, but the callback itself runs after the mutex is
// released. A callback may therefore re-enter HandleEvent (or replace the
// registration) without deadlocking. The trade-off: when two transitions
// race, their callbacks can be observed out of order by an external
// observer, though each triple is always exact. A slow callback stalls only
// its own caller, never the other callers' transitions.
type NotifyingMachine struct {
	table *Table
	log   *slog.Logger

	mu       sync.Mutex
	current  State
	callback TransitionCallback
}

var _ Machine = (*NotifyingMachine)(nil)

// NewNotifying creates a notifying machine starting at StateIdle with the
// default table, unless overridden by options. An initial callback may be
// supplied with WithCallback.
func NewNotifying(opts ...Option) *NotifyingMachine {
	o := newOptions(opts...)
	return &NotifyingMachine{
		table:    o.table,
		log:      o.log,
		current:  o.initial,
		callback: o.callback,
	}
}

// SetTransitionCallback registers the observer invoked after each successful
// transition. One registration per machine: calling it again replaces the
// previous handler, and nil clears it, skipping notification with no error.
// Registration is expected to happen at setup; replacing the handler while
// transitions are in flight is the caller's responsibility to sequence
// against its own callbacks.
func (m *NotifyingMachine) SetTransitionCallback(cb TransitionCallback) {
	m.mu.Lock()
	m.callback = cb
	m.mu.Unlock()
}

// HandleEvent applies the table rule for (current state, event) if one
// exists, then notifies the registered callback. Returns whether a
// transition happened; rejected events are never notified.
func (m *NotifyingMachine) HandleEvent(event Event) bool {
	m.mu.Lock()
	next, ok := m.table.Lookup(m.current, event)
	if !ok {
		m.mu.Unlock()
		return false
	}

	from := m.current
	m.current = next
	cb := m.callback
	m.mu.Unlock()

	logTransition(m.log, from, event, next)
	if cb != nil {
		cb(from, event, next)
	}
	return true
}

// CurrentState returns the current state under the transition lock.
func (m *NotifyingMachine) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
