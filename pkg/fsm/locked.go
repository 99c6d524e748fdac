package fsm

import (
	"log/slog"
	"sync"
)

// LockedMachine guards the state cell with a mutex. The table lookup and the
// state assignment form one critical section, so two concurrent callers can
// never both observe the same prior state and both apply a transition from
// it. Competing callers block for the duration of one lookup-and-assign.
type LockedMachine struct {
	table *Table
	log   *slog.Logger

	mu      sync.Mutex
	current State
}

var _ Machine = (*LockedMachine)(nil)

// NewLocked creates a mutex-guarded machine starting at StateIdle with the
// default table, unless overridden by options.
func NewLocked(opts ...Option) *LockedMachine {
	o := newOptions(opts...)
	return &LockedMachine{
		table:   o.table,
		log:     o.log,
		current: o.initial,
	}
}

// HandleEvent applies the table rule for (current state, event) if one
// exists and reports whether a transition happened.
func (m *LockedMachine) HandleEvent(event Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, ok := m.table.Lookup(m.current, event)
	if !ok {
		return false
	}

	from := m.current
	m.current = next
	logTransition(m.log, from, event, next)
	return true
}

// CurrentState returns the current state under the same lock that guards
// transitions, so it never observes a partial update.
func (m *LockedMachine) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
