// Package fsm provides a small concurrent finite-state-machine engine built
// around an immutable transition table and three interchangeable machine
// implementations with different synchronization disciplines.
//
// The package models a fixed lifecycle — Idle, Running, Paused, Stopped —
// driven by the events Start, Pause, Resume and Stop. A Table maps
// (current state, event) pairs to the next state; pairs absent from the table
// mean the event is invalid from that state and is rejected without touching
// the machine. Rejection is a normal boolean-false result, never an error.
//
// Three implementations satisfy the Machine interface:
//
//   - LockedMachine guards the state cell with a mutex; lookup and assignment
//     form one critical section.
//   - LockFreeMachine keeps the state in an atomic cell and applies
//     transitions with a compare-and-swap retry loop; it never blocks but may
//     retry under contention.
//   - NotifyingMachine adds a synchronous observer to the locked discipline,
//     invoked once per successful transition with the (from, event, to)
//     triple.
//
// The variant is selected once at construction; all three expose the same
// contract, so callers depend only on Machine.
//
// # Usage
//
//	m := fsm.NewLocked()
//
//	if m.HandleEvent(fsm.EventStart) {
//	    // state is now fsm.StateRunning
//	}
//	m.HandleEvent(fsm.EventStop)
//	fmt.Println(m.CurrentState()) // Stopped
//
// Custom tables are built once at startup, either programmatically with
// NewTable or from a YAML document with LoadTable, and shared across any
// number of machines:
//
//	table := fsm.MustNewTable([]fsm.Rule{
//	    {From: fsm.StateIdle, On: fsm.EventStart, To: fsm.StateRunning},
//	    {From: fsm.StateRunning, On: fsm.EventStop, To: fsm.StateStopped},
//	})
//	m := fsm.NewLockFree(fsm.WithTable(table))
//
// # Concurrency
//
// Any number of goroutines may call HandleEvent and CurrentState on a shared
// machine without external coordination. Transitions are linearizable: every
// successful transition observes a single agreed-upon prior state, and two
// concurrent callers can never both apply a transition from the same prior
// state. Events are consumed by whichever caller wins the race; the package
// provides no queueing, ordering or backpressure between callers.
//
// # Observability
//
// Each machine accepts a *slog.Logger via WithLogger and emits a debug record
// per successful transition. Logging is diagnostic only and not part of the
// transition contract. For programmatic observation use NotifyingMachine,
// optionally paired with Journal which timestamps and collects the
// transitions it sees.
package fsm
