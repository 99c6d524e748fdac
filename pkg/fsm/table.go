package fsm

import (
	"fmt"
	"sync"
)

// Rule defines one transition: when the machine is in From and receives On,
// it moves to To.
type Rule struct {
	From State
	On   Event
	To   State
}

type transitionKey struct {
	from State
	on   Event
}

// Table is an immutable mapping from (state, event) pairs to the next state.
// It is built once, validated at construction, and never mutated afterwards,
// so any number of machines and goroutines can share one Table and read it
// without synchronization. A pair absent from the table means the event is
// not valid from that state; Lookup reports this through its second result,
// it is not an error.
type Table struct {
	rules map[transitionKey]State
}

// NewTable builds a Table from the given rules. It rejects empty rule sets,
// rules referencing states or events outside the closed sets, and two rules
// for the same (from, on) pair.
func NewTable(rules []Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{rules: make(map[transitionKey]State, len(rules))}
	for i, r := range rules {
		if r.From >= stateCount || r.To >= stateCount {
			return nil, fmt.Errorf("rule[%d]: %w", i, ErrUnknownState)
		}
		if r.On >= eventCount {
			return nil, fmt.Errorf("rule[%d]: %w", i, ErrUnknownEvent)
		}
		key := transitionKey{from: r.From, on: r.On}
		if _, exists := t.rules[key]; exists {
			return nil, fmt.Errorf("rule[%d] (%s, %s): %w", i, r.From, r.On, ErrDuplicateRule)
		}
		t.rules[key] = r.To
	}
	return t, nil
}

// MustNewTable builds a Table and panics on invalid rules, following the
// fail-fast pattern for tables defined as package-level values.
func MustNewTable(rules []Rule) *Table {
	t, err := NewTable(rules)
	if err != nil {
		panic(fmt.Sprintf("failed to build transition table: %v", err))
	}
	return t
}

// Lookup returns the state the machine moves to when event arrives in state
// from, and whether such a rule exists. Pure function of its inputs.
func (t *Table) Lookup(from State, on Event) (State, bool) {
	to, ok := t.rules[transitionKey{from: from, on: on}]
	return to, ok
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// defaultTable holds the baseline lifecycle rules. Stopped has no outgoing
// rules, so reaching it is permanent for a machine instance.
var defaultTable = sync.OnceValue(func() *Table {
	return MustNewTable([]Rule{
		{From: StateIdle, On: EventStart, To: StateRunning},
		{From: StateRunning, On: EventPause, To: StatePaused},
		{From: StatePaused, On: EventResume, To: StateRunning},
		{From: StateRunning, On: EventStop, To: StateStopped},
		{From: StatePaused, On: EventStop, To: StateStopped},
	})
})

// DefaultTable returns the process-wide baseline table shared by every
// machine that is not given an explicit table. Built on first use, immutable
// thereafter.
func DefaultTable() *Table {
	return defaultTable()
}
