package fsm

import "errors"

// Package errors cover table construction only. Runtime rejections — an event
// with no rule from the current state — are reported as a boolean false from
// HandleEvent, never as an error.
var (
	// ErrEmptyTable is returned when a table is built from zero rules.
	ErrEmptyTable = errors.New("transition table must contain at least one rule")

	// ErrDuplicateRule is returned when two rules share the same (from, on) pair.
	ErrDuplicateRule = errors.New("duplicate transition rule for (state, event) pair")

	// ErrUnknownState is returned when a rule references a state outside the closed set.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownEvent is returned when a rule references an event outside the closed set.
	ErrUnknownEvent = errors.New("unknown event")
)
