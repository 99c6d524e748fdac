package fsm

import (
	"io"
	"log/slog"
)

// Machine is the contract shared by all three implementations. Callers that
// only send events and read state should depend on this interface and let the
// construction site pick the variant.
type Machine interface {
	// HandleEvent attempts the transition the table defines for the current
	// state and the given event. It returns true and moves to the new state
	// if a rule exists, or false and leaves the state untouched if not.
	// Rejection is not an error; the machine stays usable.
	HandleEvent(Event) bool

	// CurrentState returns a consistent snapshot of the current state. Safe
	// to call concurrently with transitions.
	CurrentState() State
}

// TransitionCallback observes a successful transition. It receives the exact
// state the machine left, the event that triggered the transition, and the
// state it entered. See NotifyingMachine for the invocation discipline.
type TransitionCallback func(from State, event Event, to State)

// Option configures a machine during construction.
type Option func(*options)

type options struct {
	table    *Table
	initial  State
	log      *slog.Logger
	callback TransitionCallback
}

func newOptions(opts ...Option) options {
	o := options{
		table:   DefaultTable(),
		initial: StateIdle,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTable sets the transition table, which must be fully built before the
// machine is constructed. Nil tables are ignored, keeping DefaultTable.
func WithTable(t *Table) Option {
	return func(o *options) {
		if t != nil {
			o.table = t
		}
	}
}

// WithInitialState overrides the initial state, which defaults to StateIdle.
func WithInitialState(s State) Option {
	return func(o *options) {
		o.initial = s
	}
}

// WithLogger sets the logger that receives a debug record per successful
// transition. Nil loggers are ignored; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithCallback registers the initial transition callback. Only
// NotifyingMachine consults it; the other variants ignore this option.
func WithCallback(cb TransitionCallback) Option {
	return func(o *options) {
		o.callback = cb
	}
}

func logTransition(log *slog.Logger, from State, event Event, to State) {
	log.Debug("state transition",
		slog.String("from", from.String()),
		slog.String("event", event.String()),
		slog.String("to", to.String()),
	)
}
