package fsm

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TransitionRecord is one observed transition, stamped with a unique ID and
// the wall-clock time the journal saw it.
type TransitionRecord struct {
	ID    uuid.UUID
	From  State
	Event Event
	To    State
	At    time.Time
}

// Journal is a ready-made TransitionCallback target that collects every
// transition it is told about. It keeps records in memory for the lifetime
// of the process; it is an observer, not a persistence layer.
//
// Journal has its own lock, so one journal may serve several machines at
// once, and Records may be read while machines are still transitioning.
type Journal struct {
	mu      sync.Mutex
	records []TransitionRecord
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends one transition. Its signature matches TransitionCallback,
// so it can be passed directly to SetTransitionCallback or WithCallback.
func (j *Journal) Record(from State, event Event, to State) {
	rec := TransitionRecord{
		ID:    uuid.New(),
		From:  from,
		Event: event,
		To:    to,
		At:    time.Now(),
	}

	j.mu.Lock()
	j.records = append(j.records, rec)
	j.mu.Unlock()
}

// Records returns a copy of everything recorded so far, in arrival order.
func (j *Journal) Records() []TransitionRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]TransitionRecord, len(j.records))
	copy(out, j.records)
	return out
}

// Len returns the number of recorded transitions.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.records)
}
