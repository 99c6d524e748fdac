package fsm

import "fmt"

// State is one value of the machine's closed lifecycle set.
// The zero value is StateIdle, the initial state of every machine.
type State uint32

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateStopped

	stateCount = iota // number of valid states, for validation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", uint32(s))
	}
}

// ParseState converts a lowercase state name as used in table definitions
// back into a State.
func ParseState(name string) (State, error) {
	switch name {
	case "idle":
		return StateIdle, nil
	case "running":
		return StateRunning, nil
	case "paused":
		return StatePaused, nil
	case "stopped":
		return StateStopped, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
}

// Event triggers a state transition attempt. Closed set, like State.
type Event uint32

const (
	EventStart Event = iota
	EventPause
	EventResume
	EventStop

	eventCount = iota
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventStop:
		return "stop"
	default:
		return fmt.Sprintf("event(%d)", uint32(e))
	}
}

// ParseEvent converts a lowercase event name as used in table definitions
// back into an Event.
func ParseEvent(name string) (Event, error) {
	switch name {
	case "start":
		return EventStart, nil
	case "pause":
		return EventPause, nil
	case "resume":
		return EventResume, nil
	case "stop":
		return EventStop, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}
}
