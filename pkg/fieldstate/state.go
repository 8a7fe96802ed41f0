package fieldstate

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// State is the UI-observable validation state of one field.
type State string

const (
	Untouched State = "untouched"
	Valid     State = "valid"
	Invalid   State = "invalid"
)

func (s State) Name() string {
	return string(s)
}

// Event drives a field from one state to another.
type Event string

const (
	EventPass  Event = "pass"
	EventFail  Event = "fail"
	EventClear Event = "clear"
)

func (e Event) Name() string {
	return string(e)
}

// EventFor maps an evaluation outcome to the event it fires.
func EventFor(out validator.Outcome) Event {
	if out.Valid {
		return EventPass
	}
	return EventFail
}

// Transition records one state change of a field.
type Transition struct {
	Field   string
	From    State
	To      State
	Event   Event
	Message string
}

// Changed reports whether the transition moved the field to a different state.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// ErrInvalidEvent is returned for an empty event or one outside the lifecycle.
var ErrInvalidEvent = errors.New("invalid event")
