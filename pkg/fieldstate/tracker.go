package fieldstate

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Listener is notified after every transition, including self-transitions.
type Listener func(ctx context.Context, t Transition)

// Option configures a Tracker.
type Option func(*Tracker)

// WithListener registers a transition listener. Nil listeners are ignored.
func WithListener(l Listener) Option {
	return func(t *Tracker) {
		if l != nil {
			t.listeners = append(t.listeners, l)
		}
	}
}

// transitions is the field lifecycle. There is no terminal state: every state
// accepts every event.
var transitions = map[State]map[Event]State{
	Untouched: {EventPass: Valid, EventFail: Invalid, EventClear: Untouched},
	Valid:     {EventPass: Valid, EventFail: Invalid, EventClear: Untouched},
	Invalid:   {EventPass: Valid, EventFail: Invalid, EventClear: Untouched},
}

// Tracker holds the current State of every field it has seen.
// Fields it has never seen are Untouched.
type Tracker struct {
	mu        sync.RWMutex
	states    map[string]State
	listeners []Listener
}

// New creates an empty tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{states: make(map[string]State)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current state of field.
func (t *Tracker) State(field string) State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if s, ok := t.states[field]; ok {
		return s
	}
	return Untouched
}

// Fire moves field along the edge for event.
func (t *Tracker) Fire(ctx context.Context, field string, event Event, message string) (Transition, error) {
	if event == "" {
		return Transition{}, fmt.Errorf("%w: event cannot be empty", ErrInvalidEvent)
	}

	t.mu.Lock()
	from, ok := t.states[field]
	if !ok {
		from = Untouched
	}
	to, ok := transitions[from][event]
	if !ok {
		t.mu.Unlock()
		return Transition{}, fmt.Errorf("%w: no transition from %s for %q", ErrInvalidEvent, from.Name(), event.Name())
	}
	if to == Untouched {
		delete(t.states, field)
	} else {
		t.states[field] = to
	}
	listeners := t.listeners
	t.mu.Unlock()

	tr := Transition{Field: field, From: from, To: to, Event: event, Message: message}
	for _, l := range listeners {
		l(ctx, tr)
	}
	return tr, nil
}

// Apply records an evaluation outcome for its field.
func (t *Tracker) Apply(ctx context.Context, out validator.Outcome) Transition {
	tr, _ := t.Fire(ctx, out.Field, EventFor(out), out.Message)
	return tr
}

// Clear returns field to Untouched.
func (t *Tracker) Clear(ctx context.Context, field string) Transition {
	tr, _ := t.Fire(ctx, field, EventClear, "")
	return tr
}

// Forget drops field without notifying listeners, used when the field is removed.
func (t *Tracker) Forget(field string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, field)
}

// Reset returns every field to Untouched without notifying listeners and
// returns the states the touched fields held before.
func (t *Tracker) Reset() map[string]State {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := maps.Clone(t.states)
	clear(t.states)
	return prev
}

// Snapshot returns the states of every touched field.
func (t *Tracker) Snapshot() map[string]State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.states)
}
