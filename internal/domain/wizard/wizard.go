// Package wizard implements the linear step machines behind the persona flows.
//
// Every flow is an ordered list of steps with an explicit transition table:
//
//	step[i] --next-->     step[i+1]   (marks step[i] completed, guarded by validation)
//	step[i] --back-->     step[i-1]   (never validated)
//	step[n-1] --complete--> done      (marks the last step completed)
//
// Any pair missing from the table is rejected with ErrInvalidTransition.
package wizard

import (
	"slices"

	"storefront/internal/errors"
)

// Step names one screen of a flow.
type Step string

// Event is a navigation request coming from the presentation layer.
type Event string

const (
	EventNext     Event = "next"
	EventBack     Event = "back"
	EventComplete Event = "complete"
)

// IsValid checks if the Event is a valid value.
func (e Event) IsValid() bool {
	switch e {
	case EventNext, EventBack, EventComplete:
		return true
	default:
		return false
	}
}

// Sentinel errors for wizard navigation.
var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrUnknownEvent      = errors.New("unknown wizard event")
)

// stepDone is the pseudo-step reached by the complete event.
const stepDone Step = "done"

// Flow is an immutable ordered step sequence with its transition table.
type Flow struct {
	name        string
	steps       []Step
	transitions map[Step]map[Event]Step
}

// NewFlow builds a flow and its transition table from the ordered steps.
func NewFlow(name string, steps ...Step) Flow {
	table := make(map[Step]map[Event]Step, len(steps))
	for i, step := range steps {
		row := make(map[Event]Step, 2)
		if i+1 < len(steps) {
			row[EventNext] = steps[i+1]
		} else {
			row[EventComplete] = stepDone
		}
		if i > 0 {
			row[EventBack] = steps[i-1]
		}
		table[step] = row
	}

	return Flow{
		name:        name,
		steps:       slices.Clone(steps),
		transitions: table,
	}
}

// Name returns the flow name.
func (f Flow) Name() string {
	return f.name
}

// Steps returns a copy of the ordered steps.
func (f Flow) Steps() []Step {
	return slices.Clone(f.steps)
}

// Start returns the initial state: the first step, nothing completed.
func (f Flow) Start() State {
	state := State{Flow: f.name, Completed: []Step{}}
	if len(f.steps) > 0 {
		state.Current = f.steps[0]
		state.Position = 1
	}
	state.Total = len(f.steps)

	return state
}

// CanTransition reports whether the table has an entry for the step and event.
func (f Flow) CanTransition(from Step, event Event) bool {
	_, ok := f.transitions[from][event]

	return ok
}

// Fire applies an event to the state. A next event is first checked by the gate; when the gate
// rejects the current step, the state is returned unchanged together with the failing result.
// The input state is never modified.
func (f Flow) Fire(state State, event Event, gate Gate) (State, Result, error) {
	if !event.IsValid() {
		return state, Passed(), errors.Wrapf(ErrUnknownEvent, "event %q", event)
	}
	if state.Done {
		return state, Passed(), errors.Wrapf(ErrInvalidTransition, "%s flow is already complete", f.name)
	}

	target, ok := f.transitions[state.Current][event]
	if !ok {
		return state, Passed(), errors.Wrapf(ErrInvalidTransition, "%s: %s on step %q", f.name, event, state.Current)
	}

	if event == EventNext && gate != nil {
		if result := gate.Validate(state.Current); !result.OK {
			return state, result, nil
		}
	}

	next := state.clone()
	switch event {
	case EventNext:
		next.markCompleted(state.Current)
		next.Current = target
		next.Position++
	case EventBack:
		next.Current = target
		next.Position--
	case EventComplete:
		next.markCompleted(state.Current)
		next.Done = true
	}

	return next, Passed(), nil
}

// State is the navigation state of one flow instance.
type State struct {
	Flow      string `json:"flow"`
	Current   Step   `json:"current"`
	Position  int    `json:"position"` // 1-based index of Current.
	Total     int    `json:"total"`
	Completed []Step `json:"completed"`
	Done      bool   `json:"done"`
}

// IsCompleted reports whether the step has been completed.
func (s State) IsCompleted(step Step) bool {
	return slices.Contains(s.Completed, step)
}

func (s *State) markCompleted(step Step) {
	if !slices.Contains(s.Completed, step) {
		s.Completed = append(s.Completed, step)
	}
}

func (s State) clone() State {
	s.Completed = slices.Clone(s.Completed)

	return s
}

// Gate validates the input collected on a step before the machine may leave it.
type Gate interface {
	Validate(step Step) Result
}

// GateFunc adapts a function to the Gate interface.
type GateFunc func(step Step) Result

// Validate calls f(step).
func (f GateFunc) Validate(step Step) Result {
	return f(step)
}
