package engine

import "errors"

// State is the submission lifecycle position. Transitions:
//
//	idle → validating on submit
//	validating → idle when any rule fails (errors shown)
//	validating → sending when all rules pass and a sink is configured
//	validating → success directly when no sink is configured
//	sending → success on transport acceptance
//	sending → error on transport failure or non-success response
//
// success and error are terminal until Reopen returns the form to idle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSending
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSending:
		return "sending"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrSubmissionInFlight rejects a submit issued while a prior one is still in
// the sending state. The engine never queues or retries.
var ErrSubmissionInFlight = errors.New("engine: submission already in flight")
