package domain

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned when an Initiator is invoked without
// overriding Initiate. This is a programming-contract violation and is never
// recovered internally.
var ErrNotImplemented = errors.New("initiate is not implemented")

// UnknownEventError is returned by every attach operation when the target
// event is not declared anywhere in the host's workflow. It is never
// recovered internally; a hook on an undeclared event is a wiring bug.
type UnknownEventError struct {
	Event Event
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("%s does not exist in the workflow.", e.Event)
}

// HaltError signals that a validator vetoed the transition. The error message
// is the validator's configured reason, verbatim, so hosts can surface it to
// end users without unwrapping.
type HaltError struct {
	Reason string
}

func (e *HaltError) Error() string {
	return e.Reason
}

// Halted unwraps err as a HaltError, if it is one. It mirrors the common
// errors.As dance for hosts that only need the reason string.
func Halted(err error) (*HaltError, bool) {
	var halt *HaltError
	if errors.As(err, &halt) {
		return halt, true
	}
	return nil, false
}
