package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the wrap target for every refused status change.
// Callers classify with errors.Is and inspect the concrete
// InvalidTransitionError for the attempted edge.
var ErrInvalidTransition = errors.New("invalid order status transition")

// InvalidTransitionError reports a status change request for which no edge
// exists in the state machine. The stored order state is left untouched and
// the operation is never retried; the caller is expected to surface the
// refusal to the user as a rejected action.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError builds the error for the attempted edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("%s: order is already in status %s (%s)",
			ErrInvalidTransition, e.From, e.From.Code())
	}
	return fmt.Sprintf("%s: no transition from %s (%s) to %s (%s)",
		ErrInvalidTransition, e.From, e.From.Code(), e.To, e.To.Code())
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
