package booking

import (
	"errors"
	"fmt"

	"coachly/models"
)

var (
	// ErrStaleRecord means an edit or transition targeted a booking that
	// is already in a terminal state. Reported to the caller, never
	// retried.
	ErrStaleRecord = errors.New("booking is in a terminal state")

	// ErrMissingReason means a rejection or cancellation was attempted
	// without a reason.
	ErrMissingReason = errors.New("a reason is required")
)

// TransitionError reports an illegal status transition with both ends.
type TransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal booking transition %s -> %s", e.From, e.To)
}
