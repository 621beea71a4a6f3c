package board

import (
	"errors"
	"fmt"
)

// ErrMoveConflict is returned when a move is started for a job that already
// has a move in flight. The ledger holds at most one entry per job.
var ErrMoveConflict = errors.New("a move is already pending for this job")

// RejectionError reports that the backend refused an assignment on business
// grounds. The message is operator-facing and comes straight from the
// validation decision.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("assignment rejected: %s", e.Message)
}

// IsRejection reports whether err is a business rejection rather than a
// system failure.
func IsRejection(err error) bool {
	var rejection *RejectionError
	return errors.As(err, &rejection)
}
