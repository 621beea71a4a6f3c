package commands

import (
	"errors"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var ErrMoveJobCommandIsNotConstructed = errors.New(
	"MoveJobCommand must be created via NewMoveJobCommand constructor",
)

// MoveJobCommand represents a request to move a job into another board cell:
// a different route, a different day, or the unassigned bucket.
//
// Example:
//
//	cmd, err := NewMoveJobCommand(jobID, &routeID, kernel.NewDate(2024, time.June, 3))
//	if err != nil {
//	    return fmt.Errorf("invalid move: %w", err)
//	}
//	moved, err := NewMoveJobCommandHandler(uowFactory).Handle(ctx, cmd)
type MoveJobCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	target job.Placement

	guard guard.ConstructorGuard
}

// NewMoveJobCommand creates a command to move a job.
// A nil routeID targets the unassigned bucket on the given day.
func NewMoveJobCommand(jobID kernel.UUID, routeID *kernel.UUID, date kernel.Date) (MoveJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return MoveJobCommand{}, err
	}
	target, err := job.NewPlacement(routeID, date)
	if err != nil {
		return MoveJobCommand{}, err
	}

	return MoveJobCommand{
		jobID:  jobID,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMoveJobCommandIsNotConstructed if validation fails.
func (c MoveJobCommand) Validate() error {
	return c.guard.Validate(ErrMoveJobCommandIsNotConstructed)
}

// JobID returns the job to move.
func (c MoveJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Target returns the destination board cell.
func (c MoveJobCommand) Target() job.Placement {
	return c.target
}
