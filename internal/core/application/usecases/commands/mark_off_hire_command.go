package commands

import (
	"errors"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var ErrMarkOffHireCommandIsNotConstructed = errors.New(
	"MarkOffHireCommand must be created via NewMarkOffHireCommand constructor",
)

// MarkOffHireCommand represents a request to record the day a hire ends.
type MarkOffHireCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	offHireDate kernel.Date

	guard guard.ConstructorGuard
}

// NewMarkOffHireCommand creates a command to record a job's off-hire date.
func NewMarkOffHireCommand(jobID kernel.UUID, offHireDate kernel.Date) (MarkOffHireCommand, error) {
	if err := jobID.Validate(); err != nil {
		return MarkOffHireCommand{}, err
	}
	if err := offHireDate.Validate(); err != nil {
		return MarkOffHireCommand{}, err
	}

	return MarkOffHireCommand{
		jobID:       jobID,
		offHireDate: offHireDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOffHireCommand) Validate() error {
	return c.guard.Validate(ErrMarkOffHireCommandIsNotConstructed)
}

// JobID returns the job being off-hired.
func (c MarkOffHireCommand) JobID() kernel.UUID {
	return c.jobID
}

// OffHireDate returns the day the hire ends.
func (c MarkOffHireCommand) OffHireDate() kernel.Date {
	return c.offHireDate
}
