package commands

import (
	"errors"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var ErrReassignDriverCommandIsNotConstructed = errors.New(
	"ReassignDriverCommand must be created via NewReassignDriverCommand constructor",
)

// ReassignDriverCommand represents a request to put a different driver on a job.
type ReassignDriverCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignDriverCommand creates a command to reassign the driver on a job.
func NewReassignDriverCommand(jobID, driverID kernel.UUID) (ReassignDriverCommand, error) {
	if err := jobID.Validate(); err != nil {
		return ReassignDriverCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return ReassignDriverCommand{}, err
	}

	return ReassignDriverCommand{
		jobID:    jobID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrReassignDriverCommandIsNotConstructed)
}

// JobID returns the job whose driver changes.
func (c ReassignDriverCommand) JobID() kernel.UUID {
	return c.jobID
}

// DriverID returns the driver taking the job.
func (c ReassignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
