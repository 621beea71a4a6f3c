package commands

import (
	"errors"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand represents a request to call a job off.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel a job.
func NewCancelJobCommand(jobID kernel.UUID) (CancelJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return CancelJobCommand{}, err
	}

	return CancelJobCommand{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the job being cancelled.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}
