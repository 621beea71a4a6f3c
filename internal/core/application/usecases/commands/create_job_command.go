package commands

import (
	"errors"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to put a new job on the board.
// New jobs start scheduled and unassigned; the order system is the usual
// caller when a hire order produces delivery or collection work.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(job.Delivery, date, job.Details{
//	    CustomerName: "Acme Plant Hire",
//	    OrderNumber:  "ORD-1042",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//	if err := NewCreateJobCommandHandler(uowFactory).Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
//	fmt.Printf("Created job with ID: %s", cmd.JobID())
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	jobType job.Type
	date    kernel.Date
	details job.Details

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to put a new job on the board.
// Automatically generates a unique ID for the job. The type, date, and
// details must satisfy the job creation rules.
func NewCreateJobCommand(jobType job.Type, date kernel.Date, details job.Details) (CreateJobCommand, error) {
	command := CreateJobCommand{
		jobID: kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setType(jobType),
		command.setDate(date),
		command.setDetails(details),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the generated ID for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// JobType returns the kind of work from the command.
func (c CreateJobCommand) JobType() job.Type {
	return c.jobType
}

// Date returns the planned calendar day from the command.
func (c CreateJobCommand) Date() kernel.Date {
	return c.date
}

// Details returns the descriptive fields from the command.
func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c *CreateJobCommand) setType(jobType job.Type) error {
	if err := jobType.Validate(); err != nil {
		return err
	}

	c.jobType = jobType
	return nil
}

func (c *CreateJobCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *CreateJobCommand) setDetails(details job.Details) error {
	if details.CustomerName == "" {
		return job.ErrCustomerNameIsRequired
	}
	if details.OrderNumber == "" {
		return job.ErrOrderNumberIsRequired
	}

	c.details = details
	return nil
}
