package commands

import (
	"context"

	"hireboard/internal/core/domain/model/job"
)

// MarkOffHireCommandHandler records the end of hires on jobs.
type MarkOffHireCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewMarkOffHireCommandHandler creates a handler for off-hire operations.
func NewMarkOffHireCommandHandler(uowFactory JobUoWFactory) MarkOffHireCommandHandler {
	return MarkOffHireCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the off-hire command and returns the updated job record.
func (h MarkOffHireCommandHandler) Handle(
	ctx context.Context,
	command MarkOffHireCommand,
) (*job.Job, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	aggregate, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkOffHire(command.OffHireDate()); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
