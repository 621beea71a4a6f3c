package commands

import (
	"context"

	"hireboard/internal/core/domain/model/job"
)

// ReassignDriverCommandHandler persists driver changes on jobs.
type ReassignDriverCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewReassignDriverCommandHandler creates a handler for driver reassignment.
func NewReassignDriverCommandHandler(uowFactory JobUoWFactory) ReassignDriverCommandHandler {
	return ReassignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment and returns the updated job record.
func (h ReassignDriverCommandHandler) Handle(
	ctx context.Context,
	command ReassignDriverCommand,
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

	if err = aggregate.AssignDriver(command.DriverID()); err != nil {
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
