package commands

import (
	"context"

	"hireboard/internal/core/domain/model/job"
)

// CreateJobCommandHandler persists new jobs arriving from the order system.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command.
// Builds the job aggregate and persists it within a transaction.
func (h CreateJobCommandHandler) Handle(ctx context.Context, command CreateJobCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := job.NewJob(command.JobID(), command.JobType(), command.Date(), command.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
