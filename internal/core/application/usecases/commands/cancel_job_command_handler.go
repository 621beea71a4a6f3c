package commands

import (
	"context"

	"hireboard/internal/core/domain/model/job"
)

// CancelJobCommandHandler cancels jobs on the board.
type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCancelJobCommandHandler creates a handler for job cancellation.
func NewCancelJobCommandHandler(uowFactory JobUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the updated job record.
// Cancelling an already terminal job fails with a status transition error.
func (h CancelJobCommandHandler) Handle(ctx context.Context, command CancelJobCommand) (*job.Job, error) {
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

	if err = aggregate.Cancel(); err != nil {
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
