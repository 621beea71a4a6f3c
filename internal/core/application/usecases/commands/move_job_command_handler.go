package commands

import (
	"context"
	"errors"
	"fmt"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/domain/services"
	"hireboard/internal/pkg/errs"
)

// MoveRejectedError reports that a move failed business validation.
// The message is operator-facing and matches what the validation endpoint
// would have answered for the same move.
type MoveRejectedError struct {
	Message string
}

func (e *MoveRejectedError) Error() string {
	return fmt.Sprintf("move rejected: %s", e.Message)
}

// MoveJobCommandHandler persists job moves on the board.
// Re-runs assignment validation before writing, so a stale client that skips
// the validation endpoint still cannot persist a disallowed move.
//
// Example:
//
//	handler := NewMoveJobCommandHandler(uowFactory)
//	moved, err := handler.Handle(ctx, cmd)
//	var rejected *MoveRejectedError
//	if errors.As(err, &rejected) {
//	    log.Printf("Move refused: %s", rejected.Message)
//	}
type MoveJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewMoveJobCommandHandler creates a handler for job move operations.
// Requires a UoWFactory since moves read routes while updating jobs.
func NewMoveJobCommandHandler(uowFactory UoWFactory) MoveJobCommandHandler {
	return MoveJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the move command and returns the updated job record.
// Loads the job and target route, checks the move against business rules,
// applies the reassignment, and persists it within a single transaction.
// A business refusal comes back as *MoveRejectedError.
func (h MoveJobCommandHandler) Handle(ctx context.Context, command MoveJobCommand) (*job.Job, error) {
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

	target := command.Target()

	var targetRoute *route.Route
	if routeID := target.RouteID(); routeID != nil {
		targetRoute, err = uow.RouteRepository().Get(ctx, *routeID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		// An unknown route stays nil; the validator rejects it.
	}

	occupancy, err := jobRepo.CountInCell(ctx, target)
	if err != nil {
		return nil, err
	}
	if aggregate.Placement().IsEqual(target) && occupancy > 0 {
		// The job itself already counts toward the cell.
		occupancy--
	}

	decision, err := services.NewAssignmentValidator().Validate(aggregate, target, targetRoute, occupancy)
	if err != nil {
		return nil, err
	}
	if !decision.IsValid {
		return nil, &MoveRejectedError{Message: decision.Message}
	}

	if err = aggregate.Reassign(target); err != nil {
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
