package queries

import (
	"errors"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var (
	ErrValidateAssignmentQueryIsNotConstructed = errors.New(
		"ValidateAssignmentQuery must be created via NewValidateAssignmentQuery constructor",
	)
)

// ValidateAssignmentQuery asks whether a job may be placed into a target
// board cell, without moving it. The client runs this before committing a
// drag so a doomed move can be rejected up front.
//
// Example:
//
//	query, err := NewValidateAssignmentQuery(jobID, &routeID, date)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment check: %w", err)
//	}
//	decision, err := NewValidateAssignmentQueryHandler(db).Handle(ctx, query)
type ValidateAssignmentQuery struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	target job.Placement

	guard guard.ConstructorGuard
}

// NewValidateAssignmentQuery creates a query to check a prospective move.
// A nil routeID targets the unassigned bucket on the given day.
func NewValidateAssignmentQuery(
	jobID kernel.UUID,
	routeID *kernel.UUID,
	date kernel.Date,
) (ValidateAssignmentQuery, error) {
	if err := jobID.Validate(); err != nil {
		return ValidateAssignmentQuery{}, err
	}
	target, err := job.NewPlacement(routeID, date)
	if err != nil {
		return ValidateAssignmentQuery{}, err
	}

	return ValidateAssignmentQuery{
		jobID:  jobID,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrValidateAssignmentQueryIsNotConstructed if validation fails.
func (q ValidateAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrValidateAssignmentQueryIsNotConstructed)
}

// JobID returns the job being checked.
func (q ValidateAssignmentQuery) JobID() kernel.UUID {
	return q.jobID
}

// Target returns the prospective board cell.
func (q ValidateAssignmentQuery) Target() job.Placement {
	return q.target
}
