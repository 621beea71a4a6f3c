package queries

import (
	"context"
	"database/sql"
	"errors"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/domain/services"
	"hireboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidateAssignmentQueryHandler answers assignment checks against current
// database state. Runs the same domain rules as the persisting move command,
// so a move that validates here and is committed promptly will be accepted.
//
// Example:
//
//	handler := NewValidateAssignmentQueryHandler(db)
//	query, _ := NewValidateAssignmentQuery(jobID, &routeID, date)
//
//	decision, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !decision.IsValid {
//	    fmt.Println(decision.Message)
//	}
type ValidateAssignmentQueryHandler struct {
	db        *gorm.DB
	validator services.AssignmentValidator
}

// NewValidateAssignmentQueryHandler creates a handler for assignment checks.
// Requires a GORM database connection for query execution.
func NewValidateAssignmentQueryHandler(db *gorm.DB) ValidateAssignmentQueryHandler {
	return ValidateAssignmentQueryHandler{
		db:        db,
		validator: services.NewAssignmentValidator(),
	}
}

// Handle decides whether the job may be placed at the query's target.
// A disallowed move comes back as a rejected Decision, not an error;
// errors are reserved for missing jobs and infrastructure failures.
func (h ValidateAssignmentQueryHandler) Handle(
	ctx context.Context,
	query ValidateAssignmentQuery,
) (services.Decision, error) {
	if err := query.Validate(); err != nil {
		return services.Decision{}, err
	}

	aggregate, err := h.loadJob(ctx, query.JobID().Bytes())
	if err != nil {
		return services.Decision{}, err
	}

	target := query.Target()

	var targetRoute *route.Route
	if !target.IsUnassigned() {
		targetRoute, err = h.loadRoute(ctx, target.RouteID().Bytes())
		if err != nil {
			return services.Decision{}, err
		}
	}

	occupancy, err := h.countOccupancy(ctx, target, query.JobID().Bytes())
	if err != nil {
		return services.Decision{}, err
	}

	return h.validator.Validate(aggregate, target, targetRoute, occupancy)
}

// loadJob reconstructs the job aggregate from its database row.
func (h ValidateAssignmentQueryHandler) loadJob(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			route_id,
			date,
			job_type,
			status,
			customer_name,
			order_number,
			scheduled_time,
			address,
			notes,
			is_recurring,
			driver_id,
			off_hire_date
		FROM jobs
		WHERE id = ?
	`, id).Row()

	jobRow, err := scanJobRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return job.RestoreJob(
		jobRow.ID,
		jobRow.RouteID,
		jobRow.Date,
		jobRow.JobType,
		jobRow.Status,
		jobRow.Details,
		jobRow.DriverID,
		jobRow.OffHireDate,
	)
}

// loadRoute fetches the target route, or nil when it does not exist.
// An unknown route is a business answer (the validator rejects the move),
// not an infrastructure error.
func (h ValidateAssignmentQueryHandler) loadRoute(ctx context.Context, id uuid.UUID) (*route.Route, error) {
	var name, color string
	var capacity int
	var routeID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, color, capacity FROM routes WHERE id = ?
	`, id).Row()
	if err := row.Scan(&routeID, &name, &color, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	kernelID, err := kernel.UUIDFromBytes(routeID[:])
	if err != nil {
		return nil, err
	}
	return route.NewRoute(kernelID, name, color, capacity)
}

// countOccupancy counts jobs already sitting in the target cell, excluding
// the moving job itself and jobs in terminal statuses.
func (h ValidateAssignmentQueryHandler) countOccupancy(
	ctx context.Context,
	target job.Placement,
	movingJobID uuid.UUID,
) (int, error) {
	var count int

	var row *sql.Row
	if target.IsUnassigned() {
		row = h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*) FROM jobs
			WHERE date = ? AND route_id IS NULL AND status IN (?, ?) AND id != ?
		`, target.Date().Time(), job.Scheduled, job.InProgress, movingJobID).Row()
	} else {
		row = h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*) FROM jobs
			WHERE date = ? AND route_id = ? AND status IN (?, ?) AND id != ?
		`, target.Date().Time(), target.RouteID().Bytes(), job.Scheduled, job.InProgress, movingJobID).Row()
	}

	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
