// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var (
	ErrGetJobsForRangeQueryIsNotConstructed = errors.New(
		"GetJobsForRangeQuery must be created via NewGetJobsForRangeQuery constructor",
	)
)

// GetJobsForRangeQuery retrieves every job whose date falls inside a span of
// calendar days, bounds included. This is the board's dominant read: one
// query per visible date range.
//
// Example:
//
//	rng, _ := kernel.NewDateRange(start, end)
//	query, err := NewGetJobsForRangeQuery(rng)
//	if err != nil {
//	    return fmt.Errorf("invalid range: %w", err)
//	}
//	jobs, err := NewGetJobsForRangeQueryHandler(db).Handle(ctx, query)
type GetJobsForRangeQuery struct {
	dateRange kernel.DateRange

	guard guard.ConstructorGuard
}

// NewGetJobsForRangeQuery creates a query for all jobs inside the given range.
func NewGetJobsForRangeQuery(dateRange kernel.DateRange) (GetJobsForRangeQuery, error) {
	if err := dateRange.Validate(); err != nil {
		return GetJobsForRangeQuery{}, err
	}

	return GetJobsForRangeQuery{
		dateRange: dateRange,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobsForRangeQueryIsNotConstructed if validation fails.
func (q GetJobsForRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetJobsForRangeQueryIsNotConstructed)
}

// DateRange returns the span of days to fetch.
func (q GetJobsForRangeQuery) DateRange() kernel.DateRange {
	return q.dateRange
}

// GetJobsForRangeQueryResponse represents one job in the board read model.
// Rows come back in creation order, which is the board's stable display order.
type GetJobsForRangeQueryResponse struct {
	ID          kernel.UUID
	RouteID     *kernel.UUID
	Date        kernel.Date
	JobType     job.Type
	Status      job.Status
	Details     job.Details
	DriverID    *kernel.UUID
	OffHireDate *kernel.Date
}
