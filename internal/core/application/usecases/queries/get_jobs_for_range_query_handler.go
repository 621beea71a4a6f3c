package queries

import (
	"context"
	"database/sql"
	"time"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobsForRangeQueryHandler retrieves jobs for a date range from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetJobsForRangeQueryHandler(db)
//	query, _ := NewGetJobsForRangeQuery(rng)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get jobs: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d jobs\n", len(jobs))
type GetJobsForRangeQueryHandler struct {
	db *gorm.DB
}

// NewGetJobsForRangeQueryHandler creates a handler for board job queries.
// Requires a GORM database connection for query execution.
func NewGetJobsForRangeQueryHandler(db *gorm.DB) GetJobsForRangeQueryHandler {
	return GetJobsForRangeQueryHandler{db: db}
}

// Handle executes the query to retrieve all jobs inside the range.
// Returns job read models in creation order, bounds included.
// Converts database types to domain types for consistency.
func (h GetJobsForRangeQueryHandler) Handle(
	ctx context.Context,
	query GetJobsForRangeQuery,
) ([]GetJobsForRangeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetJobsForRangeQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE date >= ? AND date <= ?
		ORDER BY created_at
	`, query.DateRange().Start().Time(), query.DateRange().End().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		row, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// rowScanner is the subset of sql.Rows / sql.Row used by scanJobRow.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanJobRow reads one jobs row, in the column order the SELECT above uses,
// and converts it into the kernel-typed read model.
func scanJobRow(rows rowScanner) (GetJobsForRangeQueryResponse, error) {
	var jobResp GetJobsForRangeQueryResponse
	var id uuid.UUID
	var routeID, driverID uuid.NullUUID
	var date time.Time
	var offHire sql.NullTime
	var jobType, status int

	err := rows.Scan(
		&id,
		&routeID,
		&date,
		&jobType,
		&status,
		&jobResp.Details.CustomerName,
		&jobResp.Details.OrderNumber,
		&jobResp.Details.ScheduledTime,
		&jobResp.Details.Address,
		&jobResp.Details.Notes,
		&jobResp.Details.IsRecurring,
		&driverID,
		&offHire,
	)
	if err != nil {
		return GetJobsForRangeQueryResponse{}, err
	}

	jobID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetJobsForRangeQueryResponse{}, idErr
	}
	jobResp.ID = jobID

	if routeID.Valid {
		rID, routeErr := kernel.UUIDFromBytes(routeID.UUID[:])
		if routeErr != nil {
			return GetJobsForRangeQueryResponse{}, routeErr
		}
		jobResp.RouteID = &rID
	}

	if driverID.Valid {
		dID, driverErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if driverErr != nil {
			return GetJobsForRangeQueryResponse{}, driverErr
		}
		jobResp.DriverID = &dID
	}

	if offHire.Valid {
		d := kernel.DateOf(offHire.Time)
		jobResp.OffHireDate = &d
	}

	jobResp.Date = kernel.DateOf(date)
	jobResp.JobType = job.Type(jobType)
	jobResp.Status = job.Status(status)

	return jobResp, nil
}
