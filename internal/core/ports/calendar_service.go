// Package ports defines the boundaries between the scheduling core and the
// outside world: the Calendar Data Service the board talks to, the
// repositories the backend persists through, and the notifier user-facing
// acknowledgments flow out of.
package ports

import (
	"context"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/domain/services"
)

// CalendarService is the contract the scheduling board consumes.
// Implementations may run in-process against the local persistence layer or
// remotely over the REST contract; the board cannot tell the difference.
//
// All mutating operations return the authoritative job record so callers can
// replace their copy wholesale rather than merging fields.
type CalendarService interface {
	// JobsForDateRange fetches every job whose date falls inside the range,
	// bounds inclusive, in stable fetch order.
	JobsForDateRange(ctx context.Context, rng kernel.DateRange) ([]*job.Job, error)

	// Routes fetches the route list in board row order.
	Routes(ctx context.Context) ([]*route.Route, error)

	// ValidateAssignment checks a prospective placement against business
	// rules without persisting anything. A rejected Decision is a normal
	// answer, not an error; errors mean the check itself failed.
	ValidateAssignment(ctx context.Context, jobID kernel.UUID, target job.Placement) (services.Decision, error)

	// UpdateJobAssignment persists a reassignment and returns the
	// authoritative job record.
	UpdateJobAssignment(ctx context.Context, jobID kernel.UUID, target job.Placement) (*job.Job, error)

	// ReassignDriver puts a different driver on the job and returns the
	// authoritative job record.
	ReassignDriver(ctx context.Context, jobID, driverID kernel.UUID) (*job.Job, error)

	// MarkOffHire records the end of the hire and returns the authoritative
	// job record.
	MarkOffHire(ctx context.Context, jobID kernel.UUID, offHireDate kernel.Date) (*job.Job, error)

	// CancelJob calls the job off and returns the authoritative job record.
	CancelJob(ctx context.Context, jobID kernel.UUID) (*job.Job, error)
}
