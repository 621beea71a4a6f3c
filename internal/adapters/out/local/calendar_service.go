// Package local provides an in-process implementation of the calendar
// service contract. It wires the board straight into the command and query
// handlers, bypassing the REST transport, and is the composition used when
// the board and the backend run in the same process.
package local

import (
	"context"

	"hireboard/internal/core/application/usecases/commands"
	"hireboard/internal/core/application/usecases/queries"
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/domain/services"

	"gorm.io/gorm"
)

// CalendarService implements ports.CalendarService against the local
// persistence layer. Reads go through the query handlers, writes through
// the command handlers, so in-process callers obey exactly the same rules
// as remote ones.
type CalendarService struct {
	jobsForRange queries.GetJobsForRangeQueryHandler
	routes       queries.GetRoutesQueryHandler
	validate     queries.ValidateAssignmentQueryHandler

	moveJob        commands.MoveJobCommandHandler
	reassignDriver commands.ReassignDriverCommandHandler
	markOffHire    commands.MarkOffHireCommandHandler
	cancelJob      commands.CancelJobCommandHandler
}

// NewCalendarService creates an in-process calendar service.
// The database connection serves the read side; the factories serve the
// write side.
func NewCalendarService(
	db *gorm.DB,
	uowFactory commands.UoWFactory,
	jobUoWFactory commands.JobUoWFactory,
) *CalendarService {
	return &CalendarService{
		jobsForRange:   queries.NewGetJobsForRangeQueryHandler(db),
		routes:         queries.NewGetRoutesQueryHandler(db),
		validate:       queries.NewValidateAssignmentQueryHandler(db),
		moveJob:        commands.NewMoveJobCommandHandler(uowFactory),
		reassignDriver: commands.NewReassignDriverCommandHandler(jobUoWFactory),
		markOffHire:    commands.NewMarkOffHireCommandHandler(jobUoWFactory),
		cancelJob:      commands.NewCancelJobCommandHandler(jobUoWFactory),
	}
}

// JobsForDateRange fetches every job inside the range in stable fetch order.
func (s *CalendarService) JobsForDateRange(ctx context.Context, rng kernel.DateRange) ([]*job.Job, error) {
	query, err := queries.NewGetJobsForRangeQuery(rng)
	if err != nil {
		return nil, err
	}

	rows, err := s.jobsForRange.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(rows))
	for _, row := range rows {
		aggregate, restoreErr := job.RestoreJob(
			row.ID,
			row.RouteID,
			row.Date,
			row.JobType,
			row.Status,
			row.Details,
			row.DriverID,
			row.OffHireDate,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		jobs = append(jobs, aggregate)
	}

	return jobs, nil
}

// Routes fetches the route list in board row order.
func (s *CalendarService) Routes(ctx context.Context) ([]*route.Route, error) {
	rows, err := s.routes.Handle(ctx, queries.NewGetRoutesQuery())
	if err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(rows))
	for _, row := range rows {
		r, routeErr := route.NewRoute(row.ID, row.Name, row.Color, row.Capacity)
		if routeErr != nil {
			return nil, routeErr
		}
		routes = append(routes, r)
	}

	return routes, nil
}

// ValidateAssignment checks a prospective placement without persisting.
func (s *CalendarService) ValidateAssignment(
	ctx context.Context,
	jobID kernel.UUID,
	target job.Placement,
) (services.Decision, error) {
	query, err := queries.NewValidateAssignmentQuery(jobID, target.RouteID(), target.Date())
	if err != nil {
		return services.Decision{}, err
	}

	return s.validate.Handle(ctx, query)
}

// UpdateJobAssignment persists a reassignment and returns the authoritative
// job record. A business refusal surfaces as *commands.MoveRejectedError.
func (s *CalendarService) UpdateJobAssignment(
	ctx context.Context,
	jobID kernel.UUID,
	target job.Placement,
) (*job.Job, error) {
	cmd, err := commands.NewMoveJobCommand(jobID, target.RouteID(), target.Date())
	if err != nil {
		return nil, err
	}

	return s.moveJob.Handle(ctx, cmd)
}

// ReassignDriver puts a different driver on the job.
func (s *CalendarService) ReassignDriver(ctx context.Context, jobID, driverID kernel.UUID) (*job.Job, error) {
	cmd, err := commands.NewReassignDriverCommand(jobID, driverID)
	if err != nil {
		return nil, err
	}

	return s.reassignDriver.Handle(ctx, cmd)
}

// MarkOffHire records the end of the hire.
func (s *CalendarService) MarkOffHire(ctx context.Context, jobID kernel.UUID, offHireDate kernel.Date) (*job.Job, error) {
	cmd, err := commands.NewMarkOffHireCommand(jobID, offHireDate)
	if err != nil {
		return nil, err
	}

	return s.markOffHire.Handle(ctx, cmd)
}

// CancelJob calls the job off.
func (s *CalendarService) CancelJob(ctx context.Context, jobID kernel.UUID) (*job.Job, error) {
	cmd, err := commands.NewCancelJobCommand(jobID)
	if err != nil {
		return nil, err
	}

	return s.cancelJob.Handle(ctx, cmd)
}
