// Package http exposes the calendar data service as a REST API.
// It coordinates between HTTP handlers and application use cases; DTO
// mapping happens here so the core never sees wire types.
package http

import (
	"errors"
	"net/http"

	"hireboard/internal/core/application/usecases/commands"
	"hireboard/internal/core/application/usecases/queries"
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// JobEventPublisher receives the authoritative record after every
// successful mutation so connected boards can converge without polling.
type JobEventPublisher interface {
	JobUpdated(job JobResponse)
}

// Server handles the REST endpoints of the calendar data service.
type Server struct {
	// Command handlers
	moveJobHandler        commands.MoveJobCommandHandler
	reassignDriverHandler commands.ReassignDriverCommandHandler
	markOffHireHandler    commands.MarkOffHireCommandHandler
	cancelJobHandler      commands.CancelJobCommandHandler
	createJobHandler      commands.CreateJobCommandHandler
	createRouteHandler    commands.CreateRouteCommandHandler

	// Query handlers
	getJobsForRangeHandler    queries.GetJobsForRangeQueryHandler
	getRoutesHandler          queries.GetRoutesQueryHandler
	validateAssignmentHandler queries.ValidateAssignmentQueryHandler

	// events may be nil when no live update channel is wired.
	events JobEventPublisher
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	moveJobHandler commands.MoveJobCommandHandler,
	reassignDriverHandler commands.ReassignDriverCommandHandler,
	markOffHireHandler commands.MarkOffHireCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	createJobHandler commands.CreateJobCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	getJobsForRangeHandler queries.GetJobsForRangeQueryHandler,
	getRoutesHandler queries.GetRoutesQueryHandler,
	validateAssignmentHandler queries.ValidateAssignmentQueryHandler,
	events JobEventPublisher,
) *Server {
	return &Server{
		moveJobHandler:            moveJobHandler,
		reassignDriverHandler:     reassignDriverHandler,
		markOffHireHandler:        markOffHireHandler,
		cancelJobHandler:          cancelJobHandler,
		createJobHandler:          createJobHandler,
		createRouteHandler:        createRouteHandler,
		getJobsForRangeHandler:    getJobsForRangeHandler,
		getRoutesHandler:          getRoutesHandler,
		validateAssignmentHandler: validateAssignmentHandler,
		events:                    events,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/jobs", s.GetJobs)
	api.POST("/jobs", s.CreateJob)
	api.POST("/jobs/:id/move", s.MoveJob)
	api.POST("/jobs/:id/validate-assignment", s.ValidateAssignment)
	api.POST("/jobs/:id/driver", s.ReassignDriver)
	api.POST("/jobs/:id/off-hire", s.MarkOffHire)
	api.POST("/jobs/:id/cancel", s.CancelJob)

	api.GET("/routes", s.GetRoutes)
	api.POST("/routes", s.CreateRoute)
}

// GetJobs handles GET /api/v1/jobs?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (s *Server) GetJobs(ctx echo.Context) error {
	start, err := kernel.DateFromString(ctx.QueryParam("start"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid start date: " + err.Error(),
		})
	}
	end, err := kernel.DateFromString(ctx.QueryParam("end"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid end date: " + err.Error(),
		})
	}
	rng, err := kernel.NewDateRange(start, end)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid date range: " + err.Error(),
		})
	}

	query, err := queries.NewGetJobsForRangeQuery(rng)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	rows, err := s.getJobsForRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve jobs",
		})
	}

	response := make([]JobResponse, len(rows))
	for i, row := range rows {
		response[i] = jobRowToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRoutes handles GET /api/v1/routes.
func (s *Server) GetRoutes(ctx echo.Context) error {
	rows, err := s.getRoutesHandler.Handle(ctx.Request().Context(), queries.NewGetRoutesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve routes",
		})
	}

	response := make([]RouteResponse, len(rows))
	for i, row := range rows {
		response[i] = RouteResponse{
			ID:       row.ID.String(),
			Name:     row.Name,
			Color:    row.Color,
			Capacity: row.Capacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MoveJob handles POST /api/v1/jobs/:id/move - persists a reassignment.
func (s *Server) MoveJob(ctx echo.Context) error {
	jobID, target, errResp := s.bindPlacement(ctx)
	if errResp != nil {
		return errResp
	}

	cmd, err := commands.NewMoveJobCommand(jobID, target.RouteID(), target.Date())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid move: " + err.Error(),
		})
	}

	moved, err := s.moveJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeMutationError(ctx, err, "Failed to move job")
	}

	return s.writeJob(ctx, moved)
}

// ValidateAssignment handles POST /api/v1/jobs/:id/validate-assignment.
// A disallowed move is a 200 with isValid=false, not an error status.
func (s *Server) ValidateAssignment(ctx echo.Context) error {
	jobID, target, errResp := s.bindPlacement(ctx)
	if errResp != nil {
		return errResp
	}

	query, err := queries.NewValidateAssignmentQuery(jobID, target.RouteID(), target.Date())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment check: " + err.Error(),
		})
	}

	decision, err := s.validateAssignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Job not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to validate assignment",
		})
	}

	return ctx.JSON(http.StatusOK, ValidationResponse{
		IsValid: decision.IsValid,
		Message: decision.Message,
	})
}

// ReassignDriver handles POST /api/v1/jobs/:id/driver.
func (s *Server) ReassignDriver(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job id",
		})
	}

	var req ReassignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver id",
		})
	}

	cmd, err := commands.NewReassignDriverCommand(jobID, driverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid reassignment: " + err.Error(),
		})
	}

	updated, err := s.reassignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeMutationError(ctx, err, "Failed to reassign driver")
	}

	return s.writeJob(ctx, updated)
}

// MarkOffHire handles POST /api/v1/jobs/:id/off-hire.
func (s *Server) MarkOffHire(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job id",
		})
	}

	var req MarkOffHireRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	offHire, err := kernel.DateFromString(req.OffHireDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid off-hire date: " + err.Error(),
		})
	}

	cmd, err := commands.NewMarkOffHireCommand(jobID, offHire)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid off-hire: " + err.Error(),
		})
	}

	updated, err := s.markOffHireHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeMutationError(ctx, err, "Failed to mark off-hire")
	}

	return s.writeJob(ctx, updated)
}

// CancelJob handles POST /api/v1/jobs/:id/cancel.
func (s *Server) CancelJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job id",
		})
	}

	cmd, err := commands.NewCancelJobCommand(jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation: " + err.Error(),
		})
	}

	cancelled, err := s.cancelJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeMutationError(ctx, err, "Failed to cancel job")
	}

	return s.writeJob(ctx, cancelled)
}

// CreateJob handles POST /api/v1/jobs - schedules a new job in the
// unassigned row.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req CreateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	jobType, err := job.TypeFromString(req.Type)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job type: " + err.Error(),
		})
	}
	date, err := kernel.DateFromString(req.Date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid date: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateJobCommand(jobType, date, job.Details{
		CustomerName:  req.CustomerName,
		OrderNumber:   req.OrderNumber,
		ScheduledTime: req.ScheduledTime,
		Address:       req.Address,
		Notes:         req.Notes,
		IsRecurring:   req.IsRecurring,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + err.Error(),
		})
	}

	if handleErr := s.createJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create job",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateRoute handles POST /api/v1/routes - adds a board row.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req CreateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateRouteCommand(req.Name, req.Color, req.Capacity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid route data: " + err.Error(),
		})
	}

	if handleErr := s.createRouteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create route",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// bindPlacement reads the job id path param and the placement body shared
// by the move and validate endpoints.
func (s *Server) bindPlacement(ctx echo.Context) (kernel.UUID, job.Placement, error) {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, job.Placement{}, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job id",
		})
	}

	var req PlacementRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, job.Placement{}, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var routeID *kernel.UUID
	if req.RouteID != nil {
		id, routeErr := kernel.UUIDFromString(*req.RouteID)
		if routeErr != nil {
			return kernel.UUID{}, job.Placement{}, ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid route id",
			})
		}
		routeID = &id
	}

	date, err := kernel.DateFromString(req.Date)
	if err != nil {
		return kernel.UUID{}, job.Placement{}, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid date: " + err.Error(),
		})
	}

	target, err := job.NewPlacement(routeID, date)
	if err != nil {
		return kernel.UUID{}, job.Placement{}, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid placement: " + err.Error(),
		})
	}

	return jobID, target, nil
}

// writeJob answers with the authoritative record and feeds the live update
// channel.
func (s *Server) writeJob(ctx echo.Context, aggregate *job.Job) error {
	response := jobToResponse(aggregate)
	if s.events != nil {
		s.events.JobUpdated(response)
	}
	return ctx.JSON(http.StatusOK, response)
}

// writeMutationError maps command failures onto HTTP statuses: missing
// aggregates are 404, business refusals 409, disallowed state transitions
// 422, and infrastructure failures 500.
func (s *Server) writeMutationError(ctx echo.Context, err error, fallback string) error {
	var rejected *commands.MoveRejectedError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Job not found",
		})
	case errors.As(err, &rejected):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: rejected.Message,
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
