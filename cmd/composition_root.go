package cmd

import (
	httpadapter "hireboard/internal/adapters/in/http"
	"hireboard/internal/adapters/out/local"
	"hireboard/internal/adapters/out/postgres"
	"hireboard/internal/core/application/usecases/commands"
	"hireboard/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateMoveJobCommandHandler() commands.MoveJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveJobCommandHandler(f)
}

func (c *CompositionRoot) CreateReassignDriverCommandHandler() commands.ReassignDriverCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOffHireCommandHandler() commands.MarkOffHireCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOffHireCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateGetJobsForRangeQueryHandler() queries.GetJobsForRangeQueryHandler {
	return queries.NewGetJobsForRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateValidateAssignmentQueryHandler() queries.ValidateAssignmentQueryHandler {
	return queries.NewValidateAssignmentQueryHandler(c.gormDB)
}

// CreateCalendarService builds the in-process service the board consumes.
func (c *CompositionRoot) CreateCalendarService() *local.CalendarService {
	var uowFactory commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	var jobUoWFactory commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return local.NewCalendarService(c.gormDB, uowFactory, jobUoWFactory)
}

// CreateHTTPServer assembles the REST server with every handler wired.
// events may be nil when no live update channel is running.
func (c *CompositionRoot) CreateHTTPServer(events httpadapter.JobEventPublisher) *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateMoveJobCommandHandler(),
		c.CreateReassignDriverCommandHandler(),
		c.CreateMarkOffHireCommandHandler(),
		c.CreateCancelJobCommandHandler(),
		c.CreateCreateJobCommandHandler(),
		c.CreateCreateRouteCommandHandler(),
		c.CreateGetJobsForRangeQueryHandler(),
		c.CreateGetRoutesQueryHandler(),
		c.CreateValidateAssignmentQueryHandler(),
		events,
	)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
