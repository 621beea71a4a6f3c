package queries_test

import (
	"context"
	"testing"
	"time"

	"hireboard/internal/adapters/out/postgres/jobrepo"
	"hireboard/internal/adapters/out/postgres/routerepo"
	"hireboard/internal/core/application/usecases/queries"
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetJobsForRangeQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetJobsForRangeQueryHandler
	jobRepo   *jobrepo.GormJobRepository
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&jobrepo.JobDTO{}, &routerepo.RouteDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetJobsForRangeQueryHandler(db)
	suite.jobRepo = jobrepo.NewGormJobRepository(db, &mockAggregateTracker{})
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) testRange() kernel.DateRange {
	rng, err := kernel.NewDateRange(
		kernel.NewDate(2024, time.June, 3),
		kernel.NewDate(2024, time.June, 9),
	)
	suite.Require().NoError(err)
	return rng
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) createJob(date kernel.Date) *job.Job {
	j, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, job.Details{
		CustomerName: "Acme Plant Hire",
		OrderNumber:  "ORD-1042",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.jobRepo.Add(context.Background(), j))
	return j
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetJobsForRangeQuery(suite.testRange())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TestHandle_BoundsInclusive() {
	rng := suite.testRange()

	onStart := suite.createJob(rng.Start())
	onEnd := suite.createJob(rng.End())
	suite.createJob(rng.Start().AddDays(-1))
	suite.createJob(rng.End().AddDays(1))

	query, err := queries.NewGetJobsForRangeQuery(rng)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(onStart.ID()))
	suite.True(result[1].ID.IsEqual(onEnd.ID()))
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TestHandle_ReturnsJobsInCreationOrder() {
	rng := suite.testRange()

	// Creation order deliberately disagrees with date order.
	first := suite.createJob(rng.End())
	second := suite.createJob(rng.Start())
	third := suite.createJob(rng.Start().AddDays(2))

	query, err := queries.NewGetJobsForRangeQuery(rng)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.True(result[2].ID.IsEqual(third.ID()))
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	rng := suite.testRange()
	date := rng.Start()

	j, err := job.NewJob(kernel.NewUUID(), job.Collection, date, job.Details{
		CustomerName:  "Acme Plant Hire",
		OrderNumber:   "ORD-1042",
		ScheduledTime: "09:30",
		Address:       "12 Quarry Road",
		Notes:         "Gate code 4417",
		IsRecurring:   true,
	})
	suite.Require().NoError(err)

	routeID := kernel.NewUUID()
	target, err := job.NewPlacement(&routeID, date.AddDays(1))
	suite.Require().NoError(err)
	suite.Require().NoError(j.Reassign(target))

	driverID := kernel.NewUUID()
	suite.Require().NoError(j.AssignDriver(driverID))
	suite.Require().NoError(j.MarkOffHire(date.AddDays(10)))
	suite.Require().NoError(j.Start())

	suite.Require().NoError(suite.jobRepo.Add(context.Background(), j))

	query, err := queries.NewGetJobsForRangeQuery(rng)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.True(row.ID.IsEqual(j.ID()))
	suite.Require().NotNil(row.RouteID)
	suite.True(row.RouteID.IsEqual(routeID))
	suite.True(row.Date.IsEqual(date.AddDays(1)))
	suite.Equal(job.Collection, row.JobType)
	suite.Equal(job.InProgress, row.Status)
	suite.Equal(j.Details(), row.Details)
	suite.Require().NotNil(row.DriverID)
	suite.True(row.DriverID.IsEqual(driverID))
	suite.Require().NotNil(row.OffHireDate)
	suite.True(row.OffHireDate.IsEqual(date.AddDays(10)))
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TestHandle_UnassignedJobHasNilRouteID() {
	rng := suite.testRange()
	j := suite.createJob(rng.Start())

	query, err := queries.NewGetJobsForRangeQuery(rng)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(j.ID()))
	suite.Nil(result[0].RouteID)
	suite.Nil(result[0].DriverID)
	suite.Nil(result[0].OffHireDate)
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetJobsForRangeQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetJobsForRangeQuery constructor")
}

func (suite *GetJobsForRangeQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	rng := suite.testRange()
	for range 20 {
		suite.createJob(rng.Start())
	}

	query, err := queries.NewGetJobsForRangeQuery(rng)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

// mockAggregateTracker satisfies the repositories' tracker dependency
// for tests that do not care about aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

func TestGetJobsForRangeQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetJobsForRangeQueryHandlerTestSuite))
}
