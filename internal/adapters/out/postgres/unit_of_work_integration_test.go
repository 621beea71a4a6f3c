package postgres_test

import (
	"context"
	"testing"
	"time"

	pgadapter "hireboard/internal/adapters/out/postgres"
	"hireboard/internal/adapters/out/postgres/jobrepo"
	"hireboard/internal/adapters/out/postgres/routerepo"
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the
// GORM unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&jobrepo.JobDTO{}, &routerepo.RouteDTO{}))

	suite.factory = pgadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs, routes").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestJob() *job.Job {
	j, err := job.NewJob(kernel.NewUUID(), job.Delivery, kernel.NewDate(2024, time.June, 3), job.Details{
		CustomerName: "Acme Plant Hire",
		OrderNumber:  "ORD-1042",
	})
	suite.Require().NoError(err)
	return j
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testJob := suite.createTestJob()
	testRoute, err := route.NewRoute(kernel.NewUUID(), "North loop", "", 0)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.JobRepository().Add(ctx, testJob))
	suite.Require().NoError(uow.RouteRepository().Add(ctx, testRoute))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.JobRepository().Get(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testJob.ID()))

	loadedRoute, err := verify.RouteRepository().Get(ctx, testRoute.ID())
	suite.Require().NoError(err)
	suite.True(loadedRoute.ID().IsEqual(testRoute.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testJob := suite.createTestJob()
	suite.Require().NoError(uow.JobRepository().Add(ctx, testJob))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.JobRepository().Get(ctx, testJob.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin() {
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
