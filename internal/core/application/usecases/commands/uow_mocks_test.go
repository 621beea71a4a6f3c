package commands_test

import (
	"context"
	"testing"
	"time"

	"hireboard/internal/core/application/usecases/commands"
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllInDateRange(ctx context.Context, rng kernel.DateRange) ([]*job.Job, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) CountInCell(ctx context.Context, target job.Placement) (int, error) {
	args := m.Called(ctx, target)
	return args.Int(0), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

func testDate() kernel.Date {
	return kernel.NewDate(2024, time.June, 3)
}

func newStoredJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), job.Delivery, testDate(), job.Details{
		CustomerName: "Acme Plant Hire",
		OrderNumber:  "ORD-1042",
	})
	require.NoError(t, err)
	return j
}

func newStoredRoute(t *testing.T, capacity int) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), "North loop", "", capacity)
	require.NoError(t, err)
	return r
}
