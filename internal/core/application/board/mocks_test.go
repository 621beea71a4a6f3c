package board_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/domain/services"
	"hireboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCalendarService struct{ mock.Mock }

func (m *MockCalendarService) JobsForDateRange(ctx context.Context, rng kernel.DateRange) ([]*job.Job, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockCalendarService) Routes(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

func (m *MockCalendarService) ValidateAssignment(ctx context.Context, jobID kernel.UUID, target job.Placement) (services.Decision, error) {
	args := m.Called(ctx, jobID, target)
	return args.Get(0).(services.Decision), args.Error(1)
}

func (m *MockCalendarService) UpdateJobAssignment(ctx context.Context, jobID kernel.UUID, target job.Placement) (*job.Job, error) {
	args := m.Called(ctx, jobID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockCalendarService) ReassignDriver(ctx context.Context, jobID, driverID kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, jobID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockCalendarService) MarkOffHire(ctx context.Context, jobID kernel.UUID, offHireDate kernel.Date) (*job.Job, error) {
	args := m.Called(ctx, jobID, offHireDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockCalendarService) CancelJob(ctx context.Context, jobID kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

// RecordingNotifier captures published notifications for assertions.
type RecordingNotifier struct {
	mu            sync.Mutex
	notifications []ports.Notification
}

func (n *RecordingNotifier) Publish(notification ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *RecordingNotifier) Notifications() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testRange(t *testing.T) kernel.DateRange {
	t.Helper()
	rng, err := kernel.NewDateRange(
		kernel.NewDate(2024, time.June, 3),
		kernel.NewDate(2024, time.June, 9),
	)
	require.NoError(t, err)
	return rng
}

func makeRoute(t *testing.T, name string) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), name, "", 0)
	require.NoError(t, err)
	return r
}

func makeJob(t *testing.T, r *route.Route, date kernel.Date) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, job.Details{
		CustomerName: "Acme Plant Hire",
		OrderNumber:  "ORD-1001",
	})
	require.NoError(t, err)

	if r != nil {
		target := assignedPlacement(t, r, date)
		require.NoError(t, j.Reassign(target))
	}
	return j
}

func assignedPlacement(t *testing.T, r *route.Route, date kernel.Date) job.Placement {
	t.Helper()
	id := r.ID()
	p, err := job.NewPlacement(&id, date)
	require.NoError(t, err)
	return p
}

func unassignedPlacement(t *testing.T, date kernel.Date) job.Placement {
	t.Helper()
	p, err := job.NewUnassignedPlacement(date)
	require.NoError(t, err)
	return p
}
