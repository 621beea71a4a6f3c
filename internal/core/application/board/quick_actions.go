package board

import (
	"context"
	"log/slog"
	"sync"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/ports"
	"hireboard/internal/pkg/errs"
)

// QuickActions runs the job context menu operations: reassigning the
// driver, marking the hire's end, and cancelling the job.
//
// Opening the menu on a job records it as the selection; the selection is
// transient and cleared when the menu closes. The actions themselves take
// the job explicitly, so a caller that resolved the target another way
// does not have to go through the selection.
//
// Unlike drag and drop these are not optimistic. Each action goes straight
// to the calendar service and the board only changes when the authoritative
// record comes back, so there is nothing to roll back.
type QuickActions struct {
	store    *Store
	service  ports.CalendarService
	notifier ports.Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	selected *kernel.UUID
}

// NewQuickActions creates a QuickActions facade over the store and service.
func NewQuickActions(
	store *Store,
	service ports.CalendarService,
	notifier ports.Notifier,
	logger *slog.Logger,
) *QuickActions {
	return &QuickActions{
		store:    store,
		service:  service,
		notifier: notifier,
		logger:   logger.With("component", "board.QuickActions"),
	}
}

// Select marks the job the context menu is targeting. Refuses a job that
// is not on the board.
func (q *QuickActions) Select(jobID kernel.UUID) error {
	if _, ok := q.store.Job(jobID); !ok {
		return errs.NewObjectNotFoundError("jobId", jobID)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	id := jobID
	q.selected = &id
	return nil
}

// Selected returns the job the menu is targeting, if any.
func (q *QuickActions) Selected() (kernel.UUID, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.selected == nil {
		return kernel.UUID{}, false
	}
	return *q.selected, true
}

// ClearSelection drops the targeted job when the menu closes.
func (q *QuickActions) ClearSelection() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.selected = nil
}

// ReassignDriver puts a different driver on the job.
func (q *QuickActions) ReassignDriver(ctx context.Context, jobID, driverID kernel.UUID) error {
	authoritative, err := q.service.ReassignDriver(ctx, jobID, driverID)
	if err != nil {
		q.notify(ports.NotificationError, jobID, "Could not reassign the driver")
		q.logger.Error("driver reassignment failed", "jobId", jobID, "driverId", driverID, "error", err)
		return err
	}
	if err := q.store.ApplyServerJob(authoritative); err != nil {
		return err
	}

	q.notify(ports.NotificationSuccess, jobID, "Driver reassigned")
	return nil
}

// MarkOffHire records the day the hire ends.
func (q *QuickActions) MarkOffHire(ctx context.Context, jobID kernel.UUID, offHireDate kernel.Date) error {
	authoritative, err := q.service.MarkOffHire(ctx, jobID, offHireDate)
	if err != nil {
		q.notify(ports.NotificationError, jobID, "Could not mark the job off-hired")
		q.logger.Error("off-hire failed", "jobId", jobID, "offHireDate", offHireDate, "error", err)
		return err
	}
	if err := q.store.ApplyServerJob(authoritative); err != nil {
		return err
	}

	q.notify(ports.NotificationSuccess, jobID, "Off-hire recorded")
	return nil
}

// CancelJob calls the job off.
func (q *QuickActions) CancelJob(ctx context.Context, jobID kernel.UUID) error {
	authoritative, err := q.service.CancelJob(ctx, jobID)
	if err != nil {
		q.notify(ports.NotificationError, jobID, "Could not cancel the job")
		q.logger.Error("cancellation failed", "jobId", jobID, "error", err)
		return err
	}
	if err := q.store.ApplyServerJob(authoritative); err != nil {
		return err
	}

	q.notify(ports.NotificationSuccess, jobID, "Job cancelled")
	return nil
}

func (q *QuickActions) notify(level ports.NotificationLevel, jobID kernel.UUID, message string) {
	if q.notifier == nil {
		return
	}
	q.notifier.Publish(ports.Notification{Level: level, JobID: jobID, Message: message})
}
