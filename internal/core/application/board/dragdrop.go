package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/ports"
	"hireboard/internal/pkg/errs"
)

// GestureState is the drag gesture's position in its lifecycle.
type GestureState int

const (
	// Idle means no drag is in progress.
	Idle GestureState = iota
	// Dragging means a job is picked up but not over a cell.
	Dragging
	// Hovering means the picked-up job is over a candidate cell.
	Hovering
)

// String returns the lowercase name of the state for logs.
func (s GestureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Hovering:
		return "hovering"
	default:
		return "unknown"
	}
}

// DragPayload travels with the gesture from pickup to drop. Origin is the
// cell the job occupied at pickup time and is authoritative for the drop:
// if the job has since moved, the payload is stale and the drop must not
// apply.
type DragPayload struct {
	JobID  kernel.UUID
	Origin job.Placement
}

// ErrDragNotAllowed is returned when picking up a job that may not be
// dragged: it has a move in flight or sits in a terminal status.
var ErrDragNotAllowed = fmt.Errorf("job cannot be dragged")

// Controller runs the drag and drop gesture against the store.
//
// The gesture is a three-state machine (Idle, Dragging, Hovering) driven by
// Pickup, Hover, Leave, Cancel, and Drop. Whatever path a drop takes,
// successful or not, the transient gesture state is cleared before Drop
// returns; only the store's ledger tracks the in-flight persistence.
//
// Drop runs the full move protocol: stale and same-cell drops are absorbed
// as no-ops, then the move is applied optimistically, validated and
// persisted through the calendar service, and finally confirmed or rolled
// back. Outcomes are published through the notifier.
type Controller struct {
	store    *Store
	service  ports.CalendarService
	notifier ports.Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	state   GestureState
	payload DragPayload
	hover   *job.Placement
}

// NewController creates a Controller in the Idle state.
func NewController(
	store *Store,
	service ports.CalendarService,
	notifier ports.Notifier,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:    store,
		service:  service,
		notifier: notifier,
		logger:   logger.With("component", "board.Controller"),
	}
}

// State returns the current gesture state.
func (c *Controller) State() GestureState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HoverTarget returns the cell currently hovered, or nil outside Hovering.
func (c *Controller) HoverTarget() *job.Placement {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hover == nil {
		return nil
	}
	target := *c.hover
	return &target
}

// Pickup starts a drag for the job and returns the payload that must come
// back at drop time. A job with a move already in flight or in a status
// that rules out moving cannot be picked up.
func (c *Controller) Pickup(jobID kernel.UUID) (DragPayload, error) {
	j, ok := c.store.Job(jobID)
	if !ok {
		return DragPayload{}, errs.NewObjectNotFoundError("jobId", jobID)
	}
	if c.store.HasPendingMove(jobID) {
		return DragPayload{}, fmt.Errorf("%w: a move is already in flight", ErrDragNotAllowed)
	}
	if err := j.Status().ValidateReassign(); err != nil {
		return DragPayload{}, fmt.Errorf("%w: %s", ErrDragNotAllowed, j.Status())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Dragging
	c.payload = DragPayload{JobID: jobID, Origin: j.Placement()}
	c.hover = nil

	c.logger.Debug("drag started", "jobId", jobID, "origin", c.payload.Origin)
	return c.payload, nil
}

// Hover marks the gesture as over a candidate cell. Ignored while Idle.
func (c *Controller) Hover(target job.Placement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Idle {
		return
	}
	c.state = Hovering
	c.hover = &target
}

// Leave marks the gesture as no longer over a cell. Ignored unless Hovering.
func (c *Controller) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Hovering {
		return
	}
	c.state = Dragging
	c.hover = nil
}

// Cancel abandons the gesture without touching the store.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Drop completes the gesture by attempting to move the payload's job into
// the target cell.
//
// The gesture state is cleared unconditionally, whatever the outcome. A
// payload that does not belong to the active gesture, because the gesture
// was cancelled or another job has since been picked up, is ignored without
// error, as is a payload whose origin no longer matches the job's current
// cell; a drop onto the origin cell is a no-op. A conflicting in-flight
// move surfaces as ErrMoveConflict, a business refusal as *RejectionError,
// and anything else as the underlying service error; in the failure cases
// the optimistic move is rolled back.
func (c *Controller) Drop(ctx context.Context, payload DragPayload, target job.Placement) error {
	c.mu.Lock()
	active := c.payload
	engaged := c.state != Idle
	c.reset()
	c.mu.Unlock()

	if !engaged || !active.JobID.IsEqual(payload.JobID) {
		c.logger.Debug("drop ignored, payload does not belong to the active gesture",
			"jobId", payload.JobID)
		return nil
	}

	if err := target.Validate(); err != nil {
		return err
	}

	current, ok := c.store.Job(payload.JobID)
	if !ok {
		// The job left the board mid-drag. Nothing to apply.
		c.logger.Debug("drop ignored, job no longer on board", "jobId", payload.JobID)
		return nil
	}
	if !current.Placement().IsEqual(payload.Origin) {
		c.logger.Debug("drop ignored, stale payload",
			"jobId", payload.JobID, "origin", payload.Origin, "current", current.Placement())
		return nil
	}
	if target.IsEqual(payload.Origin) {
		return nil
	}

	if err := c.store.BeginOptimisticMove(payload.JobID, target); err != nil {
		return err
	}

	decision, err := c.service.ValidateAssignment(ctx, payload.JobID, target)
	if err != nil {
		c.store.RollbackMove(payload.JobID)
		c.notify(ports.NotificationError, payload.JobID, "Could not validate the move")
		c.logger.Error("assignment validation failed", "jobId", payload.JobID, "error", err)
		return err
	}
	if !decision.IsValid {
		c.store.RollbackMove(payload.JobID)
		c.notify(ports.NotificationWarning, payload.JobID, decision.Message)
		return &RejectionError{Message: decision.Message}
	}

	authoritative, err := c.service.UpdateJobAssignment(ctx, payload.JobID, target)
	if err != nil {
		c.store.RollbackMove(payload.JobID)
		c.notify(ports.NotificationError, payload.JobID, "Could not save the move")
		c.logger.Error("assignment update failed", "jobId", payload.JobID, "error", err)
		return err
	}

	if err := c.store.ConfirmMove(authoritative); err != nil {
		return err
	}

	c.notify(ports.NotificationSuccess, payload.JobID, "Job moved")
	c.logger.Info("job moved", "jobId", payload.JobID, "from", payload.Origin, "to", target)
	return nil
}

// reset clears the transient gesture state. Callers must hold c.mu.
func (c *Controller) reset() {
	c.state = Idle
	c.payload = DragPayload{}
	c.hover = nil
}

func (c *Controller) notify(level ports.NotificationLevel, jobID kernel.UUID, message string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Publish(ports.Notification{Level: level, JobID: jobID, Message: message})
}
