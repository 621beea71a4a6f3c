package board

import (
	"context"
	"log/slog"
	"sync"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/ports"
	"hireboard/internal/pkg/errs"
)

// Store is the single source of truth for board state: the loaded date
// range, the routes, every job in the range, the active filters, and the
// optimistic move ledger.
//
// All methods are safe for concurrent use. Reads take a shared lock and
// mutations an exclusive one, so background refreshes, server pushes, and
// the drag controller can work against the same store.
//
// The optimistic ledger holds, per job, the authoritative record as it was
// before an in-flight move. Confirming a move drops the entry; rolling back
// restores it. The ledger holds at most one entry per job, which is what
// makes concurrent moves of the same job a detectable conflict.
type Store struct {
	mu      sync.RWMutex
	service ports.CalendarService
	logger  *slog.Logger

	dateRange kernel.DateRange
	routes    []*route.Route
	jobs      map[kernel.UUID]*job.Job
	order     []kernel.UUID
	filters   Filters

	// ledger maps a job with a move in flight to its pre-move record.
	ledger map[kernel.UUID]*job.Job
}

// NewStore creates an empty Store backed by the given calendar service.
func NewStore(service ports.CalendarService, logger *slog.Logger) *Store {
	return &Store{
		service: service,
		logger:  logger.With("component", "board.Store"),
		jobs:    make(map[kernel.UUID]*job.Job),
		ledger:  make(map[kernel.UUID]*job.Job),
	}
}

// LoadRange fetches routes and jobs for the range and replaces the board
// state wholesale. On success the optimistic ledger is cleared: the fetched
// state is authoritative and supersedes anything that was in flight.
//
// On error the previous state is kept untouched, so a failed refresh never
// blanks the board.
func (s *Store) LoadRange(ctx context.Context, rng kernel.DateRange) error {
	if err := rng.Validate(); err != nil {
		return err
	}

	routes, err := s.service.Routes(ctx)
	if err != nil {
		s.logger.Error("failed to load routes", "range", rng, "error", err)
		return err
	}
	jobs, err := s.service.JobsForDateRange(ctx, rng)
	if err != nil {
		s.logger.Error("failed to load jobs", "range", rng, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dateRange = rng
	s.routes = routes
	s.jobs = make(map[kernel.UUID]*job.Job, len(jobs))
	s.order = make([]kernel.UUID, 0, len(jobs))
	for _, j := range jobs {
		if _, exists := s.jobs[j.ID()]; exists {
			continue
		}
		s.jobs[j.ID()] = j
		s.order = append(s.order, j.ID())
	}
	s.ledger = make(map[kernel.UUID]*job.Job)

	s.logger.Info("board range loaded", "range", rng, "routes", len(routes), "jobs", len(s.order))
	return nil
}

// DateRange returns the currently loaded range. Its Validate fails until
// the first successful LoadRange.
func (s *Store) DateRange() kernel.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dateRange
}

// Routes returns the loaded routes in board row order.
func (s *Store) Routes() []*route.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*route.Route, len(s.routes))
	copy(out, s.routes)
	return out
}

// Route returns the loaded route with the given ID, or nil if unknown.
func (s *Store) Route(id kernel.UUID) *route.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.routes {
		if r.ID().IsEqual(id) {
			return r
		}
	}
	return nil
}

// Jobs returns every loaded job in stable fetch order.
func (s *Store) Jobs() []*job.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobsLocked()
}

func (s *Store) jobsLocked() []*job.Job {
	out := make([]*job.Job, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.jobs[id])
	}
	return out
}

// Job returns the loaded job with the given ID.
func (s *Store) Job(id kernel.UUID) (*job.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	return j, ok
}

// SetFilters merges a partial update into the active board filters.
// Filtering is local and derived; changing it never triggers a refetch.
func (s *Store) SetFilters(update FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.Merge(update)
}

// Filters returns the active board filters.
func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Grid builds the presentation grid from the current state and filters.
func (s *Store) Grid() Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BuildGrid(s.routes, s.jobsLocked(), s.dateRange, s.filters)
}

// HasPendingMove reports whether the job has a move in flight.
func (s *Store) HasPendingMove(jobID kernel.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, pending := s.ledger[jobID]
	return pending
}

// BeginOptimisticMove applies the target placement to the job immediately
// and records the pre-move record in the ledger so the move can be rolled
// back. Returns ErrMoveConflict if the job already has a move in flight.
func (s *Store) BeginOptimisticMove(jobID kernel.UUID, target job.Placement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[jobID]
	if !ok {
		return errs.NewObjectNotFoundError("jobId", jobID)
	}
	if _, pending := s.ledger[jobID]; pending {
		return ErrMoveConflict
	}

	moved, err := cloneJob(current)
	if err != nil {
		return err
	}
	if err := moved.Reassign(target); err != nil {
		return err
	}

	s.ledger[jobID] = current
	s.jobs[jobID] = moved

	s.logger.Debug("optimistic move applied", "jobId", jobID, "target", target)
	return nil
}

// ConfirmMove settles an in-flight move with the authoritative record the
// backend returned and drops the ledger entry. A confirm with no matching
// ledger entry still applies the record; the entry may have been cleared by
// an intervening LoadRange.
func (s *Store) ConfirmMove(authoritative *job.Job) error {
	if err := authoritative.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ledger, authoritative.ID())
	s.applyLocked(authoritative)

	s.logger.Debug("move confirmed", "jobId", authoritative.ID(), "placement", authoritative.Placement())
	return nil
}

// RollbackMove restores the job to its pre-move record and drops the
// ledger entry. Rolling back a job with no entry is a no-op; the entry may
// have been cleared by an intervening LoadRange.
func (s *Store) RollbackMove(jobID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, pending := s.ledger[jobID]
	if !pending {
		return
	}

	delete(s.ledger, jobID)
	if _, ok := s.jobs[jobID]; ok {
		s.jobs[jobID] = original
	}

	s.logger.Debug("move rolled back", "jobId", jobID, "placement", original.Placement())
}

// ApplyServerJob merges an authoritative job record pushed by the backend.
// The server record supersedes any in-flight move for the job, so a pending
// ledger entry is dropped. A job dated outside the loaded range is removed
// from the board; an unseen job inside the range is appended.
func (s *Store) ApplyServerJob(authoritative *job.Job) error {
	if err := authoritative.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ledger, authoritative.ID())
	s.applyLocked(authoritative)
	return nil
}

// applyLocked upserts the record, honoring the loaded range.
// Callers must hold the write lock.
func (s *Store) applyLocked(authoritative *job.Job) {
	id := authoritative.ID()
	_, known := s.jobs[id]

	inRange := s.dateRange.Validate() == nil && s.dateRange.Contains(authoritative.Date())
	if !inRange {
		if known {
			delete(s.jobs, id)
			s.removeFromOrderLocked(id)
		}
		return
	}

	if !known {
		s.order = append(s.order, id)
	}
	s.jobs[id] = authoritative
}

func (s *Store) removeFromOrderLocked(id kernel.UUID) {
	for i, candidate := range s.order {
		if candidate.IsEqual(id) {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// cloneJob reconstructs an independent copy of the job so optimistic
// mutation never reaches records other callers may still hold.
func cloneJob(j *job.Job) (*job.Job, error) {
	return job.RestoreJob(
		j.ID(),
		j.RouteID(),
		j.Date(),
		j.Type(),
		j.Status(),
		j.Details(),
		j.Driver(),
		j.OffHireDate(),
	)
}
