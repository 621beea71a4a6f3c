package ports

import (
	"context"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllInDateRange retrieves every job whose date falls inside the
	// range, bounds inclusive, in stable insertion order.
	GetAllInDateRange(ctx context.Context, rng kernel.DateRange) ([]*job.Job, error)

	// CountInCell counts jobs currently occupying the given board cell.
	// Used for route capacity validation.
	CountInCell(ctx context.Context, target job.Placement) (int, error)
}
