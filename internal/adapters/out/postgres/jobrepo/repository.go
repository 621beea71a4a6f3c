package jobrepo

import (
	"context"
	"errors"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("RouteID", "Date", "JobType", "Status", "CustomerName", "OrderNumber",
			"ScheduledTime", "Address", "Notes", "IsRecurring", "DriverID", "OffHireDate").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInDateRange retrieves every job dated inside the range, bounds
// inclusive, in creation order. Creation order is what gives board cells
// their stable job ordering.
func (r *GormJobRepository) GetAllInDateRange(ctx context.Context, rng kernel.DateRange) ([]*job.Job, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", rng.Start().Time(), rng.End().Time()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

// CountInCell counts jobs occupying the given board cell.
// Only jobs that still consume route capacity count: completed and
// cancelled jobs are excluded.
func (r *GormJobRepository) CountInCell(ctx context.Context, target job.Placement) (int, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("date = ?", target.Date().Time()).
		Where("status IN ?", []int{int(job.Scheduled), int(job.InProgress)})

	if routeID := target.RouteID(); routeID != nil {
		query = query.Where("route_id = ?", routeID.Bytes())
	} else {
		query = query.Where("route_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}
