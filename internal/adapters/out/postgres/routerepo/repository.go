package routerepo

import (
	"context"
	"errors"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all routes in board row order, which is their creation order.
func (r *GormRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}

	return routes, nil
}
