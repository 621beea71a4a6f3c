package ports

import (
	"context"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route reference data.
type RouteRepository interface {
	// Add persists a new route.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAll retrieves all routes in board row order.
	GetAll(ctx context.Context) ([]*route.Route, error)
}
