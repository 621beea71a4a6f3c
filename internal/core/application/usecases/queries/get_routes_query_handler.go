package queries

import (
	"context"

	"hireboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesQueryHandler retrieves all route information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query to retrieve all routes.
// Returns route read models in creation order, which is the order the board
// renders its rows in.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) ([]GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			color,
			capacity
		FROM routes
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var routeResp GetRoutesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&routeResp.Name,
			&routeResp.Color,
			&routeResp.Capacity,
		)
		if err != nil {
			return nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		routeResp.ID = routeID
		routes = append(routes, routeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
