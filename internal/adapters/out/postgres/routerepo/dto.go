// Package routerepo provides data transfer objects and mapping functions for route persistence.
package routerepo

import (
	"time"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting routes.
type RouteDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"index"`
	Color    string
	Capacity int

	// CreatedAt gives routes their stable board row order.
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Color:    aggregate.Color(),
		Capacity: aggregate.Capacity(),
	}
}

// toDomain converts a database DTO to a route domain aggregate.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.NewRoute(id, dto.Name, dto.Color, dto.Capacity)
}
