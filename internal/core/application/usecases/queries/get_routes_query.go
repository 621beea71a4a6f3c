package queries

import (
	"errors"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/guard"
)

var (
	ErrGetRoutesQueryIsNotConstructed = errors.New(
		"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
	)
)

// GetRoutesQuery retrieves every route configured on the board.
// Returns route identities, display colors, and capacity hints in board
// row order.
//
// Example:
//
//	query := NewGetRoutesQuery()
//	handler := NewGetRoutesQueryHandler(db)
//
//	routes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve routes: %w", err)
//	}
//
//	for _, route := range routes {
//	    fmt.Printf("Route %s (%s)\n", route.Name, route.Color)
//	}
type GetRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a query to retrieve all routes.
// This is a parameterless query that fetches the complete route list.
func NewGetRoutesQuery() GetRoutesQuery {
	return GetRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRoutesQueryIsNotConstructed if validation fails.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// GetRoutesQueryResponse represents route information in the read model.
// A Capacity of zero means the route carries no capacity hint.
type GetRoutesQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Color    string
	Capacity int
}
