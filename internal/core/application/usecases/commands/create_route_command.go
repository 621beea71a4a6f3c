package commands

import (
	"errors"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to add a route row to the board.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	name     string
	color    string
	capacity int

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to add a route.
// Automatically generates a unique ID. Name is required; color is optional
// and defaulted downstream; capacity must not be negative.
func NewCreateRouteCommand(name, color string, capacity int) (CreateRouteCommand, error) {
	if name == "" {
		return CreateRouteCommand{}, route.ErrNameIsRequired
	}
	if capacity < 0 {
		return CreateRouteCommand{}, errors.New("capacity must not be negative")
	}

	return CreateRouteCommand{
		routeID:  kernel.NewUUID(),
		name:     name,
		color:    color,
		capacity: capacity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the generated ID for the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Name returns the route name from the command.
func (c CreateRouteCommand) Name() string {
	return c.name
}

// Color returns the display color from the command.
func (c CreateRouteCommand) Color() string {
	return c.color
}

// Capacity returns the jobs-per-day hint from the command.
func (c CreateRouteCommand) Capacity() int {
	return c.capacity
}
