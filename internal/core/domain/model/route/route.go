package route

import (
	"errors"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/errs"
	"hireboard/internal/pkg/guard"
)

// defaultColor is used for routes created without an explicit display color.
const defaultColor = "#6b7280"

// Domain errors for route operations.
var (
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	// ErrNameIsRequired is returned when attempting to create a route without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Route represents a delivery round on the scheduling board: one board row
// that jobs are assigned to. Routes are reference data from the scheduling
// subsystem's perspective - fetched from the backend, never mutated by the
// board.
//
// Business rules:
//   - Must have a valid UUID and a non-empty name
//   - Capacity, when positive, is a display hint bounding jobs per day;
//     zero means no hint
//   - Color is a display hex color, defaulted when omitted
type Route struct {
	// id uniquely identifies the route
	id kernel.UUID
	// name is the human-readable route name, e.g. "North loop"
	name string
	// color is the display color for the route's row
	color string
	// capacity is the jobs-per-day hint (0 = no hint)
	capacity int
	// guard ensures the route was properly constructed
	guard guard.ConstructorGuard
}

// NewRoute creates a new Route with the specified parameters.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - color: Display hex color; defaulted when empty
//   - capacity: Jobs-per-day hint; must not be negative, 0 means no hint
//
// Returns:
//   - *Route: The created route if all validations pass
//   - error: Validation error if any parameter is invalid
func NewRoute(id kernel.UUID, name, color string, capacity int) (*Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if capacity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("capacity", capacity, 0, "unbounded")
	}
	if color == "" {
		color = defaultColor
	}

	return &Route{
		id:       id,
		name:     name,
		color:    color,
		capacity: capacity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Name returns the human-readable route name.
func (r *Route) Name() string {
	return r.name
}

// Color returns the display color for the route's board row.
func (r *Route) Color() string {
	return r.color
}

// Capacity returns the jobs-per-day hint, 0 meaning no hint.
func (r *Route) Capacity() int {
	return r.capacity
}

// HasCapacityHint reports whether the route carries a jobs-per-day bound.
func (r *Route) HasCapacityHint() bool {
	return r.capacity > 0
}
