package job

import (
	"fmt"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/errs"
	"hireboard/internal/pkg/guard"
)

// ErrPlacementIsNotConstructed is returned when validating a zero-value Placement.
var ErrPlacementIsNotConstructed = errs.NewValueIsRequiredError(
	"placement must be created via NewPlacement or NewUnassignedPlacement")

// Placement identifies the board cell a job occupies: a route (or the
// unassigned bucket) on a particular calendar day. It is the unit of
// identity for drag origins, drop targets, and the optimistic ledger.
//
// Placement is an immutable value object. A job is always attributable to
// exactly one placement; a nil route means the unassigned row.
//
// Example:
//
//	target, err := job.NewPlacement(&routeID, kernel.NewDate(2024, time.June, 2))
//	if err != nil {
//	    // Handle validation error
//	}
//	if target.IsEqual(j.Placement()) {
//	    // Drop onto the job's own cell - nothing to do
//	}
type Placement struct { //nolint:recvcheck //using for validation
	routeID *kernel.UUID
	date    kernel.Date
	guard   guard.ConstructorGuard
}

// NewPlacement creates a Placement on the given route and day.
// A nil routeID places the job in the unassigned bucket.
func NewPlacement(routeID *kernel.UUID, date kernel.Date) (Placement, error) {
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return Placement{}, err
		}
	}
	if err := date.Validate(); err != nil {
		return Placement{}, err
	}

	var owned *kernel.UUID
	if routeID != nil {
		id := *routeID
		owned = &id
	}

	return Placement{
		routeID: owned,
		date:    date,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewUnassignedPlacement creates a Placement in the unassigned bucket on the given day.
func NewUnassignedPlacement(date kernel.Date) (Placement, error) {
	return NewPlacement(nil, date)
}

// RouteID returns the owning route's ID, or nil for the unassigned bucket.
func (p Placement) RouteID() *kernel.UUID {
	if p.routeID == nil {
		return nil
	}
	id := *p.routeID
	return &id
}

// Date returns the calendar day of the placement.
func (p Placement) Date() kernel.Date {
	return p.date
}

// IsUnassigned reports whether the placement is in the unassigned bucket.
func (p Placement) IsUnassigned() bool {
	return p.routeID == nil
}

// IsEqual reports whether two placements identify the same board cell.
func (p Placement) IsEqual(other Placement) bool {
	if !p.date.IsEqual(other.date) {
		return false
	}
	if p.routeID == nil || other.routeID == nil {
		return p.routeID == nil && other.routeID == nil
	}
	return p.routeID.IsEqual(*other.routeID)
}

// String returns a human-readable "route@date" representation for logs.
func (p Placement) String() string {
	if p.routeID == nil {
		return fmt.Sprintf("unassigned@%s", p.date)
	}
	return fmt.Sprintf("%s@%s", p.routeID, p.date)
}

// Validate ensures the Placement was created via a constructor.
func (p Placement) Validate() error {
	return p.guard.Validate(ErrPlacementIsNotConstructed)
}
