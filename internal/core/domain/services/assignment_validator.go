package services

import (
	"fmt"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/route"
)

// Decision is the outcome of checking a prospective assignment.
// A rejected decision is a normal business answer, not an error: the move is
// disallowed and Message explains why in operator-facing terms.
type Decision struct {
	IsValid bool
	Message string
}

// Approve returns a passing decision.
func Approve() Decision {
	return Decision{IsValid: true}
}

// Reject returns a failing decision with an operator-facing message.
func Reject(message string) Decision {
	return Decision{IsValid: false, Message: message}
}

// AssignmentValidator is a domain service that decides whether a job may be
// placed into a target board cell. It gathers the rules shared by the
// validate endpoint and the persisting move command so both always agree.
//
// Business rules:
//   - The job must be in a movable status (scheduled or in-progress)
//   - The target date must not fall after the job's off-hire date
//   - An assigned target must name a known route
//   - A route with a capacity hint must have room left on the target day
//
// Rule violations come back as rejected Decisions; errors are reserved for
// invalid inputs (unconstructed values).
//
// Example usage:
//
//	validator := services.NewAssignmentValidator()
//	decision, err := validator.Validate(j, target, targetRoute, jobsAlreadyInCell)
//	if err != nil {
//	    // Malformed input, not a business answer
//	    return err
//	}
//	if !decision.IsValid {
//	    // Show decision.Message to the operator
//	}
type AssignmentValidator struct{}

// NewAssignmentValidator creates a new AssignmentValidator instance.
func NewAssignmentValidator() AssignmentValidator {
	return AssignmentValidator{}
}

// Validate decides whether the job may be placed at target.
//
// Parameters:
//   - j: The job being moved (must be valid)
//   - target: The prospective board cell (must be valid)
//   - targetRoute: The route named by target, or nil when the target is the
//     unassigned bucket or the route is unknown
//   - occupancy: How many other jobs already sit in the target cell,
//     excluding j itself
//
// Returns:
//   - Decision: Approved, or rejected with an operator-facing message
//   - error: Only for unconstructed inputs
func (v AssignmentValidator) Validate(
	j *job.Job,
	target job.Placement,
	targetRoute *route.Route,
	occupancy int,
) (Decision, error) {
	if err := j.Validate(); err != nil {
		return Decision{}, err
	}
	if err := target.Validate(); err != nil {
		return Decision{}, err
	}

	if err := j.Status().ValidateReassign(); err != nil {
		return Reject(fmt.Sprintf("Job is %s and cannot be moved", j.Status())), nil
	}

	if offHire := j.OffHireDate(); offHire != nil && target.Date().After(*offHire) {
		return Reject(fmt.Sprintf("Job is off-hired from %s", offHire)), nil
	}

	if target.IsUnassigned() {
		// The unassigned bucket has no route rules and no capacity.
		return Approve(), nil
	}

	if targetRoute == nil {
		return Reject("Route not found"), nil
	}
	if err := targetRoute.Validate(); err != nil {
		return Decision{}, err
	}
	if !targetRoute.ID().IsEqual(*target.RouteID()) {
		return Decision{}, fmt.Errorf("route %s does not match target %s", targetRoute.ID(), target)
	}

	if targetRoute.HasCapacityHint() && occupancy >= targetRoute.Capacity() {
		return Reject("Route at capacity"), nil
	}

	return Approve(), nil
}
