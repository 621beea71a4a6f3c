package job

import (
	"errors"
	"fmt"

	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/pkg/errs"
	"hireboard/internal/pkg/guard"
)

// Domain errors for job operations.
var (
	// ErrJobIsNotConstructed is returned when using an improperly initialized Job.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")
	// ErrCustomerNameIsRequired is returned when creating a job without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrOrderNumberIsRequired is returned when creating a job without an order number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrMoveAfterOffHire is returned when reassigning a job past its off-hire date.
	ErrMoveAfterOffHire = errors.New("job cannot be scheduled after its off-hire date")
)

// Details carries the descriptive fields of a job. They affect display
// only and carry no scheduling semantics.
type Details struct {
	// CustomerName is the hiring customer (required).
	CustomerName string
	// OrderNumber ties the job back to the originating hire order (required).
	OrderNumber string
	// ScheduledTime is the display time-of-day slot, e.g. "09:30".
	ScheduledTime string
	// Address is the site address shown on the job card.
	Address string
	// Notes is free-form operator text.
	Notes string
	// IsRecurring marks jobs generated from a recurring hire agreement.
	IsRecurring bool
}

// Job represents a scheduled unit of work on the hire board: delivering,
// collecting, or servicing hired equipment for a customer on a particular
// day. It is the aggregate root managing the job lifecycle from scheduling
// through reassignment to completion or cancellation.
//
// Job follows these invariants:
//   - Must have a valid unique identifier and a valid calendar date
//   - Is attributable to exactly one placement: (route, date) when assigned,
//     (unassigned, date) otherwise - never two cells at once
//   - Status transitions follow the Status state machine
//   - Reassignment updates route and date as a single atomic change
//   - Can only be created through NewJob or RestoreJob
//
// Jobs are created by the order system and never deleted by the scheduling
// subsystem; they are only reassigned, off-hired, or cancelled.
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// routeID is the owning route's ID (nil while unassigned)
	routeID *kernel.UUID

	// date is the calendar day the job occupies
	date kernel.Date

	// jobType classifies the work (delivery, collection, service)
	jobType Type

	// status is the current state in the job lifecycle
	status Status

	// details are the display-only descriptive fields
	details Details

	// driverID is the driver working the job (nil if none assigned)
	driverID *kernel.UUID

	// offHireDate, when set, is the day the hire ends
	offHireDate *kernel.Date

	// guard ensures the job was properly constructed
	guard guard.ConstructorGuard
}

// NewJob creates a new Job in Scheduled status with no route assigned.
//
// Parameters:
//   - id: Unique identifier for the job (must be valid UUID)
//   - jobType: The kind of work (delivery, collection, service)
//   - date: The calendar day the job is planned for
//   - details: Descriptive fields; CustomerName and OrderNumber are required
//
// Returns:
//   - *Job: The created job if all validations pass
//   - error: Validation error if any parameter is invalid
func NewJob(id kernel.UUID, jobType Type, date kernel.Date, details Details) (*Job, error) {
	j := &Job{
		status: Scheduled,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setType(jobType),
		j.setDate(date),
		j.setDetails(details),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job from persistence or the wire without
// re-running creation rules. All invariants are still validated, including
// status and the consistency of optional fields.
func RestoreJob(
	id kernel.UUID,
	routeID *kernel.UUID,
	date kernel.Date,
	jobType Type,
	status Status,
	details Details,
	driverID *kernel.UUID,
	offHireDate *kernel.Date,
) (*Job, error) {
	j := &Job{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setType(jobType),
		j.setDate(date),
		j.setDetails(details),
		j.setStatus(status),
	); err != nil {
		return nil, err
	}

	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return nil, err
		}
		rid := *routeID
		j.routeID = &rid
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		did := *driverID
		j.driverID = &did
	}

	if offHireDate != nil {
		if err := offHireDate.Validate(); err != nil {
			return nil, err
		}
		d := *offHireDate
		j.offHireDate = &d
	}

	return j, nil
}

// Validate ensures the Job instance was properly constructed.
// Returns ErrJobIsNotConstructed otherwise.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// RouteID returns the owning route's ID, or nil while the job is unassigned.
func (j *Job) RouteID() *kernel.UUID {
	if j.routeID == nil {
		return nil
	}
	id := *j.routeID
	return &id
}

// Date returns the calendar day the job occupies.
func (j *Job) Date() kernel.Date {
	return j.date
}

// Placement returns the board cell the job currently occupies.
func (j *Job) Placement() Placement {
	p, _ := NewPlacement(j.routeID, j.date)
	return p
}

// Type returns the kind of work the job represents.
func (j *Job) Type() Type {
	return j.jobType
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// Details returns the display-only descriptive fields.
func (j *Job) Details() Details {
	return j.details
}

// Driver returns the assigned driver's ID, or nil if none is assigned.
func (j *Job) Driver() *kernel.UUID {
	if j.driverID == nil {
		return nil
	}
	id := *j.driverID
	return &id
}

// OffHireDate returns the day the hire ends, or nil if not yet marked.
func (j *Job) OffHireDate() *kernel.Date {
	if j.offHireDate == nil {
		return nil
	}
	d := *j.offHireDate
	return &d
}

// ValidateReassign checks whether the job may currently be moved,
// without performing the move. It enforces the same rules as Reassign.
func (j *Job) ValidateReassign(target Placement) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := j.status.ValidateReassign(); err != nil {
		return err
	}
	if j.offHireDate != nil && target.Date().After(*j.offHireDate) {
		return fmt.Errorf("%w: off-hire is %s", ErrMoveAfterOffHire, j.offHireDate)
	}
	return nil
}

// Reassign moves the job to the target placement.
//
// The route and date change together as one atomic field update; there is
// no intermediate state where the job is detached from its old cell but
// not yet attached to the new one.
//
// Business rules:
//   - The job must be in Scheduled or InProgress status
//   - The target date must not fall after the job's off-hire date
//
// Returns:
//   - nil on successful reassignment
//   - error if the placement is invalid or the move is not allowed
func (j *Job) Reassign(target Placement) error {
	if err := j.ValidateReassign(target); err != nil {
		return err
	}

	j.routeID = target.RouteID()
	j.date = target.Date()
	return nil
}

// AssignDriver assigns a driver to the job.
// Allowed while the job is in any non-terminal status.
func (j *Job) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if j.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a driver", j.status))
	}

	j.driverID = &driverID
	return nil
}

// MarkOffHire records the day the hire ends.
// Allowed while the job is in any non-terminal status. The off-hire date
// must not fall before the job's scheduled date.
func (j *Job) MarkOffHire(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	if j.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to mark off-hire", j.status))
	}
	if date.Before(j.date) {
		return errs.NewValueIsInvalidErrorWithCause("offHireDate",
			fmt.Errorf("off-hire %s is before scheduled date %s", date, j.date))
	}

	j.offHireDate = &date
	return nil
}

// Start marks the job as being worked.
func (j *Job) Start() error {
	newStatus, err := j.status.Start()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Complete marks the job as carried out. Terminal.
func (j *Job) Complete() error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Cancel calls the job off. Terminal.
func (j *Job) Cancel() error {
	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// setID validates and sets the job's unique identifier.
func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// setType validates and sets the job's type.
func (j *Job) setType(jobType Type) error {
	if err := jobType.Validate(); err != nil {
		return err
	}
	j.jobType = jobType
	return nil
}

// setDate validates and sets the job's calendar day.
func (j *Job) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	j.date = date
	return nil
}

// setStatus validates and sets the job's status.
func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

// setDetails validates and sets the display fields.
func (j *Job) setDetails(details Details) error {
	if details.CustomerName == "" {
		return ErrCustomerNameIsRequired
	}
	if details.OrderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	j.details = details
	return nil
}
