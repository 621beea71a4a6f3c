package job

import (
	"fmt"

	"hireboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a scheduled job.
// It implements a state machine with defined transitions so jobs follow
// the correct business workflow.
//
// State transitions:
//
//	Scheduled ──> InProgress ──> Completed
//	    │              │
//	    └──────────────┴──> Cancelled
//
// Reassignment between routes and dates is allowed while a job is in
// Scheduled or InProgress status; Completed and Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the wire.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Scheduled is the initial status when a job is first planned.
	// Jobs in this status appear on the board and can be freely reassigned.
	Scheduled

	// InProgress indicates the crew has started working the job.
	// Reassignment is still allowed, e.g. to shift a running job to another route.
	InProgress

	// Completed indicates the job has been carried out.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the job was called off.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Scheduled:     "scheduled",
		InProgress:    "in-progress",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:  "scheduled",
		InProgress: "in-progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Scheduled, InProgress, Completed, and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("scheduled", "in-progress",
// "completed", "cancelled"). Returns "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateReassign checks if a job in this status may be moved to another
// route or date. Only Scheduled and InProgress jobs are movable.
func (s Status) ValidateReassign() error {
	if s != Scheduled && s != InProgress {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reassign", s))
	}
	return nil
}

// Start transitions the status to InProgress.
// Valid only from Scheduled.
func (s Status) Start() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
// Valid only from InProgress.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}
