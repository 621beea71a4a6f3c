package kernel

import (
	"fmt"
	"time"

	"hireboard/internal/pkg/errs"
	"hireboard/internal/pkg/guard"
)

// dateLayout is the wire and display format for calendar dates.
const dateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating a zero-value Date.
// Dates must be created via NewDate, DateOf, DateFromString, or Today.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate, DateOf, DateFromString, or Today")

// Date is a calendar date with day granularity.
// It is an immutable value object normalized to midnight UTC, so two Dates
// representing the same calendar day always compare equal regardless of the
// time or zone they were derived from.
//
// The zero value of Date is invalid and fails validation - use one of the
// constructors to create instances.
//
// Example:
//
//	d := kernel.NewDate(2024, time.June, 1)
//	fmt.Println(d) // Output: 2024-06-01
type Date struct {
	t time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to the calendar day it falls on, in the
// instant's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day in local time.
func Today() Date {
	return DateOf(time.Now())
}

// DateFromString parses a Date from its "YYYY-MM-DD" representation.
// This is the format used on the wire and in persistence.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format: %w", err)
	}
	return DateOf(t), nil
}

// String returns the "YYYY-MM-DD" representation of the date.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// Weekday returns the day of the week the date falls on.
func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// AddDays returns the date shifted by the given number of days.
// Negative values shift into the past.
func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// IsEqual reports whether two dates represent the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Validate checks if the Date is properly constructed.
// Returns ErrDateIsNotConstructed for a zero-value Date.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// ErrDateRangeIsNotConstructed is returned when validating a zero-value DateRange.
var ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"date range must be created via NewDateRange")

// DateRange is an inclusive span of calendar days [Start, End].
// It drives which date columns exist on the scheduling board.
// DateRange is an immutable value object; the zero value is invalid.
//
// Example:
//
//	rng, err := kernel.NewDateRange(
//	    kernel.NewDate(2024, time.June, 1),
//	    kernel.NewDate(2024, time.June, 7),
//	)
//	if err != nil {
//	    // Handle validation error
//	}
//	days := rng.Days() // seven Dates, June 1 through June 7
type DateRange struct { //nolint:recvcheck //using for validation
	start Date
	end   Date
	guard guard.ConstructorGuard
}

// NewDateRange creates a DateRange spanning [start, end] inclusive.
// Both bounds must be valid dates and start must not fall after end.
func NewDateRange(start, end Date) (DateRange, error) {
	if err := start.Validate(); err != nil {
		return DateRange{}, errs.NewValueIsRequiredErrorWithCause("start", err)
	}
	if err := end.Validate(); err != nil {
		return DateRange{}, errs.NewValueIsRequiredErrorWithCause("end", err)
	}
	if end.Before(start) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("end %s is before start %s", end, start))
	}

	return DateRange{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Start returns the first day of the range.
func (r DateRange) Start() Date {
	return r.start
}

// End returns the last day of the range.
func (r DateRange) End() Date {
	return r.end
}

// Contains reports whether the given day falls within the range, bounds included.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Days returns every calendar day in the range in chronological order.
func (r DateRange) Days() []Date {
	days := make([]Date, 0, r.Len())
	for d := r.start; !d.After(r.end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Len returns the number of days in the range.
func (r DateRange) Len() int {
	return int(r.end.t.Sub(r.start.t).Hours()/24) + 1
}

// String returns the "YYYY-MM-DD..YYYY-MM-DD" representation of the range.
func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start, r.end)
}

// Validate ensures the DateRange was created via NewDateRange.
func (r DateRange) Validate() error {
	return r.guard.Validate(ErrDateRangeIsNotConstructed)
}
