package kernel

import (
	"fmt"
	"time"

	"hireboard/internal/pkg/errs"
)

// ViewMode determines how many date columns the scheduling board shows and
// how today/previous/next navigation recomputes the visible range.
//
// ViewMode is a value object that validates itself and derives date ranges:
//
//	rng, _ := kernel.WeekView.RangeContaining(kernel.Today())
//	next, _ := kernel.WeekView.NextRange(rng)     // the following week
//	prev, _ := kernel.WeekView.PreviousRange(rng) // the preceding week
type ViewMode int

const (
	// UnknownView represents an invalid or undefined view mode.
	// This value (0) helps catch uninitialized ViewMode values.
	UnknownView ViewMode = iota

	// DayView shows a single date column.
	DayView

	// WeekView shows Monday through Sunday of the anchor's week.
	WeekView

	// MonthView shows every day of the anchor's month.
	MonthView
)

// getViewModeStrings returns a map of ViewMode values to their string representations.
func getViewModeStrings() map[ViewMode]string {
	return map[ViewMode]string{
		UnknownView: "unknown",
		DayView:     "day",
		WeekView:    "week",
		MonthView:   "month",
	}
}

// getValidViewModeStrings returns a map of only valid ViewMode values.
func getValidViewModeStrings() map[ViewMode]string {
	//nolint:exhaustive // UnknownView is intentionally excluded as it's invalid
	return map[ViewMode]string{
		DayView:   "day",
		WeekView:  "week",
		MonthView: "month",
	}
}

// ViewModeFromString parses a view mode from its wire representation
// ("day", "week", or "month").
func ViewModeFromString(s string) (ViewMode, error) {
	for mode, str := range getValidViewModeStrings() {
		if str == s {
			return mode, nil
		}
	}
	return UnknownView, errs.NewValueIsInvalidErrorWithCause("view mode",
		fmt.Errorf("%q is not a valid view mode", s))
}

// Validate checks if the ViewMode value is valid.
// Valid modes are DayView, WeekView, and MonthView.
func (m ViewMode) Validate() error {
	if _, ok := getValidViewModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("view mode",
			fmt.Errorf("%d is not a valid view mode", m))
	}
	return nil
}

// String returns the human-readable name of the view mode.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (m ViewMode) String() string {
	if str, ok := getViewModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// RangeContaining returns the date range this view mode shows around the
// given anchor day:
//   - DayView: the anchor day itself
//   - WeekView: Monday through Sunday of the anchor's week
//   - MonthView: the first through the last day of the anchor's month
func (m ViewMode) RangeContaining(anchor Date) (DateRange, error) {
	if err := m.Validate(); err != nil {
		return DateRange{}, err
	}
	if err := anchor.Validate(); err != nil {
		return DateRange{}, err
	}

	switch m {
	case WeekView:
		// time.Weekday numbers Sunday as 0; shift so Monday starts the week.
		offset := (int(anchor.Weekday()) + 6) % 7
		start := anchor.AddDays(-offset)
		return NewDateRange(start, start.AddDays(6))
	case MonthView:
		t := anchor.Time()
		start := NewDate(t.Year(), t.Month(), 1)
		end := start.AddDays(daysInMonth(t.Year(), t.Month()) - 1)
		return NewDateRange(start, end)
	default:
		return NewDateRange(anchor, anchor)
	}
}

// NextRange returns the range immediately following the given one in this
// view mode: the next day, week, or month.
func (m ViewMode) NextRange(current DateRange) (DateRange, error) {
	if err := current.Validate(); err != nil {
		return DateRange{}, err
	}
	return m.RangeContaining(current.End().AddDays(1))
}

// PreviousRange returns the range immediately preceding the given one in
// this view mode: the previous day, week, or month.
func (m ViewMode) PreviousRange(current DateRange) (DateRange, error) {
	if err := current.Validate(); err != nil {
		return DateRange{}, err
	}
	return m.RangeContaining(current.Start().AddDays(-1))
}

// daysInMonth returns the number of calendar days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
