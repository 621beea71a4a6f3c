// Package kernel contains shared value objects used across the scheduling
// domain: UUID identifiers, day-granularity calendar dates, inclusive date
// ranges, and board view modes.
//
// All kernel types are immutable value objects. Zero values are invalid and
// fail Validate(); instances must be created through the provided
// constructors so invariants hold everywhere the values travel.
package kernel
