package job

import (
	"fmt"

	"hireboard/internal/pkg/errs"
)

// Type classifies the work a job represents on the hire schedule:
// delivering equipment to a site, collecting it back, or servicing it
// in place. The type never changes over a job's lifetime.
type Type int

const (
	// UnknownType represents an invalid or undefined job type.
	UnknownType Type = iota

	// Delivery brings hired equipment out to the customer's site.
	Delivery

	// Collection picks hired equipment up at the end of the hire.
	Collection

	// Service visits the site to maintain or repair equipment in place.
	Service
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Delivery:    "delivery",
		Collection:  "collection",
		Service:     "service",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Delivery:   "delivery",
		Collection: "collection",
		Service:    "service",
	}
}

// TypeFromString parses a job type from its wire representation.
func TypeFromString(s string) (Type, error) {
	for jobType, str := range getValidTypeStrings() {
		if str == s {
			return jobType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("job type",
		fmt.Errorf("%q is not a valid job type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("job type",
			fmt.Errorf("%d is not a valid job type", t))
	}
	return nil
}

// String returns the wire name of the job type. Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
