// Package guard implements the constructor guard pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// distinguishable from instances created through their designated constructor,
// so validation can reject objects that bypassed construction rules.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether an object was created through its constructor.
// The zero value fails validation; NewConstructorGuard produces a passing guard.
// It is immutable and safe to copy and to use concurrently.
//
// Example:
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) Money {
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
