// Package route contains the Route reference entity: a delivery round that
// forms one row of the scheduling board. Routes are read-only for the
// scheduling subsystem; they are fetched from the backend and only consulted
// for display (name, color) and capacity validation.
package route
