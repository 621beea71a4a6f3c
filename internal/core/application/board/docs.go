// Package board holds the client-side state and behavior of the scheduling
// board: the assignment store with its optimistic move ledger, the pure
// grid transform, the drag and drop gesture controller, and the quick
// actions behind the job context menu.
//
// The package is transport-agnostic. Everything it needs from the backend
// comes through ports.CalendarService, so the same board runs against the
// in-process service or the remote REST client unchanged.
package board
