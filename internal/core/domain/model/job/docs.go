// Package job contains the Job aggregate: a scheduled unit of hire work
// (delivery, collection, or service) that occupies exactly one cell of the
// scheduling board - a route, or the unassigned bucket, on one calendar day.
//
// The aggregate enforces the lifecycle state machine (scheduled,
// in-progress, completed, cancelled), atomic reassignment between board
// cells, driver assignment, and off-hire marking. The Placement value
// object identifies board cells and is shared with the drag payload and
// the optimistic-update ledger.
package job
