// Package services contains domain services for the scheduling system.
// Domain services hold business logic that spans aggregates: the
// AssignmentValidator combines job lifecycle rules with route capacity to
// decide whether a prospective board placement is allowed.
package services
