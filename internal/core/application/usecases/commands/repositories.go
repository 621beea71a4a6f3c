// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"hireboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// JobUoW manages transactions for job-only operations.
	// Used when commands only touch job aggregates.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// UoW manages transactions across job and route aggregates.
	// Used for commands that need routes to decide about jobs, such as moves
	// that must check the target route and its capacity.
	UoW interface {
		TxManager
		JobRepoFactory
		RouteRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
