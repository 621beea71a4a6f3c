package ports

import "context"

// UnitOfWork coordinates transactional work across the scheduling
// repositories. Implementations bind every repository obtained from the
// same instance to one database transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	JobRepository() JobRepository
	RouteRepository() RouteRepository
}

// UnitOfWorkFactory creates fresh UnitOfWork instances, one per business
// operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
