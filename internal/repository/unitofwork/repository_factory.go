package unitofwork

import "context"

// RepositoryFactory hands out per-request units of work. Services never hold
// a unit across requests.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
