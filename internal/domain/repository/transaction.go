package repository

import "context"

// RepositoryFactory creates repository instances that are all bound to the
// same transaction, so a use case can compose multi-step atomic operations.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	NotificationRepo() NotificationRepository
}

// TransactionManager runs a function within a single storage transaction.
// If fn returns an error the transaction is rolled back and the error is
// returned unchanged; otherwise the transaction is committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
