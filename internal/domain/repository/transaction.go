package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Repositories obtained from the same factory share one unit of
// work.
type RepositoryFactory interface {
	// UserRepo returns a user repository bound to the transaction.
	UserRepo() UserRepository

	// CredentialRepo returns a credential repository bound to the transaction.
	CredentialRepo() CredentialRepository
}

// TransactionManager runs application logic within a single database
// transaction. The callback receives a factory whose repositories all operate
// on that transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
