package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle units of work without depending on a
// specific DB driver like GORM. One Execute call is one durability boundary:
// everything staged inside fn becomes visible together on commit, or not at all.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back and all
	// staged writes are discarded. Otherwise, it's committed. All repository
	// operations within the function use the same underlying transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// The transaction session is acquired when Execute begins and released
// deterministically when it returns; factories must not outlive their Execute call.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// RoleRepo returns a RoleRepository bound to the current transaction.
	RoleRepo() RoleRepository

	// UserRoleRepo returns a UserRoleRepository bound to the current transaction.
	UserRoleRepo() UserRoleRepository
}
