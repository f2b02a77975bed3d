// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to provision a new account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string      // Plaintext; hashed before persistence, never logged.
	RoleIDs  []uuid.UUID // Roles to assign, in order. Nil or empty means no roles.
}

// ValidateUserInput defines the data required to authenticate an account.
type ValidateUserInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// CreateUserOutput returns the newly created account with its persisted identifier.
type CreateUserOutput struct {
	User *entity.User
}

// MembershipUsecase defines the interface for membership business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type MembershipUsecase interface {
	// CreateUser provisions a new account and assigns the requested roles.
	// The account commit and the role-assignment commit are two separate
	// durability boundaries: the account remains persisted even when a later
	// role id fails to resolve.
	CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error)

	// GetUser looks up an account by id. Absence is signalled by a nil user,
	// not an error.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetUserRoles returns the de-duplicated role names held by the named
	// account. An unknown username yields an empty slice, not an error.
	GetUserRoles(ctx context.Context, username string) ([]string, error)

	// ValidateUser authenticates a username/password pair. Authentication
	// failure is an empty MembershipContext with a nil error; unknown username
	// and wrong password are indistinguishable in the result.
	ValidateUser(ctx context.Context, input *ValidateUserInput) (*entity.MembershipContext, error)
}
