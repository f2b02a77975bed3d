package repository

import (
	"context"
	"errors"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is a domain-specific error returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines the standard operations for role persistence.
type RoleRepository interface {
	EntityRepository[entity.Role]

	// FindByName retrieves a single role by its unique name.
	// Returns ErrRoleNotFound when no such role exists.
	FindByName(ctx context.Context, name string) (*entity.Role, error)
}

// UserRoleRepository defines the operations for user-role association persistence.
// Associations are append-only; there is no removal operation.
type UserRoleRepository interface {
	// Create stages a new user-role association.
	Create(ctx context.Context, userRole *entity.UserRole) error

	// ListByUserID retrieves every role assigned to the given user. The result
	// may contain redundant rows; callers that need set semantics de-duplicate.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error)
}
