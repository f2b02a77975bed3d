package postgres

import (
	"context"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"
	domainerrors "github.com/charmeleon/HomeCinema/internal/domain/errors"
	"github.com/charmeleon/HomeCinema/internal/domain/repository"
	"github.com/charmeleon/HomeCinema/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRoleRepository implements the domain.UserRoleRepository interface using GORM.
// The association has no identity beyond the (user, role) pair, so it does not
// use the generic entity repository shape.
type userRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository is the constructor for userRoleRepository.
func NewUserRoleRepository(db *gorm.DB) repository.UserRoleRepository {
	return &userRoleRepository{db: db}
}

// Create stages a new user-role association.
func (repo *userRoleRepository) Create(ctx context.Context, userRole *entity.UserRole) error {
	m := &model.UserRoleModel{
		UserID: userRole.UserID,
		RoleID: userRole.RoleID,
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("role already assigned to user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user role assignment")
	}

	return nil
}

// ListByUserID retrieves every role assigned to the given user.
func (repo *userRoleRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error) {
	var assignments []*model.UserRoleModel
	if err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("user_id = ?", userID).
		Find(&assignments).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user role assignments")
	}

	roles := make([]*entity.Role, 0, len(assignments))
	for _, a := range assignments {
		if a.Role == nil {
			continue
		}
		roles = append(roles, toRoleDomain(a.Role))
	}

	return roles, nil
}
