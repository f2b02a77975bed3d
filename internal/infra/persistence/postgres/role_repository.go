package postgres

import (
	"context"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"
	domainerrors "github.com/charmeleon/HomeCinema/internal/domain/errors"
	"github.com/charmeleon/HomeCinema/internal/domain/repository"
	"github.com/charmeleon/HomeCinema/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	gormRepository[entity.Role, model.RoleModel]
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		gormRepository: gormRepository[entity.Role, model.RoleModel]{
			db:          db,
			notFoundErr: repository.ErrRoleNotFound,
			toDomain:    toRoleDomain,
			fromDomain:  fromRoleDomain,
			afterCreate: func(m *model.RoleModel, e *entity.Role) {
				e.ID = m.ID
			},
			onCreateErr: func(err error) error {
				if isUniqueConstraintViolation(err) {
					return domainerrors.ErrConflict.WrapMessage("role name already exists")
				}

				return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
			},
		},
	}
}

// FindByName retrieves a single role by its unique name.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	return repo.findOne(ctx, "name = ?", name)
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:   data.ID,
		Name: data.Name,
	}
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel for persistence.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	return &model.RoleModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
