package postgres

import (
	"context"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"
	domainerrors "github.com/charmeleon/HomeCinema/internal/domain/errors"
	"github.com/charmeleon/HomeCinema/internal/domain/repository"
	"github.com/charmeleon/HomeCinema/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	gormRepository[entity.User, model.UserModel]
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		gormRepository: gormRepository[entity.User, model.UserModel]{
			db:          db,
			notFoundErr: repository.ErrUserNotFound,
			toDomain:    toUserDomain,
			fromDomain:  fromUserDomain,
			afterCreate: func(m *model.UserModel, e *entity.User) {
				e.ID = m.ID
				e.CreatedAt = m.CreatedAt
			},
			onCreateErr: func(err error) error {
				// The unique index on username backs the manager's
				// check-then-create; a lost race surfaces as the same domain error.
				if isUniqueConstraintViolation(err) {
					return domainerrors.ErrDuplicateUsername.WrapMessage("username already exists")
				}
				if isNotNullConstraintViolation(err) {
					return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
				}

				return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
			},
		},
	}
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		Salt:           data.Salt,
		HashedPassword: data.HashedPassword,
		IsLocked:       data.IsLocked,
		CreatedAt:      data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		Salt:           data.Salt,
		HashedPassword: data.HashedPassword,
		IsLocked:       data.IsLocked,
		CreatedAt:      data.CreatedAt,
	}
}
