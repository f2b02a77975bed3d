// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"
	domainerrors "github.com/charmeleon/HomeCinema/internal/domain/errors"
	"github.com/charmeleon/HomeCinema/internal/domain/repository"
	"github.com/charmeleon/HomeCinema/internal/domain/service"
	"github.com/charmeleon/HomeCinema/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	userRoleRepo repository.UserRoleRepository
	verifier     *credentialVerifier
	encryption   service.EncryptionService
	logger       *slog.Logger
}

// MembershipServiceParams holds dependencies for MembershipService, injected by Fx.
type MembershipServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	UserRoleRepo repository.UserRoleRepository
	Encryption   service.EncryptionService
	Logger       *slog.Logger
}

// NewMembershipService is the constructor for membershipService. It receives all dependencies as interfaces.
func NewMembershipService(params MembershipServiceParams) usecase.MembershipUsecase {
	return &membershipService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		userRoleRepo: params.UserRoleRepo,
		verifier:     newCredentialVerifier(params.Encryption),
		encryption:   params.Encryption,
		logger:       params.Logger,
	}
}

// CreateUser provisions a new account in two phases. Phase one checks username
// uniqueness, derives the credential and commits the account — a durability
// checkpoint, since role assignment needs the persisted identifier. Phase two
// resolves and stages every requested role, committing them together. A role
// resolution failure discards the whole staged role batch, but the account
// from phase one remains persisted.
func (srv *membershipService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.CreateUserOutput, error) {
	srv.logger.Info("Starting account creation", slog.String("username", input.Username))

	createdUser, err := srv.createAccount(ctx, input)
	if err != nil {
		srv.logger.Warn("Account creation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	if err := srv.assignRoles(ctx, createdUser, input.RoleIDs); err != nil {
		srv.logger.Warn("Role assignment failed after account commit",
			slog.String("username", input.Username),
			slog.Any("userID", createdUser.ID),
			slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Account created", slog.Any("userID", createdUser.ID))

	return &usecase.CreateUserOutput{User: createdUser}, nil
}

// createAccount is the first commit phase of CreateUser.
func (srv *membershipService) createAccount(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	var createdUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The check-then-create pair is not serializable across concurrent
		// calls; the unique constraint on username is the backstop, mapped to
		// the same domain error by the repository.
		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrDuplicateUsername.WrapMessage("account creation failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by username")
		}

		salt, err := srv.encryption.CreateSalt()
		if err != nil {
			return domainerrors.ErrSaltGenerationFailed.WrapMessage(err.Error())
		}

		newUser := &entity.User{
			Username:       input.Username,
			Email:          input.Email,
			Salt:           salt,
			HashedPassword: srv.encryption.EncryptPassword(input.Password, salt),
			IsLocked:       false,
			CreatedAt:      time.Now(),
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		createdUser = newUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute account creation transaction")
	}

	return createdUser, nil
}

// assignRoles is the second commit phase of CreateUser. An empty or nil role
// list skips the phase entirely, making the second commit a no-op.
func (srv *membershipService) assignRoles(ctx context.Context, user *entity.User, roleIDs []uuid.UUID) error {
	if len(roleIDs) == 0 {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()
		userRoleRepo := repoFactory.UserRoleRepo()

		for _, roleID := range roleIDs {
			role, err := roleRepo.FindByID(ctx, roleID)
			if err != nil {
				if errors.Is(err, repository.ErrRoleNotFound) {
					// Fail fast: abort the remaining assignments. Rolling back
					// here discards the whole staged role batch, while the
					// account committed in phase one stays persisted.
					return domainerrors.ErrRoleNotFound.WrapMessage("role " + roleID.String() + " does not exist")
				}

				return errors.Wrap(err, "failed to find role by id")
			}

			userRole := &entity.UserRole{
				UserID: user.ID,
				RoleID: role.ID,
			}
			if err := userRoleRepo.Create(ctx, userRole); err != nil {
				return errors.Wrap(err, "failed to create user role assignment")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute role assignment transaction")
	}

	return nil
}

// GetUser looks up an account by id. Absence is signalled by a nil user, not
// an error.
func (srv *membershipService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserRoles returns the de-duplicated role names currently assigned to the
// named account. An unknown username yields an empty slice.
func (srv *membershipService) GetUserRoles(ctx context.Context, username string) ([]string, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	roles, err := srv.userRoleRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles for user")
	}

	// The backing store may contain redundant assignment rows; each role name
	// appears at most once in the result.
	seen := make(map[string]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		if _, ok := seen[role.Name]; ok {
			continue
		}
		seen[role.Name] = struct{}{}
		names = append(names, role.Name)
	}

	return names, nil
}

// ValidateUser is the composite authentication entry point. Authentication
// failure is an empty MembershipContext, never an error, and unknown username
// is indistinguishable from wrong password in the result.
func (srv *membershipService) ValidateUser(ctx context.Context, input *usecase.ValidateUserInput) (*entity.MembershipContext, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Debug("Validation failed", slog.String("username", input.Username))

			return &entity.MembershipContext{}, nil
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.verifier.isUserValid(user, input.Password) {
		srv.logger.Debug("Validation failed", slog.String("username", input.Username))

		return &entity.MembershipContext{}, nil
	}

	roleNames, err := srv.GetUserRoles(ctx, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve roles for validated user")
	}

	srv.logger.Debug("User validated", slog.Any("userID", user.ID))

	return &entity.MembershipContext{
		User:  user,
		Roles: roleNames,
	}, nil
}
