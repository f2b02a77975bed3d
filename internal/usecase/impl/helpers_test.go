package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"
	"github.com/charmeleon/HomeCinema/internal/domain/repository"
	"github.com/charmeleon/HomeCinema/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// stubEncryption is a deterministic EncryptionService for tests. Salts are
// sequential and derivation is plain concatenation, so expected credentials
// can be written out by hand.
type stubEncryption struct {
	saltSeq int
}

func (s *stubEncryption) CreateSalt() (string, error) {
	s.saltSeq++

	return fmt.Sprintf("salt-%d", s.saltSeq), nil
}

func (s *stubEncryption) EncryptPassword(password, salt string) string {
	return password + "::" + salt
}

// memStore is the committed state of the in-memory persistence fakes.
type memStore struct {
	users     map[uuid.UUID]*entity.User
	roles     map[uuid.UUID]*entity.Role
	userRoles []entity.UserRole
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]*entity.User),
		roles: make(map[uuid.UUID]*entity.Role),
	}
}

func (s *memStore) clone() *memStore {
	cloned := newMemStore()
	for id, user := range s.users {
		copied := *user
		cloned.users[id] = &copied
	}
	for id, role := range s.roles {
		copied := *role
		cloned.roles[id] = &copied
	}
	cloned.userRoles = append(cloned.userRoles, s.userRoles...)

	return cloned
}

func (s *memStore) addRole(name string) *entity.Role {
	role := &entity.Role{ID: uuid.New(), Name: name}
	s.roles[role.ID] = role

	return role
}

type memUserRepository struct {
	store *memStore
}

func (r *memUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := r.store.users[id]; ok {
		copied := *user

		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepository) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

type memRoleRepository struct {
	store *memStore
}

func (r *memRoleRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Role, error) {
	if role, ok := r.store.roles[id]; ok {
		copied := *role

		return &copied, nil
	}

	return nil, repository.ErrRoleNotFound
}

func (r *memRoleRepository) FindByName(_ context.Context, name string) (*entity.Role, error) {
	for _, role := range r.store.roles {
		if role.Name == name {
			copied := *role

			return &copied, nil
		}
	}

	return nil, repository.ErrRoleNotFound
}

func (r *memRoleRepository) Create(_ context.Context, role *entity.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	copied := *role
	r.store.roles[role.ID] = &copied

	return nil
}

type memUserRoleRepository struct {
	store *memStore
}

func (r *memUserRoleRepository) Create(_ context.Context, userRole *entity.UserRole) error {
	r.store.userRoles = append(r.store.userRoles, *userRole)

	return nil
}

func (r *memUserRoleRepository) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Role, error) {
	var roles []*entity.Role
	for _, userRole := range r.store.userRoles {
		if userRole.UserID != userID {
			continue
		}
		if role, ok := r.store.roles[userRole.RoleID]; ok {
			copied := *role
			roles = append(roles, &copied)
		}
	}

	return roles, nil
}

// memTxManager mirrors transactional semantics: fn runs against a staged clone
// of the store, which replaces the committed state only when fn returns nil.
type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	staged := m.store.clone()
	if err := fn(&memRepoFactory{store: staged}); err != nil {
		return err
	}
	*m.store = *staged

	return nil
}

type memRepoFactory struct {
	store *memStore
}

func (f *memRepoFactory) UserRepo() repository.UserRepository {
	return &memUserRepository{store: f.store}
}

func (f *memRepoFactory) RoleRepo() repository.RoleRepository {
	return &memRoleRepository{store: f.store}
}

func (f *memRepoFactory) UserRoleRepo() repository.UserRoleRepository {
	return &memUserRoleRepository{store: f.store}
}

type membershipServiceFixture struct {
	service    usecase.MembershipUsecase
	store      *memStore
	encryption *stubEncryption
}

func createTestMembershipService(t *testing.T) *membershipServiceFixture {
	t.Helper()

	store := newMemStore()
	encryption := &stubEncryption{}
	service := NewMembershipService(MembershipServiceParams{
		TxManager:    &memTxManager{store: store},
		UserRepo:     &memUserRepository{store: store},
		UserRoleRepo: &memUserRoleRepository{store: store},
		Encryption:   encryption,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &membershipServiceFixture{
		service:    service,
		store:      store,
		encryption: encryption,
	}
}

// seedUser plants an account directly in committed state, bypassing CreateUser.
func (f *membershipServiceFixture) seedUser(t *testing.T, username, password string, locked bool) *entity.User {
	t.Helper()

	salt, err := f.encryption.CreateSalt()
	require.NoError(t, err)

	user := &entity.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          username + "@example.com",
		Salt:           salt,
		HashedPassword: f.encryption.EncryptPassword(password, salt),
		IsLocked:       locked,
		CreatedAt:      time.Now(),
	}
	f.store.users[user.ID] = user

	return user
}

// assignRole plants an assignment row directly in committed state. Calling it
// twice with the same pair produces a redundant row on purpose.
func (f *membershipServiceFixture) assignRole(user *entity.User, role *entity.Role) {
	f.store.userRoles = append(f.store.userRoles, entity.UserRole{UserID: user.ID, RoleID: role.ID})
}
