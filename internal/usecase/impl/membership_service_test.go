package impl

import (
	"context"
	"testing"

	domainerrors "github.com/charmeleon/HomeCinema/internal/domain/errors"
	"github.com/charmeleon/HomeCinema/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_NoRoles(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	output, err := fixture.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	require.NotNil(t, output.User)

	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.False(t, output.User.IsLocked)
	assert.Equal(t, "salt-1", output.User.Salt)
	assert.Equal(t, "s3cret::salt-1", output.User.HashedPassword)

	assert.Len(t, fixture.store.users, 1)
	assert.Empty(t, fixture.store.userRoles)
}

func TestCreateUser_WithRoles(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	admin := fixture.store.addRole("admin")
	editor := fixture.store.addRole("editor")

	output, err := fixture.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		RoleIDs:  []uuid.UUID{admin.ID, editor.ID},
	})
	require.NoError(t, err)

	require.Len(t, fixture.store.userRoles, 2)
	assert.Equal(t, output.User.ID, fixture.store.userRoles[0].UserID)
	assert.Equal(t, admin.ID, fixture.store.userRoles[0].RoleID)
	assert.Equal(t, output.User.ID, fixture.store.userRoles[1].UserID)
	assert.Equal(t, editor.ID, fixture.store.userRoles[1].RoleID)

	names, err := fixture.service.GetUserRoles(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "editor"}, names)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	fixture.seedUser(t, "alice", "s3cret", false)

	output, err := fixture.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "different",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))

	// The failed attempt must leave no trace.
	assert.Len(t, fixture.store.users, 1)
	assert.Empty(t, fixture.store.userRoles)
}

func TestCreateUser_RoleNotFound(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	admin := fixture.store.addRole("admin")
	missing := uuid.New()

	output, err := fixture.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		RoleIDs:  []uuid.UUID{admin.ID, missing},
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))

	// The account commit precedes role assignment, so the account survives
	// the failed second phase while the staged role batch is discarded whole.
	require.Len(t, fixture.store.users, 1)
	assert.Empty(t, fixture.store.userRoles)

	names, err := fixture.service.GetUserRoles(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGetUser(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	seeded := fixture.seedUser(t, "alice", "s3cret", false)

	user, err := fixture.service.GetUser(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, seeded.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestGetUser_Absent(t *testing.T) {
	fixture := createTestMembershipService(t)

	user, err := fixture.service.GetUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserRoles_DeduplicatesNames(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	user := fixture.seedUser(t, "alice", "s3cret", false)
	admin := fixture.store.addRole("admin")
	editor := fixture.store.addRole("editor")

	fixture.assignRole(user, admin)
	fixture.assignRole(user, editor)
	fixture.assignRole(user, admin) // redundant row

	names, err := fixture.service.GetUserRoles(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "editor"}, names)
}

func TestGetUserRoles_UnknownUsername(t *testing.T) {
	fixture := createTestMembershipService(t)

	names, err := fixture.service.GetUserRoles(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, names)
	assert.Empty(t, names)
}

func TestValidateUser_Success(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	user := fixture.seedUser(t, "alice", "s3cret", false)
	admin := fixture.store.addRole("admin")
	fixture.assignRole(user, admin)

	membership, err := fixture.service.ValidateUser(ctx, &usecase.ValidateUserInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.True(t, membership.IsAuthenticated())
	assert.Equal(t, user.ID, membership.User.ID)
	assert.Equal(t, []string{"admin"}, membership.Roles)
	assert.True(t, membership.HasRole("admin"))
	assert.False(t, membership.HasRole("editor"))
}

func TestValidateUser_LockedAccount(t *testing.T) {
	fixture := createTestMembershipService(t)

	fixture.seedUser(t, "alice", "s3cret", true)

	membership, err := fixture.service.ValidateUser(context.Background(), &usecase.ValidateUserInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.False(t, membership.IsAuthenticated())
	assert.Nil(t, membership.User)
	assert.Empty(t, membership.Roles)
}

func TestValidateUser_FailureIsIndistinguishable(t *testing.T) {
	fixture := createTestMembershipService(t)
	ctx := context.Background()

	fixture.seedUser(t, "alice", "s3cret", false)

	wrongPassword, err := fixture.service.ValidateUser(ctx, &usecase.ValidateUserInput{
		Username: "alice",
		Password: "wrong",
	})
	require.NoError(t, err)

	unknownUser, err := fixture.service.ValidateUser(ctx, &usecase.ValidateUserInput{
		Username: "nobody",
		Password: "s3cret",
	})
	require.NoError(t, err)

	// Both failure modes yield the same empty context.
	assert.Equal(t, wrongPassword, unknownUser)
	assert.False(t, wrongPassword.IsAuthenticated())
	assert.False(t, unknownUser.IsAuthenticated())
}
