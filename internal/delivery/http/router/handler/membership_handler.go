// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/charmeleon/HomeCinema/internal/delivery/http/response"
	"github.com/charmeleon/HomeCinema/internal/domain/entity"
	"github.com/charmeleon/HomeCinema/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MembershipHandler holds dependencies for membership-related handlers.
type MembershipHandler struct {
	uc     usecase.MembershipUsecase
	logger *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler, injected by Fx.
func NewMembershipHandler(uc usecase.MembershipUsecase, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		uc:     uc,
		logger: logger,
	}
}

type createUserRequest struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	RoleIDs  []string `json:"roleIds"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the outward account representation. Credential material
// (salt, hashed password) never leaves the service.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsLocked  bool      `json:"isLocked"`
	CreatedAt time.Time `json:"createdAt"`
}

type membershipContextResponse struct {
	User  *userResponse `json:"user"`
	Roles []string      `json:"roles"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsLocked:  user.IsLocked,
		CreatedAt: user.CreatedAt,
	}
}

// CreateUser handles the account registration request.
func (h *MembershipHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	roleIDs := make([]uuid.UUID, 0, len(req.RoleIDs))
	for _, raw := range req.RoleIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_ROLE_ID", "Role id is not a valid UUID")
		}
		roleIDs = append(roleIDs, id)
	}

	output, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleIDs:  roleIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the authentication request. A failed validation is an empty
// membership context, surfaced as 401 without distinguishing unknown username
// from wrong password.
func (h *MembershipHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	membership, err := h.uc.ValidateUser(c.Request().Context(), &usecase.ValidateUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !membership.IsAuthenticated() {
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Username or password is incorrect")
	}

	return response.Success(c, http.StatusOK, membershipContextResponse{
		User:  toUserResponse(membership.User),
		Roles: membership.Roles,
	}, "Login successful")
}

// GetUser handles the account lookup request.
func (h *MembershipHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_USER_ID", "User id is not a valid UUID")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// GetUserRoles handles the role lookup request. An unknown username yields an
// empty role list, not an error.
func (h *MembershipHandler) GetUserRoles(c echo.Context) error {
	username := c.Param("username")

	roles, err := h.uc.GetUserRoles(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roles, "")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
