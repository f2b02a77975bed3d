// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Role is a named permission grouping that can be assigned to any number of users.
type Role struct {
	ID   uuid.UUID // The unique identifier for the role.
	Name string    // Human-readable role name; unique across the system.
}

// UserRole is the association between one User and one Role.
// It has no identity of its own beyond the pair; rows are created only through
// the membership service's assignment step and are never mutated afterwards.
type UserRole struct {
	UserID uuid.UUID
	RoleID uuid.UUID
}
