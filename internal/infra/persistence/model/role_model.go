package model

import "github.com/google/uuid"

// RoleModel maps the roles table.
type RoleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(50);not null;uniqueIndex"`
}

// TableName specifies the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel maps the user_roles association table. The composite primary
// key doubles as the uniqueness backstop for the (user, role) pair.
type UserRoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Role *RoleModel `gorm:"foreignKey:RoleID"`
}

// TableName specifies the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
