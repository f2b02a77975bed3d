// Package model contains the GORM persistence models, kept separate from the
// pure domain entities so the schema can evolve without leaking into the domain.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps the users table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email          string    `gorm:"type:varchar(200);not null"`
	Salt           string    `gorm:"type:varchar(64);not null"`
	HashedPassword string    `gorm:"type:varchar(128);not null"`
	IsLocked       bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
