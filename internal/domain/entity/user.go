// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing a single account in the system.
// The credential material (salt + hashed password) lives on the account itself;
// the plaintext password is never stored anywhere.
type User struct {
	ID             uuid.UUID // The unique identifier for the account.
	Username       string    // The login name; unique across the system.
	Email          string    // The account's contact email.
	Salt           string    // Random per-account salt, generated once at creation and immutable afterwards.
	HashedPassword string    // Credential derived from (plaintext password, salt). Never the plaintext itself.
	IsLocked       bool      // When true, authentication always fails regardless of password correctness.
	CreatedAt      time.Time // Timestamp of when this account was created.
}
