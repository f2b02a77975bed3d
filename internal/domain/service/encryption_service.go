// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// EncryptionService defines the interface for credential derivation.
// This abstracts the underlying KDF, keeping the domain pure. Unlike hashers
// that own their salt, the salt here is explicit: it is generated once per
// account and stored alongside the credential, so the derivation can be
// repeated at validation time.
type EncryptionService interface {
	// CreateSalt generates fresh random salt. Safe for concurrent use; the
	// output must never repeat across accounts.
	CreateSalt() (string, error)

	// EncryptPassword deterministically derives the stored credential from a
	// plaintext password and a salt.
	EncryptPassword(password, salt string) string
}
