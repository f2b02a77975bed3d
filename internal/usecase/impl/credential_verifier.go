// Package impl contains the implementation of the application's business logic.
package impl

import (
	"crypto/subtle"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"
	"github.com/charmeleon/HomeCinema/internal/domain/service"
)

// credentialVerifier decides whether a supplied plaintext password matches a
// stored account and whether that account is currently permitted to
// authenticate. It operates purely on the entity value given to it: no side
// effects, no persistence access.
type credentialVerifier struct {
	encryption service.EncryptionService
}

func newCredentialVerifier(encryption service.EncryptionService) *credentialVerifier {
	return &credentialVerifier{encryption: encryption}
}

// isPasswordValid re-derives the credential with the account's stored salt and
// compares it to the stored hash in constant time to avoid timing side-channels.
func (v *credentialVerifier) isPasswordValid(user *entity.User, password string) bool {
	derived := v.encryption.EncryptPassword(password, user.Salt)

	return subtle.ConstantTimeCompare([]byte(derived), []byte(user.HashedPassword)) == 1
}

// isUserValid checks the password first and only then consults the lock flag.
// An invalid password fails regardless of lock state; a valid password on a
// locked account also fails. The ordering is deliberate and must not be
// short-circuited on the lock flag.
func (v *credentialVerifier) isUserValid(user *entity.User, password string) bool {
	if v.isPasswordValid(user, password) {
		return !user.IsLocked
	}

	return false
}
