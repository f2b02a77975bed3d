// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/charmeleon/HomeCinema/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 100_000
	keyLength  = 32
)

// pbkdf2Encryptor is a concrete implementation of the EncryptionService
// interface using PBKDF2-SHA256 with an explicit, per-account salt.
type pbkdf2Encryptor struct{}

// NewPBKDF2Encryptor is the constructor for pbkdf2Encryptor.
// It returns the implementation as a service.EncryptionService interface.
func NewPBKDF2Encryptor() service.EncryptionService {
	return &pbkdf2Encryptor{}
}

// CreateSalt generates fresh random salt from crypto/rand, base64-encoded for
// storage alongside the credential. crypto/rand is safe for concurrent use.
func (e *pbkdf2Encryptor) CreateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// EncryptPassword derives the stored credential from a plaintext password and
// a salt. The derivation is deterministic: the same (password, salt) pair
// always yields the same credential, so it can be repeated at validation time.
func (e *pbkdf2Encryptor) EncryptPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(key)
}
