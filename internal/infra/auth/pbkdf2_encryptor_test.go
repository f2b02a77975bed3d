package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Encryptor_CreateSalt_Unique(t *testing.T) {
	enc := NewPBKDF2Encryptor()

	seen := make(map[string]struct{})
	for range 100 {
		salt, err := enc.CreateSalt()
		require.NoError(t, err)
		require.NotEmpty(t, salt)

		_, dup := seen[salt]
		require.False(t, dup, "salt generated twice: %s", salt)
		seen[salt] = struct{}{}
	}
}

func TestPBKDF2Encryptor_EncryptPassword_Deterministic(t *testing.T) {
	enc := NewPBKDF2Encryptor()

	salt, err := enc.CreateSalt()
	require.NoError(t, err)

	first := enc.EncryptPassword("correct horse battery staple", salt)
	second := enc.EncryptPassword("correct horse battery staple", salt)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestPBKDF2Encryptor_EncryptPassword_VariesWithInputs(t *testing.T) {
	enc := NewPBKDF2Encryptor()

	saltA, err := enc.CreateSalt()
	require.NoError(t, err)
	saltB, err := enc.CreateSalt()
	require.NoError(t, err)

	base := enc.EncryptPassword("password-one", saltA)

	assert.NotEqual(t, base, enc.EncryptPassword("password-two", saltA), "different passwords must not collide")
	assert.NotEqual(t, base, enc.EncryptPassword("password-one", saltB), "different salts must not collide")
}
