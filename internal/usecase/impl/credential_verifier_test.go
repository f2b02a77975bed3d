package impl

import (
	"testing"

	"github.com/charmeleon/HomeCinema/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCredentialVerifier_IsUserValid(t *testing.T) {
	encryption := &stubEncryption{}
	verifier := newCredentialVerifier(encryption)

	account := func(locked bool) *entity.User {
		return &entity.User{
			Username:       "alice",
			Salt:           "salt-1",
			HashedPassword: encryption.EncryptPassword("s3cret", "salt-1"),
			IsLocked:       locked,
		}
	}

	tests := []struct {
		name     string
		user     *entity.User
		password string
		want     bool
	}{
		{
			name:     "valid password on unlocked account",
			user:     account(false),
			password: "s3cret",
			want:     true,
		},
		{
			name:     "wrong password on unlocked account",
			user:     account(false),
			password: "wrong",
			want:     false,
		},
		{
			name:     "valid password on locked account",
			user:     account(true),
			password: "s3cret",
			want:     false,
		},
		{
			name:     "wrong password on locked account",
			user:     account(true),
			password: "wrong",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verifier.isUserValid(tt.user, tt.password))
		})
	}
}

func TestCredentialVerifier_IsPasswordValid(t *testing.T) {
	encryption := &stubEncryption{}
	verifier := newCredentialVerifier(encryption)

	user := &entity.User{
		Salt:           "salt-9",
		HashedPassword: encryption.EncryptPassword("open sesame", "salt-9"),
	}

	assert.True(t, verifier.isPasswordValid(user, "open sesame"))
	assert.False(t, verifier.isPasswordValid(user, "open sesam"))
	assert.False(t, verifier.isPasswordValid(user, ""))

	// The same plaintext under a different salt must not match.
	other := &entity.User{
		Salt:           "salt-9",
		HashedPassword: encryption.EncryptPassword("open sesame", "salt-10"),
	}
	assert.False(t, verifier.isPasswordValid(other, "open sesame"))
}
