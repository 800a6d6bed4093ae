package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"valid", "alice", nil},
		{"exactly min length", "bob", nil},
		{"empty", "", ErrUsernameRequired},
		{"too short", "ab", ErrUsernameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"valid", "alice@example.com", nil},
		{"valid with plus", "alice+dev@example.co.uk", nil},
		{"empty", "", ErrEmailRequired},
		{"missing at", "alice.example.com", ErrInvalidEmailFormat},
		{"missing tld", "alice@example", ErrInvalidEmailFormat},
		{"single letter tld", "alice@example.c", ErrInvalidEmailFormat},
		{"spaces", "alice @example.com", ErrInvalidEmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.ErrorIs(t, ValidatePassword(""), ErrPasswordRequired)
	assert.ErrorIs(t, ValidatePassword("12345"), ErrPasswordTooShort)
}

func TestUpdate_IsEmpty(t *testing.T) {
	assert.True(t, (&Update{}).IsEmpty())

	name := "alice"
	assert.False(t, (&Update{Username: &name}).IsEmpty())
}
