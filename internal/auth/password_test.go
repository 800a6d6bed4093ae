package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "secret1")
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "secret1"))
	assert.False(t, VerifyPassword(hash, "secret2"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("", "secret1"))
	assert.False(t, VerifyPassword("not-a-hash", "secret1"))
	assert.False(t, VerifyPassword("$argon2id$v=19$m=65536,t=3,p=4$badsalt", "secret1"))
}

func TestVerifyPassword_TamperedHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	// Flip a character in the hash portion
	tampered := hash[:len(hash)-1]
	if strings.HasSuffix(hash, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	assert.False(t, VerifyPassword(tampered, "secret1"))
}
