package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewPasetoService_KeyLength(t *testing.T) {
	_, err := NewPasetoService([]byte("short"))
	require.Error(t, err)

	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestPasetoService_RoundTrip(t *testing.T) {
	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.CreateToken(userID, "alice", 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestPasetoService_WrongKey(t *testing.T) {
	svc1, err := NewPasetoService(testKey)
	require.NoError(t, err)
	svc2, err := NewPasetoService([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	token, err := svc1.CreateToken(uuid.New(), "alice", time.Minute)
	require.NoError(t, err)

	_, err = svc2.VerifyToken(token)
	assert.Error(t, err)
}

func TestPasetoService_ExpiredToken(t *testing.T) {
	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	token, err := svc.CreateToken(uuid.New(), "alice", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestPasetoService_Garbage(t *testing.T) {
	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	_, err = svc.VerifyToken("v4.local.not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
