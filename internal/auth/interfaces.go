package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/user"
)

// TokenService defines the interface for token creation and validation.
type TokenService interface {
	CreateToken(userID uuid.UUID, username string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash, picture string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// RateLimiter guards the auth endpoints against brute-force attempts.
type RateLimiter interface {
	CheckIPRateLimit(ctx context.Context, ip, purpose string) (bool, error)
	RecordIPRequest(ctx context.Context, ip, purpose string) error
}
