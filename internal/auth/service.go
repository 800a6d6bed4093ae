package auth

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/logging"
	"taskboard/internal/user"
)

// ErrInvalidCredentials is deliberately generic: a login failure never
// reveals whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service handles registration and login business logic
type Service struct {
	users  UserStore
	logger *logging.Logger
}

func NewService(users UserStore, logger *logging.Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Register creates a new user account. The password is stored as an
// argon2id hash; the avatar reference may be empty. Duplicate username or
// email surfaces as user.ErrDuplicateUsername / user.ErrDuplicateEmail
// from the store's unique constraints.
func (s *Service) Register(ctx context.Context, username, email, password, picture string) (*user.User, error) {
	if err := user.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := user.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := user.ValidatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, username, email, passwordHash, picture)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) || errors.Is(err, user.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Login authenticates a user by email and password. Malformed input fails
// validation before the store is consulted; a missing user and a wrong
// password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, error) {
	if err := user.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := user.ValidatePassword(password); err != nil {
		return nil, err
	}

	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !VerifyPassword(existingUser.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return existingUser, nil
}
