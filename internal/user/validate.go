package user

import (
	"errors"
	"regexp"
)

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// Requires a local part, a domain and a TLD of at least two letters.
var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateUsername checks the registration rules for a username.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	return nil
}

// ValidateEmail checks that the email has a plausible shape.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRegexp.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
