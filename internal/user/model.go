package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Picture      string    `json:"picture"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Update carries the optional fields of a profile update.
// A nil field is left untouched.
type Update struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Picture      *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u *Update) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil && u.Picture == nil
}
