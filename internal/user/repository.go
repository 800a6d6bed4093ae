package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"taskboard/internal/database"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// Repository handles user data persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. Uniqueness of username and email is enforced
// by database constraints, so the insert is atomic with the check.
func (r *Repository) Create(ctx context.Context, username, email, passwordHash, picture string) (*User, error) {
	dbUser := &database.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Picture:      picture,
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByEmail retrieves a user by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("email = ?", email).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// SearchByUsername returns users whose username contains the query,
// case-insensitively. LIKE metacharacters in the query are escaped so
// caller input never acts as a pattern.
func (r *Repository) SearchByUsername(ctx context.Context, query string) ([]User, error) {
	var dbUsers []database.User
	pattern := "%" + escapeLike(query) + "%"

	err := r.db.NewSelect().
		Model(&dbUsers).
		Where("username ILIKE ?", pattern).
		Order("username ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	users := make([]User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *mapDBUserToModel(&dbUsers[i]))
	}
	return users, nil
}

// Update applies the non-nil fields of up to the user with the given id.
// Duplicate username/email collisions with other users surface from the
// unique constraints; the row itself is excluded because it is the one
// being updated.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, up *Update) (*User, error) {
	dbUser := new(database.User)
	q := r.db.NewUpdate().
		Model(dbUser).
		Set("updated_at = now()").
		Where("id = ?", id).
		Returning("*")

	if up.Username != nil {
		q = q.Set("username = ?", *up.Username)
	}
	if up.Email != nil {
		q = q.Set("email = ?", *up.Email)
	}
	if up.PasswordHash != nil {
		q = q.Set("password_hash = ?", *up.PasswordHash)
	}
	if up.Picture != nil {
		q = q.Set("picture = ?", *up.Picture)
	}

	result, err := q.Exec(ctx)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return mapDBUserToModel(dbUser), nil
}

// mapUniqueViolation translates Postgres unique-constraint errors into
// sentinel errors. Returns nil if err is not a unique violation.
func mapUniqueViolation(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "duplicate key value violates unique constraint") {
		return nil
	}
	if strings.Contains(msg, "users_username_key") {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

// escapeLike escapes LIKE/ILIKE pattern metacharacters.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:           dbu.ID,
		Username:     dbu.Username,
		Email:        dbu.Email,
		PasswordHash: dbu.PasswordHash,
		Picture:      dbu.Picture,
		CreatedAt:    dbu.CreatedAt,
		UpdatedAt:    dbu.UpdatedAt,
	}
}
