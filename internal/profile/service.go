package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"taskboard/internal/auth"
	"taskboard/internal/user"
)

var ErrNoFieldsToUpdate = errors.New("at least one of username, email, password or picture is required")

// Profile is the read model for a user's public profile.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Picture   string `json:"picture"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// UpdateInput carries the optional fields of a profile update. Picture is
// the already-stored avatar reference, not raw file bytes.
type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
	Picture  *string
}

// UserStore is the user persistence surface the profile service needs.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, id uuid.UUID, up *user.Update) (*user.User, error)
}

// FollowCounter counts follow edges for a user.
type FollowCounter interface {
	CountFollowers(ctx context.Context, userID uuid.UUID) (int, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service handles profile reads and updates
type Service struct {
	users   UserStore
	follows FollowCounter
	baseURL string
}

func NewService(users UserStore, follows FollowCounter, baseURL string) *Service {
	return &Service{
		users:   users,
		follows: follows,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Get returns the profile for a user. The two follow counts are
// independent queries and run concurrently; the response waits for both.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var followers, following int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followers, err = s.follows.CountFollowers(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		following, err = s.follows.CountFollowing(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count follows: %w", err)
	}

	return &Profile{
		Username:  u.Username,
		Email:     u.Email,
		Picture:   s.PictureURL(u.Picture),
		Followers: followers,
		Following: following,
	}, nil
}

// Update applies the supplied fields to the user. At least one field must
// be present. A supplied password is hashed exactly like at registration.
// Username/email collisions with other users surface as duplicate errors
// from the store's constraints.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *UpdateInput) (*user.User, error) {
	if in.Username == nil && in.Email == nil && in.Password == nil && in.Picture == nil {
		return nil, ErrNoFieldsToUpdate
	}

	up := &user.Update{Picture: in.Picture}

	if in.Username != nil {
		if err := user.ValidateUsername(*in.Username); err != nil {
			return nil, err
		}
		up.Username = in.Username
	}
	if in.Email != nil {
		if err := user.ValidateEmail(*in.Email); err != nil {
			return nil, err
		}
		up.Email = in.Email
	}
	if in.Password != nil {
		if err := user.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		up.PasswordHash = &hash
	}

	updated, err := s.users.Update(ctx, id, up)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) ||
			errors.Is(err, user.ErrDuplicateUsername) ||
			errors.Is(err, user.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// PictureURL resolves a stored avatar reference to an absolute URL.
// References written on Windows hosts may carry backslashes; they are
// normalized to forward slashes. An empty reference stays empty.
func (s *Service) PictureURL(ref string) string {
	if ref == "" {
		return ""
	}
	ref = strings.ReplaceAll(ref, `\`, "/")
	return s.baseURL + "/" + strings.TrimPrefix(ref, "/")
}
