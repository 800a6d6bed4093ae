package follow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrIDsRequired = errors.New("followerId and followingId are required")
	ErrSelfFollow  = errors.New("you cannot follow yourself")
)

// Store is the persistence surface the follow service needs.
type Store interface {
	Create(ctx context.Context, followerID, followingID uuid.UUID) (*Follow, error)
	ListByFollower(ctx context.Context, followerID uuid.UUID) ([]Follow, error)
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
}

// Service handles follow-edge business logic
type Service struct {
	follows Store
}

func NewService(follows Store) *Service {
	return &Service{follows: follows}
}

// Follow creates an edge from follower to following. Self-follows are
// rejected before the store is consulted; an existing edge surfaces as
// ErrAlreadyFollowing.
func (s *Service) Follow(ctx context.Context, followerID, followingID uuid.UUID) (*Follow, error) {
	if followerID == uuid.Nil || followingID == uuid.Nil {
		return nil, ErrIDsRequired
	}
	if followerID == followingID {
		return nil, ErrSelfFollow
	}

	edge, err := s.follows.Create(ctx, followerID, followingID)
	if err != nil {
		if errors.Is(err, ErrAlreadyFollowing) {
			return nil, ErrAlreadyFollowing
		}
		return nil, fmt.Errorf("failed to follow user: %w", err)
	}

	return edge, nil
}

// ListFollowing returns all edges where the given user is the follower.
func (s *Service) ListFollowing(ctx context.Context, followerID uuid.UUID) ([]Follow, error) {
	follows, err := s.follows.ListByFollower(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	return follows, nil
}

// Unfollow deletes the edge for the given pair.
func (s *Service) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == uuid.Nil || followingID == uuid.Nil {
		return ErrIDsRequired
	}

	if err := s.follows.Delete(ctx, followerID, followingID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to unfollow user: %w", err)
	}
	return nil
}
