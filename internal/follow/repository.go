package follow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"taskboard/internal/database"
)

var (
	ErrNotFound         = errors.New("follow relationship not found")
	ErrAlreadyFollowing = errors.New("already following")
)

// Repository handles follow-edge persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a follow edge. The (follower_id, following_id) unique
// constraint makes the duplicate check atomic with the insert.
func (r *Repository) Create(ctx context.Context, followerID, followingID uuid.UUID) (*Follow, error) {
	dbFollow := &database.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	_, err := r.db.NewInsert().
		Model(dbFollow).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return nil, ErrAlreadyFollowing
		}
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	return mapDBFollowToModel(dbFollow), nil
}

// ListByFollower returns all edges where the given user is the follower.
func (r *Repository) ListByFollower(ctx context.Context, followerID uuid.UUID) ([]Follow, error) {
	var dbFollows []database.Follow

	err := r.db.NewSelect().
		Model(&dbFollows).
		Where("follower_id = ?", followerID).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}

	follows := make([]Follow, 0, len(dbFollows))
	for i := range dbFollows {
		follows = append(follows, *mapDBFollowToModel(&dbFollows[i]))
	}
	return follows, nil
}

// Delete removes the edge for the given pair.
func (r *Repository) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*database.Follow)(nil)).
		Where("follower_id = ?", followerID).
		Where("following_id = ?", followingID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountFollowers counts edges pointing at the user.
func (r *Repository) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*database.Follow)(nil)).
		Where("following_id = ?", userID).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

// CountFollowing counts edges originating from the user.
func (r *Repository) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*database.Follow)(nil)).
		Where("follower_id = ?", userID).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}

// mapDBFollowToModel converts database model to domain model
func mapDBFollowToModel(dbf *database.Follow) *Follow {
	return &Follow{
		ID:          dbf.ID,
		FollowerID:  dbf.FollowerID,
		FollowingID: dbf.FollowingID,
		CreatedAt:   dbf.CreatedAt,
	}
}
