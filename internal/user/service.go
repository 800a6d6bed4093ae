package user

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyQuery = errors.New("search query is required")

// Searcher is the persistence surface the search service needs.
type Searcher interface {
	SearchByUsername(ctx context.Context, query string) ([]User, error)
}

// Service handles user search
type Service struct {
	users Searcher
}

func NewService(users Searcher) *Service {
	return &Service{users: users}
}

// Search returns users whose username contains the query, case-insensitively.
// The full scan is acceptable at this system's scale; there is no pagination.
func (s *Service) Search(ctx context.Context, query string) ([]User, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	users, err := s.users.SearchByUsername(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}
