package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrOwnerRequired   = errors.New("userId is required")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be Low, Medium or High")
	ErrInvalidStatus   = errors.New("status must be 'in progress', 'complete' or 'finish'")
)

// Store is the persistence surface the task service needs.
type Store interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID, sortKey string) ([]Task, error)
	Create(ctx context.Context, t *Task) (*Task, error)
	Update(ctx context.Context, id uuid.UUID, up *Update) (*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service handles task business logic
type Service struct {
	tasks Store
}

func NewService(tasks Store) *Service {
	return &Service{tasks: tasks}
}

// List returns all tasks for the owner, ordered by the requested sort key.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, sortKey string) ([]Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID, sortKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create validates and persists a new task. Missing priority or status
// default to Medium / "in progress".
func (s *Service) Create(ctx context.Context, t *Task) (*Task, error) {
	if t.UserID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if t.Title == "" {
		return nil, ErrTitleRequired
	}

	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = StatusInProgress
	}

	if !ValidPriority(t.Priority) {
		return nil, ErrInvalidPriority
	}
	if !ValidStatus(t.Status) {
		return nil, ErrInvalidStatus
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// UpdateTask merges the supplied fields into the task. Supplied enum
// fields are validated; untouched fields keep their values.
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, up *Update) (*Task, error) {
	if up.Priority != nil && !ValidPriority(*up.Priority) {
		return nil, ErrInvalidPriority
	}
	if up.Status != nil && !ValidStatus(*up.Status) {
		return nil, ErrInvalidStatus
	}
	if up.Title != nil && *up.Title == "" {
		return nil, ErrTitleRequired
	}

	updated, err := s.tasks.Update(ctx, id, up)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete removes the task with the given id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
