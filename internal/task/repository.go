package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"taskboard/internal/database"
)

var ErrNotFound = errors.New("task not found")

// sortColumns is the allow-list of caller-facing sort keys. Caller input
// is only ever used to pick a value from this map, never interpolated
// into the query.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"priority":  "priority",
	"title":     "title",
}

// DefaultSortKey is used when the caller supplies no (or an unknown) key.
const DefaultSortKey = "createdAt"

// resolveSortColumn maps a caller-supplied sort key to a column name,
// falling back to creation time for anything off the allow-list.
func resolveSortColumn(sortKey string) string {
	if col, ok := sortColumns[sortKey]; ok {
		return col
	}
	return sortColumns[DefaultSortKey]
}

// Repository handles task persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// ListByOwner returns all tasks for the given owner, ascending by the
// resolved sort column.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID, sortKey string) ([]Task, error) {
	var dbTasks []database.Task

	err := r.db.NewSelect().
		Model(&dbTasks).
		Where("user_id = ?", ownerID).
		Order(resolveSortColumn(sortKey) + " ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]Task, 0, len(dbTasks))
	for i := range dbTasks {
		tasks = append(tasks, *mapDBTaskToModel(&dbTasks[i]))
	}
	return tasks, nil
}

// Create inserts a new task and returns it with generated id and timestamps.
func (r *Repository) Create(ctx context.Context, t *Task) (*Task, error) {
	dbTask := &database.Task{
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
	}

	_, err := r.db.NewInsert().
		Model(dbTask).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Update merges the non-nil fields of up into the task and bumps the
// updated timestamp.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, up *Update) (*Task, error) {
	dbTask := new(database.Task)
	q := r.db.NewUpdate().
		Model(dbTask).
		Set("updated_at = now()").
		Where("id = ?", id).
		Returning("*")

	if up.Title != nil {
		q = q.Set("title = ?", *up.Title)
	}
	if up.Description != nil {
		q = q.Set("description = ?", *up.Description)
	}
	if up.DueDate != nil {
		q = q.Set("due_date = ?", *up.DueDate)
	}
	if up.Priority != nil {
		q = q.Set("priority = ?", *up.Priority)
	}
	if up.Status != nil {
		q = q.Set("status = ?", *up.Status)
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return mapDBTaskToModel(dbTask), nil
}

// Delete removes the task with the given id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*database.Task)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
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

// mapDBTaskToModel converts database model to domain model
func mapDBTaskToModel(dbt *database.Task) *Task {
	return &Task{
		ID:          dbt.ID,
		UserID:      dbt.UserID,
		Title:       dbt.Title,
		Description: dbt.Description,
		DueDate:     dbt.DueDate,
		Priority:    dbt.Priority,
		Status:      dbt.Status,
		CreatedAt:   dbt.CreatedAt,
		UpdatedAt:   dbt.UpdatedAt,
	}
}
