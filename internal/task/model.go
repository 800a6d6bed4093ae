package task

import (
	"time"

	"github.com/google/uuid"
)

// Priority levels for a task.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Board columns a task can sit in.
const (
	StatusInProgress = "in progress"
	StatusComplete   = "complete"
	StatusFinish     = "finish"
)

type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Update carries the optional fields of a partial task update.
// A nil field is left untouched.
type Update struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
}

func (u *Update) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.DueDate == nil &&
		u.Priority == nil && u.Status == nil
}

// ValidPriority reports whether p is one of the enumerated priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ValidStatus reports whether s is one of the enumerated board columns.
// Board placement is meaningless for any other value.
func ValidStatus(s string) bool {
	return s == StatusInProgress || s == StatusComplete || s == StatusFinish
}
