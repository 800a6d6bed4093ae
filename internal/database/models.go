package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the database representation of a registered user.
// username and email carry UNIQUE constraints; duplicate inserts fail
// atomically at the store instead of relying on a read-then-write check.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Username     string    `bun:"username,notnull"`
	Email        string    `bun:"email,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Picture      string    `bun:"picture,notnull,default:''"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:now()"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:now()"`
}

// Task is the database representation of a board task.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID      uuid.UUID  `bun:"user_id,type:uuid,notnull"`
	Title       string     `bun:"title,notnull"`
	Description string     `bun:"description,notnull,default:''"`
	DueDate     *time.Time `bun:"due_date"`
	Priority    string     `bun:"priority,notnull"`
	Status      string     `bun:"status,notnull"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,notnull,default:now()"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,notnull,default:now()"`
}

// Follow is a directed edge: follower follows following.
// (follower_id, following_id) carries a composite UNIQUE constraint.
type Follow struct {
	bun.BaseModel `bun:"table:follows,alias:f"`

	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	FollowerID  uuid.UUID `bun:"follower_id,type:uuid,notnull"`
	FollowingID uuid.UUID `bun:"following_id,type:uuid,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:now()"`
}
