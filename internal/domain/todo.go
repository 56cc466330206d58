package domain

import (
	"time"

	"github.com/google/uuid"
)

// Todo is the business entity. It does not depend on Gin or Postgres.
type Todo struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoPatch describes a partial update. Nil pointer = leave the field
// unchanged. ClearDescription sets description to NULL.
type TodoPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Completed        *bool
}

// IsZero reports whether the patch changes nothing.
func (p TodoPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && !p.ClearDescription && p.Completed == nil
}
