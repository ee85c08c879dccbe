// Package task models the pool of tasks a plan is drawn from.
package task

import (
	"errors"
	"fmt"
	"time"

	planning "github.com/felixgeelhaar/paretofocus/internal/planning/domain"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("invalid task")
)

// Record is a task as kept in the pool.
type Record struct {
	planning.Task
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord validates t and stamps it with the creation time.
func NewRecord(t planning.Task, now time.Time) (*Record, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}
	return &Record{Task: t, CreatedAt: now, UpdatedAt: now}, nil
}

// Touch marks the record as changed at now.
func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now
}

// Tasks unwraps records for the planner.
func Tasks(records []*Record) []planning.Task {
	out := make([]planning.Task, 0, len(records))
	for _, r := range records {
		out = append(out, r.Task)
	}
	return out
}
