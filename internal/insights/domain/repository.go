package domain

import (
	"context"
	"time"
)

// SessionRepository stores completed focus blocks.
type SessionRepository interface {
	// Create appends a session.
	Create(ctx context.Context, session *Session) error

	// Since returns sessions started at or after since, oldest first.
	Since(ctx context.Context, since time.Time) ([]Session, error)

	// List returns every session, oldest first.
	List(ctx context.Context) ([]Session, error)

	// DeleteByTask removes all sessions logged against a task.
	DeleteByTask(ctx context.Context, taskID int64) (int, error)
}

// InterruptRepository stores interruptions.
type InterruptRepository interface {
	// Create appends an interrupt.
	Create(ctx context.Context, interrupt *Interrupt) error

	// Since returns interrupts at or after since, oldest first.
	Since(ctx context.Context, since time.Time) ([]Interrupt, error)
}
