package persistence

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

// MemorySessionRepository keeps sessions in process memory.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions []domain.Session
}

// NewMemorySessionRepository creates an empty repository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{}
}

func (r *MemorySessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, *session)
	sort.SliceStable(r.sessions, func(i, j int) bool {
		return r.sessions[i].StartedAt.Before(r.sessions[j].StartedAt)
	})
	return nil
}

func (r *MemorySessionRepository) Since(_ context.Context, since time.Time) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Session
	for _, s := range r.sessions {
		if !s.StartedAt.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemorySessionRepository) List(_ context.Context) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Session(nil), r.sessions...), nil
}

func (r *MemorySessionRepository) DeleteByTask(_ context.Context, taskID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.sessions[:0]
	for _, s := range r.sessions {
		if s.TaskID != taskID {
			kept = append(kept, s)
		}
	}
	removed := len(r.sessions) - len(kept)
	r.sessions = kept
	return removed, nil
}

// MemoryInterruptRepository keeps interrupts in process memory.
type MemoryInterruptRepository struct {
	mu         sync.RWMutex
	interrupts []domain.Interrupt
}

// NewMemoryInterruptRepository creates an empty repository.
func NewMemoryInterruptRepository() *MemoryInterruptRepository {
	return &MemoryInterruptRepository{}
}

func (r *MemoryInterruptRepository) Create(_ context.Context, interrupt *domain.Interrupt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interrupts = append(r.interrupts, *interrupt)
	sort.SliceStable(r.interrupts, func(i, j int) bool {
		return r.interrupts[i].At.Before(r.interrupts[j].At)
	})
	return nil
}

func (r *MemoryInterruptRepository) Since(_ context.Context, since time.Time) ([]domain.Interrupt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Interrupt
	for _, it := range r.interrupts {
		if !it.At.Before(since) {
			out = append(out, it)
		}
	}
	return out, nil
}
