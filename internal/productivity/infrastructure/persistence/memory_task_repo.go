package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// MemoryTaskRepository keeps the pool in process memory.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]task.Record
}

// NewMemoryTaskRepository creates an empty repository.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{nextID: 1, tasks: make(map[int64]task.Record)}
}

func (r *MemoryTaskRepository) Create(_ context.Context, rec *task.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.tasks[rec.ID] = *rec
	return nil
}

func (r *MemoryTaskRepository) Update(_ context.Context, rec *task.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[rec.ID]; !ok {
		return task.ErrTaskNotFound
	}
	r.tasks[rec.ID] = *rec
	return nil
}

func (r *MemoryTaskRepository) FindByID(_ context.Context, id int64) (*task.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.tasks[id]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	return &rec, nil
}

func (r *MemoryTaskRepository) List(_ context.Context) ([]*task.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*task.Record, 0, len(r.tasks))
	for _, rec := range r.tasks {
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return task.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
