// Package persistence holds the Store implementations feedback tallies can live in.
package persistence

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

// MemoryStore keeps tallies in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[domain.Key]domain.Counts
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[domain.Key]domain.Counts)}
}

func (s *MemoryStore) Get(_ context.Context, key domain.Key) (domain.Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[key], nil
}

func (s *MemoryStore) Put(_ context.Context, key domain.Key, counts domain.Counts) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key] = counts
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key domain.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, key)
	return nil
}

// Len returns the number of stored tallies.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counts)
}
