package repositories

import (
	"context"
	"sync"
)

// InMemoryRepository keeps flags for the lifetime of the process.
type InMemoryRepository struct {
	lock   sync.RWMutex
	played bool
}

var _ Repository = &InMemoryRepository{}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) MarkPlayed(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.played = true
	return nil
}

func (r *InMemoryRepository) HasPlayed(ctx context.Context) (bool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.played, nil
}
