package state

import (
	"sync"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
)

// Store holds the most recently received world state. Each replace swaps the
// whole snapshot, so readers never observe a partially-updated state.
type Store struct {
	lock       sync.RWMutex
	worldState *gametypes.WorldState
	version    uint64
}

var _ Reader = &Store{}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new snapshot. The snapshot must not be mutated afterwards.
func (s *Store) Replace(worldState *gametypes.WorldState) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.worldState = worldState
	s.version++
}

func (s *Store) Current() *gametypes.WorldState {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.worldState
}

// Version increases on every Replace and Clear.
func (s *Store) Version() uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.version
}

// Clear drops the current snapshot.
func (s *Store) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.worldState = nil
	s.version++
}
