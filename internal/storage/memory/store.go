// Package memory implements the process-lifetime review store. The
// collection is append-only and insertion-ordered; ranking and
// filtering operate on snapshots, never on the backing slice.
package memory

import (
	"sync"

	"reviewpulse/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	reviews []domain.Review
	version uint64
}

func New() *Store { return &Store{} }

// Seed appends a batch in order without taking the lock per record.
// Meant for startup loading before the server starts accepting traffic,
// but safe at any point.
func (s *Store) Seed(rs []domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, rs...)
	s.version += uint64(len(rs))
}

func (s *Store) Append(r domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, r)
	s.version++
}

// All returns a snapshot copy in insertion order. Callers may filter
// and sort it freely; concurrent appends never show up mid-iteration.
func (s *Store) All() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

// Version is monotone and bumps on every append, so (version, filters)
// uniquely identifies a query result against this store.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
