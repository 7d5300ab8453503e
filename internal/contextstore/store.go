// Package contextstore holds the process-lifetime agent context.
package contextstore

import "sync"

// Store is a mutable key/value context shared across concurrent
// requests. Updates merge atomically with respect to reads: a reader
// never observes a partially applied update.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]any)}
}

// Update merges partial into the stored context. New keys are added,
// existing keys are overwritten, and keys are never deleted. The
// resulting full context is returned as a copy.
func (s *Store) Update(partial map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range partial {
		s.values[key] = value
	}
	return s.snapshotLocked()
}

// Snapshot returns a copy of the current context.
func (s *Store) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func (s *Store) snapshotLocked() map[string]any {
	out := make(map[string]any, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}
