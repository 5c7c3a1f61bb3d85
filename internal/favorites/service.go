// Package favorites keeps the favourite verse set in memory for instant
// toggles, backed by the database for durability.
package favorites

import (
	"log"
	"sync"
)

// Store defines the persistence operations the service needs.
type Store interface {
	Add(verseID uint) error
	Remove(verseID uint) error
	VerseIDs() ([]uint, error)
}

// ToggleResult reports the outcome of a toggle attempt.
type ToggleResult struct {
	// Favorite is the membership state after the attempt settled.
	Favorite bool `json:"favorite"`
	// RolledBack is true when persistence failed and the optimistic
	// flip was undone.
	RolledBack bool `json:"rolled_back"`
}

// Service applies toggles optimistically: the in-memory set flips first,
// then the change is persisted. A failed write rolls the flip back so the
// set never drifts from the database. The lock is held for the whole
// flip-plus-persist so concurrent toggles of the same verse serialize
// instead of interleaving their writes.
type Service struct {
	store Store

	mu  sync.RWMutex
	set map[uint]struct{}
}

// NewService creates the service and loads the current favourite set.
// A load failure starts the service with an empty set rather than failing;
// membership recovers on the next successful Reload.
func NewService(store Store) *Service {
	s := &Service{
		store: store,
		set:   make(map[uint]struct{}),
	}
	if err := s.Reload(); err != nil {
		log.Printf("Favorites: initial load failed, starting empty: %v", err)
	}
	return s
}

// Reload replaces the in-memory set with the database state.
func (s *Service) Reload() error {
	ids, err := s.store.VerseIDs()
	if err != nil {
		return err
	}

	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	return nil
}

// IsFavorite reports membership from the in-memory set.
func (s *Service) IsFavorite(verseID uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.set[verseID]
	return ok
}

// Count returns the size of the in-memory set.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.set)
}

// Toggle flips membership for the verse. Two toggles in a row with
// persistence succeeding restore the original state. The flip and the
// store write happen under one critical section, so a toggle never
// observes the in-memory set ahead of the database.
func (s *Service) Toggle(verseID uint) ToggleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, wasFavorite := s.set[verseID]
	if wasFavorite {
		delete(s.set, verseID)
	} else {
		s.set[verseID] = struct{}{}
	}

	var err error
	if wasFavorite {
		err = s.store.Remove(verseID)
	} else {
		err = s.store.Add(verseID)
	}

	if err != nil {
		log.Printf("Favorites: persisting toggle for verse %d failed, rolling back: %v", verseID, err)
		if wasFavorite {
			s.set[verseID] = struct{}{}
		} else {
			delete(s.set, verseID)
		}
		return ToggleResult{Favorite: wasFavorite, RolledBack: true}
	}

	return ToggleResult{Favorite: !wasFavorite}
}
