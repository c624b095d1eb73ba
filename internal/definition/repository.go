package definition

import (
	"context"
	"strings"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=../mocks/definition/mock_store.go -package=mock_definition

// Store defines operations for managing definition entries.
type Store interface {
	// Find returns the entry matching word case-insensitively, or nil if not found.
	Find(ctx context.Context, word string) (*Entry, error)
	// Insert appends a new entry, or returns an *AlreadyExistsError.
	Insert(ctx context.Context, word, meaning string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

// MemoryStore implements Store with an ordered slice scanned linearly.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Find returns the entry whose word matches case-insensitively, or nil if not found.
func (s *MemoryStore) Find(_ context.Context, word string) (*Entry, error) {
	if word == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.find(word), nil
}

// Insert appends a new entry unless the word already exists.
func (s *MemoryStore) Insert(_ context.Context, word, meaning string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.find(word); existing != nil {
		return Entry{}, &AlreadyExistsError{Word: existing.Word}
	}

	entry := Entry{Word: word, Definition: meaning}
	s.entries = append(s.entries, entry)
	return entry, nil
}

// List returns a copy of all entries in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

// find must be called with mu held. An empty word matches a stored empty word.
func (s *MemoryStore) find(word string) *Entry {
	for i := range s.entries {
		if strings.EqualFold(s.entries[i].Word, word) {
			entry := s.entries[i]
			return &entry
		}
	}
	return nil
}
