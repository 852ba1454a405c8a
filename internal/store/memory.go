// internal/store/memory.go
//
// In-memory implementation of Store.
// Used in tests and when no database path is configured.
//
// Characteristics:
//   - Keeps next-word indexes keyed by word size in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNegativeIndex is returned when saving an index below zero.
var ErrNegativeIndex = errors.New("store: negative index")

// Store persists, per word size, the index of the next word to play.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// NextIndex returns the stored index for size, or 0 if none is stored.
	NextIndex(ctx context.Context, size int) (int, error)

	// SaveNextIndex stores next for size, replacing any previous value.
	SaveNextIndex(ctx context.Context, size, next int) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex // guards next
	next map[int]int  // keyed by word size
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{next: make(map[int]int)}
}

// NextIndex looks up the index for size.
func (m *memory) NextIndex(ctx context.Context, size int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.next[size], nil
}

// SaveNextIndex sets the index for size.
func (m *memory) SaveNextIndex(ctx context.Context, size, next int) error {
	if next < 0 {
		return ErrNegativeIndex
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next[size] = next
	return nil
}
