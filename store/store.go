// Package store provides the word-list storage interface for the content
// filter, plus an in-memory implementation for tests and single-process
// deployments.
package store

import (
	"context"
	"sync"

	contentfilter "github.com/carnote/contentfilter"
	"github.com/carnote/contentfilter/dict"
)

// MaxWordlistSize caps the total number of words a store may return.
// Anything larger is a data problem, not a dictionary.
const MaxWordlistSize = 100000

// Store defines the interface for word-list storage backends.
type Store interface {
	// Name returns the backend name (sql, redis, memory). Used in events
	// and error messages.
	Name() string

	// LoadWordlists loads all word lists from the backend.
	LoadWordlists(ctx context.Context) (dict.Wordlists, error)

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	Close() error
}

// Validate checks externally loaded word lists before they are allowed to
// replace the active snapshot.
func Validate(w dict.Wordlists) error {
	count := w.Count()
	if count == 0 {
		return contentfilter.ErrEmptyWordlist
	}
	if count > MaxWordlistSize {
		return contentfilter.ErrWordlistTooLarge
	}
	return nil
}

// MemoryStore is an in-memory Store for tests and static deployments.
type MemoryStore struct {
	mu    sync.RWMutex
	lists dict.Wordlists

	// LoadErr, when set, is returned by LoadWordlists. Lets tests drive
	// the reloader's failure paths.
	LoadErr error
}

// NewMemoryStore creates a memory store holding the given lists.
func NewMemoryStore(lists dict.Wordlists) *MemoryStore {
	return &MemoryStore{lists: lists}
}

// Name returns "memory".
func (m *MemoryStore) Name() string { return "memory" }

// LoadWordlists returns the stored lists.
func (m *MemoryStore) LoadWordlists(ctx context.Context) (dict.Wordlists, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadErr != nil {
		return dict.Wordlists{}, m.LoadErr
	}
	return m.lists, nil
}

// SetWordlists replaces the stored lists.
func (m *MemoryStore) SetWordlists(lists dict.Wordlists) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = lists
}

// Ping always succeeds.
func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
