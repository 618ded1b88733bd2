// Package history keeps a small, local record of recent search queries.
//
// The list is bounded, deduplicated and most-recent-first. Persistence
// goes through the Storage interface so callers can back it with the
// project directory in production and an in-memory fake in tests.
// Every operation fails soft: a broken or missing backing store
// degrades reads to empty and writes to no-ops, because this sits on a
// keystroke-driven hot path and must never surface an error.
package history

import (
	"encoding/json"
	"strings"
)

const (
	// StorageKey is the fixed key the history list persists under.
	StorageKey = "history.json"

	// MaxEntries bounds the persisted list; the oldest entry is
	// evicted when a new query pushes past it.
	MaxEntries = 10
)

// Storage abstracts the key-value persistence behind the store.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Store is a bounded, deduplicated, most-recent-first query list.
type Store struct {
	storage Storage
	key     string
}

// NewStore creates a store backed by the given storage.
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		key:     StorageKey,
	}
}

// Get returns the persisted queries, newest first. A missing or
// unparsable backing value yields an empty list.
func (s *Store) Get() []string {
	data, err := s.storage.Get(s.key)
	if err != nil || len(data) == 0 {
		return []string{}
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return []string{}
	}

	return entries
}

// Add records a completed search. Blank queries are ignored; an exact
// duplicate moves to the front instead of appearing twice.
func (s *Store) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	entries := s.Get()
	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, query)
	for _, e := range entries {
		if e != query {
			updated = append(updated, e)
		}
	}

	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}

	s.persist(updated)
}

// Remove drops the exact-match entry if present.
func (s *Store) Remove(query string) {
	entries := s.Get()
	updated := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != query {
			updated = append(updated, e)
		}
	}

	if len(updated) == len(entries) {
		return
	}

	s.persist(updated)
}

// Clear deletes the persisted list entirely.
func (s *Store) Clear() {
	_ = s.storage.Remove(s.key)
}

func (s *Store) persist(entries []string) {
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = s.storage.Set(s.key, data)
}
