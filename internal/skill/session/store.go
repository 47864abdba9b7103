package session

import (
	"maps"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps session attributes in memory for the lifetime of the process.
// Entries expire after ttl of inactivity and the oldest are evicted past
// maxEntries. Nothing is persisted.
type Store struct {
	entries *expirable.LRU[string, map[string]any]
}

// NewStore creates a Store.
func NewStore(maxEntries int, ttl time.Duration) *Store {
	return &Store{
		entries: expirable.NewLRU[string, map[string]any](maxEntries, nil, ttl),
	}
}

// Load returns the attributes for sessionID. Stored values are overlaid by
// seed, the copy round-tripped through the platform, so a restarted process
// still sees the session's state. An empty sessionID yields detached attributes.
func (s *Store) Load(sessionID string, seed map[string]any) *Attributes {
	merged := make(map[string]any)
	if sessionID != "" {
		if stored, ok := s.entries.Get(sessionID); ok {
			maps.Copy(merged, stored)
		}
	}
	maps.Copy(merged, seed)
	return NewAttributes(sessionID, merged)
}

// Save persists attrs under their session id.
func (s *Store) Save(attrs *Attributes) {
	if attrs == nil || attrs.ID() == "" {
		return
	}
	s.entries.Add(attrs.ID(), attrs.Snapshot())
}

// Delete drops the session. Called when the session ends.
func (s *Store) Delete(sessionID string) {
	s.entries.Remove(sessionID)
}

// Commit saves attrs, or drops the session when ended is set. It returns the
// attributes to echo back to the platform, nil once the session is gone.
func (s *Store) Commit(attrs *Attributes, ended bool) *Attributes {
	if attrs == nil {
		return nil
	}
	if ended {
		s.Delete(attrs.ID())
		return nil
	}
	s.Save(attrs)
	return attrs
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.entries.Len()
}
