// internal/session/store.go
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"points-calculator/internal/domain"
)

// Store keeps forms in memory only; a restart drops every session.
// Forms idle for longer than the configured TTL are dropped by EvictIdle.
type Store struct {
	mu       sync.Mutex
	catalog  []domain.CatalogEntry
	forms    map[string]*storeEntry
	recorder Recorder
	now      func() time.Time
}

type storeEntry struct {
	form     *Form
	lastUsed time.Time
}

func NewStore(catalog []domain.CatalogEntry, rec Recorder) *Store {
	return &Store{
		catalog:  catalog,
		forms:    make(map[string]*storeEntry),
		recorder: rec,
		now:      time.Now,
	}
}

// Get returns the form for key, creating an empty one on first use.
func (s *Store) Get(key string) *Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.forms[key]
	if !ok {
		e = &storeEntry{form: NewForm(s.catalog, s.recorder)}
		s.forms[key] = e
	}
	e.lastUsed = s.now()
	return e.form
}

// Lookup returns the form for key without creating one.
func (s *Store) Lookup(key string) (*Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.forms[key]
	if !ok {
		return nil, false
	}
	e.lastUsed = s.now()
	return e.form, true
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, key)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

func (s *Store) Catalog() []domain.CatalogEntry {
	return s.catalog
}

// EvictIdle drops every form not touched within ttl and returns how many were dropped.
func (s *Store) EvictIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	evicted := 0
	for key, e := range s.forms {
		if e.lastUsed.Before(cutoff) {
			delete(s.forms, key)
			evicted++
		}
	}
	return evicted
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (s *Store) RunEviction(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(ttl); n > 0 {
				slog.Debug("evicted idle sessions", "count", n, "remaining", s.Len())
			}
		}
	}
}
