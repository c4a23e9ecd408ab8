package gencache

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// MemoryStore is a process-local store for single-instance deployments and
// tests. Expired entries are reported as missing and removed by DeleteExpired.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]domain.CacheEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*domain.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || !e.IsFresh(s.now()) {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) Put(_ context.Context, entry *domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := *entry
	e.Payload = append([]byte(nil), entry.Payload...)
	s.entries[entry.Key] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) RecordHit(_ context.Context, key string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil
	}
	e.HitCount++
	e.LastHitAt = &at
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k, e := range s.entries {
		if !e.IsFresh(now) {
			delete(s.entries, k)
			n++
		}
	}
	return n, nil
}
