package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// cleanupProbability bounds housekeeping cost: expired entries only waste
// memory, so sweeping them on roughly 1% of checks is enough.
const cleanupProbability = 0.01

type memoryEntry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a process-local fixed-window counter. Each replica of the
// service keeps its own counts, so the limit is best-effort per instance.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Check(_ context.Context, key string, limit int, window time.Duration) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if rand.Float64() < cleanupProbability {
		s.cleanupLocked(now)
	}

	e, ok := s.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &memoryEntry{count: 1, resetAt: now.Add(window)}
		s.entries[key] = e
		return Result{Allowed: true, Limit: limit, Remaining: limit - 1, ResetAt: e.resetAt}, nil
	}

	if e.count < limit {
		e.count++
		return Result{Allowed: true, Limit: limit, Remaining: limit - e.count, ResetAt: e.resetAt}, nil
	}

	return Result{Allowed: false, Limit: limit, Remaining: 0, ResetAt: e.resetAt}, nil
}

func (s *MemoryStore) cleanupLocked(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.resetAt) {
			delete(s.entries, k)
		}
	}
}

// Len reports the number of tracked keys, expired entries included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
