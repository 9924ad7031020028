// Package ratelimit budgets outbound backend requests over a fixed window.
//
// The counter state lives behind CounterStore so the limiter stays testable
// and the backing map can be swapped for a distributed store without touching
// call sites.
package ratelimit

import (
	"sync"
	"time"
)

// CounterStore holds named request counters.
type CounterStore interface {
	Get(key string) int
	Increment(key string) int
	Reset(key string)
}

// MemoryStore is the in-process CounterStore. Safe for concurrent use within
// a single instance; not shared across processes.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int)}
}

func (s *MemoryStore) Get(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key]
}

func (s *MemoryStore) Increment(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key]
}

func (s *MemoryStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, key)
}

// Limiter enforces a per-key request budget per window against an injected
// store.
type Limiter struct {
	store  CounterStore
	limit  int
	window time.Duration
	now    func() time.Time

	mu          sync.Mutex
	windowStart map[string]time.Time
}

// NewLimiter builds a limiter; limit <= 0 disables enforcement.
func NewLimiter(store CounterStore, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:       store,
		limit:       limit,
		window:      window,
		now:         time.Now,
		windowStart: make(map[string]time.Time),
	}
}

// Allow consumes one request from the key's budget, resetting the counter
// when the window has elapsed. It reports whether the request may proceed.
func (l *Limiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	start, ok := l.windowStart[key]
	now := l.now()
	if !ok || now.Sub(start) >= l.window {
		l.windowStart[key] = now
		l.store.Reset(key)
	}
	l.mu.Unlock()

	return l.store.Increment(key) <= l.limit
}

// Remaining reports the budget left in the current window.
func (l *Limiter) Remaining(key string) int {
	if l.limit <= 0 {
		return 0
	}
	left := l.limit - l.store.Get(key)
	if left < 0 {
		return 0
	}
	return left
}
