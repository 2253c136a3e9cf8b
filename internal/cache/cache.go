package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Store is a key-to-value lookup cache with time-based expiration. An entry
// is valid while now - fetchedAt < ttl; afterwards it is treated as absent
// and the next read refetches and overwrites it. Fetch failures are never
// cached, so a failing key retries on every call and self-heals once the
// upstream recovers. There is no eviction beyond TTL staleness: the keyspace
// is bounded by the configured team/sport catalog, not by request traffic.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	flight  singleFlight
	now     func() time.Time

	onLookup func(hit bool)
}

// Option customizes a Store.
type Option func(*Store)

// WithLookupObserver registers a callback invoked on every lookup with
// whether it was served from a fresh entry.
func WithLookupObserver(fn func(hit bool)) Option {
	return func(s *Store) {
		s.onLookup = fn
	}
}

// NewStore constructs a Store with the given TTL. A non-positive TTL means
// entries never expire.
func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrFetch returns the cached value for key when fresh, otherwise invokes
// fetch, stores the result, and returns it. Concurrent callers for the same
// expired key collapse into a single fetch; the rest wait for its result.
func (s *Store) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	if value, ok := s.lookup(key); ok {
		s.observe(true)
		return value, nil
	}
	s.observe(false)

	return s.flight.do(key, func() (any, error) {
		// A coalesced caller may have stored the value while we waited.
		if value, ok := s.lookup(key); ok {
			return value, nil
		}

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entries[key] = entry{value: value, fetchedAt: s.now()}
		s.mu.Unlock()
		return value, nil
	})
}

// Len reports the number of stored entries, fresh or stale.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(e.fetchedAt) >= s.ttl {
		return nil, false
	}
	return e.value, true
}

func (s *Store) observe(hit bool) {
	if s.onLookup != nil {
		s.onLookup(hit)
	}
}

// Fetch is a typed convenience wrapper around Store.GetOrFetch.
func Fetch[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	value, err := s.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, nil
	}
	return typed, nil
}
