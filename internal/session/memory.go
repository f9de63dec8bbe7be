package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryStore holds sessions in process memory. Entries expire after ttl
// without access.
type MemoryStore[T any] struct {
	mu sync.Mutex
	c  *cache.Cache
}

// NewMemoryStore returns a store whose entries live for ttl after their last
// access. A ttl <= 0 keeps entries forever.
func NewMemoryStore[T any](ttl time.Duration) *MemoryStore[T] {
	exp, cleanup := ttl, ttl
	if ttl <= 0 {
		exp, cleanup = cache.NoExpiration, 0
	}
	return &MemoryStore[T]{c: cache.New(exp, cleanup)}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.load(id)
	if ok {
		s.c.Set(id, v, cache.DefaultExpiration)
	}
	return v, ok, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Set(id, v, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore[T]) Update(_ context.Context, id string, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.load(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	s.c.Set(id, next, cache.DefaultExpiration)
	return next, nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Delete(id)
	return nil
}

// Len reports how many unexpired sessions are held.
func (s *MemoryStore[T]) Len() int {
	return s.c.ItemCount()
}

func (s *MemoryStore[T]) NewID() string {
	return uuid.NewString()
}

func (s *MemoryStore[T]) load(id string) (T, bool) {
	raw, ok := s.c.Get(id)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}
