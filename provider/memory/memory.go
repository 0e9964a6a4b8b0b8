// Package memory is the default in-process byte store: a mutex-guarded map
// with lazy expiry on Get. Nothing survives a process restart, which is
// exactly the slab cache's core contract.
package memory

import (
	"context"
	"sync"
	"time"

	pr "github.com/unkn0wn-root/slabcache/provider"
)

type entry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

type Store struct {
	mu sync.Mutex
	m  map[string]entry
}

var _ pr.Provider = (*Store)(nil)

func New() *Store {
	return &Store{m: make(map[string]entry)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(s.m, key)
		return nil, false, nil
	}
	return e.v, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.m[key] = entry{v: value, exp: exp}
	s.mu.Unlock()
	return true, nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) Close(_ context.Context) error { return nil }

// Len reports the number of stored entries, expired or not. Diagnostics
// only; not part of the provider contract.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
