// Package memstore is an in-process durable mirror. It forgets everything on
// exit and is meant for tests and throwaway runs.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store"
)

// ErrInjected is returned by Put while write failures are switched on.
var ErrInjected = errors.New("memstore: injected write failure")

type Store struct {
	mu        sync.RWMutex
	data      map[string]string
	failPuts  bool
	putCounts map[string]int
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{data: map[string]string{}, putCounts: map[string]int{}}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", fmt.Errorf("%w: key %q", model.ErrNotFound, key)
	}
	return v, nil
}

func (s *Store) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPuts {
		return ErrInjected
	}
	s.data[key] = value
	s.putCounts[key]++
	return nil
}

func (s *Store) Close() error { return nil }

// FailPuts toggles injected write failures.
func (s *Store) FailPuts(fail bool) {
	s.mu.Lock()
	s.failPuts = fail
	s.mu.Unlock()
}

// Puts reports how many successful writes key has received.
func (s *Store) Puts(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.putCounts[key]
}

// Seed writes value under key without counting it as a mirror write.
func (s *Store) Seed(key, value string) {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
}
