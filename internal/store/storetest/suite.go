package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store and return it from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	key := "k-" + uuid.New().String()

	// Missing key
	if _, err := s.Get(ctx, key); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get missing: want ErrNotFound, got %v", err)
	}

	// Put then Get
	if err := s.Put(ctx, key, `[{"id":"a"}]`); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, key)
	if err != nil || got != `[{"id":"a"}]` {
		t.Fatalf("Get after Put: got=%q err=%v", got, err)
	}

	// Overwrite replaces the whole value
	if err := s.Put(ctx, key, `[{"id":"b"},{"id":"a"}]`); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err = s.Get(ctx, key)
	if err != nil || got != `[{"id":"b"},{"id":"a"}]` {
		t.Fatalf("Get after overwrite: got=%q err=%v", got, err)
	}

	// Keys are independent
	other := key + "-other"
	if err := s.Put(ctx, other, `[]`); err != nil {
		t.Fatalf("Put other: %v", err)
	}
	if got, err := s.Get(ctx, key); err != nil || got != `[{"id":"b"},{"id":"a"}]` {
		t.Fatalf("Get after other Put: got=%q err=%v", got, err)
	}

	// Large values survive intact
	big := make([]byte, 256*1024)
	for i := range big {
		big[i] = 'x'
	}
	if err := s.Put(ctx, other, string(big)); err != nil {
		t.Fatalf("Put big: %v", err)
	}
	if got, err := s.Get(ctx, other); err != nil || len(got) != len(big) {
		t.Fatalf("Get big: len=%d err=%v", len(got), err)
	}
}
