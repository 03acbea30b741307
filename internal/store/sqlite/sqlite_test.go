package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/store"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store/storetest"
)

func TestSQLiteStore_Compliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := New(context.Background(), filepath.Join(t.TempDir(), "journal.db"))
		require.NoError(t, err)
		return s
	})
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "journal.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "health_goals", `[{"id":"goal_1"}]`))
	require.NoError(t, s.HealthPing(ctx))
	require.NoError(t, s.Close())

	s2, err := New(ctx, path)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.Get(ctx, "health_goals")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"goal_1"}]`, got)
}
