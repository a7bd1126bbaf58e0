package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/internal/directory/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestStoreBeforeLoad(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	require.ErrorIs(t, s.Ping(ctx), store.ErrNotLoaded)

	_, err := s.Members().ListAll(ctx)
	require.ErrorIs(t, err, store.ErrNotLoaded)

	_, err = s.Members().GetBySlug(ctx, "ana")
	require.ErrorIs(t, err, store.ErrNotLoaded)
}

func TestStoreReplaceAndLookup(t *testing.T) {
	ctx := context.Background()
	loadedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	s := memory.NewStoreWith(store.Snapshot{
		Members: []domain.Member{
			{Name: "Ana", Slug: "ana"},
			{Name: "Ben", Slug: "ben"},
			{Name: "Ana Two", Slug: "ana"},
		},
		Source:   "https://example.com/data/team.json",
		LoadedAt: loadedAt,
	})
	require.NoError(t, s.Ping(ctx))

	info, err := s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, info.Count)
	require.Equal(t, loadedAt, info.LoadedAt)

	t.Run("first match wins on duplicate slugs", func(t *testing.T) {
		m, err := s.Members().GetBySlug(ctx, "ana")
		require.NoError(t, err)
		require.Equal(t, "Ana", m.Name)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := s.Members().GetBySlug(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list returns an independent copy", func(t *testing.T) {
		list, err := s.Members().ListAll(ctx)
		require.NoError(t, err)
		list[0].Name = "mutated"

		again, err := s.Members().ListAll(ctx)
		require.NoError(t, err)
		require.Equal(t, "Ana", again[0].Name)
	})

	t.Run("replace swaps the snapshot", func(t *testing.T) {
		require.NoError(t, s.Replace(ctx, store.Snapshot{Members: []domain.Member{{Name: "Cy", Slug: "cy"}}}))

		list, err := s.Members().ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Cy", list[0].Name)
	})
}
