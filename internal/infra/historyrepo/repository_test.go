package historyrepo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
)

func TestMemoryRepositoryRecentNewestFirst(t *testing.T) {
	repo := NewMemoryRepository(3)
	ctx := context.Background()

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, entries)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Append(ctx, recommendation.HistoryEntry{ID: fmt.Sprintf("e%d", i)}))
	}

	entries, err = repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"e5", "e4", "e3"}, entryIDs(entries))

	entries, err = repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"e5", "e4"}, entryIDs(entries))
	require.NoError(t, repo.Ping(ctx))
}

func TestMemoryRepositoryCopiesOutfitIDs(t *testing.T) {
	repo := NewMemoryRepository(0)
	ids := []string{"a", "b"}
	require.NoError(t, repo.Append(context.Background(), recommendation.HistoryEntry{ID: "x", OutfitIDs: ids}))
	ids[0] = "mutated"

	entries, err := repo.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, entries[0].OutfitIDs)
}

func TestOutfitIDsCodec(t *testing.T) {
	data, err := encodeOutfitIDs(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))

	data, err = encodeOutfitIDs([]string{"casual_1", "casual_2"})
	require.NoError(t, err)
	ids, err := decodeOutfitIDs(data)
	require.NoError(t, err)
	require.Equal(t, []string{"casual_1", "casual_2"}, ids)

	ids, err = decodeOutfitIDs(nil)
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = decodeOutfitIDs([]byte(`{"not":"a list"}`))
	require.Error(t, err)
}

func entryIDs(entries []recommendation.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
