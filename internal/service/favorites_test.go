package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/trackbox-server/internal/model"
	"github.com/dtroode/trackbox-server/internal/repository/memory"
	"github.com/dtroode/trackbox-server/internal/testutil"
)

func newFavorites(t *testing.T) (*Favorites, *memory.FavoriteRepository) {
	t.Helper()

	store := memory.NewFavoriteRepository()
	return NewFavorites(store, newCatalogStore(t), testutil.MakeNoopLogger()), store
}

func TestFavorites_AddAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, _ := newFavorites(t)

	require.NoError(t, f.AddFavorite(ctx, "alice", "2"))

	got, err := f.ListFavorites(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []model.Track{{ID: "2", Title: "Gangsta's Paradise", Artist: "Coolio, L.V."}}, got)
}

func TestFavorites_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, _ := newFavorites(t)

	require.NoError(t, f.AddFavorite(ctx, "alice", "3"))
	once, err := f.ListFavorites(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, f.AddFavorite(ctx, "alice", "3"))
	twice, err := f.ListFavorites(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Len(t, twice, 1)
}

func TestFavorites_RemoveAbsentLeavesSetUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, _ := newFavorites(t)

	require.NoError(t, f.AddFavorite(ctx, "alice", "1"))
	before, err := f.ListFavorites(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, f.RemoveFavorite(ctx, "alice", "7"))
	after, err := f.ListFavorites(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestFavorites_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, _ := newFavorites(t)

	require.NoError(t, f.AddFavorite(ctx, "alice", "1"))
	require.NoError(t, f.AddFavorite(ctx, "alice", "6"))
	require.NoError(t, f.RemoveFavorite(ctx, "alice", "1"))

	got, err := f.ListFavorites(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "6", got[0].ID)
}

func TestFavorites_ListSkipsUnknownIDsAndKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, store := newFavorites(t)

	for _, id := range []string{"8", "does-not-exist", "1", "5"} {
		require.NoError(t, f.AddFavorite(ctx, "alice", id))
	}

	ids, err := store.List(ctx, "alice")
	require.NoError(t, err)
	assert.Contains(t, ids, "does-not-exist")

	got, err := f.ListFavorites(ctx, "alice")
	require.NoError(t, err)

	var gotIDs []string
	for _, tr := range got {
		gotIDs = append(gotIDs, tr.ID)
	}
	assert.Equal(t, []string{"1", "5", "8"}, gotIDs)
}

func TestFavorites_MissingTrackID(t *testing.T) {
	t.Parallel()

	f, _ := newFavorites(t)

	requireAPIError(t, f.AddFavorite(context.Background(), "alice", ""), http.StatusBadRequest)
	requireAPIError(t, f.RemoveFavorite(context.Background(), "alice", ""), http.StatusBadRequest)
}

func TestFavorites_ListForUserWithoutSet(t *testing.T) {
	t.Parallel()

	f, _ := newFavorites(t)

	got, err := f.ListFavorites(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
