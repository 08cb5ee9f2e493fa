package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/trackbox-server/internal/model"
)

func TestCatalogRepository_DefaultTracks(t *testing.T) {
	t.Parallel()

	repo, err := NewCatalogRepository(DefaultTracks())
	require.NoError(t, err)

	tracks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tracks, 8)
	assert.Equal(t, "1", tracks[0].ID)
	assert.Equal(t, "8", tracks[7].ID)

	got, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, model.Track{ID: "2", Title: "Gangsta's Paradise", Artist: "Coolio, L.V."}, got)
}

func TestCatalogRepository_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	repo, err := NewCatalogRepository(DefaultTracks())
	require.NoError(t, err)

	tracks, err := repo.List(context.Background())
	require.NoError(t, err)
	tracks[0].Title = "changed"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "In Bloom", again[0].Title)
}

func TestCatalogRepository_UnknownID(t *testing.T) {
	t.Parallel()

	repo, err := NewCatalogRepository(DefaultTracks())
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNewCatalogRepository_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewCatalogRepository([]model.Track{{ID: "1"}, {ID: "1"}})
	assert.Error(t, err)

	_, err = NewCatalogRepository([]model.Track{{ID: ""}})
	assert.Error(t, err)
}
