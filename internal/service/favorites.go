package service

import (
	"context"
	"fmt"

	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

type Favorites struct {
	favoriteStore model.FavoriteStore
	catalogStore  model.CatalogStore
	logger        *logger.Logger
}

func NewFavorites(favoriteStore model.FavoriteStore, catalogStore model.CatalogStore, logger *logger.Logger) *Favorites {
	return &Favorites{
		favoriteStore: favoriteStore,
		catalogStore:  catalogStore,
		logger:        logger,
	}
}

// ListFavorites resolves the user's ids against the catalog. Ids missing from
// the catalog are skipped; the result keeps catalog order.
func (f *Favorites) ListFavorites(ctx context.Context, username string) ([]model.Track, error) {
	ids, err := f.favoriteStore.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	tracks, err := f.catalogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]model.Track, 0, len(ids))
	for _, t := range tracks {
		if _, ok := wanted[t.ID]; ok {
			out = append(out, t)
		}
	}

	return out, nil
}

// AddFavorite adds trackID to the user's set. The id is not checked against the catalog.
func (f *Favorites) AddFavorite(ctx context.Context, username, trackID string) error {
	if trackID == "" {
		return apierrors.NewErrMissingTrackID()
	}

	if err := f.favoriteStore.Add(ctx, username, trackID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	f.logger.Debug("Favorites service: track added",
		"username", username,
		"track_id", trackID)

	return nil
}

func (f *Favorites) RemoveFavorite(ctx context.Context, username, trackID string) error {
	if trackID == "" {
		return apierrors.NewErrMissingTrackID()
	}

	if err := f.favoriteStore.Remove(ctx, username, trackID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	f.logger.Debug("Favorites service: track removed",
		"username", username,
		"track_id", trackID)

	return nil
}
