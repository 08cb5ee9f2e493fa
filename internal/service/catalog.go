package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

type Catalog struct {
	store  model.CatalogStore
	logger *logger.Logger
}

func NewCatalog(store model.CatalogStore, logger *logger.Logger) *Catalog {
	return &Catalog{store: store, logger: logger}
}

// ListTracks returns every track in catalog order.
func (c *Catalog) ListTracks(ctx context.Context) ([]model.Track, error) {
	tracks, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return tracks, nil
}

func (c *Catalog) GetTrack(ctx context.Context, id string) (model.Track, error) {
	track, err := c.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Track{}, apierrors.NewErrTrackNotFound(id)
	}
	if err != nil {
		return model.Track{}, fmt.Errorf("failed to get track: %w", err)
	}
	return track, nil
}
