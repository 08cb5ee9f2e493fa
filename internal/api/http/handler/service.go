package handler

import (
	"context"

	"github.com/dtroode/trackbox-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) (model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// CatalogService lists the track catalog.
type CatalogService interface {
	ListTracks(ctx context.Context) ([]model.Track, error)
}

// FavoritesService manages per-user favorite tracks.
type FavoritesService interface {
	ListFavorites(ctx context.Context, username string) ([]model.Track, error)
	AddFavorite(ctx context.Context, username, trackID string) error
	RemoveFavorite(ctx context.Context, username, trackID string) error
}

// AudioService resolves tracks to audio byte streams.
type AudioService interface {
	Open(ctx context.Context, trackID, rangeHeader string) (*model.AudioStream, error)
}
