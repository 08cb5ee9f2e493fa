package model

import "context"

// FavoriteStore keeps a set of track ids per user.
type FavoriteStore interface {
	Init(ctx context.Context, username string) error
	Add(ctx context.Context, username, trackID string) error
	Remove(ctx context.Context, username, trackID string) error
	List(ctx context.Context, username string) ([]string, error)
}
