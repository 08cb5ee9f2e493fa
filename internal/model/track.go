package model

import "context"

// CatalogStore provides read access to the track catalog.
type CatalogStore interface {
	List(ctx context.Context) ([]Track, error)
	GetByID(ctx context.Context, id string) (Track, error)
}

// Track is a catalog entry.
type Track struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}
