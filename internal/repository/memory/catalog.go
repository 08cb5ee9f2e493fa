package memory

import (
	"context"
	"fmt"

	"github.com/dtroode/trackbox-server/internal/model"
)

var _ model.CatalogStore = (*CatalogRepository)(nil)

// DefaultTracks is the catalog the server is seeded with.
func DefaultTracks() []model.Track {
	return []model.Track{
		{ID: "1", Title: "In Bloom", Artist: "Nirvana"},
		{ID: "2", Title: "Gangsta's Paradise", Artist: "Coolio, L.V."},
		{ID: "3", Title: "Разговоры о животных", Artist: "Подкаст-студия Константина Петрова"},
		{ID: "4", Title: "Animal I Have Become", Artist: "Three Days Grace"},
		{ID: "5", Title: "Comic news", Artist: "Команда КВН Плохие новости"},
		{ID: "6", Title: "To The Skies From A Hillside", Artist: "Maybeshewill"},
		{ID: "7", Title: "Co-Conspirators", Artist: "Maybeshewill"},
		{ID: "8", Title: "Surrounded By Spies", Artist: "Placebo"},
	}
}

// CatalogRepository is an immutable, ordered track list.
type CatalogRepository struct {
	tracks []model.Track
	index  map[string]int
}

// NewCatalogRepository copies tracks; ids must be unique.
func NewCatalogRepository(tracks []model.Track) (*CatalogRepository, error) {
	r := &CatalogRepository{
		tracks: make([]model.Track, len(tracks)),
		index:  make(map[string]int, len(tracks)),
	}
	copy(r.tracks, tracks)

	for i, t := range r.tracks {
		if t.ID == "" {
			return nil, fmt.Errorf("track at position %d has an empty id", i)
		}
		if _, ok := r.index[t.ID]; ok {
			return nil, fmt.Errorf("duplicate track id %q", t.ID)
		}
		r.index[t.ID] = i
	}

	return r, nil
}

// List returns a copy of the catalog in its fixed order.
func (r *CatalogRepository) List(_ context.Context) ([]model.Track, error) {
	out := make([]model.Track, len(r.tracks))
	copy(out, r.tracks)
	return out, nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id string) (model.Track, error) {
	i, ok := r.index[id]
	if !ok {
		return model.Track{}, model.ErrNotFound
	}
	return r.tracks[i], nil
}
