package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dtroode/trackbox-server/internal/model"
)

var _ model.FavoriteStore = (*FavoriteRepository)(nil)

// FavoriteRepository keeps one set of track ids per username.
type FavoriteRepository struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{
		sets: make(map[string]map[string]struct{}),
	}
}

// Init creates an empty set for username, keeping an existing one intact.
func (r *FavoriteRepository) Init(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sets[username]; !ok {
		r.sets[username] = make(map[string]struct{})
	}
	return nil
}

func (r *FavoriteRepository) Add(_ context.Context, username, trackID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[username]
	if !ok {
		set = make(map[string]struct{})
		r.sets[username] = set
	}
	set[trackID] = struct{}{}

	return nil
}

func (r *FavoriteRepository) Remove(_ context.Context, username, trackID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.sets[username]; ok {
		delete(set, trackID)
	}
	return nil
}

// List returns the ids in username's set, sorted. Unknown users have an empty set.
func (r *FavoriteRepository) List(_ context.Context, username string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.sets[username]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}
