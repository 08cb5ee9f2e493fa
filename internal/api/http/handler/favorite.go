package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/trackbox-server/internal/api/http/render"
	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

type favoriteRequest struct {
	TrackID string `json:"trackId"`
}

// Favorite handles the authenticated user's favorites.
type Favorite struct {
	favoritesService FavoritesService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// NewFavorite creates a new Favorite handler.
func NewFavorite(favoritesService FavoritesService, contextManager model.ContextManager, logger *logger.Logger) *Favorite {
	return &Favorite{
		favoritesService: favoritesService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

// List responds with the user's favorite tracks in catalog order.
func (h *Favorite) List(w http.ResponseWriter, r *http.Request) {
	username, ok := h.contextManager.GetUsernameFromContext(r.Context())
	if !ok {
		render.Error(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	tracks, err := h.favoritesService.ListFavorites(r.Context(), username)
	if err != nil {
		render.Error(w, h.logger, err)
		return
	}

	render.JSON(w, http.StatusOK, tracks)
}

// Add marks a track as favorite.
func (h *Favorite) Add(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.favoritesService.AddFavorite, "track added to favorites")
}

// Remove unmarks a track. Removing an absent id still succeeds.
func (h *Favorite) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.favoritesService.RemoveFavorite, "track removed from favorites")
}

type favoriteMutation func(ctx context.Context, username, trackID string) error

func (h *Favorite) mutate(w http.ResponseWriter, r *http.Request, fn favoriteMutation, message string) {
	username, ok := h.contextManager.GetUsernameFromContext(r.Context())
	if !ok {
		render.Error(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	var req favoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		render.Error(w, h.logger, err)
		return
	}

	if err := fn(r.Context(), username, req.TrackID); err != nil {
		h.logger.Info("Favorite handler: request failed",
			"username", username,
			"track_id", req.TrackID,
			"error", err.Error())
		render.Error(w, h.logger, err)
		return
	}

	render.Message(w, http.StatusOK, message)
}
