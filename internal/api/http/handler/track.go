package handler

import (
	"net/http"

	"github.com/dtroode/trackbox-server/internal/api/http/render"
	"github.com/dtroode/trackbox-server/internal/logger"
)

// Track serves the catalog.
type Track struct {
	catalogService CatalogService
	logger         *logger.Logger
}

// NewTrack creates a new Track handler.
func NewTrack(catalogService CatalogService, logger *logger.Logger) *Track {
	return &Track{catalogService: catalogService, logger: logger}
}

// ListTracks responds with every catalog track.
func (h *Track) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.catalogService.ListTracks(r.Context())
	if err != nil {
		render.Error(w, h.logger, err)
		return
	}

	render.JSON(w, http.StatusOK, tracks)
}
