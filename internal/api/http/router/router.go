package router

import (
	"net/http"

	"github.com/dtroode/trackbox-server/internal/api/http/handler"
	"github.com/dtroode/trackbox-server/internal/api/http/middleware"
	"github.com/dtroode/trackbox-server/internal/api/http/render"
	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

// Router wires HTTP handlers and middleware for the trackbox API.
type Router struct {
	authService      handler.AuthService
	catalogService   handler.CatalogService
	favoritesService handler.FavoritesService
	audioService     handler.AudioService
	tokenService     middleware.TokenService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	catalogService handler.CatalogService,
	favoritesService handler.FavoritesService,
	audioService handler.AudioService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:      authService,
		catalogService:   catalogService,
		favoritesService: favoritesService,
		audioService:     audioService,
		tokenService:     tokenService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

// Register builds the route table and wraps it with the global middleware.
// Audio streaming is public; catalog and favorites require a bearer token.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	r.registerAuthRoutes(mux)
	r.registerTrackRoutes(mux, authenticate.Handle)
	r.registerFavoriteRoutes(mux, authenticate.Handle)
	r.registerAudioRoutes(mux)

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		render.Error(w, r.logger, apierrors.New(http.StatusNotFound, "not found"))
	})

	return r.wrap(mux)
}

// wrap applies the global middleware. Logging sits outside Recover so a
// request that panicked is still logged with its 500.
func (r *Router) wrap(h http.Handler) http.Handler {
	logging := middleware.NewLogging(r.logger)

	return middleware.Chain(h,
		middleware.RequestID,
		logging.Handle,
		middleware.NewRecover(r.logger),
		middleware.NewCORS(),
	)
}

func (r *Router) registerAuthRoutes(mux *http.ServeMux) {
	h := handler.NewAuth(r.authService, r.logger)
	mux.HandleFunc("POST /api/register", h.Register)
	mux.HandleFunc("POST /api/login", h.Login)
}

func (r *Router) registerTrackRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	h := handler.NewTrack(r.catalogService, r.logger)
	mux.Handle("GET /api/tracks", auth(http.HandlerFunc(h.ListTracks)))
}

func (r *Router) registerFavoriteRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	h := handler.NewFavorite(r.favoritesService, r.contextManager, r.logger)
	mux.Handle("GET /api/favorites", auth(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/favorites", auth(http.HandlerFunc(h.Add)))
	mux.Handle("DELETE /api/favorites", auth(http.HandlerFunc(h.Remove)))
}

func (r *Router) registerAudioRoutes(mux *http.ServeMux) {
	h := handler.NewAudio(r.audioService, r.logger)
	mux.HandleFunc("GET /api/tracks/{id}/audio", h.Stream)
}
