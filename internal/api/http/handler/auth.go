package handler

import (
	"net/http"

	"github.com/dtroode/trackbox-server/internal/api/http/render"
	"github.com/dtroode/trackbox-server/internal/logger"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	Username string `json:"username"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Auth handles registration and login endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates an account. Responds 201 with the public user view.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		render.Error(w, h.logger, err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"username", req.Username)

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		render.Error(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"username", user.Username)

	render.JSON(w, http.StatusCreated, registerResponse{
		Message: "user registered successfully",
		User:    userResponse{Username: user.Username},
	})
}

// Login verifies credentials and responds with a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		render.Error(w, h.logger, err)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		render.Error(w, h.logger, err)
		return
	}

	render.JSON(w, http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   token,
	})
}
