package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/trackbox-server/internal/api/http/render"
	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

// TokenService resolves usernames from bearer tokens.
type TokenService interface {
	GetUsername(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects the username into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a token with 401 and requests with an
// unverifiable token with 403.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := m.authenticateUser(r.Context(), bearerToken(r.Header.Get("Authorization")))
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			render.Error(w, m.logger, err)
			return
		}

		ctx := m.contextManager.SetUsernameToContext(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", apierrors.NewErrMissingAuthorizationToken()
	}

	username, err := m.tokenService.GetUsername(ctx, tokenString)
	if err != nil {
		return "", apierrors.NewErrInvalidAuthorizationToken(err)
	}

	if username == "" {
		return "", apierrors.NewErrInvalidAuthorizationToken(nil)
	}

	return username, nil
}

// bearerToken returns the credential after the scheme, e.g. "Bearer <token>".
func bearerToken(header string) string {
	_, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
