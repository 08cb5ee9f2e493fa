package service

import (
	"context"
	"fmt"

	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

// TokenService issues access tokens and resolves them back to usernames.
// Tokens are stateless: nothing is persisted and there is no revocation.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, username string) (string, error) {
	token, err := s.manager.GenerateToken(username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *TokenService) GetUsername(_ context.Context, token string) (string, error) {
	username, err := s.manager.ParseToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected token", "error", err.Error())
		return "", err
	}
	return username, nil
}
